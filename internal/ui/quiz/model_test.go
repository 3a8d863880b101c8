package quizui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
)

func testQuestions() []question.Question {
	return []question.Question{
		{ID: 1, Prompt: "Q1", Options: question.OptionList{"A", "B"}, SetID: 3},
		{ID: 2, Prompt: "Q2", Options: question.OptionList{"C", "D"}, SetID: 3},
	}
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func TestDigitKeySelectsAnswer(t *testing.T) {
	m := NewModel(quiz.Start(testQuestions(), false), Options{NoColor: true})
	m, _ = update(t, m, key("2"))
	if got := m.Session().Answers[1]; got != "B" {
		t.Fatalf("expected option B selected, got %q", got)
	}
}

func TestCursorSelectAndNavigate(t *testing.T) {
	m := NewModel(quiz.Start(testQuestions(), false), Options{NoColor: true})
	m, _ = update(t, m, key("j"))
	m, _ = update(t, m, key("enter"))
	if got := m.Session().Answers[1]; got != "B" {
		t.Fatalf("expected cursor selection B, got %q", got)
	}
	m, _ = update(t, m, key("l"))
	if m.Session().Index != 1 {
		t.Fatalf("expected navigation to question 2, got index %d", m.Session().Index)
	}
	m, _ = update(t, m, key("l"))
	if m.Session().Index != 1 {
		t.Fatalf("expected clamped navigation, got index %d", m.Session().Index)
	}
}

func TestTickAccruesOnlyWhileActive(t *testing.T) {
	m := NewModel(quiz.Start(testQuestions(), false), Options{NoColor: true})
	m, cmd := update(t, m, tickMsg(time.Now()))
	if m.Session().ElapsedSeconds != 1 {
		t.Fatalf("expected 1 second, got %d", m.Session().ElapsedSeconds)
	}
	if cmd == nil {
		t.Fatalf("expected the ticker to be rearmed while in progress")
	}

	m.session = quiz.BeginSubmit(m.session)
	m.session = quiz.CompleteQuiz(m.session, question.QuizResult{})
	m, cmd = update(t, m, tickMsg(time.Now()))
	if m.Session().ElapsedSeconds != 1 {
		t.Fatalf("completed session must not accrue time")
	}
	if cmd != nil {
		t.Fatalf("expected the ticker to stop after completion")
	}
}

func TestSubmitSuccessShowsResultView(t *testing.T) {
	submitted := false
	submit := func(s quiz.Session) (SubmitOutcome, error) {
		submitted = true
		return SubmitOutcome{Quiz: &question.QuizResult{
			Score: 1, Total: 2,
			Results: []question.AnswerRecord{
				{Question: "Q1", UserAnswer: "A", CorrectAnswer: "A", IsCorrect: true},
				{Question: "Q2", UserAnswer: "C", CorrectAnswer: "D", IsCorrect: false},
			},
			HasIncorrect: true,
		}}, nil
	}
	m := NewModel(quiz.Start(testQuestions(), false), Options{Submit: submit, NoColor: true})
	m, cmd := update(t, m, key("s"))
	if m.Session().Phase != quiz.PhaseSubmitting {
		t.Fatalf("expected submitting phase, got %v", m.Session().Phase)
	}
	if cmd == nil {
		t.Fatalf("expected a submit command")
	}
	msg := cmd()
	if !submitted {
		t.Fatalf("expected the submit func to run")
	}
	m, _ = update(t, m, msg)
	if m.Session().Phase != quiz.PhaseCompleted {
		t.Fatalf("expected completed, got %v", m.Session().Phase)
	}

	view := m.View()
	if !strings.Contains(view, "Result: 1/2") {
		t.Fatalf("expected result header, got %q", view)
	}
	if strings.Contains(view, "answered") {
		t.Fatalf("result view must fully replace the question view")
	}
}

func TestSubmitFailureFallsBack(t *testing.T) {
	submit := func(s quiz.Session) (SubmitOutcome, error) {
		return SubmitOutcome{}, errors.New("boom")
	}
	m := NewModel(quiz.Start(testQuestions(), false), Options{Submit: submit, NoColor: true})
	m, _ = update(t, m, key("1"))
	m, cmd := update(t, m, key("s"))
	m, _ = update(t, m, cmd())
	if m.Session().Phase != quiz.PhaseInProgress {
		t.Fatalf("expected fallback to in-progress, got %v", m.Session().Phase)
	}
	if m.Session().Answers[1] != "A" {
		t.Fatalf("expected answers preserved after failure")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Fatalf("expected the error surfaced in the view")
	}
}

func TestReviewPivotKey(t *testing.T) {
	m := NewModel(quiz.Start(testQuestions(), false), Options{NoColor: true})
	m.session = quiz.BeginSubmit(m.session)
	m.session = quiz.CompleteQuiz(m.session, question.QuizResult{HasIncorrect: true})
	m, cmd := update(t, m, key("r"))
	if !m.WantReview() {
		t.Fatalf("expected review pivot")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestPerfectResultOffersNoReview(t *testing.T) {
	m := NewModel(quiz.Start(testQuestions(), false), Options{NoColor: true})
	m.session = quiz.BeginSubmit(m.session)
	m.session = quiz.CompleteQuiz(m.session, question.QuizResult{Score: 2, Total: 2})
	m, _ = update(t, m, key("r"))
	if m.WantReview() {
		t.Fatalf("review must not be offered for a perfect result")
	}
}
