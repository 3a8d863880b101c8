package quiz

import (
	"testing"

	"quizdeck/internal/question"
)

func threeQuestions() []question.Question {
	return []question.Question{
		{ID: 1, Prompt: "Q1", Options: question.OptionList{"A", "B"}, SetID: 9},
		{ID: 2, Prompt: "Q2", Options: question.OptionList{"C", "D"}, SetID: 9},
		{ID: 3, Prompt: "Q3", Options: question.OptionList{"E", "F"}, SetID: 9},
	}
}

func TestStartResetsEverything(t *testing.T) {
	s := Start(threeQuestions(), false)
	s = SelectAnswer(s, 1, "A")
	s = Next(s)
	s = Tick(s)

	s = Start(threeQuestions(), true)
	if s.Phase != PhaseInProgress {
		t.Fatalf("expected in-progress, got %v", s.Phase)
	}
	if len(s.Answers) != 0 || s.Index != 0 || s.ElapsedSeconds != 0 {
		t.Fatalf("expected a fresh session, got %+v", s)
	}
	if !s.Review {
		t.Fatalf("expected review flag to carry")
	}
}

func TestStartWithNoQuestionsIsIdle(t *testing.T) {
	s := Start(nil, false)
	if s.Phase != PhaseIdle {
		t.Fatalf("expected idle, got %v", s.Phase)
	}
	if ProgressPercent(s) != 0 {
		t.Fatalf("empty session should read 0%%")
	}
}

func TestSelectAnswerUpsertsAndDropsStaleIDs(t *testing.T) {
	s := Start(threeQuestions(), false)
	s = SelectAnswer(s, 1, "A")
	s = SelectAnswer(s, 1, "B")
	s = SelectAnswer(s, 99, "Z")
	if got := s.Answers[1]; got != "B" {
		t.Fatalf("expected upsert to B, got %q", got)
	}
	if _, ok := s.Answers[99]; ok {
		t.Fatalf("stale id must not enter the answer map")
	}
	for id := range s.Answers {
		if !s.hasQuestion(id) {
			t.Fatalf("answer map holds unknown id %d", id)
		}
	}
}

func TestAnswerMapSubsetAcrossListChanges(t *testing.T) {
	s := Start(threeQuestions(), false)
	s = SelectAnswer(s, 1, "A")
	s = SelectAnswer(s, 2, "C")

	replacement := []question.Question{{ID: 10, Prompt: "R1", Options: question.OptionList{"X"}, SetID: 4}}
	s = Start(replacement, false)
	s = SelectAnswer(s, 1, "A")
	s = SelectAnswer(s, 10, "X")
	if len(s.Answers) != 1 {
		t.Fatalf("expected only the known id, got %v", s.Answers)
	}
	if s.Answers[10] != "X" {
		t.Fatalf("expected answer for id 10")
	}
}

func TestNavigationClampsAndPreservesAnswers(t *testing.T) {
	s := Start(threeQuestions(), false)
	s = SelectAnswer(s, 1, "A")

	s = Previous(s)
	if s.Index != 0 {
		t.Fatalf("previous below zero should clamp, got %d", s.Index)
	}
	s = JumpTo(s, 99)
	if s.Index != 2 {
		t.Fatalf("jump past the end should clamp, got %d", s.Index)
	}
	s = Next(s)
	if s.Index != 2 {
		t.Fatalf("next past the end should clamp, got %d", s.Index)
	}
	s = JumpTo(s, -5)
	if s.Index != 0 {
		t.Fatalf("negative jump should clamp, got %d", s.Index)
	}
	if s.Answers[1] != "A" {
		t.Fatalf("navigation must not touch answers")
	}
}

func TestSubmitLifecycle(t *testing.T) {
	s := Start(threeQuestions(), false)
	for _, pair := range []struct {
		id     int
		answer string
	}{{1, "A"}, {2, "C"}, {3, "E"}} {
		s = SelectAnswer(s, pair.id, pair.answer)
	}
	if got := ProgressPercent(s); got != 100 {
		t.Fatalf("expected 100%%, got %v", got)
	}

	s = BeginSubmit(s)
	if s.Phase != PhaseSubmitting {
		t.Fatalf("expected submitting, got %v", s.Phase)
	}

	result := question.QuizResult{Score: 2, Total: 3}
	s = CompleteQuiz(s, result)
	if s.Phase != PhaseCompleted {
		t.Fatalf("expected completed, got %v", s.Phase)
	}
	if s.Result == nil || s.Result.Score != 2 {
		t.Fatalf("expected the server result to be held verbatim, got %+v", s.Result)
	}

	s = Reset(s)
	if s.Phase != PhaseIdle || s.Result != nil || len(s.Questions) != 0 {
		t.Fatalf("expected idle after reset, got %+v", s)
	}
}

func TestFailSubmitFallsBackWithStateIntact(t *testing.T) {
	s := Start(threeQuestions(), false)
	s = SelectAnswer(s, 1, "A")
	s = JumpTo(s, 1)
	s = Tick(s)
	s = BeginSubmit(s)
	s = FailSubmit(s, "network down")
	if s.Phase != PhaseInProgress {
		t.Fatalf("expected fallback to in-progress, got %v", s.Phase)
	}
	if s.SubmitError != "network down" {
		t.Fatalf("expected surfaced error, got %q", s.SubmitError)
	}
	if s.Answers[1] != "A" || s.Index != 1 || s.ElapsedSeconds != 1 {
		t.Fatalf("submission failure must not lose state: %+v", s)
	}
	// A retry is allowed immediately.
	s = BeginSubmit(s)
	if s.Phase != PhaseSubmitting || s.SubmitError != "" {
		t.Fatalf("expected a clean retry, got %+v", s)
	}
}

func TestEmptySubmissionIsPermitted(t *testing.T) {
	s := Start(threeQuestions(), false)
	if got := ProgressPercent(s); got != 0 {
		t.Fatalf("expected 0%% before answering, got %v", got)
	}
	s = BeginSubmit(s)
	if s.Phase != PhaseSubmitting {
		t.Fatalf("empty answer map must still submit, got %v", s.Phase)
	}
	if pairs := AnswerPairs(s); len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %v", pairs)
	}
}

func TestProgressNeverFullUntilAllAnswered(t *testing.T) {
	s := Start(threeQuestions(), false)
	s = SelectAnswer(s, 1, "A")
	s = SelectAnswer(s, 2, "C")
	if got := ProgressPercent(s); got >= 100 {
		t.Fatalf("progress claimed %v%% with one question unanswered", got)
	}
	if got := AnsweredCount(s); got != 2 {
		t.Fatalf("expected 2 answered, got %d", got)
	}
}

func TestTickOnlyWhileActive(t *testing.T) {
	s := Start(threeQuestions(), false)
	s = Tick(s)
	s = BeginSubmit(s)
	s = Tick(s)
	s = CompleteQuiz(s, question.QuizResult{})
	s = Tick(s)
	if s.ElapsedSeconds != 2 {
		t.Fatalf("expected 2 elapsed seconds, got %d", s.ElapsedSeconds)
	}
	idle := Start(nil, false)
	if Tick(idle).ElapsedSeconds != 0 {
		t.Fatalf("idle session must not accrue time")
	}
}

func TestAnswerPairsSortedByQuestionID(t *testing.T) {
	s := Start(threeQuestions(), false)
	s = SelectAnswer(s, 3, "E")
	s = SelectAnswer(s, 1, "A")
	pairs := AnswerPairs(s)
	if len(pairs) != 2 || pairs[0].QuestionID != 1 || pairs[1].QuestionID != 3 {
		t.Fatalf("expected id-ordered pairs, got %v", pairs)
	}
}

func TestSetIDFromLoadedQuestions(t *testing.T) {
	s := Start(threeQuestions(), false)
	if got := SetID(s); got != 9 {
		t.Fatalf("expected set 9, got %d", got)
	}
	if got := SetID(Start(nil, false)); got != 0 {
		t.Fatalf("expected zero set id when idle, got %d", got)
	}
}
