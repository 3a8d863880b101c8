// Package quizui renders an interactive quiz session with Bubble Tea.
package quizui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
)

// SubmitOutcome is the graded result of a submission, quiz or review.
type SubmitOutcome struct {
	Quiz   *question.QuizResult
	Review *question.ReviewResult
}

// SubmitFunc sends the session's answers for grading.
type SubmitFunc func(s quiz.Session) (SubmitOutcome, error)

// Options configures the quiz UI model.
type Options struct {
	Submit  SubmitFunc
	NoColor bool
}

// Model drives one quiz session in the terminal.
type Model struct {
	session    quiz.Session
	submit     SubmitFunc
	bar        progress.Model
	cursor     int
	width      int
	noColor    bool
	wantReview bool
}

// NewModel constructs a quiz UI over an already-started session.
func NewModel(session quiz.Session, opts Options) Model {
	bar := progress.New(progress.WithDefaultGradient())
	if opts.NoColor {
		bar = progress.New(progress.WithSolidFill("255"))
	}
	return Model{
		session: session,
		submit:  opts.Submit,
		bar:     bar,
		noColor: opts.NoColor,
	}
}

// Session exposes the final session state after the program exits.
func (m Model) Session() quiz.Session {
	return m.session
}

// WantReview reports that the user chose to pivot into review mode.
func (m Model) WantReview() bool {
	return m.wantReview
}

// tickMsg carries the once-per-second clock tick.
type tickMsg time.Time

// submitDoneMsg carries a successful grading response.
type submitDoneMsg struct {
	outcome SubmitOutcome
}

// submitFailedMsg carries a failed submission.
type submitFailedMsg struct {
	err error
}

// Init starts the elapsed-time ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// tick emits one tickMsg after a second.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update applies key presses, clock ticks and submission results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.bar.Width = min(typed.Width-4, 60)
		return m, nil
	case tickMsg:
		m.session = quiz.Tick(m.session)
		if m.session.Phase == quiz.PhaseInProgress || m.session.Phase == quiz.PhaseSubmitting {
			return m, tick()
		}
		// Terminal phase: let the ticker lapse.
		return m, nil
	case submitDoneMsg:
		if typed.outcome.Quiz != nil {
			m.session = quiz.CompleteQuiz(m.session, *typed.outcome.Quiz)
		} else if typed.outcome.Review != nil {
			m.session = quiz.CompleteReview(m.session, *typed.outcome.Review)
		}
		return m, nil
	case submitFailedMsg:
		m.session = quiz.FailSubmit(m.session, typed.err.Error())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey routes key presses by session phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.session.Phase {
	case quiz.PhaseCompleted:
		switch key {
		case "q", "enter", "esc":
			return m, tea.Quit
		case "r":
			if resultHasIncorrect(m.session) {
				m.wantReview = true
				return m, tea.Quit
			}
		}
		return m, nil
	case quiz.PhaseSubmitting:
		// A grading request is in flight; only quitting is allowed.
		if key == "q" {
			return m, tea.Quit
		}
		return m, nil
	case quiz.PhaseInProgress:
		return m.handleQuestionKey(key)
	}
	if key == "q" || key == "esc" {
		return m, tea.Quit
	}
	return m, nil
}

// handleQuestionKey handles navigation, answering and submission.
func (m Model) handleQuestionKey(key string) (tea.Model, tea.Cmd) {
	current, ok := quiz.Current(m.session)
	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		m.session = quiz.Previous(m.session)
		m.cursor = 0
		return m, nil
	case "right", "l":
		m.session = quiz.Next(m.session)
		m.cursor = 0
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if ok && m.cursor < len(current.Options)-1 {
			m.cursor++
		}
		return m, nil
	case "enter", " ":
		if ok && m.cursor < len(current.Options) {
			m.session = quiz.SelectAnswer(m.session, current.ID, current.Options[m.cursor])
		}
		return m, nil
	case "s":
		m.session = quiz.BeginSubmit(m.session)
		if m.session.Phase != quiz.PhaseSubmitting {
			return m, nil
		}
		return m, submitCmd(m.submit, m.session)
	}
	if index, isDigit := digitIndex(key); isDigit && ok && index < len(current.Options) {
		m.session = quiz.SelectAnswer(m.session, current.ID, current.Options[index])
		m.cursor = index
	}
	return m, nil
}

// submitCmd runs the grading call off the UI loop.
func submitCmd(submit SubmitFunc, s quiz.Session) tea.Cmd {
	return func() tea.Msg {
		outcome, err := submit(s)
		if err != nil {
			return submitFailedMsg{err: err}
		}
		return submitDoneMsg{outcome: outcome}
	}
}

// digitIndex maps "1".."9" onto option indices.
func digitIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

// resultHasIncorrect reports whether the held result offers a review.
func resultHasIncorrect(s quiz.Session) bool {
	if s.Result != nil {
		return s.Result.HasIncorrect
	}
	if s.ReviewOutcome != nil {
		return s.ReviewOutcome.HasIncorrect
	}
	return false
}
