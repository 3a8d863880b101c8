package quizui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// View renders the session. The result view fully replaces the
// question view once a result is held; the two are never shown together.
func (m Model) View() string {
	switch m.session.Phase {
	case quiz.PhaseIdle:
		return "No questions available.\n\nPress q to go back.\n"
	case quiz.PhaseCompleted:
		return m.viewResult()
	default:
		return m.viewQuestion()
	}
}

// viewQuestion renders the active question with options and progress.
func (m Model) viewQuestion() string {
	current, ok := quiz.Current(m.session)
	if !ok {
		return "No questions available.\n"
	}

	header := m.style(titleStyle).Render(m.headerLine())
	prompt := current.Prompt
	options := m.renderOptions(current)
	bar := m.bar.ViewAs(quiz.ProgressPercent(m.session) / 100)
	status := fmt.Sprintf("%d/%d answered", quiz.AnsweredCount(m.session), len(m.session.Questions))

	lines := []string{header, "", prompt, "", options, "", bar + "  " + m.style(faintStyle).Render(status)}
	if m.session.Phase == quiz.PhaseSubmitting {
		lines = append(lines, "", "Submitting...")
	}
	if m.session.SubmitError != "" {
		lines = append(lines, "", m.style(errorStyle).Render(m.session.SubmitError))
	}
	lines = append(lines, "", m.style(faintStyle).Render(questionHelp))
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

const questionHelp = "←/→ question · ↑/↓ option · enter select · s submit · q quit"

// headerLine shows position, mode and the cosmetic timer.
func (m Model) headerLine() string {
	mode := "Quiz"
	if m.session.Review {
		mode = "Review"
	}
	return fmt.Sprintf("%s · question %d of %d · %s",
		mode, m.session.Index+1, len(m.session.Questions), formatElapsed(m.session.ElapsedSeconds))
}

// renderOptions lists options with the cursor and the current answer.
func (m Model) renderOptions(current question.Question) string {
	chosen := m.session.Answers[current.ID]
	var b strings.Builder
	for i, option := range current.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		marker := "[ ]"
		if option == chosen && chosen != "" {
			marker = "[x]"
		}
		fmt.Fprintf(&b, "%s%s %d. %s\n", cursor, marker, i+1, option)
	}
	return strings.TrimRight(b.String(), "\n")
}

// viewResult renders the graded outcome.
func (m Model) viewResult() string {
	score, total, records, hasIncorrect := resultSummary(m.session)
	header := m.style(titleStyle).Render(fmt.Sprintf("Result: %d/%d correct · took %s",
		score, total, formatElapsed(m.session.ElapsedSeconds)))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for i, record := range records {
		mark := m.style(correctStyle).Render("✓")
		if !record.IsCorrect {
			mark = m.style(wrongStyle).Render("✗")
		}
		fmt.Fprintf(&b, "\n%s %d. %s\n", mark, i+1, record.Question)
		fmt.Fprintf(&b, "   your answer: %s\n", orDash(record.UserAnswer))
		if !record.IsCorrect {
			fmt.Fprintf(&b, "   correct answer: %s\n", record.CorrectAnswer)
		}
	}
	b.WriteString("\n")
	if hasIncorrect {
		b.WriteString(m.style(faintStyle).Render("r review incorrect · q back"))
	} else {
		b.WriteString(m.style(faintStyle).Render("q back"))
	}
	b.WriteString("\n")
	return b.String()
}

// resultSummary flattens either result shape for display.
func resultSummary(s quiz.Session) (score, total int, records []question.AnswerRecord, hasIncorrect bool) {
	if s.Result != nil {
		return s.Result.Score, s.Result.Total, s.Result.Results, s.Result.HasIncorrect
	}
	if s.ReviewOutcome != nil {
		return s.ReviewOutcome.Score, s.ReviewOutcome.Total, s.ReviewOutcome.Results, s.ReviewOutcome.HasIncorrect
	}
	return 0, 0, nil, false
}

// style applies a style unless colors are disabled.
func (m Model) style(s lipgloss.Style) lipgloss.Style {
	if m.noColor {
		return lipgloss.NewStyle()
	}
	return s
}

// formatElapsed renders seconds as mm:ss.
func formatElapsed(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// orDash substitutes a dash for an empty answer.
func orDash(value string) string {
	if value == "" {
		return "(no answer)"
	}
	return value
}
