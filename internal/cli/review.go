package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizdeck/internal/history"
	"quizdeck/internal/quiz"
	quizui "quizdeck/internal/ui/quiz"
)

// runReview builds the handler for the review command.
func runReview(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "review needs an interactive terminal")
			return ExitError
		}
		app, err := loadApp()
		if err != nil {
			return failure(stderr, err)
		}
		return runReviewSession(context.Background(), app, stdout, stderr)
	}
}

// runReviewSession fetches missed questions and drives a review round.
// The quiz command reuses it when the user pivots from a result screen.
func runReviewSession(ctx context.Context, app *App, stdout, stderr io.Writer) int {
	loaded, err := app.Client.StartReview(ctx)
	if err != nil {
		return failure(stderr, err)
	}
	if len(loaded) == 0 {
		fmt.Fprintln(stdout, "No incorrect questions to review. Nice work.")
		return ExitOK
	}

	session := quiz.Start(loaded, true)
	model := quizui.NewModel(session, quizui.Options{
		Submit: func(s quiz.Session) (quizui.SubmitOutcome, error) {
			result, err := app.Client.SubmitReview(ctx, quiz.AnswerMap(s))
			if err != nil {
				return quizui.SubmitOutcome{}, err
			}
			return quizui.SubmitOutcome{Review: &result}, nil
		},
	})
	final, err := tea.NewProgram(model, tea.WithOutput(stdout)).Run()
	if err != nil {
		return failure(stderr, err)
	}
	outcome, ok := final.(quizui.Model)
	if !ok {
		return ExitError
	}

	done := outcome.Session()
	if done.ReviewOutcome != nil {
		app.RecordAttempt(history.Attempt{
			Kind:           history.KindReview,
			Score:          done.ReviewOutcome.Score,
			Total:          done.ReviewOutcome.Total,
			ElapsedSeconds: done.ElapsedSeconds,
		}, stderr)
	}
	if outcome.WantReview() {
		return runReviewSession(ctx, app, stdout, stderr)
	}
	return ExitOK
}
