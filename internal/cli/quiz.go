package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"quizdeck/internal/history"
	"quizdeck/internal/quiz"
	quizui "quizdeck/internal/ui/quiz"
	setsui "quizdeck/internal/ui/sets"
)

// runQuiz builds the handler for the quiz command.
func runQuiz(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		setsFlag := flags.String("sets", "", "Comma-separated question set ids")
		questions := flags.Int("questions", 0, "Upper bound on quiz length (0 uses the config default)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "quiz needs an interactive terminal")
			return ExitError
		}

		app, err := loadApp()
		if err != nil {
			return failure(stderr, err)
		}
		ctx := context.Background()

		setIDs, code := chooseSets(ctx, app, *setsFlag, stdout, stderr)
		if code != ExitOK {
			return code
		}

		perQuiz := *questions
		if perQuiz <= 0 {
			perQuiz = app.Config.QuestionsPerQuiz
		}
		loaded, err := app.Client.StartQuiz(ctx, setIDs, perQuiz)
		if err != nil {
			return failure(stderr, err)
		}
		if len(loaded) == 0 {
			fmt.Fprintln(stdout, "No questions available for the selected sets.")
			return ExitOK
		}

		session := quiz.Start(loaded, false)
		model := quizui.NewModel(session, quizui.Options{
			Submit: func(s quiz.Session) (quizui.SubmitOutcome, error) {
				result, err := app.Client.SubmitQuiz(ctx, quiz.SetID(s), quiz.AnswerPairs(s))
				if err != nil {
					return quizui.SubmitOutcome{}, err
				}
				return quizui.SubmitOutcome{Quiz: &result}, nil
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
		if done.Result != nil {
			app.RecordAttempt(history.Attempt{
				Kind:           history.KindQuiz,
				Score:          done.Result.Score,
				Total:          done.Result.Total,
				SetIDs:         setIDs,
				ElapsedSeconds: done.ElapsedSeconds,
			}, stderr)
		}
		if outcome.WantReview() {
			return runReviewSession(ctx, app, stdout, stderr)
		}
		return ExitOK
	}
}

// chooseSets resolves the sets to quiz on, from the flag or the picker.
func chooseSets(ctx context.Context, app *App, setsFlag string, stdout, stderr io.Writer) ([]int, int) {
	if strings.TrimSpace(setsFlag) != "" {
		ids, err := parseSetIDs(setsFlag)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return nil, ExitUsage
		}
		return ids, ExitOK
	}

	available, err := app.Sets.Sets(ctx)
	if err != nil {
		return nil, failure(stderr, err)
	}
	if len(available) == 0 {
		fmt.Fprintln(stdout, "No question sets yet. Upload a file with \"quizdeck upload\".")
		return nil, ExitError
	}

	picker := setsui.NewModel(available, setsui.Options{})
	final, err := tea.NewProgram(picker, tea.WithOutput(stdout)).Run()
	if err != nil {
		return nil, failure(stderr, err)
	}
	chosen, ok := final.(setsui.Model)
	if !ok || !chosen.Confirmed() {
		fmt.Fprintln(stdout, "Cancelled.")
		return nil, ExitError
	}
	ids := chosen.Selected()
	if len(ids) == 0 {
		fmt.Fprintln(stderr, "select at least one question set")
		return nil, ExitUsage
	}
	return ids, ExitOK
}

// parseSetIDs parses a comma-separated id list.
func parseSetIDs(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid set id: %s", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no set ids in %q", raw)
	}
	return ids, nil
}
