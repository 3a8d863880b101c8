package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"quizdeck/internal/api"
	"quizdeck/internal/upload"
	uploadui "quizdeck/internal/ui/upload"
)

// runUpload builds the handler for the upload command.
func runUpload(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		file := flags.String("file", "", "Lecture or structured question file to upload")
		name := flags.String("name", "", "Name for the new question set (defaults to the file name)")
		questions := flags.Int("questions", 0, "Upper bound on generated questions (0 uses the config default)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if *file == "" {
			fmt.Fprintln(stderr, "--file is required")
			return ExitUsage
		}
		info, err := os.Stat(*file)
		if err != nil {
			fmt.Fprintf(stderr, "cannot read %s: %v\n", *file, err)
			return ExitUsage
		}
		if info.IsDir() {
			fmt.Fprintf(stderr, "%s is a directory\n", *file)
			return ExitUsage
		}

		setName := strings.TrimSpace(*name)
		if setName == "" {
			base := filepath.Base(*file)
			setName = strings.TrimSuffix(base, filepath.Ext(base))
		}
		if setName == "" {
			fmt.Fprintln(stderr, "--name must not be empty")
			return ExitUsage
		}

		app, err := loadApp()
		if err != nil {
			return failure(stderr, err)
		}
		num := *questions
		if num <= 0 {
			num = app.Config.QuestionsPerQuiz
		}

		ctx := context.Background()
		handle, immediate, err := app.Tracker.Start(ctx, api.UploadRequest{
			Path:         *file,
			SetName:      setName,
			NumQuestions: num,
		})
		if err != nil {
			return failure(stderr, err)
		}
		if immediate != nil {
			fmt.Fprintf(stdout, "Imported %d questions into %q\n", immediate.Imported, setName)
			return ExitOK
		}

		if isTerminal(stdout) {
			return trackUploadTUI(handle, stdout, stderr)
		}
		return trackUploadPlain(handle, stdout, stderr)
	}
}

// trackUploadTUI renders tracker events with the Bubble Tea spinner.
func trackUploadTUI(handle *upload.Handle, stdout, stderr io.Writer) int {
	model := uploadui.NewModel(handle, uploadui.Options{})
	program := tea.NewProgram(model, tea.WithOutput(stdout))
	final, err := program.Run()
	if err != nil {
		handle.Stop()
		return failure(stderr, err)
	}
	m, ok := final.(uploadui.Model)
	if !ok {
		return ExitError
	}
	if err := m.Err(); err != nil {
		return failure(stderr, err)
	}
	fmt.Fprintln(stdout, m.Message())
	return ExitOK
}

// trackUploadPlain consumes tracker events line by line for pipes.
func trackUploadPlain(handle *upload.Handle, stdout, stderr io.Writer) int {
	for event := range handle.Events() {
		switch event.Kind {
		case upload.EventProgress:
			fmt.Fprintf(stdout, "%3.0f%% %s\n", event.Percent, event.Message)
		case upload.EventDone:
			fmt.Fprintln(stdout, event.Message)
			return ExitOK
		case upload.EventFailed:
			return failure(stderr, event.Err)
		}
	}
	return ExitError
}
