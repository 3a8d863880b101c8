package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		limit := flags.Int("limit", 20, "Number of attempts to show")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if *limit <= 0 {
			fmt.Fprintln(stderr, "--limit must be positive")
			return ExitUsage
		}

		app, err := loadApp()
		if err != nil {
			return failure(stderr, err)
		}
		store, err := app.OpenHistory()
		if err != nil {
			return failure(stderr, err)
		}
		defer store.Close()

		attempts, err := store.Recent(context.Background(), *limit)
		if err != nil {
			return failure(stderr, err)
		}
		if len(attempts) == 0 {
			fmt.Fprintln(stdout, "No attempts recorded yet.")
			return ExitOK
		}

		fmt.Fprintf(stdout, "%-20s %-8s %-8s %-8s %s\n", "Taken", "Kind", "Score", "Elapsed", "Sets")
		for _, attempt := range attempts {
			sets := "-"
			if len(attempt.SetIDs) > 0 {
				parts := make([]string, len(attempt.SetIDs))
				for i, id := range attempt.SetIDs {
					parts[i] = strconv.Itoa(id)
				}
				sets = strings.Join(parts, ",")
			}
			fmt.Fprintf(stdout, "%-20s %-8s %-8s %-8s %s\n",
				attempt.TakenAt.Format("2006-01-02 15:04"),
				attempt.Kind,
				fmt.Sprintf("%d/%d", attempt.Score, attempt.Total),
				fmt.Sprintf("%ds", attempt.ElapsedSeconds),
				sets)
		}
		return ExitOK
	}
}
