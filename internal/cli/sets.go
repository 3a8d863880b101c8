package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizdeck/internal/question"
)

// runSets builds the handler for the sets command and its subcommands.
func runSets(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) == 0 {
			args = []string{"list"}
		}

		switch args[0] {
		case "list":
			return setsList(stdout, stderr)
		case "rename":
			return setsRename(args[1:], stdout, stderr)
		case "delete":
			return setsDelete(args[1:], stdout, stderr)
		default:
			fmt.Fprintf(stderr, "Unknown sets subcommand: %s\n", args[0])
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
	}
}

func setsList(stdout, stderr io.Writer) int {
	app, err := loadApp()
	if err != nil {
		return failure(stderr, err)
	}
	sets, err := app.Sets.Sets(context.Background())
	if err != nil {
		return failure(stderr, err)
	}
	printSets(stdout, sets)
	return ExitOK
}

func setsRename(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "usage: quizdeck sets rename <id> <new-name>")
		return ExitUsage
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "invalid set id: %s\n", args[0])
		return ExitUsage
	}
	name := strings.TrimSpace(args[1])
	if name == "" {
		fmt.Fprintln(stderr, "new name must not be empty")
		return ExitUsage
	}

	app, err := loadApp()
	if err != nil {
		return failure(stderr, err)
	}
	ctx := context.Background()
	if err := app.Sets.Rename(ctx, id, name); err != nil {
		return failure(stderr, err)
	}
	// The cache was invalidated by the rename; this refetch shows the
	// server's view of the list, renamed set included.
	sets, err := app.Sets.Sets(ctx)
	if err != nil {
		return failure(stderr, err)
	}
	fmt.Fprintf(stdout, "Renamed set %d to %q\n", id, name)
	printSets(stdout, sets)
	return ExitOK
}

func setsDelete(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: quizdeck sets delete <id>")
		return ExitUsage
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "invalid set id: %s\n", args[0])
		return ExitUsage
	}

	app, err := loadApp()
	if err != nil {
		return failure(stderr, err)
	}
	if err := app.Sets.Delete(context.Background(), id); err != nil {
		return failure(stderr, err)
	}
	fmt.Fprintf(stdout, "Deleted set %d\n", id)
	return ExitOK
}

// printSets renders the set list as an aligned table.
func printSets(w io.Writer, sets []question.Set) {
	if len(sets) == 0 {
		fmt.Fprintln(w, "No question sets yet. Upload a file with \"quizdeck upload\".")
		return
	}
	fmt.Fprintf(w, "%-6s %-30s %-10s %s\n", "ID", "Name", "Questions", "Created")
	for _, set := range sets {
		fmt.Fprintf(w, "%-6d %-30s %-10d %s\n", set.ID, set.Name, set.QuestionCount, set.CreatedAt)
	}
}
