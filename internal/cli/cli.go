// Package cli implements the quizdeck command line interface.
package cli

import (
	"fmt"
	"io"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one quizdeck subcommand.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches to a subcommand and returns its exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizdeck <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quizdeck <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold a .quizdeck/config.yml", []string{
		"quizdeck init --server <url>",
	}, runInit),
	command("register", "Create an account", []string{
		"quizdeck register --username <name> --email <address>",
	}, runRegister),
	command("login", "Log in and persist a session token", []string{
		"quizdeck login --username <name>",
	}, runLogin),
	command("whoami", "Show the logged-in user", []string{
		"quizdeck whoami",
	}, runWhoami),
	command("logout", "Clear the persisted session", []string{
		"quizdeck logout",
	}, runLogout),
	command("sets", "List, rename, or delete question sets", []string{
		"quizdeck sets list",
		"quizdeck sets rename <id> <new-name>",
		"quizdeck sets delete <id>",
	}, runSets),
	command("upload", "Upload a lecture file and track generation", []string{
		"quizdeck upload --file <path> [--name <set-name>] [--questions <n>]",
	}, runUpload),
	command("quiz", "Take a quiz from selected sets", []string{
		"quizdeck quiz [--sets <id,id,...>] [--questions <n>]",
	}, runQuiz),
	command("review", "Retake previously missed questions", []string{
		"quizdeck review",
	}, runReview),
	command("history", "Show recent local attempts", []string{
		"quizdeck history [--limit <n>]",
	}, runHistory),
}
