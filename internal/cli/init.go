package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"quizdeck/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		server := flags.String("server", "", "Backend base URL, e.g. http://localhost:5001")
		dir := flags.String("dir", "", "Directory to scaffold into (default: home directory)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if strings.TrimSpace(*server) == "" {
			fmt.Fprintln(stderr, "--server is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		root := *dir
		if root == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				fmt.Fprintf(stderr, "Error: resolve home directory: %v\n", err)
				return ExitError
			}
			root = home
		}

		path := config.ConfigPath(root)
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(stderr, "Error: %s already exists\n", path)
			return ExitError
		}
		if err := os.MkdirAll(config.ConfigDir(root), 0o700); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		contents := fmt.Sprintf("base_url: %s\nrequest_timeout: %s\nquestions_per_quiz: %d\n",
			strings.TrimRight(strings.TrimSpace(*server), "/"), config.DefaultRequestTimeout, config.DefaultQuestionsPerQuiz)
		if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		// Written config must load cleanly before we claim success.
		if _, err := config.Load(path); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitOK
	}
}
