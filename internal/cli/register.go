package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
)

// runRegister builds the handler for the register command.
func runRegister(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		username := flags.String("username", "", "Account username")
		email := flags.String("email", "", "Account email address")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if strings.TrimSpace(*username) == "" || strings.TrimSpace(*email) == "" {
			fmt.Fprintln(stderr, "--username and --email are required")
			return ExitUsage
		}

		password, err := promptPassword("Password", stdout)
		if err != nil {
			return failure(stderr, err)
		}
		if password == "" {
			fmt.Fprintln(stderr, "password must not be empty")
			return ExitUsage
		}

		app, err := loadApp()
		if err != nil {
			return failure(stderr, err)
		}
		resp, err := app.Client.Register(context.Background(), *username, *email, password)
		if err != nil {
			return failure(stderr, err)
		}
		if err := app.Session.SetCredentials(resp.User, resp.AccessToken); err != nil {
			return failure(stderr, err)
		}
		fmt.Fprintf(stdout, "Registered and logged in as %s\n", resp.User.Username)
		return ExitOK
	}
}
