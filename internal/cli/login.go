package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
)

// runLogin builds the handler for the login command.
func runLogin(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		username := flags.String("username", "", "Account username")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if strings.TrimSpace(*username) == "" {
			fmt.Fprintln(stderr, "--username is required")
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
		resp, err := app.Client.Login(context.Background(), *username, password)
		if err != nil {
			return failure(stderr, err)
		}
		if err := app.Session.SetCredentials(resp.User, resp.AccessToken); err != nil {
			return failure(stderr, err)
		}
		fmt.Fprintf(stdout, "Logged in as %s\n", resp.User.Username)
		return ExitOK
	}
}
