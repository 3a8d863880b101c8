package cli

import (
	"context"
	"fmt"
	"io"
)

// runWhoami builds the handler for the whoami command.
func runWhoami(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		app, err := loadApp()
		if err != nil {
			return failure(stderr, err)
		}
		user, err := app.Client.CurrentUser(context.Background())
		if err != nil {
			return failure(stderr, err)
		}
		app.Session.SetUser(user)
		fmt.Fprintf(stdout, "%s <%s>\n", user.Username, user.Email)
		return ExitOK
	}
}

// runLogout builds the handler for the logout command.
func runLogout(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		app, err := loadApp()
		if err != nil {
			return failure(stderr, err)
		}
		if err := app.Session.Logout(); err != nil {
			return failure(stderr, err)
		}
		fmt.Fprintln(stdout, "Logged out.")
		return ExitOK
	}
}
