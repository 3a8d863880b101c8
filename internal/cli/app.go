package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"quizdeck/internal/api"
	"quizdeck/internal/auth"
	"quizdeck/internal/config"
	"quizdeck/internal/history"
	"quizdeck/internal/registry"
	"quizdeck/internal/upload"
)

// App bundles the wired client components behind every command.
type App struct {
	Config  config.Config
	Session *auth.Session
	Client  *api.Client
	Sets    *registry.Cache
	Tracker *upload.Tracker
	// HistoryPath is resolved lazily; opening the database only when a
	// command needs it keeps quiz flows alive when the store is broken.
	HistoryPath string
}

// loadApp locates the config and wires the client stack.
func loadApp() (*App, error) {
	path, err := config.FindConfigPath("")
	if err != nil {
		return nil, err
	}
	return loadAppFrom(path)
}

// loadAppFrom wires the client stack against an explicit config path.
func loadAppFrom(path string) (*App, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	session, err := auth.NewSession(auth.NewTokenStore(filepath.Dir(path)))
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	client := api.NewWithTimeout(cfg.BaseURL, session, cfg.Timeout())
	sets := registry.New(client)
	app := &App{
		Config:  cfg,
		Session: session,
		Client:  client,
		Sets:    sets,
		Tracker: upload.New(client, sets, upload.Options{}),
	}
	if cfg.HistoryEnabled() {
		app.HistoryPath = cfg.HistoryDB
	}
	return app, nil
}

// OpenHistory opens the attempt store, or reports that history is off.
func (a *App) OpenHistory() (*history.Store, error) {
	if a.HistoryPath == "" {
		return nil, errors.New("history is disabled in the config")
	}
	return history.Open(a.HistoryPath)
}

// RecordAttempt writes an attempt, reporting problems without failing
// the surrounding flow: a broken local store must never eat a result.
func (a *App) RecordAttempt(attempt history.Attempt, stderr io.Writer) {
	if a.HistoryPath == "" {
		return
	}
	store, err := history.Open(a.HistoryPath)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Record(context.Background(), attempt); err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}
}

// failure prints an error the way every command reports one, mapping
// authorization failures to the login hint.
func failure(stderr io.Writer, err error) int {
	if errors.Is(err, api.ErrUnauthorized) {
		fmt.Fprintln(stderr, "Not logged in or session expired. Run \"quizdeck login\".")
		return ExitError
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitError
}
