package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizdeck/internal/api"
)

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppFromWiresStack(t *testing.T) {
	path := writeTestConfig(t, "base_url: http://localhost:5001\n")

	app, err := loadAppFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Client == nil || app.Sets == nil || app.Tracker == nil || app.Session == nil {
		t.Fatal("expected a fully wired app")
	}
	if app.Config.BaseURL != "http://localhost:5001" {
		t.Fatalf("unexpected base url %q", app.Config.BaseURL)
	}
	want := filepath.Join(filepath.Dir(path), "history.duckdb")
	if app.HistoryPath != want {
		t.Fatalf("expected history at %q, got %q", want, app.HistoryPath)
	}
}

func TestLoadAppFromHistoryOff(t *testing.T) {
	path := writeTestConfig(t, "base_url: http://localhost:5001\nhistory_db: \"off\"\n")

	app, err := loadAppFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.HistoryPath != "" {
		t.Fatalf("expected history disabled, got %q", app.HistoryPath)
	}
	if _, err := app.OpenHistory(); err == nil {
		t.Fatal("expected OpenHistory to fail when disabled")
	}
}

func TestFailureMapsUnauthorized(t *testing.T) {
	var err strings.Builder
	code := failure(&err, &api.RemoteError{Status: 401, Message: "expired"})
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "quizdeck login") {
		t.Fatalf("expected login hint, got %q", err.String())
	}
}
