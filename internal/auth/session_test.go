package auth

import (
	"os"
	"path/filepath"
	"testing"

	"quizdeck/internal/api"
)

func TestTokenStoreRoundTrip(t *testing.T) {
	store := NewTokenStore(t.TempDir())

	token, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token before save, got %q", token)
	}

	if err := store.Save("tok-abc"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err = store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-abc" {
		t.Fatalf("expected tok-abc, got %q", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear on missing file: %v", err)
	}
	token, err = store.Load()
	if err != nil || token != "" {
		t.Fatalf("expected empty token after clear, got %q (%v)", token, err)
	}
}

func TestTokenFilePermissions(t *testing.T) {
	dir := t.TempDir()
	store := NewTokenStore(dir)
	if err := store.Save("secret"); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, "token"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Fatalf("expected 0600 token file, got %o", got)
	}
}

func TestSessionSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	store := NewTokenStore(dir)

	first, err := NewSession(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := first.SetCredentials(api.User{ID: 1, Username: "ada"}, "tok-1"); err != nil {
		t.Fatalf("set credentials: %v", err)
	}

	second, err := NewSession(NewTokenStore(dir))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Token() != "tok-1" {
		t.Fatalf("expected the persisted token, got %q", second.Token())
	}
	if !second.LoggedIn() {
		t.Fatalf("expected logged-in session")
	}
	if _, ok := second.User(); ok {
		t.Fatalf("user record must not persist across reloads")
	}
}

func TestLogoutClearsTokenAndUserTogether(t *testing.T) {
	store := NewTokenStore(t.TempDir())
	session, err := NewSession(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := session.SetCredentials(api.User{ID: 2, Username: "bo"}, "tok-2"); err != nil {
		t.Fatalf("set credentials: %v", err)
	}
	if err := session.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if session.Token() != "" {
		t.Fatalf("expected cleared token")
	}
	if _, ok := session.User(); ok {
		t.Fatalf("expected cleared user")
	}
	token, err := store.Load()
	if err != nil || token != "" {
		t.Fatalf("expected cleared persisted token, got %q (%v)", token, err)
	}
}
