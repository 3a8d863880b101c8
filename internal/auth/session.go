// Package auth holds the client's authenticated identity: the current
// user and the bearer token, swapped together so consumers never see
// one without the other.
package auth

import (
	"sync"

	"quizdeck/internal/api"
)

// Session is the process-wide auth state. It implements api.TokenSource.
type Session struct {
	mu    sync.RWMutex
	store *TokenStore
	token string
	user  *api.User
}

// NewSession loads any persisted token so the session survives reloads.
// The user record is not persisted; it is refetched on demand.
func NewSession(store *TokenStore) (*Session, error) {
	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{store: store, token: token}, nil
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LoggedIn reports whether a token is held.
func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// User returns the current user record if one is known.
func (s *Session) User() (api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return api.User{}, false
	}
	return *s.user, true
}

// SetCredentials persists the token and installs user and token in one
// step. If persistence fails the in-memory state is left untouched.
func (s *Session) SetCredentials(user api.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	s.user = &user
	return nil
}

// SetUser installs the user record after a current-user fetch.
func (s *Session) SetUser(user api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// Logout clears the persisted token, the in-memory token and the user
// in one step. A consumer never observes a cleared token with a stale
// user or vice versa.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.token = ""
	s.user = nil
	return nil
}
