package auth

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the bearer token across runs.
type TokenStore struct {
	path string
}

// NewTokenStore places the token file inside the given directory.
func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{path: filepath.Join(dir, "token")}
}

// Load reads the persisted token. A missing file is an empty token,
// not an error.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating the directory if needed. The file is
// user-only: it is a credential.
func (s *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// Clear removes the persisted token. Already-absent is fine.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
