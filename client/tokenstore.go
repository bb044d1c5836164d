package client

import (
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the fixed name the bearer token is stored under, the
// durable-storage key of the dashboard session.
const tokenFileName = "portfolio_token"

// TokenStore persists the bearer token across sessions in a file under the
// user's config directory.
type TokenStore struct {
	path string
}

// NewTokenStore places the token file in dir, defaulting to
// <user config dir>/portfolio when dir is empty.
func NewTokenStore(dir string) (*TokenStore, error) {
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(configDir, "portfolio")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &TokenStore{path: filepath.Join(dir, tokenFileName)}, nil
}

// Load returns the stored token, or "" when none is stored.
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

func (s *TokenStore) Save(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the stored token. Clearing an absent token is not an
// error.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
