package session

import (
	"fmt"
	"os"

	"github.com/bwx-cli/bwx/internal/config"
	kerrors "github.com/bwx-cli/bwx/internal/errors"
)

// fileStore caches the session as a 0600 TOML file in the state directory.
type fileStore struct {
	path string
}

func (f *fileStore) Load() (*Session, error) {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		return nil, kerrors.ErrSessionNotFound
	}

	var s Session
	if err := config.LoadTOML(f.path, &s); err != nil {
		// A corrupt cache is treated as absent; the next Save overwrites it.
		return nil, kerrors.ErrSessionNotFound
	}

	if s.Token == "" {
		return nil, kerrors.ErrSessionNotFound
	}

	return &s, nil
}

func (f *fileStore) Save(s Session) error {
	if err := config.SaveTOML(f.path, s, 0600); err != nil {
		return fmt.Errorf("failed to save session cache: %w", err)
	}
	return nil
}

func (f *fileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session cache: %w", err)
	}
	return nil
}

func (f *fileStore) Name() string {
	return "file"
}
