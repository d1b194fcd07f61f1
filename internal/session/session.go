package session

import (
	"fmt"
	"os"
	"time"

	"github.com/bwx-cli/bwx/internal/config"
	kerrors "github.com/bwx-cli/bwx/internal/errors"
)

// EnvVar is the environment variable that bypasses the cache entirely.
// Useful for CI and scripts that manage their own unlock.
const EnvVar = "BWX_SESSION"

// Session is a cached vault session token with its creation time.
type Session struct {
	Token     string    `toml:"token" json:"token"`
	CreatedAt time.Time `toml:"created_at" json:"created_at"`
}

// Expired reports whether the session is older than ttl. A zero ttl means
// sessions never expire. A zero or future CreatedAt is treated as expired
// rather than trusted.
func (s Session) Expired(ttl time.Duration, now time.Time) bool {
	if s.CreatedAt.IsZero() {
		return true
	}
	age := now.Sub(s.CreatedAt)
	if age < 0 {
		return true
	}
	if ttl == 0 {
		return false
	}
	return age > ttl
}

// Age returns how long ago the session was created.
func (s Session) Age(now time.Time) time.Duration {
	if s.CreatedAt.IsZero() {
		return 0
	}
	return now.Sub(s.CreatedAt)
}

// Store persists a session token between bwx invocations.
type Store interface {
	// Load returns the cached session, or ErrSessionNotFound.
	Load() (*Session, error)

	// Save caches the session, replacing any previous one.
	Save(s Session) error

	// Clear removes the cached session. Clearing an empty store is not an error.
	Clear() error

	// Name identifies the backend for status output.
	Name() string
}

// NewStore returns the store for the configured backend.
func NewStore(cfg *config.Config) (Store, error) {
	switch cfg.Session.Backend {
	case "file":
		return &fileStore{path: config.SessionPath()}, nil
	case "keyring":
		return newKeyringStore()
	default:
		return nil, fmt.Errorf("%w: %q", kerrors.ErrUnknownBackend, cfg.Session.Backend)
	}
}

// Resolve returns a usable session token. Priority order:
//
//  1. the BWX_SESSION environment variable
//  2. the cached session, if present and within ttl
//
// An expired cache is cleared and reported as ErrSessionExpired so the
// caller can tell the user to unlock again.
func Resolve(store Store, ttl time.Duration, now time.Time) (string, error) {
	if token := os.Getenv(EnvVar); token != "" {
		return token, nil
	}

	cached, err := store.Load()
	if err != nil {
		return "", err
	}

	if cached.Expired(ttl, now) {
		// Drop the stale token so the next status call reports "absent".
		_ = store.Clear()
		return "", kerrors.ErrSessionExpired
	}

	return cached.Token, nil
}
