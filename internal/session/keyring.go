package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/99designs/keyring"

	kerrors "github.com/bwx-cli/bwx/internal/errors"
)

const keyringItemKey = "session"

// keyringStore caches the session in the OS keyring (macOS Keychain,
// Windows Credential Manager, Linux Secret Service). The item payload is a
// small JSON record so the creation time travels with the token.
type keyringStore struct {
	ring keyring.Keyring
}

func newKeyringStore() (*keyringStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:              "bwx",
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open OS keyring: %w", err)
	}
	return &keyringStore{ring: ring}, nil
}

func (k *keyringStore) Load() (*Session, error) {
	item, err := k.ring.Get(keyringItemKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, kerrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session from keyring: %w", err)
	}

	var s Session
	if err := json.Unmarshal(item.Data, &s); err != nil {
		// Same stance as the file backend: corrupt means absent.
		return nil, kerrors.ErrSessionNotFound
	}

	if s.Token == "" {
		return nil, kerrors.ErrSessionNotFound
	}

	return &s, nil
}

func (k *keyringStore) Save(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	err = k.ring.Set(keyring.Item{
		Key:   keyringItemKey,
		Label: "bwx vault session",
		Data:  data,
	})
	if err != nil {
		return fmt.Errorf("failed to save session to keyring: %w", err)
	}
	return nil
}

func (k *keyringStore) Clear() error {
	err := k.ring.Remove(keyringItemKey)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("failed to clear session from keyring: %w", err)
	}
	return nil
}

func (k *keyringStore) Name() string {
	return "keyring"
}
