package errors

import "errors"

// Vault binary errors indicate problems invoking the wrapped password manager.
var (
	// ErrVaultBinaryNotFound indicates the configured vault CLI is not on PATH.
	ErrVaultBinaryNotFound = errors.New("vault binary not found")

	// ErrVaultLocked indicates the vault rejected the operation because it is locked.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrUnlockFailed indicates the vault rejected the master password.
	ErrUnlockFailed = errors.New("failed to unlock vault")
)

// Session errors indicate issues with the cached session token.
var (
	// ErrSessionNotFound indicates no session token is cached.
	ErrSessionNotFound = errors.New("no cached session")

	// ErrSessionExpired indicates the cached session token is older than the configured TTL.
	ErrSessionExpired = errors.New("cached session has expired")
)

// Item errors indicate issues resolving or reading vault items.
var (
	// ErrItemNotFound indicates no item matched the query.
	ErrItemNotFound = errors.New("no item matches the query")

	// ErrAmbiguousItem indicates multiple items matched and no picker could run.
	ErrAmbiguousItem = errors.New("multiple items match the query")

	// ErrFieldNotFound indicates the item has no field with the requested name.
	ErrFieldNotFound = errors.New("item has no such field")

	// ErrNoTOTP indicates the item has no TOTP seed configured.
	ErrNoTOTP = errors.New("item has no TOTP configured")
)

// Environment errors indicate the surrounding terminal or desktop cannot
// support the requested operation.
var (
	// ErrClipboardUnavailable indicates no system clipboard could be reached.
	ErrClipboardUnavailable = errors.New("system clipboard is unavailable")

	// ErrNotInteractive indicates an interactive prompt was needed but stdin is not a terminal.
	ErrNotInteractive = errors.New("interactive prompt required but stdin is not a terminal")
)

// Configuration errors indicate the wrapper's own config is unusable.
var (
	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrUnknownBackend indicates an unrecognised session storage backend name.
	ErrUnknownBackend = errors.New("unknown session backend")
)
