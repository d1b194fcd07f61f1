// Package config manages bwx settings and filesystem locations.
//
// Configuration lives in a TOML file under the XDG config home
// (config.toml); mutable state (the cached session, the audit log) lives
// under the XDG state home. Both roots can be relocated with
// BWX_CONFIG_DIR and BWX_STATE_DIR.
//
// A missing config file is not an error: defaults apply, and the file is
// only written when something needs persisting (the per-install client ID,
// or an explicit settings change). Environment variables BWX_VAULT_BIN,
// BWX_SESSION_TTL and BWX_CLIPBOARD_TIMEOUT override file values.
package config
