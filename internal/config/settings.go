package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir resolves the directory holding config.toml. BWX_CONFIG_DIR wins
// over the XDG config home so tests and portable setups can relocate it.
func ConfigDir() string {
	if explicit := os.Getenv("BWX_CONFIG_DIR"); explicit != "" {
		return explicit
	}
	return filepath.Join(xdg.ConfigHome, "bwx")
}

// StateDir resolves the directory holding mutable state: the cached session
// file and the audit log. BWX_STATE_DIR wins over the XDG state home.
func StateDir() string {
	if explicit := os.Getenv("BWX_STATE_DIR"); explicit != "" {
		return explicit
	}
	return filepath.Join(xdg.StateHome, "bwx")
}

// ConfigPath returns the absolute path of the configuration file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// SessionPath returns the absolute path of the file-backend session cache.
func SessionPath() string {
	return filepath.Join(StateDir(), "session.toml")
}

// AuditLogPath returns the absolute path of the audit log.
func AuditLogPath() string {
	return filepath.Join(StateDir(), "audit.jsonl")
}
