package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	kerrors "github.com/bwx-cli/bwx/internal/errors"
)

// Duration is a time.Duration that round-trips through TOML as a string
// like "4h" or "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the user configuration loaded from config.toml.
type Config struct {
	// ClientID identifies this install in audit entries. Assigned on first save.
	ClientID string `toml:"client_id"`

	// DefaultField is the field returned by get/copy when --field is omitted.
	DefaultField string `toml:"default_field"`

	// Notifications enables best-effort desktop notifications on copy/clear.
	Notifications bool `toml:"notifications"`

	Vault     Vault     `toml:"vault"`
	Session   Session   `toml:"session"`
	Clipboard Clipboard `toml:"clipboard"`
}

type Vault struct {
	// Binary is the password-manager CLI to wrap. Anything speaking the
	// Bitwarden CLI surface works.
	Binary string `toml:"binary"`
}

type Session struct {
	// Backend selects where the session token is cached: "file" or "keyring".
	Backend string `toml:"backend"`

	// TTL is the wrapper-local session lifetime. Tokens older than this are
	// treated as absent. Zero disables expiry.
	TTL Duration `toml:"ttl"`
}

type Clipboard struct {
	// Timeout is how long a copied value stays on the clipboard before the
	// detached clear task wipes it. Zero disables auto-clear.
	Timeout Duration `toml:"timeout"`
}

// Defaults returns the configuration used when no config file exists.
func Defaults() *Config {
	return &Config{
		DefaultField:  "password",
		Notifications: true,
		Vault:         Vault{Binary: "bw"},
		Session:       Session{Backend: "file", TTL: Duration{4 * time.Hour}},
		Clipboard:     Clipboard{Timeout: Duration{30 * time.Second}},
	}
}

// Load reads the config file, applying defaults for a missing file and
// environment overrides on top.
func Load() (*Config, error) {
	cfg := Defaults()

	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		if err := LoadTOML(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config file. World-readable is fine: it never holds secrets.
func Save(cfg *Config) error {
	if err := SaveTOML(ConfigPath(), cfg, 0644); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Ensure loads the config and assigns a client ID on first use.
func Ensure() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if cfg.ClientID == "" {
		cfg.ClientID = uuid.New().String()
		if err := Save(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if bin := os.Getenv("BWX_VAULT_BIN"); bin != "" {
		cfg.Vault.Binary = bin
	}
	if ttl := os.Getenv("BWX_SESSION_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cfg.Session.TTL = Duration{parsed}
		}
	}
	if timeout := os.Getenv("BWX_CLIPBOARD_TIMEOUT"); timeout != "" {
		if parsed, err := time.ParseDuration(timeout); err == nil {
			cfg.Clipboard.Timeout = Duration{parsed}
		}
	}
}

func (c *Config) validate() error {
	if c.Vault.Binary == "" {
		return fmt.Errorf("%w: vault.binary must not be empty", kerrors.ErrInvalidConfig)
	}
	switch c.Session.Backend {
	case "file", "keyring":
	default:
		return fmt.Errorf("%w: %q", kerrors.ErrUnknownBackend, c.Session.Backend)
	}
	if c.Session.TTL.Duration < 0 {
		return fmt.Errorf("%w: session.ttl must not be negative", kerrors.ErrInvalidConfig)
	}
	if c.Clipboard.Timeout.Duration < 0 {
		return fmt.Errorf("%w: clipboard.timeout must not be negative", kerrors.ErrInvalidConfig)
	}
	return nil
}
