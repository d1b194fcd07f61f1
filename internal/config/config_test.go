package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	kerrors "github.com/bwx-cli/bwx/internal/errors"
)

// useTempDirs points both config and state roots at temp directories.
func useTempDirs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("BWX_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("BWX_STATE_DIR", filepath.Join(dir, "state"))
	return dir
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	useTempDirs(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Vault.Binary != "bw" {
		t.Errorf("default vault binary = %q, want bw", cfg.Vault.Binary)
	}
	if cfg.Session.TTL.Duration != 4*time.Hour {
		t.Errorf("default session ttl = %v, want 4h", cfg.Session.TTL.Duration)
	}
	if cfg.Clipboard.Timeout.Duration != 30*time.Second {
		t.Errorf("default clipboard timeout = %v, want 30s", cfg.Clipboard.Timeout.Duration)
	}
	if cfg.DefaultField != "password" {
		t.Errorf("default field = %q, want password", cfg.DefaultField)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	useTempDirs(t)

	cfg := Defaults()
	cfg.Vault.Binary = "rbw"
	cfg.Session.Backend = "keyring"
	cfg.Session.TTL = Duration{90 * time.Minute}
	cfg.Notifications = false

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.Vault.Binary != "rbw" {
		t.Errorf("vault binary = %q, want rbw", loaded.Vault.Binary)
	}
	if loaded.Session.Backend != "keyring" {
		t.Errorf("session backend = %q, want keyring", loaded.Session.Backend)
	}
	if loaded.Session.TTL.Duration != 90*time.Minute {
		t.Errorf("session ttl = %v, want 90m", loaded.Session.TTL.Duration)
	}
	if loaded.Notifications {
		t.Error("notifications should be false after round trip")
	}
}

func TestEnsure_AssignsClientIDOnce(t *testing.T) {
	useTempDirs(t)

	first, err := Ensure()
	if err != nil {
		t.Fatalf("Ensure() failed: %v", err)
	}
	if first.ClientID == "" {
		t.Fatal("Ensure() should assign a client ID")
	}

	second, err := Ensure()
	if err != nil {
		t.Fatalf("second Ensure() failed: %v", err)
	}
	if second.ClientID != first.ClientID {
		t.Errorf("client ID changed between runs: %q then %q", first.ClientID, second.ClientID)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	useTempDirs(t)
	t.Setenv("BWX_VAULT_BIN", "/opt/bin/bw")
	t.Setenv("BWX_SESSION_TTL", "15m")
	t.Setenv("BWX_CLIPBOARD_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Vault.Binary != "/opt/bin/bw" {
		t.Errorf("vault binary = %q, want /opt/bin/bw", cfg.Vault.Binary)
	}
	if cfg.Session.TTL.Duration != 15*time.Minute {
		t.Errorf("session ttl = %v, want 15m", cfg.Session.TTL.Duration)
	}
	if cfg.Clipboard.Timeout.Duration != 5*time.Second {
		t.Errorf("clipboard timeout = %v, want 5s", cfg.Clipboard.Timeout.Duration)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	useTempDirs(t)

	if err := os.MkdirAll(ConfigDir(), 0700); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("vault = {{{"), 0644); err != nil {
		t.Fatalf("failed to write corrupt config: %v", err)
	}

	_, err := Load()
	if !errors.Is(err, kerrors.ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	useTempDirs(t)

	cfg := Defaults()
	cfg.Session.Backend = "punchcard"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	_, err := Load()
	if !errors.Is(err, kerrors.ErrUnknownBackend) {
		t.Errorf("Load() error = %v, want ErrUnknownBackend", err)
	}
}

func TestDurationMarshalText(t *testing.T) {
	d := Duration{2*time.Hour + 30*time.Minute}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	if string(text) != "2h30m0s" {
		t.Errorf("MarshalText() = %q, want 2h30m0s", text)
	}

	var parsed Duration
	if err := parsed.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() failed: %v", err)
	}
	if parsed.Duration != d.Duration {
		t.Errorf("round trip = %v, want %v", parsed.Duration, d.Duration)
	}
}
