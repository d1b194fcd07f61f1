package bw

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strconv"
	"strings"

	kerrors "github.com/bwx-cli/bwx/internal/errors"
)

// Client invokes the wrapped password-manager CLI. All vault storage,
// cryptography and sync happen inside that binary; Client only shells out
// and parses the JSON it prints.
type Client struct {
	// Binary is the executable to run, e.g. "bw" or an absolute path.
	Binary string

	// Session is the raw session token, passed via the BW_SESSION
	// environment variable. Never placed on argv.
	Session string
}

// New returns a client for the given binary with no session attached.
func New(binary string) *Client {
	return &Client{Binary: binary}
}

// WithSession returns a copy of the client that authenticates with token.
func (c *Client) WithSession(token string) *Client {
	clone := *c
	clone.Session = token
	return &clone
}

// Status mirrors the `status` subcommand's JSON output.
type Status struct {
	ServerURL string `json:"serverUrl"`
	LastSync  string `json:"lastSync"`
	UserEmail string `json:"userEmail"`
	State     string `json:"status"` // "unauthenticated", "locked", "unlocked"
}

// Status reports the vault's own view of its state. Works without a session.
func (c *Client) Status() (*Status, error) {
	output, err := c.run(nil, "status")
	if err != nil {
		return nil, err
	}

	var status Status
	if err := json.Unmarshal(output, &status); err != nil {
		return nil, fmt.Errorf("failed to parse %s status output: %w", c.Binary, err)
	}
	return &status, nil
}

// Unlock exchanges the master password for a raw session token. The
// password travels via an environment variable, never argv.
func (c *Client) Unlock(password []byte) (string, error) {
	env := []string{"BW_PASSWORD=" + string(password)}
	output, err := c.run(env, "unlock", "--passwordenv", "BW_PASSWORD", "--raw")
	if err != nil {
		if errors.Is(err, kerrors.ErrVaultBinaryNotFound) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", kerrors.ErrUnlockFailed, err)
	}

	token := strings.TrimSpace(string(output))
	if token == "" {
		return "", kerrors.ErrUnlockFailed
	}
	return token, nil
}

// Lock discards the vault's active sessions.
func (c *Client) Lock() error {
	_, err := c.run(nil, "lock")
	return err
}

// Sync pulls the latest vault data from the server.
func (c *Client) Sync() error {
	_, err := c.run(nil, "sync")
	return err
}

// ListItems returns vault items, optionally filtered server-side by search.
func (c *Client) ListItems(search string) ([]Item, error) {
	args := []string{"list", "items"}
	if search != "" {
		args = append(args, "--search", search)
	}

	output, err := c.run(nil, args...)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(output, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s item list: %w", c.Binary, err)
	}
	return items, nil
}

// ListFolders returns the vault's folders, for resolving folderId to a name.
func (c *Client) ListFolders() ([]Folder, error) {
	output, err := c.run(nil, "list", "folders")
	if err != nil {
		return nil, err
	}

	var folders []Folder
	if err := json.Unmarshal(output, &folders); err != nil {
		return nil, fmt.Errorf("failed to parse %s folder list: %w", c.Binary, err)
	}
	return folders, nil
}

// GetItem fetches a single item by id.
func (c *Client) GetItem(id string) (*Item, error) {
	output, err := c.run(nil, "get", "item", id)
	if err != nil {
		return nil, err
	}

	var item Item
	if err := json.Unmarshal(output, &item); err != nil {
		return nil, fmt.Errorf("failed to parse %s item: %w", c.Binary, err)
	}
	return &item, nil
}

// TOTP returns the current one-time code for the item. The upstream binary
// computes the code; an item without a seed maps to ErrNoTOTP.
func (c *Client) TOTP(id string) (string, error) {
	output, err := c.run(nil, "get", "totp", id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "totp") {
			return "", fmt.Errorf("%w: %s", kerrors.ErrNoTOTP, id)
		}
		return "", err
	}

	code := strings.TrimSpace(string(output))
	if code == "" {
		return "", fmt.Errorf("%w: %s", kerrors.ErrNoTOTP, id)
	}
	return code, nil
}

// GenerateOptions configures password generation.
type GenerateOptions struct {
	Length     int
	NoSymbols  bool
	Passphrase bool
	Words      int
}

// Generate produces a new random password via the upstream binary.
func (c *Client) Generate(opts GenerateOptions) (string, error) {
	args := []string{"generate"}

	if opts.Passphrase {
		args = append(args, "--passphrase")
		if opts.Words > 0 {
			args = append(args, "--words", strconv.Itoa(opts.Words))
		}
	} else {
		args = append(args, "-uln")
		if !opts.NoSymbols {
			args[len(args)-1] += "s"
		}
		if opts.Length > 0 {
			args = append(args, "--length", strconv.Itoa(opts.Length))
		}
	}

	output, err := c.run(nil, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// run executes the binary with the given extra environment and arguments,
// returning stdout. Exit failures carry the binary's stderr; a missing
// executable maps to ErrVaultBinaryNotFound with an install hint.
func (c *Client) run(extraEnv []string, args ...string) ([]byte, error) {
	cmd := exec.Command(c.Binary, args...)

	cmd.Env = append(os.Environ(), extraEnv...)
	if c.Session != "" {
		cmd.Env = append(cmd.Env, "BW_SESSION="+c.Session)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s is not installed or not on PATH", kerrors.ErrVaultBinaryNotFound, c.Binary)
		}

		message := strings.TrimSpace(stderr.String())
		if message == "" {
			message = err.Error()
		}
		if strings.Contains(strings.ToLower(message), "vault is locked") {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrVaultLocked, message)
		}
		return nil, fmt.Errorf("%s %s failed: %s", c.Binary, args[0], message)
	}

	return stdout.Bytes(), nil
}
