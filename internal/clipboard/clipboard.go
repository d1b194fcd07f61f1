package clipboard

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/atotto/clipboard"

	kerrors "github.com/bwx-cli/bwx/internal/errors"
)

// Copy places value on the system clipboard.
func Copy(value string) error {
	if clipboard.Unsupported {
		return kerrors.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(value); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrClipboardUnavailable, err)
	}
	return nil
}

// Fingerprint returns a SHA-256 hex digest of the value. The detached clear
// task receives this instead of the value itself, so the secret never
// appears on a command line.
func Fingerprint(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// BuildClearArgs assembles the argv for the detached clear task.
func BuildClearArgs(delay time.Duration, fingerprint string) []string {
	return []string{"clipboard-clear", "--delay", delay.String(), "--fingerprint", fingerprint}
}

// ScheduleClear re-executes this binary as a detached child that clears the
// clipboard after delay, if it still holds the fingerprinted value. The
// child outlives this process. A non-positive delay disables auto-clear.
func ScheduleClear(delay time.Duration, fingerprint string) error {
	if delay <= 0 {
		return nil
	}

	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate own executable: %w", err)
	}

	cmd := exec.Command(self, BuildClearArgs(delay, fingerprint)...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start clipboard clear task: %w", err)
	}

	// Detach: the child keeps running after this process exits.
	return cmd.Process.Release()
}

// ClearIfMatches wipes the clipboard only if its current contents match the
// fingerprint. Returns whether a wipe happened. A mismatch means the user
// copied something else in the meantime, which must be preserved.
func ClearIfMatches(fingerprint string) (bool, error) {
	if clipboard.Unsupported {
		return false, kerrors.ErrClipboardUnavailable
	}

	current, err := clipboard.ReadAll()
	if err != nil {
		return false, fmt.Errorf("%w: %v", kerrors.ErrClipboardUnavailable, err)
	}

	if Fingerprint(current) != fingerprint {
		return false, nil
	}

	if err := clipboard.WriteAll(""); err != nil {
		return false, fmt.Errorf("%w: %v", kerrors.ErrClipboardUnavailable, err)
	}
	return true, nil
}
