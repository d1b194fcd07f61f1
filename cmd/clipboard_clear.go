package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/clipboard"
	"github.com/bwx-cli/bwx/internal/notify"
)

var (
	clearDelay       time.Duration
	clearFingerprint string
)

func init() {
	clipboardClearCmd.Flags().DurationVar(&clearDelay, "delay", 0, "how long to wait before clearing")
	clipboardClearCmd.Flags().StringVar(&clearFingerprint, "fingerprint", "", "SHA-256 fingerprint of the value to clear")
}

// clipboardClearCmd is the detached child spawned by copy/totp/generate.
// It receives only a fingerprint of the copied value, never the value.
var clipboardClearCmd = &cobra.Command{
	Use:    "clipboard-clear",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if clearFingerprint == "" {
			return fmt.Errorf("--fingerprint is required")
		}

		time.Sleep(clearDelay)

		cleared, err := clipboard.ClearIfMatches(clearFingerprint)
		if err != nil {
			// Headless or clipboard gone; nothing useful to report from a
			// detached process.
			return nil
		}

		if cleared && cfg.Notifications {
			notify.Notify("bwx", "Clipboard cleared")
		}
		return nil
	},
}
