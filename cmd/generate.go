package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/audit"
	"github.com/bwx-cli/bwx/internal/bw"
	"github.com/bwx-cli/bwx/internal/clipboard"
)

var (
	generateLength     int
	generateNoSymbols  bool
	generatePassphrase bool
	generateWords      int
	generateCopy       bool
)

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", 0, "password length")
	generateCmd.Flags().BoolVar(&generateNoSymbols, "no-symbols", false, "letters and digits only")
	generateCmd.Flags().BoolVarP(&generatePassphrase, "passphrase", "p", false, "generate a word-based passphrase instead")
	generateCmd.Flags().IntVarP(&generateWords, "words", "w", 0, "passphrase word count")
	generateCmd.Flags().BoolVarP(&generateCopy, "copy", "c", false, "copy the result to the clipboard instead of printing it")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a new random password via the vault CLI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting generate command")

		// Generation needs no session; it is pure randomness.
		value, err := bw.New(cfg.Vault.Binary).Generate(bw.GenerateOptions{
			Length:     generateLength,
			NoSymbols:  generateNoSymbols,
			Passphrase: generatePassphrase,
			Words:      generateWords,
		})
		if err != nil {
			return err
		}

		audit.Log(audit.Entry{
			ClientID:  cfg.ClientID,
			Operation: "generate",
		})

		if !generateCopy {
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		}

		if err := clipboard.Copy(value); err != nil {
			return Logger.ErrorfAndReturn("failed to copy to clipboard: %v", err)
		}

		timeout := cfg.Clipboard.Timeout.Duration
		if timeout > 0 {
			if err := clipboard.ScheduleClear(timeout, clipboard.Fingerprint(value)); err != nil {
				Logger.WarnfAlways("Copied, but auto-clear could not be scheduled: %v", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" Generated password copied to clipboard")
		return nil
	},
}
