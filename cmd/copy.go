package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/audit"
	"github.com/bwx-cli/bwx/internal/clipboard"
	"github.com/bwx-cli/bwx/internal/notify"
)

var (
	copyField   string
	copyTimeout time.Duration
	copyNoClear bool
)

func init() {
	copyCmd.Flags().StringVarP(&copyField, "field", "f", "", "field to copy (password, username, uri, notes, or a custom field name)")
	copyCmd.Flags().DurationVarP(&copyTimeout, "timeout", "t", 0, "override the configured auto-clear timeout")
	copyCmd.Flags().BoolVar(&copyNoClear, "no-clear", false, "leave the value on the clipboard")
}

// resetCopyCommandState resets the copy command's global state for testing.
func resetCopyCommandState() {
	copyField = ""
	copyTimeout = 0
	copyNoClear = false
}

var copyCmd = &cobra.Command{
	Use:   "copy <query>",
	Short: "Copies an item field to the clipboard, clearing it after a timeout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting copy command")

		client, err := vaultClient()
		if err != nil {
			return err
		}

		// Resolve before the spinner: the picker needs the terminal.
		item, err := resolveItem(client, args[0])
		if err != nil {
			return err
		}
		Logger.Debugf("Resolved item %s (%s)", item.Name, item.ID)

		spinner, cleanup := startSpinner("Copying to clipboard...")
		defer cleanup()

		field := copyField
		if field == "" {
			field = cfg.DefaultField
		}

		value, err := item.Field(field)
		if err != nil {
			return err
		}

		if err := clipboard.Copy(value); err != nil {
			return Logger.ErrorfAndReturn("failed to copy to clipboard: %v", err)
		}
		Logger.Infof("Copied %s of %s to clipboard", field, item.Name)

		timeout := cfg.Clipboard.Timeout.Duration
		if cmd.Flags().Changed("timeout") {
			timeout = copyTimeout
		}
		if copyNoClear {
			timeout = 0
		}

		clearNote := ""
		if timeout > 0 {
			if err := clipboard.ScheduleClear(timeout, clipboard.Fingerprint(value)); err != nil {
				Logger.WarnfAlways("Copied, but auto-clear could not be scheduled: %v", err)
			} else {
				Logger.Debugf("Auto-clear scheduled in %s", timeout)
				clearNote = " " + color.HiBlackString("(clears in "+timeout.String()+")")
			}
		}

		audit.Log(audit.Entry{
			ClientID:  cfg.ClientID,
			Operation: "copy",
			ItemID:    item.ID,
			ItemName:  item.Name,
			Field:     field,
		})

		if cfg.Notifications {
			notify.Notify("bwx", "Copied "+field+" for "+item.Name)
		}

		spinner.FinalMSG = color.GreenString("✓") + " Copied " + field + " for " +
			color.CyanString(item.Name) + clearNote
		return nil
	},
}
