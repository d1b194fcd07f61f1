package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/audit"
	"github.com/bwx-cli/bwx/internal/clipboard"
	kerrors "github.com/bwx-cli/bwx/internal/errors"
	"github.com/bwx-cli/bwx/internal/notify"
)

var totpCopy bool

func init() {
	totpCmd.Flags().BoolVarP(&totpCopy, "copy", "c", false, "copy the code to the clipboard instead of printing it")
}

var totpCmd = &cobra.Command{
	Use:   "totp <query>",
	Short: "Prints the current TOTP code for an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting totp command")

		client, err := vaultClient()
		if err != nil {
			return err
		}

		item, err := resolveItem(client, args[0])
		if err != nil {
			return err
		}
		Logger.Debugf("Resolved item %s (%s)", item.Name, item.ID)

		if !item.HasTOTP() {
			return fmt.Errorf("%w: %s", kerrors.ErrNoTOTP, item.Name)
		}

		// The upstream binary computes the code from the stored seed.
		code, err := client.TOTP(item.ID)
		if err != nil {
			return err
		}

		audit.Log(audit.Entry{
			ClientID:  cfg.ClientID,
			Operation: "totp",
			ItemID:    item.ID,
			ItemName:  item.Name,
		})

		if !totpCopy {
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		}

		if err := clipboard.Copy(code); err != nil {
			return Logger.ErrorfAndReturn("failed to copy to clipboard: %v", err)
		}

		// TOTP codes rotate every 30 seconds anyway; clear on that cadence.
		if err := clipboard.ScheduleClear(30*time.Second, clipboard.Fingerprint(code)); err != nil {
			Logger.WarnfAlways("Copied, but auto-clear could not be scheduled: %v", err)
		}

		if cfg.Notifications {
			notify.Notify("bwx", "Copied TOTP for "+item.Name)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" Copied TOTP for "+color.CyanString(item.Name))
		return nil
	},
}
