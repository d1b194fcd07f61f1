package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/audit"
	"github.com/bwx-cli/bwx/internal/bw"
	"github.com/bwx-cli/bwx/internal/session"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Locks the vault and drops the cached session",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting lock command")
		spinner, cleanup := startSpinner("Locking vault...")
		defer cleanup()

		store, err := session.NewStore(cfg)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open session store: %v", err)
		}
		if err := store.Clear(); err != nil {
			return Logger.ErrorfAndReturn("failed to clear cached session: %v", err)
		}
		Logger.Infof("Cached session cleared")

		// Locking upstream invalidates every outstanding token, including
		// any held in other shells via BWX_SESSION.
		if err := bw.New(cfg.Vault.Binary).Lock(); err != nil {
			spinner.FinalMSG = color.YellowString("⚠") + " Cached session cleared, but the vault itself could not be locked\n" +
				"    " + color.HiBlackString(err.Error())
			return nil
		}
		Logger.Infof("Vault locked")

		audit.Log(audit.Entry{
			ClientID:  cfg.ClientID,
			Operation: "lock",
			Backend:   store.Name(),
		})

		spinner.FinalMSG = color.GreenString("✓") + " Vault locked and cached session cleared"
		return nil
	},
}
