package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/audit"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pulls the latest vault data from the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting sync command")
		spinner, cleanup := startSpinner("Syncing vault...")
		defer cleanup()

		client, err := vaultClient()
		if err != nil {
			return err
		}

		if err := client.Sync(); err != nil {
			return Logger.ErrorfAndReturn("failed to sync vault: %v", err)
		}
		Logger.Infof("Vault synced successfully")

		audit.Log(audit.Entry{
			ClientID:  cfg.ClientID,
			Operation: "sync",
		})

		spinner.FinalMSG = color.GreenString("✓") + " Vault synced"
		return nil
	},
}
