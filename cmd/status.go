package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/bw"
	kerrors "github.com/bwx-cli/bwx/internal/errors"
	"github.com/bwx-cli/bwx/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows the wrapper session state and the vault's own status",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting status command")
		spinner, cleanup := startSpinner("Checking vault status...")
		defer cleanup()

		sessionLine := sessionStatusLine()

		client := bw.New(cfg.Vault.Binary)
		if token := os.Getenv(session.EnvVar); token != "" {
			client = client.WithSession(token)
		}

		status, err := client.Status()
		if err != nil {
			if errors.Is(err, kerrors.ErrVaultBinaryNotFound) {
				spinner.FinalMSG = sessionLine + "\n" +
					color.RedString("✗") + " Vault:   " + cfg.Vault.Binary + " is not installed or not on PATH"
				return err
			}
			return Logger.ErrorfAndReturn("failed to query vault status: %v", err)
		}

		vaultLine := color.GreenString("✓") + " Vault:   " + status.State
		if status.State == "locked" || status.State == "unauthenticated" {
			vaultLine = color.YellowString("⚠") + " Vault:   " + status.State
		}
		if status.UserEmail != "" {
			vaultLine += " as " + color.CyanString(status.UserEmail)
		}
		if status.ServerURL != "" {
			vaultLine += " " + color.HiBlackString("("+status.ServerURL+")")
		}

		finalMessage := sessionLine + "\n" + vaultLine
		if status.LastSync != "" {
			finalMessage += "\n  Last sync: " + status.LastSync
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}

// sessionStatusLine describes the wrapper-side session cache without
// touching it: status must never clear an expired token as a side effect.
func sessionStatusLine() string {
	if os.Getenv(session.EnvVar) != "" {
		return color.GreenString("✓") + " Session: provided by " + color.YellowString(session.EnvVar)
	}

	store, err := session.NewStore(cfg)
	if err != nil {
		return color.RedString("✗") + " Session: " + err.Error()
	}

	cached, err := store.Load()
	if err != nil {
		return color.YellowString("⚠") + " Session: none cached\n" +
			color.CyanString("→") + " Run " + color.YellowString("bwx unlock") + " to start a session"
	}

	now := time.Now()
	age := cached.Age(now).Round(time.Second)
	if cached.Expired(cfg.Session.TTL.Duration, now) {
		return color.YellowString("⚠") + " Session: expired " + color.HiBlackString("(age "+age.String()+")") + "\n" +
			color.CyanString("→") + " Run " + color.YellowString("bwx unlock") + " to start a new session"
	}

	line := color.GreenString("✓") + " Session: cached in " + store.Name() + " backend " +
		color.HiBlackString("(age "+age.String()+")")
	return line
}
