package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or drop the cached session",
}

func init() {
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows the cached session's backend and age (never the token)",
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Reading session cache...")
		defer cleanup()

		store, err := session.NewStore(cfg)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open session store: %v", err)
		}

		cached, err := store.Load()
		if err != nil {
			spinner.FinalMSG = color.YellowString("⚠") + " No cached session\n" +
				color.CyanString("→") + " Run " + color.YellowString("bwx unlock") + " to start one"
			return nil
		}

		now := time.Now()
		age := cached.Age(now).Round(time.Second)
		state := color.GreenString("valid")
		if cached.Expired(cfg.Session.TTL.Duration, now) {
			state = color.YellowString("expired")
		}

		spinner.FinalMSG = color.GreenString("✓") + " Session cached in " + color.YellowString(store.Name()) + " backend\n" +
			"    age:   " + age.String() + "\n" +
			"    state: " + state
		return nil
	},
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drops the cached session without locking the vault",
	Long: `Removes the cached session token. Unlike 'bwx lock', the vault itself
stays unlocked for any process holding a live token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Clearing session cache...")
		defer cleanup()

		store, err := session.NewStore(cfg)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open session store: %v", err)
		}
		if err := store.Clear(); err != nil {
			return Logger.ErrorfAndReturn("failed to clear session: %v", err)
		}

		spinner.FinalMSG = color.GreenString("✓") + " Cached session cleared"
		return nil
	},
}
