package cmd

import (
	"errors"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/audit"
	"github.com/bwx-cli/bwx/internal/bw"
	kerrors "github.com/bwx-cli/bwx/internal/errors"
	"github.com/bwx-cli/bwx/internal/session"
	"github.com/bwx-cli/bwx/internal/utils"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlocks the vault and caches the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting unlock command")

		// Read the password before the spinner starts so the prompt is visible.
		var password []byte
		var err error
		if utils.IsTerminal() {
			password, err = utils.ReadPassphrase("Master password: ")
		} else {
			Logger.Debugf("stdin is not a terminal, reading piped password")
			password, err = utils.ReadLineFromStdin()
		}
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read master password: %v", err)
		}

		spinner, cleanup := startSpinner("Unlocking vault...")
		defer cleanup()

		token, err := bw.New(cfg.Vault.Binary).Unlock(password)
		if err != nil {
			if errors.Is(err, kerrors.ErrVaultBinaryNotFound) {
				spinner.FinalMSG = color.RedString("✗") + " " + cfg.Vault.Binary + " is not installed or not on PATH\n" +
					color.CyanString("→") + " Set " + color.YellowString("vault.binary") + " in your config, or install the vault CLI"
				return err
			}
			return Logger.ErrorfAndReturn("failed to unlock vault: %v", err)
		}
		Logger.Infof("Vault unlocked successfully")

		store, err := session.NewStore(cfg)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to open session store: %v", err)
		}
		if err := store.Save(session.Session{Token: token, CreatedAt: time.Now().UTC()}); err != nil {
			return Logger.ErrorfAndReturn("vault unlocked but session could not be cached: %v", err)
		}
		Logger.Infof("Session cached in %s backend", store.Name())

		audit.Log(audit.Entry{
			ClientID:  cfg.ClientID,
			Operation: "unlock",
			Backend:   store.Name(),
		})

		expiry := "never expires"
		if ttl := cfg.Session.TTL.Duration; ttl > 0 {
			expiry = "expires in " + ttl.String()
		}
		spinner.FinalMSG = color.GreenString("✓") + " Vault unlocked\n" +
			"    session cached in " + color.YellowString(store.Name()) + " backend " +
			color.HiBlackString("("+expiry+")")
		return nil
	},
}
