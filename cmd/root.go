package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/config"
	logger "github.com/bwx-cli/bwx/internal/logging"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
	cfg     *config.Config

	rootCmd = &cobra.Command{
		Use:   "bwx",
		Short: "bwx - A session-caching wrapper around your password manager CLI.",
		Long: `bwx wraps a Bitwarden-compatible password manager CLI so day-to-day
lookups don't need the master password every time.

Features:
  - Unlock once; the session token is cached with a configurable lifetime
  - Copy passwords to the clipboard with automatic clearing
  - Fuzzy-pick between items when a query matches more than one
  - Fetch TOTP codes from the command line

All vault storage, cryptography and sync stay inside the wrapped binary.

Run 'bwx help <command>' for more details on a specific command.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing bwx with verbose=%t, debug=%t", verbose, debug)

			loaded, err := config.Ensure()
			if err != nil {
				return err
			}
			cfg = loaded
			Logger.Debugf("Config loaded: vault=%s, session backend=%s", cfg.Vault.Binary, cfg.Session.Backend)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("bwx", "alligator2", "cyan", true)
			banner.Print()
			fmt.Println("Run 'bwx --help' to see available commands.")
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(totpCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(shellenvCmd)
	rootCmd.AddCommand(clipboardClearCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	cfg = nil
	resetGetCommandState()
	resetCopyCommandState()
	resetListCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
