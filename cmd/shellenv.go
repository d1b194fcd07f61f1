package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var shellenvShell string

func init() {
	shellenvCmd.Flags().StringVar(&shellenvShell, "shell", "", "target shell: bash, zsh, or fish (default: autodetect from $SHELL)")
}

var shellenvCmd = &cobra.Command{
	Use:   "shellenv",
	Short: "Prints shell aliases and completion setup for sourcing",
	Long: `Prints alias definitions and completion bootstrap for your shell.
Add this to your shell rc file:

  eval "$(bwx shellenv)"          # bash, zsh
  bwx shellenv --shell fish | source   # fish`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := shellenvShell
		if shell == "" {
			shell = detectShell()
		}

		script, err := renderShellenv(shell)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), script)
		return nil
	},
}

// detectShell guesses the user's shell from $SHELL, defaulting to bash.
func detectShell() string {
	shell := filepath.Base(os.Getenv("SHELL"))
	switch shell {
	case "zsh", "fish", "bash":
		return shell
	default:
		return "bash"
	}
}

// renderShellenv produces the sourceable script for the given shell.
func renderShellenv(shell string) (string, error) {
	var b strings.Builder
	b.WriteString("# bwx shell environment\n")

	switch shell {
	case "bash", "zsh":
		b.WriteString("alias pw='bwx get'\n")
		b.WriteString("alias pwc='bwx copy'\n")
		b.WriteString("alias pwt='bwx totp'\n")
		b.WriteString("alias pwu='bwx unlock'\n")
		fmt.Fprintf(&b, "source <(bwx completion %s)\n", shell)
	case "fish":
		b.WriteString("alias pw 'bwx get'\n")
		b.WriteString("alias pwc 'bwx copy'\n")
		b.WriteString("alias pwt 'bwx totp'\n")
		b.WriteString("alias pwu 'bwx unlock'\n")
		b.WriteString("bwx completion fish | source\n")
	default:
		return "", fmt.Errorf("unsupported shell %q: want bash, zsh, or fish", shell)
	}

	return b.String(), nil
}
