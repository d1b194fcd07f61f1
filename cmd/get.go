package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/audit"
)

var getField string

func init() {
	getCmd.Flags().StringVarP(&getField, "field", "f", "", "field to print (password, username, uri, notes, or a custom field name)")
}

// resetGetCommandState resets the get command's global state for testing.
func resetGetCommandState() {
	getField = ""
}

var getCmd = &cobra.Command{
	Use:   "get <query>",
	Short: "Prints an item field to stdout",
	Long: `Searches the vault for the query and prints the requested field.

If the query matches more than one item, an exact name match wins; failing
that, an interactive picker is shown. The output carries only the value, so
it is safe to capture in scripts:

  PASSWORD="$(bwx get github)"`,
	Args: cobra.ExactArgs(1),
	// No spinner here: stdout must carry nothing but the field value.
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting get command")

		client, err := vaultClient()
		if err != nil {
			return err
		}

		item, err := resolveItem(client, args[0])
		if err != nil {
			return err
		}
		Logger.Debugf("Resolved item %s (%s)", item.Name, item.ID)

		field := getField
		if field == "" {
			field = cfg.DefaultField
		}

		value, err := item.Field(field)
		if err != nil {
			return err
		}

		audit.Log(audit.Entry{
			ClientID:  cfg.ClientID,
			Operation: "get",
			ItemID:    item.ID,
			ItemName:  item.Name,
			Field:     field,
		})

		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}
