package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bwx-cli/bwx/internal/audit"
	"github.com/bwx-cli/bwx/internal/bw"
	"github.com/bwx-cli/bwx/internal/utils"
)

var (
	listSearch string
	listOutput string
)

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "server-side search filter")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "output format: table or json")
}

// resetListCommandState resets the list command's global state for testing.
func resetListCommandState() {
	listSearch = ""
	listOutput = "table"
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists vault items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		if listOutput != "table" && listOutput != "json" {
			return fmt.Errorf("unknown output format %q: want table or json", listOutput)
		}

		client, err := vaultClient()
		if err != nil {
			return err
		}

		items, err := client.ListItems(listSearch)
		if err != nil {
			return err
		}
		Logger.Debugf("Listing %d item(s)", len(items))

		audit.Log(audit.Entry{
			ClientID:  cfg.ClientID,
			Operation: "list",
			Search:    listSearch,
		})

		if listOutput == "json" {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(items)
		}

		folders, err := client.ListFolders()
		if err != nil {
			// Folder names are cosmetic; list without them rather than fail.
			Logger.Warnf("Failed to list folders: %v", err)
			folders = nil
		}

		renderItemTable(cmd, items, folders)
		return nil
	},
}

func renderItemTable(cmd *cobra.Command, items []bw.Item, folders []bw.Folder) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Username", "Folder", "ID"})

	// The ID column is fixed-width (UUID); the rest share what's left.
	termWidth := utils.TerminalWidth(100)
	textWidth := (termWidth - 36 - 12) / 3
	if textWidth < 12 {
		textWidth = 12
	}

	for _, item := range items {
		t.AppendRow(table.Row{
			truncate(item.Name, textWidth),
			truncate(item.Username(), textWidth),
			truncate(item.FolderName(folders), textWidth),
			item.ID,
		})
	}

	t.Render()
}

// truncate shortens s to at most max runes, ending with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
