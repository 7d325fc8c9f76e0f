package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelf/internal/application/commands"
)

var shelveCmd = &cobra.Command{
	Use:   "shelve <file> <mapping>",
	Short: "Move or copy a file into a mapping's folder",
	Long: `Move (or copy, per the mapping's flags) a vault file into the folder a
mapping points at. The mapping can be given by ID or display name.

The destination folder is created if missing. Name collisions get an
incrementing " N" suffix; mappings with the prefix flag stamp a sortable
time prefix onto the filename first.

Examples:
  shelf-cli shelve "drafts/meeting notes.md" Inbox
  shelf-cli shelve note.md 1f6b2c9a-...`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		ctx := context.Background()

		mappingID, err := resolveMappingID(args[1])
		if err != nil {
			return err
		}

		history, err := openHistory()
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer history.Close()

		shelveCmd := commands.NewShelveCommand(GetRepo(), GetStore(), history, file, mappingID)
		result, err := shelveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(shelveCmd)
}
