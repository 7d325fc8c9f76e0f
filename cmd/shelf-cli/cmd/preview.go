package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelf/internal/application/commands"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file> <mapping>",
	Short: "Show where shelving a file would place it",
	Long: `Compute the destination path a shelve operation would use, including
prefix and collision handling, without modifying the vault.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		ctx := context.Background()

		mappingID, err := resolveMappingID(args[1])
		if err != nil {
			return err
		}

		previewCmd := commands.NewPreviewCommand(GetRepo(), GetStore(), file, mappingID)
		result, err := previewCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
