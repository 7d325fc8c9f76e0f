package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelf/internal/application/commands"
)

var prefixStrip bool

var prefixCmd = &cobra.Command{
	Use:   "prefix <file>",
	Short: "Apply or strip the time prefix on a filename",
	Long: `Rename a vault file in place, stamping a sortable time prefix onto its
name. An existing prefix is replaced, so running it twice does not stack.
With --strip the prefix is removed instead.

Examples:
  shelf-cli prefix "inbox/note.md"
  shelf-cli prefix --strip "inbox/8kfxpmi_note.md"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		ctx := context.Background()

		history, err := openHistory()
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer history.Close()

		prefixCmd := commands.NewPrefixCommand(GetRepo(), history, file, prefixStrip)
		result, err := prefixCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)

		return nil
	},
}

func init() {
	prefixCmd.Flags().BoolVar(&prefixStrip, "strip", false, "remove the prefix instead of applying one")
	rootCmd.AddCommand(prefixCmd)
}
