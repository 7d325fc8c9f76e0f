package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent shelf operations",
	Long:  `List recorded vault operations, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := openHistory()
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer history.Close()

		ops, err := history.Recent(historyLimit)
		if err != nil {
			return err
		}

		if len(ops) == 0 {
			fmt.Println("No operations recorded.")
			return nil
		}

		for _, op := range ops {
			fmt.Printf("%s  %-6s  %s -> %s\n",
				op.At.Format("2006-01-02 15:04:05"), op.Kind, op.Source, op.Destination)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of operations to show")
	rootCmd.AddCommand(historyCmd)
}
