package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shelf/internal/application/commands"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Manage folder mappings",
	Long: `List and edit the folder mappings used by shelve. Mappings are stored in
the vault's settings file and keep the order shown here.`,
}

var mappingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured mappings in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := GetStore().Load()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		if len(settings.Mappings) == 0 {
			fmt.Println("No mappings configured. Add one with: shelf-cli mappings add")
			return nil
		}

		for i, m := range settings.Mappings {
			flags := make([]string, 0, 2)
			if m.AddPrefix {
				flags = append(flags, "prefix")
			}
			if m.Copy {
				flags = append(flags, "copy")
			}
			flagText := ""
			if len(flags) > 0 {
				flagText = "  [" + strings.Join(flags, ",") + "]"
			}
			fmt.Printf("%d. %s -> %s%s\n   %s\n", i+1, m.Name, m.Target(), flagText, m.ID)
		}

		return nil
	},
}

var (
	mappingAddPrefix bool
	mappingAddCopy   bool
)

var mappingsAddCmd = &cobra.Command{
	Use:   "add <name> [folder]",
	Short: "Add a mapping",
	Long: `Add a mapping binding a display name to a vault folder. An empty or
omitted folder targets the vault root.

Examples:
  shelf-cli mappings add Inbox inbox
  shelf-cli mappings add Archive "archive/2026" --prefix
  shelf-cli mappings add Backup backups --copy`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		folder := ""
		if len(args) > 1 {
			folder = args[1]
		}
		ctx := context.Background()

		addCmd := commands.NewAddMappingCommand(GetStore(), folder, name, mappingAddPrefix, mappingAddCopy)
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s (id %s)\n", result.Message, result.Mapping.ID)

		return nil
	},
}

var mappingsRemoveCmd = &cobra.Command{
	Use:   "remove <mapping>",
	Short: "Remove a mapping",
	Long:  `Remove a mapping by ID or display name. Files already shelved stay where they are.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		mappingID, err := resolveMappingID(args[0])
		if err != nil {
			return err
		}

		removeCmd := commands.NewRemoveMappingCommand(GetStore(), mappingID)
		result, err := removeCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)

		return nil
	},
}

var mappingsMoveCmd = &cobra.Command{
	Use:   "move <mapping> <up|down>",
	Short: "Move a mapping up or down in the list",
	Long: `Reorder a mapping one position. The order controls how mappings are
listed and picked everywhere.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		mappingID, err := resolveMappingID(args[0])
		if err != nil {
			return err
		}

		var direction commands.MoveDirection
		switch strings.ToLower(args[1]) {
		case "up":
			direction = commands.MoveUp
		case "down":
			direction = commands.MoveDown
		default:
			return fmt.Errorf("direction must be \"up\" or \"down\", got %q", args[1])
		}

		moveCmd := commands.NewMoveMappingCommand(GetStore(), mappingID, direction)
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)

		return nil
	},
}

func init() {
	mappingsAddCmd.Flags().BoolVar(&mappingAddPrefix, "prefix", false, "add a time prefix to shelved filenames")
	mappingsAddCmd.Flags().BoolVar(&mappingAddCopy, "copy", false, "copy files instead of moving them")

	mappingsCmd.AddCommand(mappingsListCmd)
	mappingsCmd.AddCommand(mappingsAddCmd)
	mappingsCmd.AddCommand(mappingsRemoveCmd)
	mappingsCmd.AddCommand(mappingsMoveCmd)
	rootCmd.AddCommand(mappingsCmd)
}
