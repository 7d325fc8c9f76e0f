package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shelf/internal/adapters/filesystem"
	"shelf/internal/adapters/settings"
	"shelf/internal/adapters/sqlite"
	"shelf/internal/config"
	"shelf/internal/ports"
)

var (
	vaultPath string
	repo      ports.VaultRepository
	store     ports.SettingsStore
)

var rootCmd = &cobra.Command{
	Use:   "shelf-cli",
	Short: "CLI for shelving files in a vault",
	Long: `shelf-cli moves and copies files inside an Obsidian-style vault using
user-configured folder mappings.

A mapping binds a target folder to a display name and two flags: adding a
sortable time prefix to the filename, and copying instead of moving. Name
collisions at the destination are resolved with an incrementing " N"
suffix.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		repo = filesystem.NewRepository(vaultPath)
		store = settings.NewStore(vaultPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
}

// GetRepo returns the initialized vault repository
func GetRepo() ports.VaultRepository {
	return repo
}

// GetStore returns the initialized settings store
func GetStore() ports.SettingsStore {
	return store
}

// openHistory opens the history log for commands that record or read it.
// Callers must Close the returned log.
func openHistory() (*sqlite.History, error) {
	h := sqlite.NewHistory()
	if err := h.Open(vaultPath); err != nil {
		return nil, err
	}
	return h, nil
}

// resolveMappingID accepts either a mapping ID or a display name and
// returns the mapping ID.
func resolveMappingID(idOrName string) (string, error) {
	settings, err := GetStore().Load()
	if err != nil {
		return "", err
	}
	if _, ok := settings.Mapping(idOrName); ok {
		return idOrName, nil
	}
	if m, ok := settings.MappingByName(idOrName); ok {
		return m.ID, nil
	}
	return "", fmt.Errorf("no mapping with ID or name %q (try: shelf-cli mappings list)", idOrName)
}
