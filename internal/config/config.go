package config

import "os"

const DefaultVaultPath = "~/Documents/vault"

// VaultPath returns the vault path from SHELF_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("SHELF_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}
