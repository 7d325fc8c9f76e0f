package ports

// ObsidianOpener opens vault files in Obsidian.
type ObsidianOpener interface {
	// OpenFile opens a vault-relative file path in Obsidian using the
	// obsidian:// URI scheme.
	OpenFile(rel string) error
}
