package ports

// Entry describes one item inside the vault.
type Entry struct {
	Name  string
	IsDir bool
}

// VaultRepository defines the file operations shelf needs from the
// vault. All paths are vault-relative and use forward slashes; the empty
// path denotes the vault root. Implementations must reject paths that
// escape the vault.
type VaultRepository interface {
	// Exists reports whether a file or folder exists at the path.
	Exists(rel string) (bool, error)

	// Stat returns metadata for the item at the path.
	Stat(rel string) (Entry, error)

	// CreateFolder creates the folder and any missing parents.
	CreateFolder(rel string) error

	// ReadFile returns the content of the file at the path.
	ReadFile(rel string) ([]byte, error)

	// CreateFile writes a new file. It fails if the path already exists.
	CreateFile(rel string, data []byte) error

	// Rename moves a file or folder to a new path.
	Rename(oldRel, newRel string) error

	// List returns the entries directly inside a folder.
	List(rel string) ([]Entry, error)
}
