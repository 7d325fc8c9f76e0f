package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shelf/internal/ports"
)

// Repository implements ports.VaultRepository on the local filesystem
type Repository struct {
	vaultPath string
}

// NewRepository creates a new filesystem repository rooted at vaultPath
func NewRepository(vaultPath string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return &Repository{vaultPath: vaultPath}
}

// VaultPath returns the absolute root of the vault
func (r *Repository) VaultPath() string {
	return r.vaultPath
}

// abs converts a vault-relative slash path to an absolute path,
// rejecting anything that would escape the vault.
func (r *Repository) abs(rel string) (string, error) {
	if rel == "" {
		return r.vaultPath, nil
	}
	if strings.HasPrefix(rel, "/") || filepath.IsAbs(rel) {
		return "", fmt.Errorf("path must be vault-relative: %s", rel)
	}
	for _, part := range strings.Split(rel, "/") {
		if part == ".." {
			return "", fmt.Errorf("path escapes the vault: %s", rel)
		}
	}
	return filepath.Join(r.vaultPath, filepath.FromSlash(rel)), nil
}

// Exists reports whether a file or folder exists at the path
func (r *Repository) Exists(rel string) (bool, error) {
	path, err := r.abs(rel)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Stat returns metadata for the item at the path
func (r *Repository) Stat(rel string) (ports.Entry, error) {
	path, err := r.abs(rel)
	if err != nil {
		return ports.Entry{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return ports.Entry{}, err
	}
	return ports.Entry{Name: info.Name(), IsDir: info.IsDir()}, nil
}

// CreateFolder creates the folder and any missing parents
func (r *Repository) CreateFolder(rel string) error {
	path, err := r.abs(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	return nil
}

// ReadFile returns the content of the file at the path
func (r *Repository) ReadFile(rel string) ([]byte, error) {
	path, err := r.abs(rel)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// CreateFile writes a new file, failing if the path already exists
func (r *Repository) CreateFile(rel string, data []byte) error {
	path, err := r.abs(rel)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

// Rename moves a file or folder to a new path
func (r *Repository) Rename(oldRel, newRel string) error {
	oldPath, err := r.abs(oldRel)
	if err != nil {
		return err
	}
	newPath, err := r.abs(newRel)
	if err != nil {
		return err
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("failed to rename: %w", err)
	}
	return nil
}

// List returns the entries directly inside a folder
func (r *Repository) List(rel string) ([]ports.Entry, error) {
	path, err := r.abs(rel)
	if err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}

	entries := make([]ports.Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, ports.Entry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return entries, nil
}
