package domain

import (
	"fmt"
	"strings"
)

// Mapping is a user-defined shortcut that associates a vault folder with a
// display name and shelving behavior.
type Mapping struct {
	ID        string `json:"id"`        // opaque, unique, immutable once created
	Folder    string `json:"folder"`    // vault-relative, "" means vault root
	Name      string `json:"name"`      // display name
	AddPrefix bool   `json:"addPrefix"` // stamp a time prefix on the filename
	Copy      bool   `json:"copy"`      // copy instead of move
}

// Target returns the folder a mapping points at, as shown to users.
func (m Mapping) Target() string {
	if m.Folder == "" {
		return "/"
	}
	return m.Folder
}

// Settings is the user-editable configuration. Mapping order is
// significant and preserved across edits.
type Settings struct {
	Mappings []Mapping `json:"mappings"`
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{Mappings: []Mapping{}}
}

// Mapping returns the mapping with the given ID.
func (s *Settings) Mapping(id string) (Mapping, bool) {
	for _, m := range s.Mappings {
		if m.ID == id {
			return m, true
		}
	}
	return Mapping{}, false
}

// MappingByName returns the first mapping whose display name matches.
func (s *Settings) MappingByName(name string) (Mapping, bool) {
	for _, m := range s.Mappings {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Mapping{}, false
}

// IndexOf returns the position of the mapping with the given ID, or -1.
func (s *Settings) IndexOf(id string) int {
	for i, m := range s.Mappings {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// CleanFolder normalizes a vault-relative folder path: forward slashes,
// no leading or trailing separator. The empty string denotes the vault
// root. Absolute paths and ".." segments are rejected.
func CleanFolder(folder string) (string, error) {
	folder = strings.TrimSpace(folder)
	folder = strings.ReplaceAll(folder, "\\", "/")
	folder = strings.Trim(folder, "/")
	if folder == "" || folder == "." {
		return "", nil
	}
	for _, part := range strings.Split(folder, "/") {
		switch part {
		case "":
			return "", fmt.Errorf("folder path contains an empty segment: %q", folder)
		case ".", "..":
			return "", fmt.Errorf("folder path must stay inside the vault: %q", folder)
		}
	}
	return folder, nil
}
