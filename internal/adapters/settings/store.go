package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shelf/internal/domain"
	"shelf/internal/ports"
)

const (
	shelfDir     = ".shelf"
	settingsFile = "settings.json"
)

// Store persists shelf settings as JSON inside the vault's .shelf
// directory, mirroring the host's plugin data format.
type Store struct {
	path string
}

// Ensure Store implements SettingsStore
var _ ports.SettingsStore = (*Store)(nil)

// NewStore creates a settings store for the given vault path
func NewStore(vaultPath string) *Store {
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return &Store{path: filepath.Join(vaultPath, shelfDir, settingsFile)}
}

// Load reads the settings, returning defaults when nothing has been saved
func (s *Store) Load() (*domain.Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if settings.Mappings == nil {
		settings.Mappings = []domain.Mapping{}
	}
	return &settings, nil
}

// Save writes the settings, creating the .shelf directory if needed
func (s *Store) Save(settings *domain.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
