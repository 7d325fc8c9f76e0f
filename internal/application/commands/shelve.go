package commands

import (
	"context"
	"fmt"
	"time"

	"shelf/internal/application"
	"shelf/internal/domain"
	"shelf/internal/ports"
)

// ShelveResult contains the result of shelving a file through a mapping
type ShelveResult struct {
	Source      string
	Destination string
	Mapping     domain.Mapping
	Copied      bool
	Message     string
}

// ShelveCommand moves (or copies) a file into a mapping's folder,
// applying the time prefix and resolving name collisions as configured.
type ShelveCommand struct {
	vault     ports.VaultRepository
	settings  ports.SettingsStore
	history   ports.History // optional
	File      string
	MappingID string

	// now is swappable for tests; defaults to time.Now
	now func() time.Time
}

// NewShelveCommand creates a new ShelveCommand
func NewShelveCommand(vault ports.VaultRepository, settings ports.SettingsStore, history ports.History, file, mappingID string) *ShelveCommand {
	return &ShelveCommand{
		vault:     vault,
		settings:  settings,
		history:   history,
		File:      file,
		MappingID: mappingID,
		now:       time.Now,
	}
}

// Validate checks if the shelve operation is valid
func (c *ShelveCommand) Validate() error {
	if err := application.ValidateVaultPath("file", c.File); err != nil {
		return err
	}
	return application.ValidateRequired("mappingID", c.MappingID)
}

// Execute runs the shelve command
func (c *ShelveCommand) Execute(ctx context.Context) (*ShelveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	settings, err := c.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	mapping, ok := settings.Mapping(c.MappingID)
	if !ok {
		return nil, &application.ShelveError{
			File:      c.File,
			MappingID: c.MappingID,
			Reason:    application.ErrMappingNotFound.Error(),
		}
	}

	destination, err := planDestination(c.vault, mapping, c.File, c.now())
	if err != nil {
		return nil, err
	}

	if mapping.Folder != "" {
		if err := c.vault.CreateFolder(mapping.Folder); err != nil {
			return nil, fmt.Errorf("failed to create folder %s: %w", mapping.Folder, err)
		}
	}

	if mapping.Copy {
		data, err := c.vault.ReadFile(c.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", c.File, err)
		}
		if err := c.vault.CreateFile(destination, data); err != nil {
			return nil, fmt.Errorf("failed to copy to %s: %w", destination, err)
		}
	} else {
		if err := c.vault.Rename(c.File, destination); err != nil {
			return nil, fmt.Errorf("failed to move to %s: %w", destination, err)
		}
	}

	c.record(mapping, destination)

	verb := "Moved"
	if mapping.Copy {
		verb = "Copied"
	}
	return &ShelveResult{
		Source:      c.File,
		Destination: destination,
		Mapping:     mapping,
		Copied:      mapping.Copy,
		Message:     fmt.Sprintf("%s to %s", verb, destination),
	}, nil
}

func (c *ShelveCommand) record(mapping domain.Mapping, destination string) {
	if c.history == nil {
		return
	}
	kind := domain.OpMove
	if mapping.Copy {
		kind = domain.OpCopy
	}
	// History is best-effort; the file operation already succeeded.
	_ = c.history.Record(domain.Operation{
		Kind:        kind,
		Source:      c.File,
		Destination: destination,
		MappingID:   mapping.ID,
		At:          c.now(),
	})
}

// planDestination computes the collision-free destination for shelving
// file through mapping at time now, without touching the vault.
func planDestination(vault ports.VaultRepository, mapping domain.Mapping, file string, now time.Time) (string, error) {
	entry, err := vault.Stat(file)
	if err != nil {
		return "", &application.ShelveError{
			File:      file,
			MappingID: mapping.ID,
			Reason:    fmt.Sprintf("file not found: %v", err),
		}
	}
	if entry.IsDir {
		return "", &application.ShelveError{
			File:      file,
			MappingID: mapping.ID,
			Reason:    "is a folder, not a file",
		}
	}

	name := entry.Name
	if mapping.AddPrefix {
		name = domain.ApplyPrefix(name, now)
	}

	// Moving a file onto itself is a no-op the user should hear about.
	if !mapping.Copy && domain.JoinFolder(mapping.Folder, name) == file {
		return "", &application.ShelveError{
			File:      file,
			MappingID: mapping.ID,
			Reason:    fmt.Sprintf("already in %s", mapping.Target()),
		}
	}

	var existsErr error
	destination := domain.AvailablePath(mapping.Folder, name, func(candidate string) bool {
		ok, err := vault.Exists(candidate)
		if err != nil {
			existsErr = err
		}
		return ok
	})
	if existsErr != nil {
		return "", fmt.Errorf("failed to check destination: %w", existsErr)
	}

	return destination, nil
}
