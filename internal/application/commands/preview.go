package commands

import (
	"context"
	"fmt"
	"time"

	"shelf/internal/application"
	"shelf/internal/domain"
	"shelf/internal/ports"
)

// PreviewResult contains the planned destination for a shelve operation
type PreviewResult struct {
	Source      string
	Destination string
	Mapping     domain.Mapping
	Message     string
}

// PreviewCommand computes where a shelve operation would place a file,
// without modifying the vault.
type PreviewCommand struct {
	vault     ports.VaultRepository
	settings  ports.SettingsStore
	File      string
	MappingID string

	now func() time.Time
}

// NewPreviewCommand creates a new PreviewCommand
func NewPreviewCommand(vault ports.VaultRepository, settings ports.SettingsStore, file, mappingID string) *PreviewCommand {
	return &PreviewCommand{
		vault:     vault,
		settings:  settings,
		File:      file,
		MappingID: mappingID,
		now:       time.Now,
	}
}

// Validate checks if the preview operation is valid
func (c *PreviewCommand) Validate() error {
	if err := application.ValidateVaultPath("file", c.File); err != nil {
		return err
	}
	return application.ValidateRequired("mappingID", c.MappingID)
}

// Execute runs the preview command
func (c *PreviewCommand) Execute(ctx context.Context) (*PreviewResult, error) {
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

	verb := "move"
	if mapping.Copy {
		verb = "copy"
	}
	return &PreviewResult{
		Source:      c.File,
		Destination: destination,
		Mapping:     mapping,
		Message:     fmt.Sprintf("Would %s to %s", verb, destination),
	}, nil
}
