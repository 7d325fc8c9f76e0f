package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"shelf/internal/application"
	"shelf/internal/domain"
	"shelf/internal/ports"
)

// MappingResult contains the result of a mapping edit
type MappingResult struct {
	Mapping domain.Mapping
	Message string
}

// AddMappingCommand appends a new mapping to the settings
type AddMappingCommand struct {
	settings  ports.SettingsStore
	Folder    string
	Name      string
	AddPrefix bool
	Copy      bool
}

// NewAddMappingCommand creates a new AddMappingCommand
func NewAddMappingCommand(settings ports.SettingsStore, folder, name string, addPrefix, copyFile bool) *AddMappingCommand {
	return &AddMappingCommand{
		settings:  settings,
		Folder:    folder,
		Name:      name,
		AddPrefix: addPrefix,
		Copy:      copyFile,
	}
}

// Validate checks if the add operation is valid
func (c *AddMappingCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if _, err := domain.CleanFolder(c.Folder); err != nil {
		return &application.ValidationError{Field: "folder", Message: err.Error()}
	}
	return nil
}

// Execute runs the add mapping command
func (c *AddMappingCommand) Execute(ctx context.Context) (*MappingResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	settings, err := c.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	folder, _ := domain.CleanFolder(c.Folder)
	mapping := domain.Mapping{
		ID:        uuid.NewString(),
		Folder:    folder,
		Name:      strings.TrimSpace(c.Name),
		AddPrefix: c.AddPrefix,
		Copy:      c.Copy,
	}
	settings.Mappings = append(settings.Mappings, mapping)

	if err := c.settings.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &MappingResult{
		Mapping: mapping,
		Message: fmt.Sprintf("Added mapping %s -> %s", mapping.Name, mapping.Target()),
	}, nil
}

// UpdateMappingCommand replaces the editable fields of a mapping.
// The ID is immutable.
type UpdateMappingCommand struct {
	settings  ports.SettingsStore
	ID        string
	Folder    string
	Name      string
	AddPrefix bool
	Copy      bool
}

// NewUpdateMappingCommand creates a new UpdateMappingCommand
func NewUpdateMappingCommand(settings ports.SettingsStore, id, folder, name string, addPrefix, copyFile bool) *UpdateMappingCommand {
	return &UpdateMappingCommand{
		settings:  settings,
		ID:        id,
		Folder:    folder,
		Name:      name,
		AddPrefix: addPrefix,
		Copy:      copyFile,
	}
}

// Validate checks if the update operation is valid
func (c *UpdateMappingCommand) Validate() error {
	if err := application.ValidateRequired("mappingID", c.ID); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if _, err := domain.CleanFolder(c.Folder); err != nil {
		return &application.ValidationError{Field: "folder", Message: err.Error()}
	}
	return nil
}

// Execute runs the update mapping command
func (c *UpdateMappingCommand) Execute(ctx context.Context) (*MappingResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	settings, err := c.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	idx := settings.IndexOf(c.ID)
	if idx < 0 {
		return nil, &application.MappingError{ID: c.ID, Reason: application.ErrMappingNotFound.Error()}
	}

	folder, _ := domain.CleanFolder(c.Folder)
	settings.Mappings[idx] = domain.Mapping{
		ID:        c.ID,
		Folder:    folder,
		Name:      strings.TrimSpace(c.Name),
		AddPrefix: c.AddPrefix,
		Copy:      c.Copy,
	}

	if err := c.settings.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &MappingResult{
		Mapping: settings.Mappings[idx],
		Message: fmt.Sprintf("Updated mapping %s", settings.Mappings[idx].Name),
	}, nil
}

// RemoveMappingCommand deletes a mapping from the settings
type RemoveMappingCommand struct {
	settings ports.SettingsStore
	ID       string
}

// NewRemoveMappingCommand creates a new RemoveMappingCommand
func NewRemoveMappingCommand(settings ports.SettingsStore, id string) *RemoveMappingCommand {
	return &RemoveMappingCommand{settings: settings, ID: id}
}

// Validate checks if the remove operation is valid
func (c *RemoveMappingCommand) Validate() error {
	return application.ValidateRequired("mappingID", c.ID)
}

// Execute runs the remove mapping command
func (c *RemoveMappingCommand) Execute(ctx context.Context) (*MappingResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	settings, err := c.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	idx := settings.IndexOf(c.ID)
	if idx < 0 {
		return nil, &application.MappingError{ID: c.ID, Reason: application.ErrMappingNotFound.Error()}
	}

	removed := settings.Mappings[idx]
	settings.Mappings = append(settings.Mappings[:idx], settings.Mappings[idx+1:]...)

	if err := c.settings.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &MappingResult{
		Mapping: removed,
		Message: fmt.Sprintf("Removed mapping %s", removed.Name),
	}, nil
}

// MoveDirection indicates which way a mapping moves in the list
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)

// MoveMappingCommand reorders a mapping one position up or down.
// The rest of the list keeps its relative order.
type MoveMappingCommand struct {
	settings  ports.SettingsStore
	ID        string
	Direction MoveDirection
}

// NewMoveMappingCommand creates a new MoveMappingCommand
func NewMoveMappingCommand(settings ports.SettingsStore, id string, direction MoveDirection) *MoveMappingCommand {
	return &MoveMappingCommand{settings: settings, ID: id, Direction: direction}
}

// Validate checks if the move operation is valid
func (c *MoveMappingCommand) Validate() error {
	return application.ValidateRequired("mappingID", c.ID)
}

// Execute runs the move mapping command
func (c *MoveMappingCommand) Execute(ctx context.Context) (*MappingResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	settings, err := c.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	idx := settings.IndexOf(c.ID)
	if idx < 0 {
		return nil, &application.MappingError{ID: c.ID, Reason: application.ErrMappingNotFound.Error()}
	}

	other := idx - 1
	if c.Direction == MoveDown {
		other = idx + 1
	}
	if other < 0 || other >= len(settings.Mappings) {
		// Already at the edge; nothing to persist.
		return &MappingResult{
			Mapping: settings.Mappings[idx],
			Message: fmt.Sprintf("Mapping %s did not move", settings.Mappings[idx].Name),
		}, nil
	}

	settings.Mappings[idx], settings.Mappings[other] = settings.Mappings[other], settings.Mappings[idx]

	if err := c.settings.Save(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &MappingResult{
		Mapping: settings.Mappings[other],
		Message: fmt.Sprintf("Moved mapping %s", settings.Mappings[other].Name),
	}, nil
}
