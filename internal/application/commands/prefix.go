package commands

import (
	"context"
	"fmt"
	"time"

	"shelf/internal/application"
	"shelf/internal/domain"
	"shelf/internal/ports"
)

// PrefixResult contains the result of a prefix rename
type PrefixResult struct {
	Source      string
	Destination string
	Changed     bool
	Message     string
}

// PrefixCommand renames a file in place, applying or stripping the time
// prefix on its filename.
type PrefixCommand struct {
	vault   ports.VaultRepository
	history ports.History // optional
	File    string
	Strip   bool

	now func() time.Time
}

// NewPrefixCommand creates a new PrefixCommand
func NewPrefixCommand(vault ports.VaultRepository, history ports.History, file string, strip bool) *PrefixCommand {
	return &PrefixCommand{
		vault:   vault,
		history: history,
		File:    file,
		Strip:   strip,
		now:     time.Now,
	}
}

// Validate checks if the prefix operation is valid
func (c *PrefixCommand) Validate() error {
	return application.ValidateVaultPath("file", c.File)
}

// Execute runs the prefix command
func (c *PrefixCommand) Execute(ctx context.Context) (*PrefixResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.vault.Stat(c.File)
	if err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}
	if entry.IsDir {
		return nil, fmt.Errorf("%s: %w", c.File, application.ErrNotAFile)
	}

	var newName string
	if c.Strip {
		newName = domain.StripPrefix(entry.Name)
	} else {
		newName = domain.ApplyPrefix(entry.Name, c.now())
	}

	if newName == entry.Name {
		return &PrefixResult{
			Source:      c.File,
			Destination: c.File,
			Message:     fmt.Sprintf("%s is unchanged", c.File),
		}, nil
	}

	folder := domain.FolderOf(c.File)
	var existsErr error
	destination := domain.AvailablePath(folder, newName, func(candidate string) bool {
		ok, err := c.vault.Exists(candidate)
		if err != nil {
			existsErr = err
		}
		return ok
	})
	if existsErr != nil {
		return nil, fmt.Errorf("failed to check destination: %w", existsErr)
	}

	if err := c.vault.Rename(c.File, destination); err != nil {
		return nil, fmt.Errorf("failed to rename: %w", err)
	}

	c.record(destination)

	return &PrefixResult{
		Source:      c.File,
		Destination: destination,
		Changed:     true,
		Message:     fmt.Sprintf("Renamed to %s", destination),
	}, nil
}

func (c *PrefixCommand) record(destination string) {
	if c.history == nil {
		return
	}
	kind := domain.OpPrefix
	if c.Strip {
		kind = domain.OpStrip
	}
	_ = c.history.Record(domain.Operation{
		Kind:        kind,
		Source:      c.File,
		Destination: destination,
		At:          c.now(),
	})
}
