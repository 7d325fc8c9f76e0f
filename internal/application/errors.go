package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrMappingNotFound = errors.New("mapping not found")
	ErrNotAFile        = errors.New("not a file")
	ErrInvalidFolder   = errors.New("invalid folder path")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ShelveError represents a failure to shelve a file through a mapping
type ShelveError struct {
	File      string
	MappingID string
	Reason    string
}

func (e *ShelveError) Error() string {
	if e.MappingID == "" {
		return fmt.Sprintf("cannot shelve %s: %s", e.File, e.Reason)
	}
	return fmt.Sprintf("cannot shelve %s via %s: %s", e.File, e.MappingID, e.Reason)
}

// MappingError represents a failure to edit the mapping collection
type MappingError struct {
	ID     string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s: %s", e.ID, e.Reason)
}
