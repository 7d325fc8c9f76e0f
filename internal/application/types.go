package application

import "shelf/internal/domain"

// Re-export domain types for use by adapters
type (
	Mapping   = domain.Mapping
	Settings  = domain.Settings
	Operation = domain.Operation
)

// CleanFolder normalizes a vault-relative folder path
func CleanFolder(folder string) (string, error) {
	return domain.CleanFolder(folder)
}
