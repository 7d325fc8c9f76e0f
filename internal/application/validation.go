package application

import (
	"fmt"
	"strings"

	"shelf/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "mappingID" -> "mapping ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"mappingID": "mapping ID",
		"file":      "file path",
		"folder":    "folder",
		"name":      "name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateVaultPath checks that a path is a usable vault-relative file
// path: non-empty, no absolute prefix, no escape from the vault.
func ValidateVaultPath(fieldName, rel string) error {
	if err := ValidateRequired(fieldName, rel); err != nil {
		return err
	}

	rel = strings.TrimSpace(rel)
	if strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, "\\") {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("path must be vault-relative: %s", rel),
		}
	}
	if _, err := domain.CleanFolder(domain.FolderOf(rel)); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: err.Error(),
		}
	}
	return nil
}
