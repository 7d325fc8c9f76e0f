package ports

import "shelf/internal/domain"

// SettingsStore persists shelf settings. The storage format is opaque to
// callers; Load returns defaults when nothing has been saved yet.
type SettingsStore interface {
	Load() (*domain.Settings, error)
	Save(settings *domain.Settings) error
}
