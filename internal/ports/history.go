package ports

import "shelf/internal/domain"

// History is an append-only audit log of executed vault operations.
type History interface {
	// Record appends one operation to the log.
	Record(op domain.Operation) error

	// Recent returns up to limit operations, newest first.
	Recent(limit int) ([]domain.Operation, error)

	Close() error
}
