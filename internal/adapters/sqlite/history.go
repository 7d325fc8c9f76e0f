package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shelf/internal/domain"
	"shelf/internal/ports"

	_ "modernc.org/sqlite"
)

// History implements ports.History using SQLite
type History struct {
	db     *sql.DB
	dbPath string
}

// Ensure History implements ports.History
var _ ports.History = (*History)(nil)

// NewHistory creates a new SQLite history log
func NewHistory() *History {
	return &History{}
}

// Open initializes the log for the given vault path
func (h *History) Open(vaultPath string) error {
	// Expand ~ in path
	if strings.HasPrefix(vaultPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	h.dbPath = filepath.Join(vaultPath, ".shelf", "history.db")

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(h.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", h.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	h.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS operations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			source TEXT NOT NULL,
			destination TEXT NOT NULL,
			mapping_id TEXT NOT NULL DEFAULT '',
			at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_operations_at ON operations(at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Record appends one operation to the log
func (h *History) Record(op domain.Operation) error {
	_, err := h.db.Exec(
		`INSERT INTO operations (kind, source, destination, mapping_id, at) VALUES (?, ?, ?, ?, ?)`,
		string(op.Kind), op.Source, op.Destination, op.MappingID, op.At.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record operation: %w", err)
	}
	return nil
}

// Recent returns up to limit operations, newest first
func (h *History) Recent(limit int) ([]domain.Operation, error) {
	rows, err := h.db.Query(
		`SELECT kind, source, destination, mapping_id, at
		 FROM operations ORDER BY at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		var op domain.Operation
		var kind string
		var at int64
		if err := rows.Scan(&kind, &op.Source, &op.Destination, &op.MappingID, &at); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		op.Kind = domain.OpKind(kind)
		op.At = time.Unix(at, 0)
		ops = append(ops, op)
	}
	return ops, rows.Err()
}
