// Package sqlitekv stores the audit document in a local SQLite database
// used as a single-key key-value store. The whole document is written as
// one JSON value; there are no partial-field writes.
package sqlitekv

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/errors"

	_ "modernc.org/sqlite"
)

// DocumentKey is the single key the audit document lives under.
const DocumentKey = "caio-workflow-audit"

// Repository defines the interface for document storage operations
type Repository interface {
	// Read returns the stored document bytes. The boolean is false when
	// no document has been stored yet.
	Read(ctx context.Context) ([]byte, bool, error)

	// Write replaces the stored document with the given bytes.
	Write(ctx context.Context, data []byte) error

	// Delete removes the stored document. Deleting an absent document is
	// not an error.
	Delete(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db  *sql.DB
	key string
}

// New creates a new SQLite-backed document repository at the given path.
// Pass ":memory:" for an in-memory store (used in tests).
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db, key: DocumentKey}, nil
}

// createSchema creates the audit_state table if it does not exist.
func createSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS audit_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`

	if _, err := db.Exec(query); err != nil {
		return errors.NewStorageError("create schema", err)
	}
	return nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Read returns the stored document bytes, or false when absent.
func (r *SQLiteRepository) Read(ctx context.Context) ([]byte, bool, error) {
	query := `
	SELECT value
	FROM audit_state
	WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, r.key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.NewStorageError("read document", err)
	}
	return []byte(value), true, nil
}

// Write replaces the stored document in a single upsert. Quota-style
// failures are classified separately from other write failures.
func (r *SQLiteRepository) Write(ctx context.Context, data []byte) error {
	query := `
	INSERT INTO audit_state (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query, r.key, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		if isQuotaError(err) {
			return errors.NewQuotaError(err)
		}
		return errors.NewStorageError("write document", err)
	}
	return nil
}

// Delete removes the stored document.
func (r *SQLiteRepository) Delete(ctx context.Context) error {
	query := `
	DELETE FROM audit_state
	WHERE key = ?`

	if _, err := r.db.ExecContext(ctx, query, r.key); err != nil {
		return errors.NewStorageError("delete document", err)
	}
	return nil
}

// isQuotaError identifies write failures caused by exhausted storage, by
// error message pattern. SQLite reports these as SQLITE_FULL.
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database or disk is full") ||
		strings.Contains(msg, "sqlite_full") ||
		strings.Contains(msg, "disk full")
}
