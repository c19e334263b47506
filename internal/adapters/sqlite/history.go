// Package sqlite stores the conversion history in a SQLite key/value table.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/bft-labs/radix/internal/domain"
	"github.com/bft-labs/radix/internal/ports"
)

// HistoryKey is the key of the row holding the serialized history.
const HistoryKey = "conversionHistory"

// DatabaseFileName is the database created inside a history directory.
const DatabaseFileName = "history.db"

var (
	ErrBusy   = errors.New("database is busy")
	ErrLocked = errors.New("database is locked")
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// HistoryRepository implements ports.HistoryRepository on a SQLite database.
type HistoryRepository struct {
	db  *sql.DB
	own bool
}

// Open opens (creating if needed) the database at path and prepares the schema.
// The returned repository owns the connection; call Close when done.
func Open(ctx context.Context, path string) (*HistoryRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite connection: %w", err)
	}
	// One writer; the history is tiny.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	r, err := NewHistoryRepository(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	r.own = true
	return r, nil
}

// NewHistoryRepository wraps an existing connection and prepares the schema.
func NewHistoryRepository(ctx context.Context, db *sql.DB) (*HistoryRepository, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", handleError(err))
	}
	return &HistoryRepository{db: db}, nil
}

// Load returns the stored history, or an empty one when no row exists.
func (r *HistoryRepository) Load(ctx context.Context) (domain.History, error) {
	const query = `SELECT value FROM kv WHERE key = ?`

	var value string
	if err := r.db.QueryRowContext(ctx, query, HistoryKey).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.History{}, nil
		}
		return domain.History{}, handleError(err)
	}

	var h domain.History
	if err := json.Unmarshal([]byte(value), &h); err != nil {
		return domain.History{}, fmt.Errorf("decode %s: %w", HistoryKey, err)
	}
	if h == nil {
		h = domain.History{}
	}
	return h, nil
}

// Save upserts the history row inside a transaction.
func (r *HistoryRepository) Save(ctx context.Context, h domain.History) error {
	if h == nil {
		h = domain.History{}
	}
	data, err := json.Marshal(h)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return handleError(err)
	}
	defer tx.Rollback()

	const query = `
	INSERT INTO kv(key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := tx.ExecContext(ctx, query, HistoryKey, string(data)); err != nil {
		return handleError(err)
	}
	return handleError(tx.Commit())
}

// Remove deletes the history row.
func (r *HistoryRepository) Remove(ctx context.Context) error {
	const query = `DELETE FROM kv WHERE key = ?`
	_, err := r.db.ExecContext(ctx, query, HistoryKey)
	return handleError(err)
}

// Close closes the connection if the repository opened it.
func (r *HistoryRepository) Close() error {
	if !r.own {
		return nil
	}
	return r.db.Close()
}

// handleError translates SQLite busy/locked codes to typed errors.
func handleError(err error) error {
	if err == nil {
		return nil
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY:
			return fmt.Errorf("%w: %v", ErrBusy, liteErr)
		case sqlite3.SQLITE_LOCKED:
			return fmt.Errorf("%w: %v", ErrLocked, liteErr)
		}
	}
	return err
}

var _ ports.HistoryRepository = (*HistoryRepository)(nil)
