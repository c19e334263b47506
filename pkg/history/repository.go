package history

import (
	"context"
	"path/filepath"

	"github.com/bft-labs/radix/internal/adapters/fs"
	"github.com/bft-labs/radix/internal/adapters/sqlite"
	"github.com/bft-labs/radix/internal/domain"
	"github.com/bft-labs/radix/internal/ports"
)

// Repository persists the history as one durable record.
type Repository = ports.HistoryRepository

// Watcher is implemented by repositories that report external changes.
type Watcher = ports.HistoryWatcher

// History is the most-recent-first log of conversions.
type History = domain.History

// ConversionRecord is one entry of a History.
type ConversionRecord = domain.ConversionRecord

// StorageError wraps a failed load, save or clear.
type StorageError = domain.StorageError

// MaxEntries is the maximum length of a History.
const MaxEntries = domain.MaxHistory

// FileRepository stores the history as a JSON file.
type FileRepository = fs.HistoryFileRepository

// SQLiteRepository stores the history in a SQLite key/value table.
type SQLiteRepository = sqlite.HistoryRepository

// NewFileRepository returns a repository writing conversion-history.json in dir.
func NewFileRepository(dir string) *FileRepository {
	return fs.NewHistoryFileRepository(dir)
}

// OpenSQLiteRepository opens history.db in dir. Close it when done.
func OpenSQLiteRepository(ctx context.Context, dir string) (*SQLiteRepository, error) {
	return sqlite.Open(ctx, filepath.Join(dir, sqlite.DatabaseFileName))
}
