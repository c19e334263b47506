package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/radix/internal/domain"
	"github.com/bft-labs/radix/internal/ports"
)

// HistoryFileName is the name of the durable history record.
const HistoryFileName = "conversion-history.json"

// HistoryFileRepository implements ports.HistoryRepository using a JSON file.
type HistoryFileRepository struct {
	dir string
}

// NewHistoryFileRepository creates a repository storing its record in dir.
func NewHistoryFileRepository(dir string) *HistoryFileRepository {
	return &HistoryFileRepository{dir: dir}
}

// Load retrieves the saved history from disk.
// Returns an empty history and nil error if no file exists.
func (r *HistoryFileRepository) Load(ctx context.Context) (domain.History, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return domain.History{}, nil
		}
		return domain.History{}, err
	}

	var h domain.History
	if err := json.Unmarshal(data, &h); err != nil {
		return domain.History{}, fmt.Errorf("decode %s: %w", HistoryFileName, err)
	}
	if h == nil {
		h = domain.History{}
	}
	return h, nil
}

// Save persists the history atomically (write to temp file, then rename).
func (r *HistoryFileRepository) Save(ctx context.Context, h domain.History) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}
	if h == nil {
		h = domain.History{}
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}

	tmp := r.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, r.Path()); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Remove deletes the history file. A missing file is not an error.
func (r *HistoryFileRepository) Remove(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(r.Path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the full path to the history file.
func (r *HistoryFileRepository) Path() string {
	return filepath.Join(r.dir, HistoryFileName)
}

// Dir returns the directory holding the history file.
func (r *HistoryFileRepository) Dir() string {
	return r.dir
}

var (
	_ ports.HistoryRepository = (*HistoryFileRepository)(nil)
	_ ports.HistoryWatcher    = (*HistoryFileRepository)(nil)
)
