package history

import (
	"context"
	"fmt"

	"github.com/bft-labs/radix/internal/domain"
	"github.com/bft-labs/radix/pkg/log"
)

// Store applies the history policy on top of a Repository.
// It holds no state of its own; callers keep the current History.
type Store struct {
	repo   Repository
	logger log.Logger
}

// NewStore creates a Store. A nil logger discards messages.
func NewStore(repo Repository, logger log.Logger) *Store {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Store{repo: repo, logger: logger}
}

// Load reads the durable record. A missing record yields an empty History.
// Read and decode failures are logged and also yield an empty History.
func (s *Store) Load(ctx context.Context) History {
	h, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("history unreadable, starting empty", log.Err(err))
		return History{}
	}
	if len(h) > MaxEntries {
		s.logger.Warn("stored history exceeds cap, truncating",
			log.Int("entries", len(h)), log.Int("cap", MaxEntries))
		h = h.Truncate()
	}
	s.logger.Debug("history loaded", log.Int("entries", len(h)))
	return h
}

// Record returns existing with rec prepended, capped at MaxEntries.
// It does not persist anything.
func (s *Store) Record(existing History, rec ConversionRecord) History {
	return existing.Record(rec)
}

// Persist replaces the durable record with h.
func (s *Store) Persist(ctx context.Context, h History) error {
	if err := s.repo.Save(ctx, h.Truncate()); err != nil {
		s.logger.Error("failed to save history", log.Err(err))
		return &StorageError{Op: "save", Err: err}
	}
	s.logger.Debug("history saved", log.Int("entries", len(h)))
	return nil
}

// Clear removes the durable record entirely.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Remove(ctx); err != nil {
		s.logger.Error("failed to clear history", log.Err(err))
		return &StorageError{Op: "clear", Err: err}
	}
	s.logger.Info("history cleared")
	return nil
}

// Watch calls fn with the reloaded history each time the durable record is
// changed by another process. It blocks until ctx is done.
// Returns domain.ErrWatchUnsupported if the repository cannot be watched.
func (s *Store) Watch(ctx context.Context, fn func(History)) error {
	w, ok := s.repo.(Watcher)
	if !ok {
		return domain.ErrWatchUnsupported
	}
	if err := w.Watch(ctx, func() { fn(s.Load(ctx)) }); err != nil {
		return fmt.Errorf("watch history: %w", err)
	}
	return nil
}
