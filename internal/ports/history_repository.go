package ports

import (
	"context"

	"github.com/bft-labs/radix/internal/domain"
)

// HistoryRepository persists the conversion history as one durable record.
type HistoryRepository interface {
	// Load retrieves the stored history.
	// Returns an empty history and nil error if no record exists.
	// Returns an error for read failures and for undecodable data.
	Load(ctx context.Context) (domain.History, error)

	// Save replaces the stored history. A reader never observes a partially
	// written record.
	Save(ctx context.Context, h domain.History) error

	// Remove deletes the record entirely. Removing a missing record is not an error.
	Remove(ctx context.Context) error
}

// HistoryWatcher is implemented by repositories that can report changes made
// to the record outside this process.
type HistoryWatcher interface {
	// Watch blocks until ctx is done, calling onChange after each change.
	// Calls to onChange are never concurrent.
	Watch(ctx context.Context, onChange func()) error
}
