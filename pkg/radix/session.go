package radix

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bft-labs/radix/internal/domain"
	"github.com/bft-labs/radix/internal/ports"
	"github.com/bft-labs/radix/pkg/convert"
	"github.com/bft-labs/radix/pkg/history"
	"github.com/bft-labs/radix/pkg/log"
)

// Session converts numerals and keeps the persisted history of conversions.
// Use New() to create one and Load() once at startup.
type Session struct {
	config Config
	locale domain.Locale
	store  *history.Store
	closer io.Closer
	clock  ports.Clock
	logger log.Logger
	events EventHandler

	mu      sync.Mutex
	history domain.History
	loaded  bool
}

// New creates a Session with the given configuration.
// Returns an error if the configuration is invalid or the backend cannot be opened.
func New(cfg Config, opts ...Option) (*Session, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	locale, err := domain.LookupLocale(cfg.Locale)
	if err != nil {
		return nil, err
	}

	repo := o.repository
	var closer io.Closer
	if repo == nil {
		repo, closer, err = openBackend(cfg)
		if err != nil {
			return nil, err
		}
	}

	events := o.eventHandler
	if events == nil {
		events = BaseEventHandler{}
	}

	return &Session{
		config:  cfg,
		locale:  locale,
		store:   history.NewStore(repo, o.logger),
		closer:  closer,
		clock:   o.clock,
		logger:  o.logger,
		events:  events,
		history: domain.History{},
	}, nil
}

func openBackend(cfg Config) (history.Repository, io.Closer, error) {
	switch cfg.Backend {
	case BackendSQLite:
		repo, err := history.OpenSQLiteRepository(context.Background(), cfg.HistoryDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open history database: %w", err)
		}
		return repo, repo, nil
	default:
		return history.NewFileRepository(cfg.HistoryDir), nil, nil
	}
}

// Load reads the persisted history into memory and returns it.
// It never fails: a missing or unreadable record yields an empty history.
func (s *Session) Load(ctx context.Context) History {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(ctx)
	return s.history.Clone()
}

func (s *Session) loadLocked(ctx context.Context) {
	s.history = s.store.Load(ctx)
	s.loaded = true
	s.logger.Info("history loaded", log.Int("entries", len(s.history)))
	s.events.OnHistoryChanged(HistoryChangedEvent{Reason: "loaded", Size: len(s.history)})
}

// Convert converts input from one base to another and records the result.
//
// Rejected input returns the validation error and leaves the history alone.
// On success the record is prepended to the in-memory history and the whole
// history is saved. If saving fails, Convert returns the record together with
// a *StorageError: the conversion stands and stays in memory for the session.
func (s *Session) Convert(ctx context.Context, input string, from, to Base) (ConversionRecord, error) {
	output, err := convert.Convert(input, from, to)
	if err != nil {
		s.logger.Debug("conversion rejected",
			log.String("input", input),
			log.Int("from", int(from)),
			log.Int("to", int(to)),
			log.Err(err))
		s.events.OnConversionError(ConversionErrorEvent{Input: input, From: from, To: to, Err: err})
		return ConversionRecord{}, err
	}

	rec := domain.NewConversionRecord(input, from, output, to, s.clock.Now(), s.locale)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loadLocked(ctx)
	}
	s.history = s.store.Record(s.history, rec)

	perr := s.store.Persist(ctx, s.history)
	s.events.OnConversion(ConversionEvent{Record: rec, HistorySize: len(s.history), Saved: perr == nil})
	if perr != nil {
		s.emitStorageError(perr)
		return rec, perr
	}

	s.logger.Debug("conversion recorded",
		log.String("input", rec.Input),
		log.String("output", rec.Output),
		log.Int("entries", len(s.history)))
	return rec, nil
}

// History returns a copy of the in-memory history, most recent first.
func (s *Session) History() History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Clone()
}

// ClearHistory removes the persisted history. The in-memory history is
// emptied only when the removal succeeds.
func (s *Session) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.emitStorageError(err)
		return err
	}
	s.history = domain.History{}
	s.loaded = true
	s.events.OnHistoryChanged(HistoryChangedEvent{Reason: "cleared", Size: 0})
	return nil
}

// Watch follows changes made to the persisted history by other processes,
// replacing the in-memory history and calling fn with a copy each time.
// It blocks until ctx is done. Returns ErrWatchUnsupported for backends that
// cannot be watched.
func (s *Session) Watch(ctx context.Context, fn func(History)) error {
	return s.store.Watch(ctx, func(h domain.History) {
		s.mu.Lock()
		s.history = h
		s.loaded = true
		s.events.OnHistoryChanged(HistoryChangedEvent{Reason: "reloaded", Size: len(h)})
		s.mu.Unlock()

		if fn != nil {
			fn(h.Clone())
		}
	})
}

// Config returns the effective configuration.
func (s *Session) Config() Config {
	return s.config
}

// Close releases the storage backend if the session opened it.
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *Session) emitStorageError(err error) {
	op := "unknown"
	var se *domain.StorageError
	if errors.As(err, &se) {
		op = se.Op
	}
	s.events.OnStorageError(StorageErrorEvent{Op: op, Err: err})
}
