package radix

import (
	"time"

	"github.com/bft-labs/radix/internal/ports"
	"github.com/bft-labs/radix/pkg/history"
	"github.com/bft-labs/radix/pkg/log"
)

// Logger is the interface for structured logging.
type Logger = log.Logger

// LogField represents a structured log field.
type LogField = log.Field

// Option configures optional behavior of a Session.
type Option func(*options)

type options struct {
	logger       log.Logger
	repository   history.Repository
	clock        ports.Clock
	eventHandler EventHandler
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
		clock:  ports.SystemClock,
	}
}

// WithLogger sets a custom logger. If not provided, nothing is logged.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRepository stores history in repo instead of the configured backend.
// The session does not close repo.
func WithRepository(repo history.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithClock sets the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = ports.ClockFunc(now)
		}
	}
}

// WithEventHandler sets a handler for session events.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}
