// Package metrics exposes Prometheus collectors for radix sessions.
package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bft-labs/radix/internal/domain"
	"github.com/bft-labs/radix/pkg/radix"
)

// Metrics holds the collectors and implements radix.EventHandler.
type Metrics struct {
	Conversions      *prometheus.CounterVec // successful conversions by from/to base
	ConversionErrors *prometheus.CounterVec // rejected conversions by reason
	StorageErrors    *prometheus.CounterVec // failed saves/clears by op
	HistorySize      prometheus.Gauge       // entries currently held in memory
}

// New registers the collectors on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radix_conversions_total",
				Help: "Total number of successful conversions by source and target base",
			},
			[]string{"from", "to"},
		),
		ConversionErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radix_conversion_errors_total",
				Help: "Total number of rejected conversions by reason",
			},
			[]string{"reason"},
		),
		StorageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radix_storage_errors_total",
				Help: "Total number of failed history writes by operation",
			},
			[]string{"op"},
		),
		HistorySize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "radix_history_size",
				Help: "Number of conversions currently held in the history",
			},
		),
	}
}

// OnConversion counts a successful conversion.
func (m *Metrics) OnConversion(e radix.ConversionEvent) {
	m.Conversions.WithLabelValues(strconv.Itoa(int(e.Record.FromBase)), strconv.Itoa(int(e.Record.ToBase))).Inc()
	m.HistorySize.Set(float64(e.HistorySize))
}

// OnConversionError counts a rejected conversion.
func (m *Metrics) OnConversionError(e radix.ConversionErrorEvent) {
	m.ConversionErrors.WithLabelValues(Reason(e.Err)).Inc()
}

// OnStorageError counts a failed save or clear.
func (m *Metrics) OnStorageError(e radix.StorageErrorEvent) {
	m.StorageErrors.WithLabelValues(e.Op).Inc()
}

// OnHistoryChanged tracks the history size.
func (m *Metrics) OnHistoryChanged(e radix.HistoryChangedEvent) {
	m.HistorySize.Set(float64(e.Size))
}

// Reason maps a conversion error to a short label value.
func Reason(err error) string {
	var digitErr *domain.InvalidDigitsError
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return "empty_input"
	case errors.As(err, &digitErr):
		return "invalid_digits"
	case errors.Is(err, domain.ErrOverflow):
		return "overflow"
	case errors.Is(err, domain.ErrUnsupportedBase):
		return "unsupported_base"
	case errors.Is(err, domain.ErrParseFailure):
		return "parse_failure"
	default:
		return "other"
	}
}

var _ radix.EventHandler = (*Metrics)(nil)
