// Package metrics exposes prometheus counters for rate update runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "valetfx"

// Metrics is safe to use as a nil pointer, every method is then a no-op
type Metrics struct {
	RatesUpdatedTotal *prometheus.CounterVec
	RateFailuresTotal *prometheus.CounterVec
	SkippedTotal      *prometheus.CounterVec
	FetchDuration     *prometheus.HistogramVec
	LastRate          *prometheus.GaugeVec
}

// New registers the metrics in reg. Pass prometheus.DefaultRegisterer to expose them globally
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RatesUpdatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rates_updated_total",
				Help:      "Number of rates forwarded to the sink",
			},
			[]string{"currency"},
		),
		RateFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_failures_total",
				Help:      "Number of currencies that failed to update, by reason",
			},
			[]string{"currency", "reason"},
		),
		SkippedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rates_skipped_total",
				Help:      "Number of currencies skipped on purpose",
			},
			[]string{"currency"},
		),
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Duration of monthly rate fetches",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"currency"},
		),
		LastRate: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_rate",
				Help:      "Last rate forwarded to the sink",
			},
			[]string{"currency"},
		),
	}
}

func (m *Metrics) Updated(currency string, rate float64) {
	if m == nil {
		return
	}
	m.RatesUpdatedTotal.WithLabelValues(currency).Inc()
	m.LastRate.WithLabelValues(currency).Set(rate)
}

func (m *Metrics) Failed(currency, reason string) {
	if m == nil {
		return
	}
	m.RateFailuresTotal.WithLabelValues(currency, reason).Inc()
}

func (m *Metrics) Skipped(currency string) {
	if m == nil {
		return
	}
	m.SkippedTotal.WithLabelValues(currency).Inc()
}

func (m *Metrics) ObserveFetch(currency string, started time.Time) {
	if m == nil {
		return
	}
	m.FetchDuration.WithLabelValues(currency).Observe(time.Since(started).Seconds())
}
