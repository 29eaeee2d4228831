// Package metrics records speed calculations as Prometheus metrics.
package metrics

import (
	"errors"
	"net/http"
	"time"

	apperrors "github.com/agbru/parrotcalc/internal/errors"
	"github.com/agbru/parrotcalc/internal/parrot"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSuccess        = "success"
	OutcomeUnknownVariant = "unknown_variant"
	OutcomeError          = "error"
)

// unknownLabel replaces the variant label for values outside the enumeration
// so arbitrary integers cannot grow label cardinality.
const unknownLabel = "unknown"

// SpeedMetrics implements parrot.SpeedObserver. It owns a registry rather
// than using the global one, so several instances can coexist in a process
// or a test binary.
type SpeedMetrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	speed        *prometheus.GaugeVec
	duration     *prometheus.HistogramVec
}

// NewSpeedMetrics creates the collectors under namespace and registers them,
// together with the Go runtime and process collectors, on a fresh registry.
func NewSpeedMetrics(namespace string) *SpeedMetrics {
	m := &SpeedMetrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "speed_calculations_total",
				Help:      "Count of parrot speed calculations by variant and outcome.",
			},
			[]string{"variant", "outcome"},
		),
		speed: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_speed",
				Help:      "Most recent successfully computed speed per variant.",
			},
			[]string{"variant"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "speed_calculation_duration_seconds",
				Help:      "Time spent computing a parrot speed.",
				Buckets:   prometheus.ExponentialBuckets(1e-8, 10, 6),
			},
			[]string{"variant"},
		),
	}
	m.registry.MustRegister(
		m.calculations,
		m.speed,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records one calculation.
func (m *SpeedMetrics) Observe(v parrot.Variant, speed float64, elapsed time.Duration, err error) {
	label := unknownLabel
	if v.Valid() {
		label = v.String()
	}

	switch {
	case err == nil:
		m.calculations.WithLabelValues(label, OutcomeSuccess).Inc()
		m.speed.WithLabelValues(label).Set(speed)
		m.duration.WithLabelValues(label).Observe(elapsed.Seconds())
	case errors.Is(err, apperrors.ErrUnknownVariant):
		m.calculations.WithLabelValues(label, OutcomeUnknownVariant).Inc()
	default:
		m.calculations.WithLabelValues(label, OutcomeError).Inc()
	}
}

// Registry returns the registry holding every collector.
func (m *SpeedMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registry in the Prometheus
// text format, for embedders that serve a metrics endpoint.
func (m *SpeedMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
