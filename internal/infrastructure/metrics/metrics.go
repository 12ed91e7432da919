// Package metrics provides Prometheus metrics for the wellbore-api service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
)

var (
	// RequestsTotal counts HTTP requests by route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wellbore",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration tracks HTTP request latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wellbore",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	// UsageIncrementsTotal mirrors the usage tracker counters.
	UsageIncrementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wellbore",
			Subsystem: "usage",
			Name:      "increments_total",
			Help:      "Total number of usage counter increments",
		},
		[]string{"metric"},
	)

	// UsageFlushesTotal counts snapshot writes by outcome.
	UsageFlushesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wellbore",
			Subsystem: "usage",
			Name:      "snapshot_flushes_total",
			Help:      "Total number of usage snapshot flush attempts",
		},
		[]string{"result"},
	)

	// UsageLoadsTotal counts snapshot loads by outcome.
	UsageLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wellbore",
			Subsystem: "usage",
			Name:      "snapshot_loads_total",
			Help:      "Total number of usage snapshot loads",
		},
		[]string{"result"},
	)

	// WellBoresStored reports the number of rows in the wellbore table.
	WellBoresStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "wellbore",
			Subsystem: "store",
			Name:      "wellbores",
			Help:      "Number of stored wellbores",
		},
	)
)

// UsageRecorder exports usage tracker activity.
type UsageRecorder struct{}

var _ usage.Recorder = UsageRecorder{}

func (UsageRecorder) RecordIncrement(metric usage.Metric) {
	UsageIncrementsTotal.WithLabelValues(string(metric)).Inc()
}

func (UsageRecorder) RecordFlush(result string) {
	UsageFlushesTotal.WithLabelValues(result).Inc()
}

func (UsageRecorder) RecordLoad(result string) {
	UsageLoadsTotal.WithLabelValues(result).Inc()
}

// SetWellBoresStored records the current row count.
func SetWellBoresStored(count int64) {
	WellBoresStored.Set(float64(count))
}
