// Package observability provides operation-level metrics for the arena
// service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-operation outcomes and latency.
type Metrics interface {
	RecordOperationAttempt(operation string)
	RecordOperationSuccess(operation string)
	RecordOperationFailure(operation string)
	RecordOperationDuration(operation string, d time.Duration)
}

// PrometheusMetrics implements Metrics on a prometheus registry.
type PrometheusMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the arena collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "operation_attempts_total",
			Help:      "Number of attempted arena operations.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "operation_successes_total",
			Help:      "Number of successful arena operations.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "operation_failures_total",
			Help:      "Number of failed arena operations.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "arena",
			Name:      "operation_duration_seconds",
			Help:      "Latency of arena operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(m.attempts, m.successes, m.failures, m.durations)
	return m
}

func (m *PrometheusMetrics) RecordOperationAttempt(operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(operation string, d time.Duration) {
	m.durations.WithLabelValues(operation).Observe(d.Seconds())
}

// Noop discards all measurements.
type Noop struct{}

func (Noop) RecordOperationAttempt(string)                 {}
func (Noop) RecordOperationSuccess(string)                 {}
func (Noop) RecordOperationFailure(string)                 {}
func (Noop) RecordOperationDuration(string, time.Duration) {}
