// Package server exposes an optional Prometheus metrics endpoint for long
// or repeated benchmark sessions.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics aggregates the benchmark counters exported at /metrics.
type Metrics struct {
	registry   *prometheus.Registry
	handler    http.Handler
	iterations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	mismatches prometheus.Counter
}

// NewMetrics creates the metric set on a private registry, alongside the
// standard Go runtime collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fieldbench_iterations_total",
			Help: "Total multiplication iterations executed, per strategy.",
		}, []string{"strategy"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fieldbench_run_duration_seconds",
			Help:    "Wall-clock duration of timed benchmark runs, per strategy.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"strategy"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fieldbench_mismatches_total",
			Help: "Cross-strategy result mismatches detected.",
		}),
	}

	registry.MustRegister(
		m.iterations,
		m.duration,
		m.mismatches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// ObserveRun records a completed timed run for a strategy.
func (m *Metrics) ObserveRun(strategy string, iterations uint64, seconds float64) {
	m.iterations.WithLabelValues(strategy).Add(float64(iterations))
	m.duration.WithLabelValues(strategy).Observe(seconds)
}

// ObserveMismatch records a cross-strategy divergence.
func (m *Metrics) ObserveMismatch() {
	m.mismatches.Inc()
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
