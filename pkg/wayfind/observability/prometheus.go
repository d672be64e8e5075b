package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics is a MetricsRecorder backed by Prometheus, for callers
// whose monitoring runs on a scrape model rather than OTel push.
//
// Metrics exposed (all namespaced "wayfind"):
//   - steps_total (counter): expansion steps, labeled algorithm, outcome.
//   - step_latency_ms (histogram): step latency, labeled algorithm.
//   - searches_total (counter): concluded searches, labeled algorithm, status.
//   - search_expansions (histogram): expansions per concluded search,
//     labeled algorithm.
//   - frontier_size (histogram): frontier size after each expansion,
//     labeled algorithm.
//
// Usage:
//
//	registry := prometheus.NewRegistry()
//	metrics := observability.NewPrometheusMetrics(registry)
//	search, _ := wayfind.NewDijkstra(g, src, goal, model, cost,
//	    wayfind.WithMetrics(metrics))
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
type PrometheusMetrics struct {
	steps       *prometheus.CounterVec
	stepLatency *prometheus.HistogramVec
	searches    *prometheus.CounterVec
	expansions  *prometheus.HistogramVec
	frontier    *prometheus.HistogramVec
}

// Compile-time interface check.
var _ MetricsRecorder = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates and registers all search metrics with the
// provided registry. A nil registry falls back to the default global
// registerer; a dedicated registry is recommended for isolation.
func NewPrometheusMetrics(registry prometheus.Registerer) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &PrometheusMetrics{
		steps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wayfind",
			Name:      "steps_total",
			Help:      "Expansion steps attempted.",
		}, []string{"algorithm", "outcome"}),
		stepLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wayfind",
			Name:      "step_latency_ms",
			Help:      "Expansion step latency in milliseconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500},
		}, []string{"algorithm"}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wayfind",
			Name:      "searches_total",
			Help:      "Searches that reached a terminal status.",
		}, []string{"algorithm", "status"}),
		expansions: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wayfind",
			Name:      "search_expansions",
			Help:      "Expansions performed by a concluded search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		frontier: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wayfind",
			Name:      "frontier_size",
			Help:      "Frontier size observed after each expansion.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
	}
}

// RecordStep records one expansion attempt.
func (m *PrometheusMetrics) RecordStep(_ context.Context, algorithm string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.steps.WithLabelValues(algorithm, outcome).Inc()
	m.stepLatency.WithLabelValues(algorithm).Observe(float64(duration.Microseconds()) / 1000)
}

// RecordSearch records a concluded search.
func (m *PrometheusMetrics) RecordSearch(_ context.Context, algorithm, status string, _ time.Duration, steps int) {
	m.searches.WithLabelValues(algorithm, status).Inc()
	m.expansions.WithLabelValues(algorithm).Observe(float64(steps))
}

// RecordFrontier records a frontier size observation.
func (m *PrometheusMetrics) RecordFrontier(_ context.Context, algorithm string, size int) {
	m.frontier.WithLabelValues(algorithm).Observe(float64(size))
}
