package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records search metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordStep records one expansion attempt with its duration and error
	// status. err is nil for a completed expansion.
	RecordStep(ctx context.Context, algorithm string, duration time.Duration, err error)

	// RecordSearch records a search reaching a terminal status.
	RecordSearch(ctx context.Context, algorithm, status string, duration time.Duration, steps int)

	// RecordFrontier records the frontier size observed after an expansion.
	RecordFrontier(ctx context.Context, algorithm string, size int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	steps         metric.Int64Counter
	stepLatency   metric.Float64Histogram
	stepErrors    metric.Int64Counter
	searches      metric.Int64Counter
	searchLatency metric.Float64Histogram
	expansions    metric.Int64Histogram
	frontierSize  metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("wayfind")

	steps, err := meter.Int64Counter("wayfind.step.count",
		metric.WithDescription("Number of expansion steps"),
	)
	if err != nil {
		return nil, err
	}

	stepLatency, err := meter.Float64Histogram("wayfind.step.latency_ms",
		metric.WithDescription("Expansion step latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	stepErrors, err := meter.Int64Counter("wayfind.step.errors",
		metric.WithDescription("Number of failed step attempts"),
	)
	if err != nil {
		return nil, err
	}

	searches, err := meter.Int64Counter("wayfind.search.count",
		metric.WithDescription("Number of concluded searches"),
	)
	if err != nil {
		return nil, err
	}

	searchLatency, err := meter.Float64Histogram("wayfind.search.latency_ms",
		metric.WithDescription("Search duration from construction to conclusion in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	expansions, err := meter.Int64Histogram("wayfind.search.expansions",
		metric.WithDescription("Expansions performed by a concluded search"),
	)
	if err != nil {
		return nil, err
	}

	frontierSize, err := meter.Int64Histogram("wayfind.frontier.size",
		metric.WithDescription("Frontier size observed after an expansion"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		steps:         steps,
		stepLatency:   stepLatency,
		stepErrors:    stepErrors,
		searches:      searches,
		searchLatency: searchLatency,
		expansions:    expansions,
		frontierSize:  frontierSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordStep records one expansion attempt.
func (m *otelMetrics) RecordStep(ctx context.Context, algorithm string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("algorithm", algorithm),
	}

	m.steps.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.stepLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.stepErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordSearch records a concluded search.
func (m *otelMetrics) RecordSearch(ctx context.Context, algorithm, status string, duration time.Duration, steps int) {
	attrs := []attribute.KeyValue{
		attribute.String("algorithm", algorithm),
		attribute.String("status", status),
	}
	m.searches.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.searchLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	m.expansions.Record(ctx, int64(steps), metric.WithAttributes(attrs...))
}

// RecordFrontier records a frontier size observation.
func (m *otelMetrics) RecordFrontier(ctx context.Context, algorithm string, size int) {
	attrs := []attribute.KeyValue{
		attribute.String("algorithm", algorithm),
	}
	m.frontierSize.Record(ctx, int64(size), metric.WithAttributes(attrs...))
}
