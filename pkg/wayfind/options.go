package wayfind

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/wayfindlabs/wayfind/pkg/wayfind/observability"
	"github.com/wayfindlabs/wayfind/pkg/wayfind/watch"
)

// searchConfig holds per-search configuration shared by every algorithm.
type searchConfig struct {
	id      string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	watcher watch.Sink
}

// defaultSearchConfig returns the default search configuration: a fresh
// ID, no logger, no watcher, and the default metrics recorder.
func defaultSearchConfig() searchConfig {
	return searchConfig{
		id:      uuid.New().String(),
		metrics: observability.NewMetricsRecorder(),
	}
}

// Option configures a search at construction.
type Option func(*searchConfig)

// WithSearchID sets the search identifier used in logs, metrics, and
// events. Default: a random UUID.
func WithSearchID(id string) Option {
	return func(c *searchConfig) {
		if id != "" {
			c.id = id
		}
	}
}

// WithLogger enables structured logging of steps and conclusions.
// Default: no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *searchConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: the OpenTelemetry
// recorder on the global meter provider; use observability.NoopMetrics{}
// to disable.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *searchConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithWatcher streams step and conclusion events to w, typically a
// watch.Hub feeding a visualizer or debugger. Default: none.
func WithWatcher(w watch.Sink) Option {
	return func(c *searchConfig) {
		c.watcher = w
	}
}

// runConfig holds configuration for Run.
type runConfig struct {
	maxExpansions  int
	spans          observability.SpanManager
	tracingEnabled bool
}

// defaultRunConfig returns the default Run configuration.
func defaultRunConfig() runConfig {
	return runConfig{
		maxExpansions: 10000,
	}
}

// RunOption configures a Run call.
type RunOption func(*runConfig)

// WithMaxExpansions sets the maximum number of expansions a single Run
// call may perform. Default: 10000.
//
// This prevents runs over unbounded graphs from looping forever. If the
// search has not concluded when the limit is reached, Run returns a
// MaxExpansionsError and the search remains resumable.
func WithMaxExpansions(n int) RunOption {
	return func(c *runConfig) {
		if n > 0 {
			c.maxExpansions = n
		}
	}
}

// WithSpanManager wraps the Run call in a trace span.
func WithSpanManager(sm observability.SpanManager) RunOption {
	return func(c *runConfig) {
		if sm != nil {
			c.spans = sm
			c.tracingEnabled = true
		}
	}
}
