// Package observability provides opt-in observability for wayfind
// searches: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry or Prometheus
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds search context to a logger.
// Returns a new logger with search_id and algorithm fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "search-123", "dijkstra")
//	enriched.Info("doing work") // includes search_id, algorithm
func EnrichLogger(logger *slog.Logger, searchID, algorithm string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("search_id", searchID),
		slog.String("algorithm", algorithm),
	)
}

// LogSearchStart logs the construction of a search.
func LogSearchStart(logger *slog.Logger, searchID, algorithm string) {
	if logger == nil {
		return
	}
	logger.Info("search starting",
		slog.String("search_id", searchID),
		slog.String("algorithm", algorithm),
	)
}

// LogStep logs one completed expansion.
func LogStep(logger *slog.Logger, searchID string, step int, edge any) {
	if logger == nil {
		return
	}
	logger.Debug("step completed",
		slog.String("search_id", searchID),
		slog.Int("step", step),
		slog.Any("edge", edge),
	)
}

// LogStepError logs a failed step attempt. The search itself is left
// resumable, so this is a warning rather than an error.
func LogStepError(logger *slog.Logger, searchID string, step int, err error) {
	if logger == nil {
		return
	}
	logger.Warn("step failed",
		slog.String("search_id", searchID),
		slog.Int("step", step),
		slog.String("error", err.Error()),
	)
}

// LogConcluded logs a search reaching a terminal status.
func LogConcluded(logger *slog.Logger, searchID, status string, steps int) {
	if logger == nil {
		return
	}
	logger.Info("search concluded",
		slog.String("search_id", searchID),
		slog.String("status", status),
		slog.Int("steps", steps),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
