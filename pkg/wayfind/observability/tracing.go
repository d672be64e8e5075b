package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the wayfind tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("wayfind")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartSearchSpan starts a span covering a search run to conclusion.
	// Returns the context with span and the span itself.
	StartSearchSpan(ctx context.Context, algorithm, searchID string) (context.Context, trace.Span)

	// StartStepSpan starts a span for a single expansion step.
	// The step span should be a child of the search span.
	StartStepSpan(ctx context.Context, algorithm string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartSearchSpan starts a span covering a search run.
func (m *otelSpanManager) StartSearchSpan(ctx context.Context, algorithm, searchID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "wayfind.search",
		trace.WithAttributes(
			attribute.String("search.algorithm", algorithm),
			attribute.String("search.id", searchID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartStepSpan starts a span for a single expansion step.
func (m *otelSpanManager) StartStepSpan(ctx context.Context, algorithm string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "wayfind.step",
		trace.WithAttributes(
			attribute.String("search.algorithm", algorithm),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartSearchSpan starts a span covering a search run.
// Uses the global OTel tracer.
func StartSearchSpan(ctx context.Context, algorithm, searchID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "wayfind.search",
		trace.WithAttributes(
			attribute.String("search.algorithm", algorithm),
			attribute.String("search.id", searchID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartStepSpan starts a span for a single expansion step.
// Uses the global OTel tracer.
func StartStepSpan(ctx context.Context, algorithm string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "wayfind.step",
		trace.WithAttributes(
			attribute.String("search.algorithm", algorithm),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
