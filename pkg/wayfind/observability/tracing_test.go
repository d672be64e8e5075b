package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest creates a test tracer provider with an in-memory span recorder.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	// Rebind the package-level tracer to the test provider.
	tracer = otel.Tracer("wayfind")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}

	return exporter, cleanup
}

func TestStartSearchSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("creates span with correct name and attributes", func(t *testing.T) {
		ctx := context.Background()
		_, span := StartSearchSpan(ctx, "dijkstra", "search-123")
		require.NotNil(t, span)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, "wayfind.search", s.Name)

		var algorithm, searchID string
		for _, attr := range s.Attributes {
			switch attr.Key {
			case "search.algorithm":
				algorithm = attr.Value.AsString()
			case "search.id":
				searchID = attr.Value.AsString()
			}
		}
		assert.Equal(t, "dijkstra", algorithm)
		assert.Equal(t, "search-123", searchID)
	})

	t.Run("returns context with span", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		newCtx, span := StartSearchSpan(ctx, "astar", "search-456")
		assert.NotEqual(t, ctx, newCtx)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
	})
}

func TestStartStepSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("creates step span", func(t *testing.T) {
		ctx := context.Background()
		_, span := StartStepSpan(ctx, "breadth-first")
		require.NotNil(t, span)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, "wayfind.step", s.Name)

		var algorithm string
		for _, attr := range s.Attributes {
			if attr.Key == "search.algorithm" {
				algorithm = attr.Value.AsString()
			}
		}
		assert.Equal(t, "breadth-first", algorithm)
	})

	t.Run("step spans are children of the search span", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		ctx, searchSpan := StartSearchSpan(ctx, "dijkstra", "search-1")

		_, stepSpan := StartStepSpan(ctx, "dijkstra")
		stepSpan.End()

		searchSpan.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 2)

		var stepData *tracetest.SpanStub
		for i := range spans {
			if spans[i].Name == "wayfind.step" {
				stepData = &spans[i]
				break
			}
		}
		require.NotNil(t, stepData)
		assert.True(t, stepData.Parent.IsValid())
	})
}

func TestEndSpanWithError(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("sets OK status for nil error", func(t *testing.T) {
		ctx := context.Background()
		_, span := StartSearchSpan(ctx, "dijkstra", "search-1")

		EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		assert.Equal(t, codes.Ok, spans[0].Status.Code)
		assert.Equal(t, "", spans[0].Status.Description)
	})

	t.Run("sets Error status and records error", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		_, span := StartSearchSpan(ctx, "dijkstra", "search-2")
		testErr := errors.New("something went wrong")

		EndSpanWithError(span, testErr)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, codes.Error, s.Status.Code)
		assert.Equal(t, "something went wrong", s.Status.Description)

		require.NotEmpty(t, s.Events)
		found := false
		for _, event := range s.Events {
			if event.Name == "exception" {
				found = true
			}
		}
		assert.True(t, found, "Expected exception event")
	})

	t.Run("nil span does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			EndSpanWithError(nil, nil)
		})
		assert.NotPanics(t, func() {
			EndSpanWithError(nil, errors.New("test"))
		})
	})
}

func TestAddSpanEvent(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("adds event to current span", func(t *testing.T) {
		ctx := context.Background()
		ctx, span := StartSearchSpan(ctx, "astar", "search-1")

		AddSpanEvent(ctx, "goal_reached",
			attribute.String("node", "exit"),
			attribute.Int64("steps", 42),
		)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		require.NotEmpty(t, s.Events)

		var found bool
		for _, event := range s.Events {
			if event.Name == "goal_reached" {
				found = true
				var node string
				var steps int64
				for _, attr := range event.Attributes {
					switch attr.Key {
					case "node":
						node = attr.Value.AsString()
					case "steps":
						steps = attr.Value.AsInt64()
					}
				}
				assert.Equal(t, "exit", node)
				assert.Equal(t, int64(42), steps)
			}
		}
		assert.True(t, found, "Expected to find goal_reached event")
	})

	t.Run("no panic with no current span", func(t *testing.T) {
		ctx := context.Background()
		assert.NotPanics(t, func() {
			AddSpanEvent(ctx, "test_event")
		})
	})
}

func TestSpanManager_Interface(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()
	require.NotNil(t, sm)

	t.Run("StartSearchSpan via interface", func(t *testing.T) {
		ctx := context.Background()
		_, span := sm.StartSearchSpan(ctx, "dijkstra", "search-if")
		require.NotNil(t, span)

		sm.EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.NotEmpty(t, spans)
	})

	t.Run("StartStepSpan via interface", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		_, span := sm.StartStepSpan(ctx, "dijkstra")
		require.NotNil(t, span)

		sm.EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.NotEmpty(t, spans)
		assert.Equal(t, "wayfind.step", spans[0].Name)
	})

	t.Run("AddSpanEvent via interface", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		ctx, span := sm.StartSearchSpan(ctx, "dijkstra", "search-1")

		sm.AddSpanEvent(ctx, "custom_event", attribute.String("key", "value"))

		sm.EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.NotEmpty(t, spans)
		require.NotEmpty(t, spans[0].Events)
	})
}

func TestOtelSpanManager_EndSpanWithError_Scenarios(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := &otelSpanManager{}

	t.Run("wrapped error message is preserved", func(t *testing.T) {
		ctx := context.Background()
		_, span := sm.StartSearchSpan(ctx, "dijkstra", "search-1")

		wrappedErr := errors.New("wrapped: inner error")
		sm.EndSpanWithError(span, wrappedErr)

		spans := exporter.GetSpans()
		require.NotEmpty(t, spans)
		assert.Contains(t, spans[0].Status.Description, "wrapped: inner error")
	})
}
