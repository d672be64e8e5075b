package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatherMetric finds a metric family by name in a registry's output.
func gatherMetric(t *testing.T, registry *prometheus.Registry, name string) *dto.MetricFamily {
	families, err := registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

// labelValue extracts a label value from a metric.
func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

func TestNewPrometheusMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPrometheusMetrics(registry)
	require.NotNil(t, m)

	// All instruments register eagerly; before any observation the
	// registry has no series yet.
	families, err := registry.Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}

func TestPrometheusMetrics_RecordStep(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPrometheusMetrics(registry)

	ctx := context.Background()

	m.RecordStep(ctx, "dijkstra", 2*time.Millisecond, nil)
	m.RecordStep(ctx, "dijkstra", time.Millisecond, nil)
	m.RecordStep(ctx, "dijkstra", time.Millisecond, errors.New("boom"))

	steps := gatherMetric(t, registry, "wayfind_steps_total")
	require.NotNil(t, steps)

	counts := map[string]float64{}
	for _, metric := range steps.GetMetric() {
		counts[labelValue(metric, "outcome")] = metric.GetCounter().GetValue()
	}
	assert.Equal(t, 2.0, counts["success"])
	assert.Equal(t, 1.0, counts["error"])

	latency := gatherMetric(t, registry, "wayfind_step_latency_ms")
	require.NotNil(t, latency)
	require.NotEmpty(t, latency.GetMetric())
	assert.Equal(t, uint64(3), latency.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestPrometheusMetrics_RecordSearch(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPrometheusMetrics(registry)

	ctx := context.Background()

	m.RecordSearch(ctx, "astar", "completed", 100*time.Millisecond, 40)
	m.RecordSearch(ctx, "astar", "failed", 50*time.Millisecond, 12)

	searches := gatherMetric(t, registry, "wayfind_searches_total")
	require.NotNil(t, searches)

	counts := map[string]float64{}
	for _, metric := range searches.GetMetric() {
		counts[labelValue(metric, "status")] = metric.GetCounter().GetValue()
	}
	assert.Equal(t, 1.0, counts["completed"])
	assert.Equal(t, 1.0, counts["failed"])

	expansions := gatherMetric(t, registry, "wayfind_search_expansions")
	require.NotNil(t, expansions)
	require.NotEmpty(t, expansions.GetMetric())
	assert.Equal(t, uint64(2), expansions.GetMetric()[0].GetHistogram().GetSampleCount())
	assert.Equal(t, 52.0, expansions.GetMetric()[0].GetHistogram().GetSampleSum())
}

func TestPrometheusMetrics_RecordFrontier(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewPrometheusMetrics(registry)

	m.RecordFrontier(context.Background(), "breadth-first", 8)
	m.RecordFrontier(context.Background(), "breadth-first", 16)

	frontier := gatherMetric(t, registry, "wayfind_frontier_size")
	require.NotNil(t, frontier)
	require.NotEmpty(t, frontier.GetMetric())

	hist := frontier.GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(2), hist.GetSampleCount())
	assert.Equal(t, 24.0, hist.GetSampleSum())
	assert.Equal(t, "breadth-first", labelValue(frontier.GetMetric()[0], "algorithm"))
}
