package simple

import (
	"github.com/wayfindlabs/wayfind/pkg/wayfind"
)

// Weighted is an adjacency-list graph whose edges carry float64 costs.
// The zero value is not usable; use NewWeighted.
type Weighted[N comparable] struct {
	adj     map[N][]Edge[N]
	weights map[Edge[N]]float64
}

// Compile-time contract check.
var _ wayfind.Graph[int, Edge[int]] = (*Weighted[int])(nil)

// NewWeighted creates an empty weighted graph.
func NewWeighted[N comparable]() *Weighted[N] {
	return &Weighted[N]{
		adj:     make(map[N][]Edge[N]),
		weights: make(map[Edge[N]]float64),
	}
}

// Add inserts a directed edge from→to with the given cost and returns it.
// Re-adding an existing edge replaces its cost.
func (g *Weighted[N]) Add(from, to N, cost float64) Edge[N] {
	e := Edge[N]{F: from, T: to}
	if _, have := g.weights[e]; !have {
		g.adj[from] = append(g.adj[from], e)
	}
	g.weights[e] = cost
	return e
}

// AddBoth inserts edges in both directions with the same cost.
func (g *Weighted[N]) AddBoth(a, b N, cost float64) (Edge[N], Edge[N]) {
	return g.Add(a, b, cost), g.Add(b, a, cost)
}

// Edges returns the outbound edges of n in insertion order. The returned
// slice is owned by the graph; callers must not modify it.
func (g *Weighted[N]) Edges(n N) []Edge[N] {
	return g.adj[n]
}

// From returns the node e leaves.
func (g *Weighted[N]) From(e Edge[N]) N { return e.F }

// To returns the node e enters.
func (g *Weighted[N]) To(e Edge[N]) N { return e.T }

// Cost returns the cost of e, or 0 if e is not in the graph.
func (g *Weighted[N]) Cost(e Edge[N]) float64 {
	return g.weights[e]
}

// CostFunc returns the graph's cost lookup in the shape informed searches
// consume.
func (g *Weighted[N]) CostFunc() wayfind.CostFunc[Edge[N], float64] {
	return g.Cost
}
