// Package simple provides in-memory graph implementations of the wayfind
// contracts: an adjacency-list graph, a weighted variant, and a
// nondeterministic action graph for AND-OR search.
//
// Edges are enumerated in insertion order, so searches over these graphs
// are fully deterministic. Each graph owns its adjacency state; there is
// no shared or global cache, and instances are independent.
//
// Graphs must not be mutated while a search over them is in progress.
package simple

import (
	"github.com/wayfindlabs/wayfind/pkg/wayfind"
)

// Edge connects two nodes. Edges are value types: two edges with the same
// endpoints are the same edge, so parallel edges collapse.
type Edge[N comparable] struct {
	F N
	T N
}

// Graph is an adjacency-list graph. The zero value is not usable; use New.
type Graph[N comparable] struct {
	adj map[N][]Edge[N]
}

// Compile-time contract check.
var _ wayfind.Graph[int, Edge[int]] = (*Graph[int])(nil)

// New creates an empty graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{adj: make(map[N][]Edge[N])}
}

// Add inserts a directed edge from→to and returns it. Re-adding an
// existing edge is a no-op.
func (g *Graph[N]) Add(from, to N) Edge[N] {
	e := Edge[N]{F: from, T: to}
	for _, have := range g.adj[from] {
		if have == e {
			return e
		}
	}
	g.adj[from] = append(g.adj[from], e)
	return e
}

// AddBoth inserts edges in both directions and returns them.
func (g *Graph[N]) AddBoth(a, b N) (Edge[N], Edge[N]) {
	return g.Add(a, b), g.Add(b, a)
}

// Edges returns the outbound edges of n in insertion order. The returned
// slice is owned by the graph; callers must not modify it.
func (g *Graph[N]) Edges(n N) []Edge[N] {
	return g.adj[n]
}

// From returns the node e leaves.
func (g *Graph[N]) From(e Edge[N]) N { return e.F }

// To returns the node e enters.
func (g *Graph[N]) To(e Edge[N]) N { return e.T }

// Len returns the number of nodes with at least one outbound edge.
func (g *Graph[N]) Len() int { return len(g.adj) }
