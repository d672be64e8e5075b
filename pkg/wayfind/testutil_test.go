package wayfind

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test graph fixtures used across tests

// edge is the test edge value.
type edge struct {
	f, t int
}

// listGraph is an adjacency-list fixture over int nodes with optional
// float64 edge weights.
type listGraph struct {
	adj     map[int][]edge
	weights map[edge]float64
}

func newListGraph() *listGraph {
	return &listGraph{
		adj:     make(map[int][]edge),
		weights: make(map[edge]float64),
	}
}

// newGraph builds a fixture from unweighted (from, to) pairs.
func newGraph(pairs ...[2]int) *listGraph {
	g := newListGraph()
	for _, p := range pairs {
		g.add(p[0], p[1])
	}
	return g
}

func (g *listGraph) add(from, to int) *listGraph {
	return g.addWeighted(from, to, 1)
}

func (g *listGraph) addWeighted(from, to int, w float64) *listGraph {
	e := edge{f: from, t: to}
	g.adj[from] = append(g.adj[from], e)
	g.weights[e] = w
	return g
}

func (g *listGraph) Edges(n int) []edge { return g.adj[n] }
func (g *listGraph) From(e edge) int    { return e.f }
func (g *listGraph) To(e edge) int      { return e.t }

func (g *listGraph) cost(e edge) float64 { return g.weights[e] }

// actionGraph is a nondeterministic fixture: OR-nodes are states,
// AND-nodes are actions declared with addAction.
type actionGraph struct {
	*listGraph
	kinds map[int]NodeKind
}

func newActionGraph() *actionGraph {
	return &actionGraph{
		listGraph: newListGraph(),
		kinds:     make(map[int]NodeKind),
	}
}

func (g *actionGraph) addAction(state, action int, outcomes ...int) *actionGraph {
	g.kinds[action] = AndNode
	g.add(state, action)
	for _, o := range outcomes {
		g.add(action, o)
	}
	return g
}

func (g *actionGraph) Kind(n int) NodeKind { return g.kinds[n] }

// flakyGraph is a ContextGraph whose enumeration of one node fails a set
// number of times before succeeding, for exercising resumability.
type flakyGraph struct {
	g        Graph[int, edge]
	failNode int
	failErr  error
	failures int
}

func (f *flakyGraph) Edges(ctx context.Context, n int) iter.Seq2[edge, error] {
	return func(yield func(edge, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(edge{}, err)
			return
		}
		if n == f.failNode && f.failures > 0 {
			f.failures--
			yield(edge{}, f.failErr)
			return
		}
		for _, e := range f.g.Edges(n) {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func (f *flakyGraph) From(e edge) int { return e.f }
func (f *flakyGraph) To(e edge) int   { return e.t }

// stepAll drives a search to conclusion, returning the traversed edges in
// order.
func stepAll[N comparable, E comparable](t *testing.T, s Search[N, E]) []E {
	t.Helper()
	var edges []E
	for !s.Concluded() {
		e, err := s.Step(context.Background())
		require.NoError(t, err)
		edges = append(edges, e)
		require.LessOrEqual(t, len(edges), 10_000, "search did not conclude")
	}
	return edges
}

// finalizedNodes returns the nodes of v that are no longer pending.
func finalizedNodes[N comparable, E comparable](v Visited[N, E]) []N {
	var nodes []N
	for n, rec := range v {
		if !rec.Pending {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
