package simple

import (
	"github.com/wayfindlabs/wayfind/pkg/wayfind"
)

// Nondet is an adjacency-list nondeterministic action graph: OR-nodes are
// states whose edges lead to AND-nodes (available actions); AND-nodes'
// edges lead back to OR-nodes (possible outcomes of that action).
//
// Nodes default to OrNode; actions are declared with AddAction, which
// creates the AND-node and its outcome edges in one call. The zero value
// is not usable; use NewNondet.
type Nondet[N comparable] struct {
	graph *Graph[N]
	kinds map[N]wayfind.NodeKind
}

// Compile-time contract check.
var _ wayfind.NondetGraph[int, Edge[int]] = (*Nondet[int])(nil)

// NewNondet creates an empty action graph.
func NewNondet[N comparable]() *Nondet[N] {
	return &Nondet[N]{
		graph: New[N](),
		kinds: make(map[N]wayfind.NodeKind),
	}
}

// AddAction declares that the state node has an available action,
// represented by the AND-node action, with the given possible outcome
// states. The state and outcomes are OR-nodes, the action an AND-node.
func (g *Nondet[N]) AddAction(state, action N, outcomes ...N) {
	g.kinds[action] = wayfind.AndNode
	g.graph.Add(state, action)
	for _, outcome := range outcomes {
		g.graph.Add(action, outcome)
	}
}

// Edges returns the outbound edges of n in insertion order.
func (g *Nondet[N]) Edges(n N) []Edge[N] {
	return g.graph.Edges(n)
}

// From returns the node e leaves.
func (g *Nondet[N]) From(e Edge[N]) N { return e.F }

// To returns the node e enters.
func (g *Nondet[N]) To(e Edge[N]) N { return e.T }

// Kind returns the role of n. Nodes never declared as an action are
// OR-nodes.
func (g *Nondet[N]) Kind(n N) wayfind.NodeKind {
	return g.kinds[n]
}
