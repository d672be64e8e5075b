package wayfind

import (
	"context"
	"iter"
)

// Graph is the synchronous graph contract searches traverse.
//
// Nodes and edges are opaque, value-comparable identities chosen by the
// implementation; both are used as map keys. Edges returns the outbound
// edges of a node in a stable enumeration order — for a fixed graph and a
// fixed enumeration order, every search's exploration order is fully
// deterministic and reproducible.
//
// Graphs must not be mutated while a search over them is in progress.
type Graph[N comparable, E comparable] interface {
	// Edges returns the outbound edges of n. The returned slice is owned
	// by the graph; callers must not modify it.
	Edges(n N) []E

	// From returns the node e leaves.
	From(e E) N

	// To returns the node e enters.
	To(e E) N
}

// ContextGraph is the suspension-capable graph contract, for graphs whose
// edge enumeration itself may suspend (computed remotely, read from
// storage). Enumeration honours ctx: a cancelled or failed enumeration
// yields a non-nil error and stops.
//
// From and To remain synchronous; an edge already in hand carries its own
// endpoints.
type ContextGraph[N comparable, E comparable] interface {
	// Edges enumerates the outbound edges of n. Each pair is either
	// (edge, nil) or (zero, err); enumeration ends after the first error.
	Edges(ctx context.Context, n N) iter.Seq2[E, error]

	// From returns the node e leaves.
	From(e E) N

	// To returns the node e enters.
	To(e E) N
}

// Goal decides whether a node satisfies the search target.
type Goal[N comparable] func(N) bool

// GoalNode returns a Goal satisfied exactly by want.
func GoalNode[N comparable](want N) Goal[N] {
	return func(n N) bool { return n == want }
}

// NodeKind tags the role a node plays in a nondeterministic action graph.
type NodeKind int

const (
	// OrNode is a state: the plan picks exactly one outbound edge.
	OrNode NodeKind = iota

	// AndNode is a chosen action: the plan must handle every outcome.
	AndNode
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case OrNode:
		return "or"
	case AndNode:
		return "and"
	default:
		return "unknown"
	}
}

// NondetGraph is a Graph over alternating state and action nodes: edges of
// an OrNode lead to AndNodes (available actions), edges of an AndNode lead
// to OrNodes (possible outcomes of that action).
type NondetGraph[N comparable, E comparable] interface {
	Graph[N, E]

	// Kind returns the role of n.
	Kind(n N) NodeKind
}

// NondetContextGraph is the suspension-capable NondetGraph.
type NondetContextGraph[N comparable, E comparable] interface {
	ContextGraph[N, E]

	// Kind returns the role of n.
	Kind(n N) NodeKind
}

// lifted adapts a synchronous Graph to the ContextGraph shape so each
// algorithm is written once. Enumeration of an in-memory edge slice has no
// suspension point, so ctx is not consulted mid-enumeration; cancellation
// is still checked at the start of every expansion.
type lifted[N comparable, E comparable] struct {
	g Graph[N, E]
}

func (l lifted[N, E]) Edges(_ context.Context, n N) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		for _, e := range l.g.Edges(n) {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func (l lifted[N, E]) From(e E) N { return l.g.From(e) }

func (l lifted[N, E]) To(e E) N { return l.g.To(e) }

// liftNondet adapts a synchronous NondetGraph to the context-aware shape.
type liftNondet[N comparable, E comparable] struct {
	lifted[N, E]
	kinds NondetGraph[N, E]
}

func (l liftNondet[N, E]) Kind(n N) NodeKind { return l.kinds.Kind(n) }
