package wayfind

// Visit records how a node was discovered and whether it still waits on
// the frontier.
type Visit[E comparable] struct {
	// Edge is the edge used to discover the node. It is meaningful only
	// when HasEdge is true.
	Edge E

	// HasEdge is false only for the search's source node, the root of the
	// search tree.
	HasEdge bool

	// Pending is true while the node sits on the frontier awaiting
	// finalization. It flips to false exactly once and never back.
	Pending bool
}

// Visited maps every discovered node to its discovery record. Entries are
// only ever added or flipped pending→finalized; a node is never removed.
type Visited[N comparable, E comparable] map[N]Visit[E]

// Edges flattens the map into the list of discovery edges. The source's
// sentinel record carries no edge and is skipped. The order of the
// returned slice is unspecified.
func (v Visited[N, E]) Edges() []E {
	edges := make([]E, 0, len(v))
	for _, rec := range v {
		if rec.HasEdge {
			edges = append(edges, rec.Edge)
		}
	}
	return edges
}

// Pending reports how many discovered nodes are still awaiting
// finalization.
func (v Visited[N, E]) Pending() int {
	n := 0
	for _, rec := range v {
		if rec.Pending {
			n++
		}
	}
	return n
}
