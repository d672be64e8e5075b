package wayfind

import (
	"context"
	"time"
)

// uninformed is the engine behind BreadthFirst and DepthFirst: a plain
// deque frontier driving the unseen→pending→finalized state machine, with
// no cost accounting.
type uninformed[N comparable, E comparable] struct {
	*tracker[N, E]
	queue []N
	fifo  bool
}

func newUninformed[N comparable, E comparable](ctx context.Context, algo string, fifo bool, g ContextGraph[N, E], source N, goal Goal[N], opts []Option) (*uninformed[N, E], error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if goal == nil {
		return nil, ErrNilGoal
	}

	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	u := &uninformed[N, E]{
		tracker: newTracker(algo, g, goal, cfg),
		fifo:    fifo,
	}
	if err := u.visitSource(ctx, source); err != nil {
		return nil, err
	}
	return u, nil
}

// visitSource performs the eager construction-time unit of work: the
// source is recorded with its sentinel marker and finalized immediately,
// so the first explicit Step always traverses a real edge.
func (u *uninformed[N, E]) visitSource(ctx context.Context, source N) error {
	u.recordSource(source)
	if u.goal(source) {
		u.conclude(ctx, StatusCompleted, source, true)
		return nil
	}
	edges, err := u.expand(ctx, source)
	if err != nil {
		return err
	}
	u.enqueue(edges)
	if len(u.queue) == 0 {
		var zero N
		u.conclude(ctx, StatusFailed, zero, false)
	}
	return nil
}

// enqueue discovers every edge destination not yet in the visited map and
// places it on the frontier.
func (u *uninformed[N, E]) enqueue(edges []E) {
	for _, e := range edges {
		dest := u.g.To(e)
		if _, seen := u.visited[dest]; seen {
			continue
		}
		u.discover(dest, e)
		u.queue = append(u.queue, dest)
	}
}

// next peeks the frontier entry the coming step will finalize.
func (u *uninformed[N, E]) next() N {
	if u.fifo {
		return u.queue[0]
	}
	return u.queue[len(u.queue)-1]
}

// pop removes the peeked entry.
func (u *uninformed[N, E]) pop() N {
	if u.fifo {
		n := u.queue[0]
		u.queue = u.queue[1:]
		return n
	}
	n := u.queue[len(u.queue)-1]
	u.queue = u.queue[:len(u.queue)-1]
	return n
}

// Step advances the search by exactly one expansion.
func (u *uninformed[N, E]) Step(ctx context.Context) (E, error) {
	start := time.Now()
	var zero E
	if ctx == nil {
		return zero, ErrNilContext
	}
	if u.Concluded() {
		return zero, ErrConcluded
	}

	n := u.next()
	if err := u.cancelled(ctx, n); err != nil {
		u.noteStepError(ctx, time.Since(start), err)
		return zero, err
	}

	if u.goal(n) {
		u.pop()
		e := u.finalize(n)
		u.noteStep(ctx, e, time.Since(start))
		u.conclude(ctx, StatusCompleted, n, true)
		return e, nil
	}

	edges, err := u.expand(ctx, n)
	if err != nil {
		u.noteStepError(ctx, time.Since(start), err)
		return zero, err
	}

	u.pop()
	e := u.finalize(n)
	u.enqueue(edges)
	u.noteStep(ctx, e, time.Since(start))
	u.noteFrontier(ctx, len(u.queue))
	if len(u.queue) == 0 {
		var none N
		u.conclude(ctx, StatusFailed, none, false)
	}
	return e, nil
}

// BreadthFirst is a stepwise breadth-first search. Its frontier is
// first-in-first-out, so nodes are finalized in non-decreasing
// distance-from-source order and neighbors are explored in the graph's
// natural enumeration order.
type BreadthFirst[N comparable, E comparable] struct {
	*uninformed[N, E]
}

// NewBreadthFirst builds a breadth-first search over a synchronous graph
// and eagerly visits the source. If the source satisfies the goal the
// search concludes Completed with zero steps; if the source has no
// outbound edges it concludes Failed.
func NewBreadthFirst[N comparable, E comparable](g Graph[N, E], source N, goal Goal[N], opts ...Option) (*BreadthFirst[N, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return NewBreadthFirstContext[N, E](context.Background(), lifted[N, E]{g}, source, goal, opts...)
}

// NewBreadthFirstContext builds a breadth-first search over a
// suspension-capable graph. ctx governs the eager source visit; each later
// Step carries its own context.
func NewBreadthFirstContext[N comparable, E comparable](ctx context.Context, g ContextGraph[N, E], source N, goal Goal[N], opts ...Option) (*BreadthFirst[N, E], error) {
	u, err := newUninformed(ctx, "breadth-first", true, g, source, goal, opts)
	if err != nil {
		return nil, err
	}
	return &BreadthFirst[N, E]{u}, nil
}

// DepthFirst is a stepwise depth-first search. Its frontier is
// last-in-first-out: of a node's outbound edges, the last enumerated is
// explored first, so siblings are visited in reverse enumeration order.
type DepthFirst[N comparable, E comparable] struct {
	*uninformed[N, E]
}

// NewDepthFirst builds a depth-first search over a synchronous graph and
// eagerly visits the source, with the same construction-time conclusions
// as NewBreadthFirst.
func NewDepthFirst[N comparable, E comparable](g Graph[N, E], source N, goal Goal[N], opts ...Option) (*DepthFirst[N, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return NewDepthFirstContext[N, E](context.Background(), lifted[N, E]{g}, source, goal, opts...)
}

// NewDepthFirstContext builds a depth-first search over a
// suspension-capable graph.
func NewDepthFirstContext[N comparable, E comparable](ctx context.Context, g ContextGraph[N, E], source N, goal Goal[N], opts ...Option) (*DepthFirst[N, E], error) {
	u, err := newUninformed(ctx, "depth-first", false, g, source, goal, opts)
	if err != nil {
		return nil, err
	}
	return &DepthFirst[N, E]{u}, nil
}

// Compile-time contract checks.
var (
	_ Search[int, int] = (*BreadthFirst[int, int])(nil)
	_ Search[int, int] = (*DepthFirst[int, int])(nil)
)
