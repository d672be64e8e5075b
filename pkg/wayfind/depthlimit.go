package wayfind

import (
	"context"
	"time"
)

// DepthLimited is a stepwise depth-first search with a depth ceiling.
//
// A neighbor discovered beyond the ceiling is not placed on the frontier;
// it is remembered in a depth-pruned set instead, and leaves that set if a
// later expansion reaches it within the ceiling. When the frontier
// empties, the search concludes CutOff if the pruned set is non-empty —
// the limit, not the graph, ended the search — and Failed otherwise.
type DepthLimited[N comparable, E comparable] struct {
	*tracker[N, E]
	stack  []N
	depth  map[N]int
	pruned map[N]struct{}
	limit  int
}

func newDepthLimited[N comparable, E comparable](ctx context.Context, algo string, g ContextGraph[N, E], source N, goal Goal[N], limit int, cfg searchConfig) (*DepthLimited[N, E], error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	if limit < 0 {
		return nil, ErrNegativeLimit
	}

	s := &DepthLimited[N, E]{
		tracker: newTracker(algo, g, goal, cfg),
		depth:   make(map[N]int),
		pruned:  make(map[N]struct{}),
		limit:   limit,
	}
	if err := s.visitSource(ctx, source); err != nil {
		return nil, err
	}
	return s, nil
}

// NewDepthLimited builds a depth-limited search over a synchronous graph
// and eagerly visits the source. With limit 0 the source's neighbors are
// all pruned, so a goal-free source concludes CutOff at construction.
func NewDepthLimited[N comparable, E comparable](g Graph[N, E], source N, goal Goal[N], limit int, opts ...Option) (*DepthLimited[N, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return NewDepthLimitedContext[N, E](context.Background(), lifted[N, E]{g}, source, goal, limit, opts...)
}

// NewDepthLimitedContext builds a depth-limited search over a
// suspension-capable graph.
func NewDepthLimitedContext[N comparable, E comparable](ctx context.Context, g ContextGraph[N, E], source N, goal Goal[N], limit int, opts ...Option) (*DepthLimited[N, E], error) {
	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newDepthLimited(ctx, "depth-limited", g, source, goal, limit, cfg)
}

// visitSource performs the eager construction-time unit of work.
func (s *DepthLimited[N, E]) visitSource(ctx context.Context, source N) error {
	s.recordSource(source)
	s.depth[source] = 0
	if s.goal(source) {
		s.conclude(ctx, StatusCompleted, source, true)
		return nil
	}
	edges, err := s.expand(ctx, source)
	if err != nil {
		return err
	}
	s.place(0, edges)
	if len(s.stack) == 0 {
		s.concludeExhausted(ctx)
	}
	return nil
}

// place discovers the destinations of a node's edges, gating on the depth
// of the expanded node: neighbors within the ceiling go on the frontier,
// the rest enter the pruned set.
func (s *DepthLimited[N, E]) place(d int, edges []E) {
	for _, e := range edges {
		dest := s.g.To(e)
		if _, seen := s.visited[dest]; seen {
			continue
		}
		if d < s.limit {
			s.discover(dest, e)
			s.depth[dest] = d + 1
			s.stack = append(s.stack, dest)
			delete(s.pruned, dest)
		} else {
			s.pruned[dest] = struct{}{}
		}
	}
}

// concludeExhausted picks the terminal status for an empty frontier. The
// pruned set decides: a pruned node still pruned now is evidence a deeper
// search might succeed.
func (s *DepthLimited[N, E]) concludeExhausted(ctx context.Context) {
	var zero N
	if len(s.pruned) > 0 {
		s.conclude(ctx, StatusCutOff, zero, false)
		return
	}
	s.conclude(ctx, StatusFailed, zero, false)
}

// Step advances the search by exactly one expansion.
func (s *DepthLimited[N, E]) Step(ctx context.Context) (E, error) {
	start := time.Now()
	var zero E
	if ctx == nil {
		return zero, ErrNilContext
	}
	if s.Concluded() {
		return zero, ErrConcluded
	}

	n := s.stack[len(s.stack)-1]
	if err := s.cancelled(ctx, n); err != nil {
		s.noteStepError(ctx, time.Since(start), err)
		return zero, err
	}

	if s.goal(n) {
		s.stack = s.stack[:len(s.stack)-1]
		e := s.finalize(n)
		s.noteStep(ctx, e, time.Since(start))
		s.conclude(ctx, StatusCompleted, n, true)
		return e, nil
	}

	edges, err := s.expand(ctx, n)
	if err != nil {
		s.noteStepError(ctx, time.Since(start), err)
		return zero, err
	}

	s.stack = s.stack[:len(s.stack)-1]
	e := s.finalize(n)
	s.place(s.depth[n], edges)
	s.noteStep(ctx, e, time.Since(start))
	s.noteFrontier(ctx, len(s.stack))
	if len(s.stack) == 0 {
		s.concludeExhausted(ctx)
	}
	return e, nil
}

// Limit returns the depth ceiling.
func (s *DepthLimited[N, E]) Limit() int { return s.limit }

// Compile-time contract check.
var _ Search[int, int] = (*DepthLimited[int, int])(nil)
