package wayfind

import "context"

// IterativeDeepening composes repeated depth-limited searches: it begins
// with limit 0 and, whenever the inner search concludes CutOff, restarts a
// fresh depth-limited search with the limit raised by one. It concludes
// when an inner search concludes Completed or Failed; a solution found
// this way is of minimum depth.
//
// The restart happens lazily inside the Step that follows a CutOff, and
// the externally observed state is that of the current inner iteration
// only: Visited contracts back to near-empty at the start of each
// iteration. Accuracy about the current iteration is preferred over
// completeness across iterations.
type IterativeDeepening[N comparable, E comparable] struct {
	g      ContextGraph[N, E]
	source N
	goal   Goal[N]
	cfg    searchConfig
	inner  *DepthLimited[N, E]
	limit  int
}

// NewIterativeDeepening builds an iterative-deepening search over a
// synchronous graph. The limit-0 iteration runs its eager source visit at
// construction, so a goal-satisfying source concludes Completed with zero
// steps and an isolated source concludes Failed.
func NewIterativeDeepening[N comparable, E comparable](g Graph[N, E], source N, goal Goal[N], opts ...Option) (*IterativeDeepening[N, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return NewIterativeDeepeningContext[N, E](context.Background(), lifted[N, E]{g}, source, goal, opts...)
}

// NewIterativeDeepeningContext builds an iterative-deepening search over a
// suspension-capable graph.
func NewIterativeDeepeningContext[N comparable, E comparable](ctx context.Context, g ContextGraph[N, E], source N, goal Goal[N], opts ...Option) (*IterativeDeepening[N, E], error) {
	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	inner, err := newDepthLimited(ctx, "iterative-deepening", g, source, goal, 0, cfg)
	if err != nil {
		return nil, err
	}
	return &IterativeDeepening[N, E]{
		g:      g,
		source: source,
		goal:   goal,
		cfg:    cfg,
		inner:  inner,
	}, nil
}

// Step advances the current inner search by one expansion, first
// restarting it with a deeper limit if it concluded CutOff. A restart
// failure (a cancelled or failing source visit) leaves the previous
// iteration in place, so a later Step retries the restart.
func (s *IterativeDeepening[N, E]) Step(ctx context.Context) (E, error) {
	var zero E
	if ctx == nil {
		return zero, ErrNilContext
	}
	if s.Concluded() {
		return zero, ErrConcluded
	}
	if s.inner.Status() == StatusCutOff {
		next, err := newDepthLimited(ctx, "iterative-deepening", s.g, s.source, s.goal, s.limit+1, s.cfg)
		if err != nil {
			return zero, err
		}
		s.limit++
		s.inner = next
	}
	return s.inner.Step(ctx)
}

// Concluded reports whether an inner iteration concluded Completed or
// Failed. A CutOff iteration does not conclude the outer search; it
// schedules a deeper one.
func (s *IterativeDeepening[N, E]) Concluded() bool {
	st := s.inner.Status()
	return st == StatusCompleted || st == StatusFailed
}

// Succeeded reports whether a target was found.
func (s *IterativeDeepening[N, E]) Succeeded() bool { return s.inner.Succeeded() }

// Status returns the outer lifecycle state: an inner CutOff reads as
// Running, since a deeper iteration is still to come.
func (s *IterativeDeepening[N, E]) Status() Status {
	if st := s.inner.Status(); st != StatusCutOff {
		return st
	}
	return StatusRunning
}

// Target returns the found target node, if any.
func (s *IterativeDeepening[N, E]) Target() (N, bool) { return s.inner.Target() }

// Visited returns the discovery records of the current inner iteration.
func (s *IterativeDeepening[N, E]) Visited() Visited[N, E] { return s.inner.Visited() }

// PathToTarget reconstructs the path found by the current inner iteration.
func (s *IterativeDeepening[N, E]) PathToTarget() []E { return s.inner.PathToTarget() }

// VisitedEdges flattens the current inner iteration's visited map.
func (s *IterativeDeepening[N, E]) VisitedEdges() []E { return s.inner.VisitedEdges() }

// ID returns the search's identifier, shared across iterations.
func (s *IterativeDeepening[N, E]) ID() string { return s.cfg.id }

// Algorithm returns "iterative-deepening".
func (s *IterativeDeepening[N, E]) Algorithm() string { return "iterative-deepening" }

// Limit returns the depth ceiling of the current iteration.
func (s *IterativeDeepening[N, E]) Limit() int { return s.limit }

// Compile-time contract check.
var _ Search[int, int] = (*IterativeDeepening[int, int])(nil)
