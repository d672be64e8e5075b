package wayfind

import (
	"context"
	"time"

	"github.com/wayfindlabs/wayfind/pkg/wayfind/pqueue"
)

// rank orders frontier entries: by estimated total cost, then accumulated
// cost, then recency (later discoveries pop first). The recency field only
// breaks exact ties; callers must not rely on tie order.
type rank[C any] struct {
	total C
	acc   C
	seq   uint64
}

// informed is the engine behind Dijkstra and AStar: greedy relaxation over
// a keyed priority queue, written once against the cost algebra. A nil
// heuristic orders the frontier by accumulated cost alone.
type informed[N comparable, E comparable, C any] struct {
	*tracker[N, E]
	model    CostModel[C]
	numeric  NumericCostModel[C]
	cost     CostFunc[E, C]
	h        HeuristicFunc[N, C]
	frontier *pqueue.Queue[N, rank[C]]
	acc      map[N]C
	seq      uint64
}

func newInformed[N comparable, E comparable, C any](ctx context.Context, algo string, g ContextGraph[N, E], source N, goal Goal[N], model CostModel[C], cost CostFunc[E, C], h HeuristicFunc[N, C], opts []Option) (*informed[N, E, C], error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	if model == nil {
		return nil, ErrNilCostModel
	}
	if cost == nil {
		return nil, ErrNilCostFunc
	}

	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &informed[N, E, C]{
		tracker: newTracker(algo, g, goal, cfg),
		model:   model,
		cost:    cost,
		h:       h,
		acc:     make(map[N]C),
	}
	// Non-finite pruning is available only when the model can express it.
	s.numeric, _ = model.(NumericCostModel[C])
	s.frontier = pqueue.New[N, rank[C]](s.less)

	if err := s.visitSource(ctx, source); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *informed[N, E, C]) less(a, b rank[C]) bool {
	if c := s.model.Compare(a.total, b.total); c != 0 {
		return c < 0
	}
	if c := s.model.Compare(a.acc, b.acc); c != 0 {
		return c < 0
	}
	return a.seq > b.seq
}

// visitSource performs the eager construction-time unit of work.
func (s *informed[N, E, C]) visitSource(ctx context.Context, source N) error {
	s.recordSource(source)
	s.acc[source] = s.model.Zero()
	if s.goal(source) {
		s.conclude(ctx, StatusCompleted, source, true)
		return nil
	}
	edges, err := s.expand(ctx, source)
	if err != nil {
		return err
	}
	s.relax(source, edges)
	if s.frontier.Len() == 0 {
		var zero N
		s.conclude(ctx, StatusFailed, zero, false)
	}
	return nil
}

// relax examines every outbound edge of a just-finalized node. Unseen
// destinations enter the frontier; pending destinations are improved when
// the new accumulated cost is strictly cheaper; finalized destinations are
// skipped, their recorded cost being already optimal. Under a numeric
// model, any edge whose cost, estimate, or total is non-finite is
// impassable and skipped.
func (s *informed[N, E, C]) relax(from N, edges []E) {
	base := s.acc[from]
	for _, e := range edges {
		dest := s.g.To(e)
		if v, seen := s.visited[dest]; seen && !v.Pending {
			continue
		}

		w := s.cost(e)
		if s.numeric != nil && !s.numeric.Finite(w) {
			continue
		}
		newAcc := s.model.Add(base, w)
		if s.numeric != nil && !s.numeric.Finite(newAcc) {
			continue
		}
		total := newAcc
		if s.h != nil {
			est := s.h(dest)
			if s.numeric != nil && !s.numeric.Finite(est) {
				continue
			}
			total = s.model.Add(newAcc, est)
			if s.numeric != nil && !s.numeric.Finite(total) {
				continue
			}
		}

		s.seq++
		r := rank[C]{total: total, acc: newAcc, seq: s.seq}
		if _, seen := s.visited[dest]; !seen {
			s.discover(dest, e)
			s.acc[dest] = newAcc
			s.frontier.Push(dest, r)
			continue
		}
		if s.model.Compare(newAcc, s.acc[dest]) < 0 {
			s.discover(dest, e)
			s.acc[dest] = newAcc
			s.frontier.Improve(dest, r)
		}
	}
}

// Step advances the search by exactly one expansion.
func (s *informed[N, E, C]) Step(ctx context.Context) (E, error) {
	start := time.Now()
	var zero E
	if ctx == nil {
		return zero, ErrNilContext
	}
	if s.Concluded() {
		return zero, ErrConcluded
	}

	n, _ := s.frontier.Peek()
	if err := s.cancelled(ctx, n); err != nil {
		s.noteStepError(ctx, time.Since(start), err)
		return zero, err
	}

	if s.goal(n) {
		s.frontier.Pop()
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

	s.frontier.Pop()
	e := s.finalize(n)
	s.relax(n, edges)
	s.noteStep(ctx, e, time.Since(start))
	s.noteFrontier(ctx, s.frontier.Len())
	if s.frontier.Len() == 0 {
		var none N
		s.conclude(ctx, StatusFailed, none, false)
	}
	return e, nil
}

// Cost returns the best known accumulated cost of a discovered node. The
// value is provably optimal once the node is finalized; for pending nodes
// it may still improve.
func (s *informed[N, E, C]) Cost(n N) (C, bool) {
	c, ok := s.acc[n]
	return c, ok
}

// PathCost returns the accumulated cost of the found target.
func (s *informed[N, E, C]) PathCost() (C, bool) {
	if !s.hasTarget {
		var zero C
		return zero, false
	}
	return s.acc[s.target], true
}

// Dijkstra is a stepwise single-source shortest-path search ordering its
// frontier by accumulated cost. Recorded costs are optimal for every
// finalized node, provided edge costs are non-negative under the model's
// ordering.
type Dijkstra[N comparable, E comparable, C any] struct {
	*informed[N, E, C]
}

// NewDijkstra builds a Dijkstra search over a synchronous graph and
// eagerly visits the source.
func NewDijkstra[N comparable, E comparable, C any](g Graph[N, E], source N, goal Goal[N], model CostModel[C], cost CostFunc[E, C], opts ...Option) (*Dijkstra[N, E, C], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return NewDijkstraContext[N, E, C](context.Background(), lifted[N, E]{g}, source, goal, model, cost, opts...)
}

// NewDijkstraContext builds a Dijkstra search over a suspension-capable
// graph.
func NewDijkstraContext[N comparable, E comparable, C any](ctx context.Context, g ContextGraph[N, E], source N, goal Goal[N], model CostModel[C], cost CostFunc[E, C], opts ...Option) (*Dijkstra[N, E, C], error) {
	s, err := newInformed(ctx, "dijkstra", g, source, goal, model, cost, nil, opts)
	if err != nil {
		return nil, err
	}
	return &Dijkstra[N, E, C]{s}, nil
}

// AStar is a stepwise single-source shortest-path search ordering its
// frontier by accumulated cost plus a heuristic estimate of the remaining
// cost. With an admissible heuristic the reconstructed path to the target
// is cost-optimal.
type AStar[N comparable, E comparable, C any] struct {
	*informed[N, E, C]
}

// NewAStar builds an A* search over a synchronous graph and eagerly visits
// the source.
func NewAStar[N comparable, E comparable, C any](g Graph[N, E], source N, goal Goal[N], model CostModel[C], cost CostFunc[E, C], heuristic HeuristicFunc[N, C], opts ...Option) (*AStar[N, E, C], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return NewAStarContext[N, E, C](context.Background(), lifted[N, E]{g}, source, goal, model, cost, heuristic, opts...)
}

// NewAStarContext builds an A* search over a suspension-capable graph.
func NewAStarContext[N comparable, E comparable, C any](ctx context.Context, g ContextGraph[N, E], source N, goal Goal[N], model CostModel[C], cost CostFunc[E, C], heuristic HeuristicFunc[N, C], opts ...Option) (*AStar[N, E, C], error) {
	if heuristic == nil {
		return nil, ErrNilHeuristic
	}
	s, err := newInformed(ctx, "astar", g, source, goal, model, cost, heuristic, opts)
	if err != nil {
		return nil, err
	}
	return &AStar[N, E, C]{s}, nil
}

// Compile-time contract checks.
var (
	_ Search[int, int] = (*Dijkstra[int, int, float64])(nil)
	_ Search[int, int] = (*AStar[int, int, float64])(nil)
)
