package wayfind

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/wayfindlabs/wayfind/pkg/wayfind/observability"
	"github.com/wayfindlabs/wayfind/pkg/wayfind/watch"
)

// Status is the lifecycle state of a search.
type Status int

const (
	// StatusRunning means the search has not concluded; Step may be called.
	StatusRunning Status = iota

	// StatusCompleted means a target was found. Terminal.
	StatusCompleted

	// StatusFailed means the frontier was exhausted without finding a
	// target and no depth pruning occurred. Terminal, and not an error:
	// the algorithm ran to completion and the answer is "unreachable".
	StatusFailed

	// StatusCutOff means the frontier was exhausted but a depth limit
	// pruned at least one node, so a deeper search might still succeed.
	// Terminal.
	StatusCutOff
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusCutOff:
		return "cutoff"
	default:
		return "unknown"
	}
}

// Search is the contract every stepwise search satisfies.
//
// A search is built around a source node and a goal predicate, performs
// one eager unit of work at construction (visiting the source), and is
// then driven by repeated Step calls until it concludes. All state
// mutation happens inside Step; a search instance is not safe for
// concurrent use and Step is not reentrant.
type Search[N comparable, E comparable] interface {
	// Step advances the search by exactly one expansion: one frontier
	// entry is finalized and its discovery edge returned. Calling Step on
	// a concluded search returns ErrConcluded. A step that observes
	// cancellation or an enumeration failure returns a typed error and
	// leaves the search unchanged and resumable.
	Step(ctx context.Context) (E, error)

	// Concluded reports whether the search reached a terminal status.
	// Monotonic: once true, it never reverts.
	Concluded() bool

	// Succeeded reports whether the search concluded with a target found.
	Succeeded() bool

	// Status returns the current lifecycle state.
	Status() Status

	// Target returns the found target node, if any.
	Target() (N, bool)

	// Visited returns a copy of the discovery records accumulated so far.
	Visited() Visited[N, E]

	// PathToTarget reconstructs the edge path from the source to the
	// target by walking discovery edges backward. Empty when no target
	// has been found or the target is the source itself.
	PathToTarget() []E

	// VisitedEdges flattens the visited map into its discovery edges, in
	// unspecified order.
	VisitedEdges() []E

	// ID returns the search's identifier, for logs and events.
	ID() string

	// Algorithm returns the algorithm name, e.g. "breadth-first".
	Algorithm() string
}

// tracker carries the bookkeeping shared by every engine: the visited map,
// lifecycle state, and observability plumbing. Engines embed it and add
// their own frontier.
type tracker[N comparable, E comparable] struct {
	algo    string
	g       ContextGraph[N, E]
	goal    Goal[N]
	cfg     searchConfig
	visited Visited[N, E]

	status    Status
	target    N
	hasTarget bool
	steps     int
	started   time.Time
}

func newTracker[N comparable, E comparable](algo string, g ContextGraph[N, E], goal Goal[N], cfg searchConfig) *tracker[N, E] {
	observability.LogSearchStart(cfg.logger, cfg.id, algo)
	return &tracker[N, E]{
		algo:    algo,
		g:       g,
		goal:    goal,
		cfg:     cfg,
		visited: make(Visited[N, E]),
		started: time.Now(),
	}
}

// Concluded reports whether the search reached a terminal status.
func (t *tracker[N, E]) Concluded() bool { return t.status != StatusRunning }

// Succeeded reports whether the search concluded with a target found.
func (t *tracker[N, E]) Succeeded() bool { return t.status == StatusCompleted }

// Status returns the current lifecycle state.
func (t *tracker[N, E]) Status() Status { return t.status }

// Target returns the found target node, if any.
func (t *tracker[N, E]) Target() (N, bool) { return t.target, t.hasTarget }

// ID returns the search's identifier.
func (t *tracker[N, E]) ID() string { return t.cfg.id }

// Algorithm returns the algorithm name.
func (t *tracker[N, E]) Algorithm() string { return t.algo }

// Visited returns a copy of the discovery records accumulated so far.
func (t *tracker[N, E]) Visited() Visited[N, E] {
	return maps.Clone(t.visited)
}

// VisitedEdges flattens the visited map into its discovery edges.
func (t *tracker[N, E]) VisitedEdges() []E {
	return t.visited.Edges()
}

// PathToTarget reconstructs the source→target edge path.
func (t *tracker[N, E]) PathToTarget() []E {
	if !t.hasTarget {
		return nil
	}
	var path []E
	cur := t.target
	for {
		v, ok := t.visited[cur]
		if !ok || !v.HasEdge {
			break
		}
		path = append(path, v.Edge)
		cur = t.g.From(v.Edge)
	}
	slices.Reverse(path)
	return path
}

// recordSource installs the source's sentinel record: no discovering edge,
// already finalized.
func (t *tracker[N, E]) recordSource(source N) {
	t.visited[source] = Visit[E]{}
}

// discover records n as pending, discovered via e. Relaxations call it
// again to replace a pending node's discovery edge.
func (t *tracker[N, E]) discover(n N, e E) {
	t.visited[n] = Visit[E]{Edge: e, HasEdge: true, Pending: true}
}

// finalize flips a pending node to finalized and returns its discovery
// edge.
func (t *tracker[N, E]) finalize(n N) E {
	v := t.visited[n]
	v.Pending = false
	t.visited[n] = v
	return v.Edge
}

// cancelled reports pending cancellation before any state is touched.
func (t *tracker[N, E]) cancelled(ctx context.Context, n N) error {
	select {
	case <-ctx.Done():
		return &CancellationError{SearchID: t.cfg.id, Node: n, Cause: ctx.Err()}
	default:
		return nil
	}
}

// expand buffers the outbound edges of n. Buffering keeps each step atomic
// with respect to the search's own state: enumeration failures and
// cancellations surface before anything is mutated, so the node stays at
// the head of the frontier and a later Step may retry.
func (t *tracker[N, E]) expand(ctx context.Context, n N) ([]E, error) {
	var out []E
	for e, err := range t.g.Edges(ctx, n) {
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, &CancellationError{SearchID: t.cfg.id, Node: n, Cause: err}
			}
			return nil, &ExpansionError{Node: n, Op: "enumerate", Err: err}
		}
		out = append(out, e)
	}
	return out, nil
}

// noteStep records one finalized expansion with the observability stack.
func (t *tracker[N, E]) noteStep(ctx context.Context, e E, d time.Duration) {
	t.steps++
	observability.LogStep(t.cfg.logger, t.cfg.id, t.steps, e)
	t.cfg.metrics.RecordStep(ctx, t.algo, d, nil)
	if t.cfg.watcher != nil {
		t.cfg.watcher.Publish(watch.Event{
			SearchID:  t.cfg.id,
			Algorithm: t.algo,
			Seq:       t.steps,
			Kind:      watch.KindStep,
			Edge:      fmt.Sprintf("%v", e),
			Status:    t.status.String(),
			At:        time.Now(),
		})
	}
}

// noteStepError records a failed step attempt. The search state is
// unchanged by the failed step.
func (t *tracker[N, E]) noteStepError(ctx context.Context, d time.Duration, err error) {
	observability.LogStepError(t.cfg.logger, t.cfg.id, t.steps, err)
	t.cfg.metrics.RecordStep(ctx, t.algo, d, err)
	if t.cfg.watcher != nil {
		t.cfg.watcher.Publish(watch.Event{
			SearchID:  t.cfg.id,
			Algorithm: t.algo,
			Seq:       t.steps,
			Kind:      watch.KindError,
			Edge:      err.Error(),
			Status:    t.status.String(),
			At:        time.Now(),
		})
	}
}

// noteFrontier records the frontier size after an expansion.
func (t *tracker[N, E]) noteFrontier(ctx context.Context, size int) {
	t.cfg.metrics.RecordFrontier(ctx, t.algo, size)
}

// conclude moves the search to a terminal status. target is recorded only
// for StatusCompleted and never changes afterwards.
func (t *tracker[N, E]) conclude(ctx context.Context, status Status, target N, found bool) {
	t.status = status
	if found {
		t.target = target
		t.hasTarget = true
	}
	observability.LogConcluded(t.cfg.logger, t.cfg.id, status.String(), t.steps)
	t.cfg.metrics.RecordSearch(ctx, t.algo, status.String(), time.Since(t.started), t.steps)
	if t.cfg.watcher != nil {
		t.cfg.watcher.Publish(watch.Event{
			SearchID:  t.cfg.id,
			Algorithm: t.algo,
			Seq:       t.steps,
			Kind:      watch.KindConcluded,
			Status:    status.String(),
			At:        time.Now(),
		})
	}
}
