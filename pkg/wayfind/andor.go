package wayfind

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wayfindlabs/wayfind/pkg/wayfind/observability"
	"github.com/wayfindlabs/wayfind/pkg/wayfind/watch"
)

// ErrKindMismatch indicates a node's kind is inconsistent with its
// position in the action graph: an edge of an OrNode must lead to an
// AndNode and vice versa.
var ErrKindMismatch = errors.New("node kind inconsistent with graph position")

// Plan is a conditional plan over a nondeterministic action graph. Each
// node names a state, the action chosen there, and one sub-plan per
// possible outcome of that action; Done leaves mark goal states needing no
// action. Following the plan reaches a goal state no matter which outcome
// of each action occurs.
type Plan[N comparable, E comparable] struct {
	// State is the OR-node this plan handles.
	State N

	// Done is true when State satisfies the goal; the plan ends here.
	Done bool

	// Action is the chosen outbound edge of State. Meaningful only when
	// Done is false.
	Action E

	// Outcomes holds one sub-plan per possible outcome of Action, in the
	// action node's enumeration order.
	Outcomes []*Plan[N, E]
}

// Flatten reduces the plan tree to a state→action map. The map is valid
// as a policy because a successful plan visits any given state at most
// once; goal states carry no action and are omitted.
func (p *Plan[N, E]) Flatten() map[N]E {
	m := make(map[N]E)
	p.flattenInto(m)
	return m
}

func (p *Plan[N, E]) flattenInto(m map[N]E) {
	if p == nil || p.Done {
		return
	}
	m[p.State] = p.Action
	for _, sub := range p.Outcomes {
		sub.flattenInto(m)
	}
}

// Len returns the number of action choices in the plan.
func (p *Plan[N, E]) Len() int {
	if p == nil || p.Done {
		return 0
	}
	n := 1
	for _, sub := range p.Outcomes {
		n += sub.Len()
	}
	return n
}

// String renders the plan as an indented tree.
func (p *Plan[N, E]) String() string {
	var b strings.Builder
	p.render(&b, 0)
	return b.String()
}

func (p *Plan[N, E]) render(b *strings.Builder, indent int) {
	if p == nil {
		return
	}
	pad := strings.Repeat("  ", indent)
	if p.Done {
		fmt.Fprintf(b, "%s%v: done\n", pad, p.State)
		return
	}
	fmt.Fprintf(b, "%s%v: do %v\n", pad, p.State, p.Action)
	for _, sub := range p.Outcomes {
		sub.render(b, indent+1)
	}
}

// AndOr searches a nondeterministic action graph for a conditional plan.
//
// Unlike the stepwise searches, AndOr is a recursive engine: Solve runs
// the whole exploration in one call. Visiting an OR-node tries each
// outbound action in enumeration order and commits to the first whose
// action node succeeds; visiting an AND-node requires every outcome to
// succeed. The chain of OR-ancestors on the current recursion path is
// tracked, and re-encountering one fails that branch — cycles terminate,
// and repeated sub-goals are re-solved rather than memoized.
//
// An AndOr instance is not safe for concurrent use.
type AndOr[N comparable, E comparable] struct {
	g      NondetContextGraph[N, E]
	source N
	goal   Goal[N]
	cfg    searchConfig
	visits int
}

// NewAndOr builds an AND-OR search over a synchronous action graph. The
// source must be an OR-node. No exploration happens until Solve.
func NewAndOr[N comparable, E comparable](g NondetGraph[N, E], source N, goal Goal[N], opts ...Option) (*AndOr[N, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return NewAndOrContext[N, E](liftNondet[N, E]{lifted[N, E]{g}, g}, source, goal, opts...)
}

// NewAndOrContext builds an AND-OR search over a suspension-capable action
// graph. The context governing exploration is the one passed to Solve.
func NewAndOrContext[N comparable, E comparable](g NondetContextGraph[N, E], source N, goal Goal[N], opts ...Option) (*AndOr[N, E], error) {
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
	return &AndOr[N, E]{g: g, source: source, goal: goal, cfg: cfg}, nil
}

// ID returns the search's identifier.
func (s *AndOr[N, E]) ID() string { return s.cfg.id }

// Algorithm returns "and-or".
func (s *AndOr[N, E]) Algorithm() string { return "and-or" }

// Solve explores the graph and returns a conditional plan rooted at the
// source. found is false when no plan exists — a normal answer, not an
// error. The error return carries cancellation and enumeration faults
// only; no partial plan accompanies an error, and Solve may be called
// again.
func (s *AndOr[N, E]) Solve(ctx context.Context) (plan *Plan[N, E], found bool, err error) {
	if ctx == nil {
		return nil, false, ErrNilContext
	}
	start := time.Now()
	s.visits = 0
	observability.LogSearchStart(s.cfg.logger, s.cfg.id, s.Algorithm())

	plan, found, err = s.visitOr(ctx, s.source, make(map[N]struct{}))

	status := "failed"
	switch {
	case err != nil:
		status = "error"
	case found:
		status = "completed"
	}
	observability.LogConcluded(s.cfg.logger, s.cfg.id, status, s.visits)
	s.cfg.metrics.RecordSearch(ctx, s.Algorithm(), status, time.Since(start), s.visits)
	if s.cfg.watcher != nil {
		s.cfg.watcher.Publish(watch.Event{
			SearchID:  s.cfg.id,
			Algorithm: s.Algorithm(),
			Seq:       s.visits,
			Kind:      watch.KindConcluded,
			Status:    status,
			At:        time.Now(),
		})
	}
	return plan, found, err
}

// visitOr handles a state node: succeed trivially at a goal, fail on a
// recursion cycle, otherwise commit to the first action whose outcomes all
// succeed.
func (s *AndOr[N, E]) visitOr(ctx context.Context, n N, path map[N]struct{}) (*Plan[N, E], bool, error) {
	if err := s.checkCtx(ctx, n); err != nil {
		return nil, false, err
	}
	s.visits++
	if s.g.Kind(n) != OrNode {
		return nil, false, &ExpansionError{Node: n, Op: "kind", Err: ErrKindMismatch}
	}
	if s.goal(n) {
		return &Plan[N, E]{State: n, Done: true}, true, nil
	}
	if _, onPath := path[n]; onPath {
		return nil, false, nil
	}
	path[n] = struct{}{}
	defer delete(path, n)

	edges, err := s.edges(ctx, n)
	if err != nil {
		return nil, false, err
	}
	for _, e := range edges {
		outcomes, ok, err := s.visitAnd(ctx, s.g.To(e), path)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return &Plan[N, E]{State: n, Action: e, Outcomes: outcomes}, true, nil
		}
	}
	return nil, false, nil
}

// visitAnd handles an action node: every outcome must yield a sub-plan.
func (s *AndOr[N, E]) visitAnd(ctx context.Context, n N, path map[N]struct{}) ([]*Plan[N, E], bool, error) {
	if err := s.checkCtx(ctx, n); err != nil {
		return nil, false, err
	}
	s.visits++
	if s.g.Kind(n) != AndNode {
		return nil, false, &ExpansionError{Node: n, Op: "kind", Err: ErrKindMismatch}
	}

	edges, err := s.edges(ctx, n)
	if err != nil {
		return nil, false, err
	}
	plans := make([]*Plan[N, E], 0, len(edges))
	for _, e := range edges {
		p, ok, err := s.visitOr(ctx, s.g.To(e), path)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		plans = append(plans, p)
	}
	return plans, true, nil
}

// edges buffers a node's outbound enumeration, wrapping faults.
func (s *AndOr[N, E]) edges(ctx context.Context, n N) ([]E, error) {
	var out []E
	for e, err := range s.g.Edges(ctx, n) {
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, &CancellationError{SearchID: s.cfg.id, Node: n, Cause: err}
			}
			return nil, &ExpansionError{Node: n, Op: "enumerate", Err: err}
		}
		out = append(out, e)
	}
	return out, nil
}

// checkCtx reports pending cancellation before a node visit.
func (s *AndOr[N, E]) checkCtx(ctx context.Context, n N) error {
	select {
	case <-ctx.Done():
		return &CancellationError{SearchID: s.cfg.id, Node: n, Cause: ctx.Err()}
	default:
		return nil
	}
}
