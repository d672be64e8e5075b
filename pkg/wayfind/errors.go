package wayfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for search construction.
var (
	// ErrNilGraph indicates a constructor was given a nil graph.
	ErrNilGraph = errors.New("graph cannot be nil")

	// ErrNilGoal indicates a constructor was given a nil goal predicate.
	ErrNilGoal = errors.New("goal predicate cannot be nil")

	// ErrNilCostModel indicates an informed search was given a nil cost model.
	ErrNilCostModel = errors.New("cost model cannot be nil")

	// ErrNilCostFunc indicates an informed search was given a nil edge cost function.
	ErrNilCostFunc = errors.New("edge cost function cannot be nil")

	// ErrNilHeuristic indicates an A* search was given a nil heuristic.
	ErrNilHeuristic = errors.New("heuristic cannot be nil")

	// ErrNegativeLimit indicates a depth-bounded search was given a negative limit.
	ErrNegativeLimit = errors.New("depth limit cannot be negative")
)

// Sentinel errors for stepping.
var (
	// ErrConcluded indicates Step was called after the search concluded.
	ErrConcluded = errors.New("search already concluded")

	// ErrNilContext indicates Step or Run was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrMaxExpansions indicates Run exceeded its configured expansion limit.
	ErrMaxExpansions = errors.New("exceeded maximum expansions")
)

// ExpansionError wraps a failure surfaced while enumerating a node's
// outbound edges. The search's own state is untouched: the node is still
// at the head of the frontier and a later Step may retry the expansion.
type ExpansionError struct {
	// Node is the node whose expansion failed.
	Node any
	// Op is the operation that failed (e.g. "enumerate").
	Op string
	// Err is the underlying error from the graph.
	Err error
}

// Error implements the error interface.
func (e *ExpansionError) Error() string {
	return fmt.Sprintf("expanding node %v: %s: %v", e.Node, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExpansionError) Unwrap() error {
	return e.Err
}

// CancellationError reports that a step observed cancellation before
// mutating the search. The search is not concluded and remains resumable;
// whether and when to step again is the caller's decision.
type CancellationError struct {
	// SearchID identifies the cancelled search.
	SearchID string
	// Node is the node that was about to be expanded, when known.
	Node any
	// Cause is the underlying cancellation cause (context.Canceled or
	// context.DeadlineExceeded).
	Cause error
}

// Error implements the error interface.
func (e *CancellationError) Error() string {
	return fmt.Sprintf("search %s cancelled at node %v: %v", e.SearchID, e.Node, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CancellationError) Unwrap() error {
	return e.Cause
}

// MaxExpansionsError provides context when Run's expansion limit is
// exceeded before the search concludes.
type MaxExpansionsError struct {
	// Max is the configured expansion limit.
	Max int
	// Steps is the number of expansions performed by this Run call.
	Steps int
}

// Error implements the error interface.
func (e *MaxExpansionsError) Error() string {
	return fmt.Sprintf("exceeded maximum expansions (%d)", e.Max)
}

// Unwrap returns ErrMaxExpansions for errors.Is support.
func (e *MaxExpansionsError) Unwrap() error {
	return ErrMaxExpansions
}
