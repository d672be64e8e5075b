// Package watch streams search progress events to observers.
//
// Searches constructed with wayfind.WithWatcher publish one event per
// completed step, per failed step attempt, and per conclusion. A Hub fans
// those events out to any number of subscribers over buffered channels,
// which is the hook point for visualizers, debuggers, and step recorders
// driving a search one expansion at a time.
package watch

import "time"

// Kind classifies a search event.
type Kind string

const (
	// KindStep is published after each completed expansion.
	KindStep Kind = "step"

	// KindError is published after a failed step attempt. The search
	// itself is left resumable.
	KindError Kind = "error"

	// KindConcluded is published when a search reaches a terminal status.
	KindConcluded Kind = "concluded"
)

// Event is one observation of search progress.
type Event struct {
	// SearchID identifies the publishing search.
	SearchID string

	// Algorithm is the publishing search's algorithm name.
	Algorithm string

	// Seq is the number of expansions completed so far. Strictly
	// increasing within one search's step events.
	Seq int

	// Kind classifies the event.
	Kind Kind

	// Edge describes the traversed edge (KindStep) or the failure
	// (KindError); empty for KindConcluded.
	Edge string

	// Status is the search's lifecycle state after the event.
	Status string

	// At is the publication time.
	At time.Time
}

// Sink receives search events. Publish must not block indefinitely: it is
// called from inside Step, on the searching goroutine.
type Sink interface {
	Publish(evt Event)
}
