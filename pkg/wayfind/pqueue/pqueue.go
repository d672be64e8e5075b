// Package pqueue provides a keyed priority queue with in-place priority
// improvement, the frontier structure behind cost-ordered searches.
//
// Every entry is addressable by its key: lookup and improvement go through
// an index map rather than a linear scan, and improving an entry restores
// heap order with a single sift. The ordering direction is supplied by the
// caller, so the same queue serves min-cost and max-score frontiers.
//
// Misuse (popping an empty queue, improving an absent key, pushing a
// duplicate) is a programmer error and panics.
package pqueue

import "container/heap"

// entry is a queued key with its current priority and heap position.
type entry[K comparable, P any] struct {
	key      K
	priority P
	index    int
}

// ordered implements heap.Interface over entries, keeping each entry's
// index field in sync with its slice position.
type ordered[K comparable, P any] struct {
	entries []*entry[K, P]
	less    func(a, b P) bool
}

func (o *ordered[K, P]) Len() int { return len(o.entries) }

func (o *ordered[K, P]) Less(i, j int) bool {
	return o.less(o.entries[i].priority, o.entries[j].priority)
}

func (o *ordered[K, P]) Swap(i, j int) {
	o.entries[i], o.entries[j] = o.entries[j], o.entries[i]
	o.entries[i].index = i
	o.entries[j].index = j
}

func (o *ordered[K, P]) Push(x any) {
	e := x.(*entry[K, P])
	e.index = len(o.entries)
	o.entries = append(o.entries, e)
}

func (o *ordered[K, P]) Pop() any {
	old := o.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	o.entries = old[:n-1]
	return e
}

// Queue is a keyed priority queue ordered by a caller-supplied comparison.
//
// Ties between equal priorities are broken by internal heap order, which is
// reproducible for a fixed sequence of operations but otherwise
// unspecified. Callers must not rely on any particular tie order.
type Queue[K comparable, P any] struct {
	heap  ordered[K, P]
	index map[K]*entry[K, P]
}

// New creates an empty queue. less reports whether a has strictly better
// priority than b; the entry with the best priority is popped first.
//
// Panics if less is nil.
func New[K comparable, P any](less func(a, b P) bool) *Queue[K, P] {
	if less == nil {
		panic("pqueue: less function cannot be nil")
	}
	return &Queue[K, P]{
		heap:  ordered[K, P]{less: less},
		index: make(map[K]*entry[K, P]),
	}
}

// Len returns the number of queued entries.
func (q *Queue[K, P]) Len() int {
	return len(q.heap.entries)
}

// Push inserts a key with the given priority.
//
// Panics if the key is already queued; use Improve to change the priority
// of a queued key.
func (q *Queue[K, P]) Push(key K, priority P) {
	if _, exists := q.index[key]; exists {
		panic("pqueue: Push called with key already queued")
	}
	e := &entry[K, P]{key: key, priority: priority}
	q.index[key] = e
	heap.Push(&q.heap, e)
}

// Peek returns the best-priority entry without removing it.
//
// Panics if the queue is empty.
func (q *Queue[K, P]) Peek() (K, P) {
	if len(q.heap.entries) == 0 {
		panic("pqueue: Peek called on empty queue")
	}
	e := q.heap.entries[0]
	return e.key, e.priority
}

// Pop removes and returns the best-priority entry.
//
// Panics if the queue is empty.
func (q *Queue[K, P]) Pop() (K, P) {
	if len(q.heap.entries) == 0 {
		panic("pqueue: Pop called on empty queue")
	}
	e := heap.Pop(&q.heap).(*entry[K, P])
	delete(q.index, e.key)
	return e.key, e.priority
}

// Priority returns the current priority of a queued key and whether the
// key is queued at all.
func (q *Queue[K, P]) Priority(key K) (P, bool) {
	if e, ok := q.index[key]; ok {
		return e.priority, true
	}
	var zero P
	return zero, false
}

// Improve replaces a queued key's priority with a strictly better one and
// restores heap order in place.
//
// Panics if the key is not queued, or if the new priority is not strictly
// better than the current one.
func (q *Queue[K, P]) Improve(key K, priority P) {
	e, ok := q.index[key]
	if !ok {
		panic("pqueue: Improve called for a key that is not queued")
	}
	if !q.heap.less(priority, e.priority) {
		panic("pqueue: Improve called with a priority that is not an improvement")
	}
	e.priority = priority
	heap.Fix(&q.heap, e.index)
}
