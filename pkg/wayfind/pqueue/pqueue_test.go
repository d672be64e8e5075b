package pqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minInt(a, b int) bool { return a < b }

func TestNew_NilLess_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "pqueue: less function cannot be nil", func() {
		New[string, int](nil)
	})
}

func TestQueue_PushPop_OrdersByPriority(t *testing.T) {
	q := New[string, int](minInt)
	q.Push("c", 30)
	q.Push("a", 10)
	q.Push("d", 40)
	q.Push("b", 20)

	require.Equal(t, 4, q.Len())

	var keys []string
	var priorities []int
	for q.Len() > 0 {
		k, p := q.Pop()
		keys = append(keys, k)
		priorities = append(priorities, p)
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
	assert.Equal(t, []int{10, 20, 30, 40}, priorities)
}

func TestQueue_PushPop_MaxOrdering(t *testing.T) {
	q := New[string, int](func(a, b int) bool { return a > b })
	q.Push("low", 1)
	q.Push("high", 9)
	q.Push("mid", 5)

	k, p := q.Pop()
	assert.Equal(t, "high", k)
	assert.Equal(t, 9, p)
}

func TestQueue_Pop_Empty_Panics(t *testing.T) {
	q := New[string, int](minInt)
	assert.PanicsWithValue(t, "pqueue: Pop called on empty queue", func() {
		q.Pop()
	})
}

func TestQueue_Peek_ReturnsWithoutRemoving(t *testing.T) {
	q := New[string, int](minInt)
	q.Push("b", 2)
	q.Push("a", 1)

	k, p := q.Peek()
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, p)
	assert.Equal(t, 2, q.Len())

	k, _ = q.Pop()
	assert.Equal(t, "a", k, "Peek and Pop agree on the best entry")
}

func TestQueue_Peek_Empty_Panics(t *testing.T) {
	q := New[string, int](minInt)
	assert.PanicsWithValue(t, "pqueue: Peek called on empty queue", func() {
		q.Peek()
	})
}

func TestQueue_Push_DuplicateKey_Panics(t *testing.T) {
	q := New[string, int](minInt)
	q.Push("a", 1)
	assert.PanicsWithValue(t, "pqueue: Push called with key already queued", func() {
		q.Push("a", 2)
	})
}

func TestQueue_Priority_QueuedAndAbsent(t *testing.T) {
	q := New[string, int](minInt)
	q.Push("a", 7)

	p, ok := q.Priority("a")
	assert.True(t, ok)
	assert.Equal(t, 7, p)

	_, ok = q.Priority("missing")
	assert.False(t, ok)

	q.Pop()
	_, ok = q.Priority("a")
	assert.False(t, ok, "popped keys are no longer queued")
}

func TestQueue_Improve_ReordersHeap(t *testing.T) {
	q := New[string, int](minInt)
	q.Push("a", 10)
	q.Push("b", 20)
	q.Push("c", 30)

	q.Improve("c", 5)

	p, ok := q.Priority("c")
	require.True(t, ok)
	assert.Equal(t, 5, p)

	k, _ := q.Pop()
	assert.Equal(t, "c", k, "improved key pops first")
	k, _ = q.Pop()
	assert.Equal(t, "a", k)
}

func TestQueue_Improve_AbsentKey_Panics(t *testing.T) {
	q := New[string, int](minInt)
	assert.PanicsWithValue(t, "pqueue: Improve called for a key that is not queued", func() {
		q.Improve("missing", 1)
	})
}

func TestQueue_Improve_NotStrictlyBetter_Panics(t *testing.T) {
	q := New[string, int](minInt)
	q.Push("a", 10)

	assert.PanicsWithValue(t, "pqueue: Improve called with a priority that is not an improvement", func() {
		q.Improve("a", 10)
	})
	assert.PanicsWithValue(t, "pqueue: Improve called with a priority that is not an improvement", func() {
		q.Improve("a", 15)
	})
}

func TestQueue_InterleavedOperations(t *testing.T) {
	q := New[int, float64](func(a, b float64) bool { return a < b })

	q.Push(1, 1.5)
	q.Push(2, 0.5)

	k, p := q.Pop()
	assert.Equal(t, 2, k)
	assert.Equal(t, 0.5, p)

	q.Push(3, 2.5)
	q.Push(4, 0.25)
	q.Improve(3, 0.1)

	k, _ = q.Pop()
	assert.Equal(t, 3, k)
	k, _ = q.Pop()
	assert.Equal(t, 4, k)
	k, _ = q.Pop()
	assert.Equal(t, 1, k)
	assert.Equal(t, 0, q.Len())
}
