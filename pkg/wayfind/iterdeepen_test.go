package wayfind

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterativeDeepening_FindsMinimumDepthSolution(t *testing.T) {
	// 3 lies at depth 2; a longer route via 4 and 5 also exists.
	g := newGraph(
		[2]int{1, 2}, [2]int{2, 3},
		[2]int{1, 4}, [2]int{4, 5}, [2]int{5, 3},
	)

	s, err := NewIterativeDeepening[int, edge](g, 1, GoalNode(3))
	require.NoError(t, err)
	stepAll[int, edge](t, s)

	assert.True(t, s.Succeeded())
	assert.Equal(t, StatusCompleted, s.Status())
	assert.Equal(t, 2, s.Limit(), "solution found at the minimum depth")
	assert.Equal(t, []edge{{1, 2}, {2, 3}}, s.PathToTarget())
}

// TestIterativeDeepening_LimitProgression drives the search step by step
// and watches the ceiling rise one level per cutoff.
func TestIterativeDeepening_LimitProgression(t *testing.T) {
	g := newGraph([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	s, err := NewIterativeDeepening[int, edge](g, 1, GoalNode(4))
	require.NoError(t, err)

	limits := []int{s.Limit()}
	for !s.Concluded() {
		_, err := s.Step(context.Background())
		require.NoError(t, err)
		if l := s.Limit(); l != limits[len(limits)-1] {
			limits = append(limits, l)
		}
	}

	assert.Equal(t, []int{0, 1, 2, 3}, limits)
	assert.True(t, s.Succeeded())
}

func TestIterativeDeepening_SourceIsGoal(t *testing.T) {
	g := newGraph([2]int{1, 2})

	s, err := NewIterativeDeepening[int, edge](g, 1, GoalNode(1))
	require.NoError(t, err)

	assert.True(t, s.Concluded())
	assert.True(t, s.Succeeded())
	assert.Equal(t, 0, s.Limit())
}

func TestIterativeDeepening_IsolatedSource_Failed(t *testing.T) {
	g := newGraph([2]int{2, 3})

	s, err := NewIterativeDeepening[int, edge](g, 1, GoalNode(3))
	require.NoError(t, err)

	assert.True(t, s.Concluded())
	assert.Equal(t, StatusFailed, s.Status())
}

func TestIterativeDeepening_Unreachable_Failed(t *testing.T) {
	g := newGraph([2]int{1, 2}, [2]int{2, 3})

	s, err := NewIterativeDeepening[int, edge](g, 1, GoalNode(99))
	require.NoError(t, err)
	stepAll[int, edge](t, s)

	// The iteration that discovers the whole graph without pruning
	// concludes Failed and stops the deepening.
	assert.Equal(t, StatusFailed, s.Status())
	assert.False(t, s.Succeeded())
	assert.Equal(t, 2, s.Limit())
}

// TestIterativeDeepening_VisitedContracts checks the documented
// accuracy-over-completeness trade-off: the visited map reflects only the
// current inner iteration and shrinks at each restart.
func TestIterativeDeepening_VisitedContracts(t *testing.T) {
	g := newGraph([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	s, err := NewIterativeDeepening[int, edge](g, 1, GoalNode(4))
	require.NoError(t, err)

	contracted := false
	prev := len(s.Visited())
	for !s.Concluded() {
		_, err := s.Step(context.Background())
		require.NoError(t, err)
		now := len(s.Visited())
		if now < prev {
			contracted = true
		}
		prev = now
	}

	assert.True(t, contracted, "visited never contracted across restarts")
}

func TestIterativeDeepening_CutOffReadsAsRunning(t *testing.T) {
	g := newGraph([2]int{1, 2}, [2]int{2, 3})

	s, err := NewIterativeDeepening[int, edge](g, 1, GoalNode(3))
	require.NoError(t, err)

	// The limit-0 iteration concluded CutOff at construction; the outer
	// search is still running.
	assert.False(t, s.Concluded())
	assert.Equal(t, StatusRunning, s.Status())
}

func TestIterativeDeepening_StepAfterConclusion(t *testing.T) {
	g := newGraph([2]int{1, 2})

	s, err := NewIterativeDeepening[int, edge](g, 1, GoalNode(2))
	require.NoError(t, err)
	stepAll[int, edge](t, s)

	_, err = s.Step(context.Background())
	assert.ErrorIs(t, err, ErrConcluded)
}

func TestIterativeDeepening_StepCancelled_Resumable(t *testing.T) {
	g := newGraph([2]int{1, 2}, [2]int{2, 3})

	s, err := NewIterativeDeepening[int, edge](g, 1, GoalNode(3))
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Step(cancelled)
	var ce *CancellationError
	require.ErrorAs(t, err, &ce)
	assert.False(t, s.Concluded())

	stepAll[int, edge](t, s)
	assert.True(t, s.Succeeded())
}
