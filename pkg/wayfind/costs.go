package wayfind

import (
	"cmp"
	"math"
	"time"
)

// CostModel is the algebra informed searches accumulate path costs with.
// It needs an additive identity, addition, and a total ordering; nothing
// else. C may be a numeric type, a duration, or a user-defined struct.
//
// Addition is expected to be monotone: adding a cost never makes a total
// compare lower than it did before. Every cost that behaves like a
// non-negative quantity satisfies this.
type CostModel[C any] interface {
	// Zero returns the additive identity: the cost of the empty path.
	Zero() C

	// Add returns the combined cost of a followed by b.
	Add(a, b C) C

	// Compare orders costs: negative when a is cheaper than b, zero when
	// equal, positive when a is dearer.
	Compare(a, b C) int
}

// NumericCostModel extends CostModel with a finiteness check. Informed
// searches silently skip any edge whose cost, heuristic estimate, or
// resulting total is not finite — the edge is impassable, not an error.
//
// Cost models without a finiteness concept implement only CostModel; under
// those, impassable edges cannot be expressed and every enumerated edge is
// relaxed.
type NumericCostModel[C any] interface {
	CostModel[C]

	// Finite reports whether c is a usable, finite cost.
	Finite(c C) bool
}

// CostFunc reads an edge's traversal cost.
type CostFunc[E comparable, C any] func(e E) C

// HeuristicFunc estimates the remaining cost from a node to the nearest
// target. A* requires the estimate to be admissible: it must never exceed
// the true remaining cost.
type HeuristicFunc[N comparable, C any] func(n N) C

// Float64Costs is the NumericCostModel for float64 costs. Math.Inf(1) and
// NaN are non-finite: edges or estimates carrying them are impassable.
type Float64Costs struct{}

// Zero returns 0.
func (Float64Costs) Zero() float64 { return 0 }

// Add returns a + b.
func (Float64Costs) Add(a, b float64) float64 { return a + b }

// Compare orders costs numerically.
func (Float64Costs) Compare(a, b float64) int { return cmp.Compare(a, b) }

// Finite reports whether c is neither infinite nor NaN.
func (Float64Costs) Finite(c float64) bool {
	return !math.IsInf(c, 0) && !math.IsNaN(c)
}

// IntCosts is the CostModel for int costs. Integers carry no finiteness
// concept, so informed searches cannot prune impassable edges under this
// model.
type IntCosts struct{}

// Zero returns 0.
func (IntCosts) Zero() int { return 0 }

// Add returns a + b.
func (IntCosts) Add(a, b int) int { return a + b }

// Compare orders costs numerically.
func (IntCosts) Compare(a, b int) int { return cmp.Compare(a, b) }

// DurationCosts is the CostModel for time.Duration costs, for graphs whose
// edges represent elapsed time.
type DurationCosts struct{}

// Zero returns 0.
func (DurationCosts) Zero() time.Duration { return 0 }

// Add returns a + b.
func (DurationCosts) Add(a, b time.Duration) time.Duration { return a + b }

// Compare orders durations.
func (DurationCosts) Compare(a, b time.Duration) int { return cmp.Compare(a, b) }

// Compile-time capability checks.
var (
	_ NumericCostModel[float64] = Float64Costs{}
	_ CostModel[int]            = IntCosts{}
	_ CostModel[time.Duration]  = DurationCosts{}
)
