package benchmarks

import (
	"context"
	"testing"

	"github.com/wayfindlabs/wayfind/pkg/wayfind"
	"github.com/wayfindlabs/wayfind/pkg/wayfind/simple"
)

type cell struct {
	X, Y int
}

// BenchmarkNewBreadthFirst measures search construction overhead.
func BenchmarkNewBreadthFirst(b *testing.B) {
	g, goal := buildGrid(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wayfind.NewBreadthFirst[cell, simple.Edge[cell]](g, cell{}, wayfind.GoalNode(goal))
	}
}

// BenchmarkBreadthFirst_Grid_8 runs breadth-first over an 8x8 grid.
func BenchmarkBreadthFirst_Grid_8(b *testing.B) {
	benchmarkBreadthFirst(b, 8)
}

// BenchmarkBreadthFirst_Grid_16 runs breadth-first over a 16x16 grid.
func BenchmarkBreadthFirst_Grid_16(b *testing.B) {
	benchmarkBreadthFirst(b, 16)
}

// BenchmarkBreadthFirst_Grid_32 runs breadth-first over a 32x32 grid.
func BenchmarkBreadthFirst_Grid_32(b *testing.B) {
	benchmarkBreadthFirst(b, 32)
}

// BenchmarkDepthFirst_Grid_16 runs depth-first over a 16x16 grid.
func BenchmarkDepthFirst_Grid_16(b *testing.B) {
	g, goal := buildGrid(16)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := wayfind.NewDepthFirst[cell, simple.Edge[cell]](g, cell{}, wayfind.GoalNode(goal))
		if err != nil {
			b.Fatal(err)
		}
		if err := wayfind.Run(ctx, s); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDijkstra_Grid_8 runs Dijkstra over an 8x8 weighted grid.
func BenchmarkDijkstra_Grid_8(b *testing.B) {
	benchmarkDijkstra(b, 8)
}

// BenchmarkDijkstra_Grid_16 runs Dijkstra over a 16x16 weighted grid.
func BenchmarkDijkstra_Grid_16(b *testing.B) {
	benchmarkDijkstra(b, 16)
}

// BenchmarkDijkstra_Grid_32 runs Dijkstra over a 32x32 weighted grid.
func BenchmarkDijkstra_Grid_32(b *testing.B) {
	benchmarkDijkstra(b, 32)
}

// BenchmarkAStar_Grid_16 runs A* with a manhattan heuristic over a 16x16
// weighted grid.
func BenchmarkAStar_Grid_16(b *testing.B) {
	g, goal := buildGrid(16)
	heuristic := func(n cell) float64 {
		return float64(abs(goal.X-n.X) + abs(goal.Y-n.Y))
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := wayfind.NewAStar[cell, simple.Edge[cell]](g, cell{}, wayfind.GoalNode(goal),
			wayfind.Float64Costs{}, g.CostFunc(), heuristic)
		if err != nil {
			b.Fatal(err)
		}
		if err := wayfind.Run(ctx, s); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStep_BreadthFirst measures per-step overhead, amortizing search
// construction across a full grid traversal.
func BenchmarkStep_BreadthFirst(b *testing.B) {
	g, goal := buildGrid(32)
	ctx := context.Background()

	s, err := wayfind.NewBreadthFirst[cell, simple.Edge[cell]](g, cell{}, wayfind.GoalNode(goal))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.Concluded() {
			b.StopTimer()
			s, err = wayfind.NewBreadthFirst[cell, simple.Edge[cell]](g, cell{}, wayfind.GoalNode(goal))
			if err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
		}
		if _, err := s.Step(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// Helper functions

func benchmarkBreadthFirst(b *testing.B, n int) {
	g, goal := buildGrid(n)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := wayfind.NewBreadthFirst[cell, simple.Edge[cell]](g, cell{}, wayfind.GoalNode(goal))
		if err != nil {
			b.Fatal(err)
		}
		if err := wayfind.Run(ctx, s); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkDijkstra(b *testing.B, n int) {
	g, goal := buildGrid(n)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := wayfind.NewDijkstra[cell, simple.Edge[cell]](g, cell{}, wayfind.GoalNode(goal),
			wayfind.Float64Costs{}, g.CostFunc())
		if err != nil {
			b.Fatal(err)
		}
		if err := wayfind.Run(ctx, s); err != nil {
			b.Fatal(err)
		}
	}
}

// buildGrid builds an n x n 4-connected grid with unit edge costs and
// returns it with the far-corner goal node.
func buildGrid(n int) (*simple.Weighted[cell], cell) {
	g := simple.NewWeighted[cell]()
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x+1 < n {
				g.AddBoth(cell{x, y}, cell{x + 1, y}, 1)
			}
			if y+1 < n {
				g.AddBoth(cell{x, y}, cell{x, y + 1}, 1)
			}
		}
	}
	return g, cell{n - 1, n - 1}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
