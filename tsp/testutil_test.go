// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/annealtsp/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the tolerance for values that went through 4-digit rounding.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)
)

// -----------------------------------------------------------------------------
// Generic helpers
// -----------------------------------------------------------------------------

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// -----------------------------------------------------------------------------
// Geometric generators
// -----------------------------------------------------------------------------

// unitSquare returns the four corners (0,0),(1,0),(1,1),(0,1) in that order.
func unitSquare() []tsp.Point {
	return []tsp.Point{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 0},
		{ID: 3, X: 1, Y: 1},
		{ID: 4, X: 0, Y: 1},
	}
}

// rippledCircle places n points on a slightly perturbed circle so that
// distances are pairwise distinct (no accidental ties).
func rippledCircle(n int) []tsp.Point {
	pts := make([]tsp.Point, n)

	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 10.0 + 0.25*float64(i%3)
		pts[i] = tsp.Point{ID: i + 1, X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return pts
}

// randomPoints draws n points uniformly from [0,100)² with a fixed seed.
func randomPoints(n int, seed int64) []tsp.Point {
	rng := tsp.NewRNG(seed)
	pts := make([]tsp.Point, n)

	var i int
	for i = 0; i < n; i++ {
		pts[i] = tsp.Point{ID: i, X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}

	return pts
}

// mustMatrix builds a distance matrix or fails the test.
func mustMatrix(t *testing.T, pts []tsp.Point) *tsp.DistanceMatrix {
	t.Helper()
	d, err := tsp.NewDistanceMatrix(pts)
	if err != nil {
		t.Fatalf("NewDistanceMatrix: %v", err)
	}

	return d
}
