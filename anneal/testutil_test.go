// Package anneal_test provides shared fixtures for the engine tests.
package anneal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/tsp"
)

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(11)

	// fastIters keeps unit tests quick while still exercising acceptance.
	fastIters = 3000
)

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

// unitSquare returns the corners of the unit square in perimeter order.
func unitSquare() []tsp.Point {
	return []tsp.Point{{ID: 1}, {ID: 2, X: 1}, {ID: 3, X: 1, Y: 1}, {ID: 4, Y: 1}}
}

// fixture builds a matrix and a greedy tour starting at city 0.
func fixture(t *testing.T, pts []tsp.Point) (*tsp.DistanceMatrix, tsp.Tour) {
	t.Helper()
	d, err := tsp.NewDistanceMatrix(pts)
	require.NoError(t, err)
	tour, err := tsp.NearestNeighborFrom(d, 0)
	require.NoError(t, err)

	return d, tour
}

// overflowSquare is a 4-city matrix whose diagonals are so long that any
// tour using both of them overflows to +Inf. Reversing two adjacent cities of
// the perimeter tour always produces such a tour.
func overflowSquare(t *testing.T) *tsp.DistanceMatrix {
	t.Helper()
	const huge = 1.7e308
	d, err := tsp.NewDistanceMatrixFromRows([][]float64{
		{0, 1, huge, 1},
		{1, 0, 1, huge},
		{huge, 1, 0, 1},
		{1, huge, 1, 0},
	})
	require.NoError(t, err)

	return d
}

// fastOpts caps the search so that tests stay fast.
func fastOpts(extra ...anneal.Option) []anneal.Option {
	return append([]anneal.Option{
		anneal.WithSeed(seedDet),
		anneal.WithAlpha(0.999),
		anneal.WithMaxIterations(fastIters),
	}, extra...)
}
