// Package tsp - fitness (cyclic tour length).
//
// TourLength is the single objective used everywhere: construction baseline,
// annealing acceptance and run selection. It is a pure function of
// (matrix, tour), so evaluating the same tour twice yields the same value.
package tsp

// TourLength returns the cyclic length of t: the sum of consecutive distances
// plus the closing edge from the last city back to the first, rounded to
// 4 decimal digits. A single-city tour has length 0.
//
// Errors (bare sentinels, callers attach context):
//   - ErrEmptyPointSet if dist is nil or empty,
//   - ErrInvalidTour if len(t) != N or an index is out of range,
//   - ErrNonFiniteFitness if the sum is NaN or ±Inf.
//
// Duplicates are not detected here (that would cost an allocation per call);
// use ValidateTour for a full check.
//
// Complexity: O(N).
func TourLength(dist *DistanceMatrix, t Tour) (float64, error) {
	var n = dist.Size()
	if n == 0 {
		return 0, ErrEmptyPointSet
	}
	if len(t) != n {
		return 0, ErrInvalidTour
	}

	var (
		sum  float64
		i    int
		u, v int
	)
	for i = 0; i < n; i++ {
		u = t[i]
		v = t[(i+1)%n] // i == n-1 closes the cycle
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrInvalidTour
		}
		sum += dist.data[u*n+v]
	}

	if !isFinite(sum) {
		return 0, ErrNonFiniteFitness
	}

	return round4(sum), nil
}
