// Package tsp - Euclidean distance matrix.
//
// DistanceMatrix is a row-major N×N table of pairwise distances, built once
// and read-only afterwards, so any number of goroutines may read it without
// locking.
//
// Invariants (enforced at construction):
//   - symmetric: d[i][j] == d[j][i] (bit-exact, the lower triangle is mirrored),
//   - zero diagonal,
//   - finite and non-negative,
//   - every entry built from points is rounded to 4 decimal digits.
package tsp

import "math"

// roundScale fixes the decimal precision of every matrix entry and fitness
// value: 1e4 ⇒ 4 digits.
const roundScale = 1e4

// roundLimit is the magnitude above which float64 can no longer hold 4
// fractional digits; such values are returned unchanged by round4.
const roundLimit = 1e15

// DistanceMatrix holds all pairwise distances of an instance.
type DistanceMatrix struct {
	n    int       // number of cities
	data []float64 // flat backing storage, len == n*n, row-major
}

// NewDistanceMatrix computes the Euclidean distance between every pair of
// points, rounded to 4 decimal digits.
//
// N == 1 yields the single zero entry. Errors (as *ConfigurationError):
//   - ErrEmptyPointSet if points is empty,
//   - ErrNonFiniteCoordinate if any coordinate is NaN or ±Inf.
//
// Complexity: O(N²) time and memory.
func NewDistanceMatrix(points []Point) (*DistanceMatrix, error) {
	const op = "NewDistanceMatrix"
	var n = len(points)
	if n == 0 {
		return nil, configError(op, ErrEmptyPointSet)
	}

	var i int
	for i = 0; i < n; i++ {
		if !isFinite(points[i].X) || !isFinite(points[i].Y) {
			return nil, configError(op, ErrNonFiniteCoordinate)
		}
	}

	d := &DistanceMatrix{n: n, data: make([]float64, n*n)}

	// Upper triangle only; mirror to keep symmetry exact.
	var (
		j int
		w float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = round4(math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y))
			d.data[i*n+j] = w
			d.data[j*n+i] = w
		}
	}

	return d, nil
}

// NewDistanceMatrixFromRows copies an explicit matrix and validates it
// (see Validate). Entries are kept as given, not rounded.
//
// Complexity: O(N²).
func NewDistanceMatrixFromRows(rows [][]float64) (*DistanceMatrix, error) {
	const op = "NewDistanceMatrixFromRows"
	var n = len(rows)
	if n == 0 {
		return nil, configError(op, ErrEmptyPointSet)
	}
	d := &DistanceMatrix{n: n, data: make([]float64, n*n)}

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, configError(op, ErrNonSquare)
		}
		copy(d.data[i*n:(i+1)*n], rows[i])
	}
	if err := d.Validate(); err != nil {
		return nil, configError(op, err)
	}

	return d, nil
}

// Size returns N, the number of cities.
func (d *DistanceMatrix) Size() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At returns d[i][j] without bounds checks beyond the slice's own.
// Hot-path accessor for callers that already validated their indices.
//
// Complexity: O(1).
func (d *DistanceMatrix) At(i, j int) float64 {
	return d.data[i*d.n+j]
}

// Lookup returns d[i][j] or ErrIndexOutOfRange.
//
// Complexity: O(1).
func (d *DistanceMatrix) Lookup(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, ErrIndexOutOfRange
	}

	return d.data[i*d.n+j], nil
}

// Row returns the distances from city i as a read-only view into the matrix.
// Callers must not modify the returned slice; its capacity is clipped so an
// append cannot spill into the next row.
func (d *DistanceMatrix) Row(i int) []float64 {
	var lo = i * d.n
	var hi = lo + d.n

	return d.data[lo:hi:hi]
}

// Rows returns a deep copy of the matrix as [][]float64.
//
// Complexity: O(N²).
func (d *DistanceMatrix) Rows() [][]float64 {
	out := make([][]float64, d.n)

	var i int
	for i = 0; i < d.n; i++ {
		out[i] = append([]float64(nil), d.Row(i)...)
	}

	return out
}

// Validate checks every matrix invariant:
//   - diagonal exactly zero (ErrNonZeroDiagonal),
//   - entries finite (ErrNonFinite) and non-negative (ErrNegativeDistance),
//   - d[i][j] == d[j][i] (ErrAsymmetry).
//
// Complexity: O(N²).
func (d *DistanceMatrix) Validate() error {
	if d == nil || d.n == 0 {
		return ErrEmptyPointSet
	}
	if len(d.data) != d.n*d.n {
		return ErrNonSquare
	}

	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < d.n; i++ {
		if d.data[i*d.n+i] != 0 {
			return ErrNonZeroDiagonal
		}
	}
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			aij = d.data[i*d.n+j]
			if !isFinite(aij) {
				return ErrNonFinite
			}
			if aij < 0 {
				return ErrNegativeDistance
			}
		}
	}
	for i = 0; i < d.n; i++ {
		for j = i + 1; j < d.n; j++ {
			aij = d.data[i*d.n+j]
			aji = d.data[j*d.n+i]
			if aij != aji {
				return ErrAsymmetry
			}
		}
	}

	return nil
}

// round4 rounds x to 4 decimal digits. Non-finite values and magnitudes
// beyond roundLimit are returned unchanged, so scaling cannot overflow.
//
// Complexity: O(1).
func round4(x float64) float64 {
	if !isFinite(x) || math.Abs(x) >= roundLimit {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// Round4 exposes the package rounding policy (4 decimal digits) so callers can
// compare externally computed lengths with TourLength results.
func Round4(x float64) float64 { return round4(x) }

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
