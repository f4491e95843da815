// Package tsp - tour utilities shared by the greedy constructor and annealing.
//
// Provided helpers:
//   - IdentityTour: the tour 0, 1, ..., n-1.
//   - ValidatePermutation / ValidateTour: verify a permutation over [0, n).
//   - ReverseSegment: in-place segment reversal (the annealing move).
//   - RotateToStart: cyclic shift so the tour begins at a given city.
//   - EqualCycles: equality of two tours as undirected cycles.
//
// Design:
//   - No logging, no panics on user input; only sentinels from errors.go.
//   - O(n) time for every helper; in-place mutations avoid allocations.
package tsp

// IdentityTour returns the tour [0, 1, ..., n-1]. n<=0 yields an empty tour.
//
// Complexity: O(n).
func IdentityTour(n int) Tour {
	if n <= 0 {
		return Tour{}
	}
	t := make(Tour, n)

	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}

	return t
}

// ValidatePermutation checks that perm is a permutation of [0, n) of length n.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour checks that t is a permutation of every city of dist.
//
// Complexity: O(n).
func ValidateTour(dist *DistanceMatrix, t Tour) error {
	if dist.Size() == 0 {
		return ErrEmptyPointSet
	}

	return ValidatePermutation(t, dist.Size())
}

// ReverseSegment reverses t[start : start+length] in place.
// Reversing a contiguous block keeps t a permutation, which is why the
// annealing move never needs to re-validate candidates.
//
// Contract: 0 ≤ start, length ≥ 0, start+length ≤ len(t); otherwise
// ErrIndexOutOfRange and t is left untouched.
//
// Complexity: O(length) time, O(1) space.
func ReverseSegment(t Tour, start, length int) error {
	if start < 0 || length < 0 || start+length > len(t) {
		return ErrIndexOutOfRange
	}
	var i, k = start, start + length - 1
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}

	return nil
}

// RotateToStart returns a fresh copy of t shifted so that out[0] == start.
// The cycle itself (and its direction) is unchanged.
//
// Errors: ErrInvalidTour for an empty tour, ErrStartOutOfRange if start does
// not occur in t.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(t Tour, start int) (Tour, error) {
	var n = len(t)
	if n == 0 {
		return nil, ErrInvalidTour
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if t[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrStartOutOfRange
	}

	out := make(Tour, n)
	for i = 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}

	return out, nil
}

// EqualCycles reports whether a and b describe the same undirected cycle,
// i.e. they are equal up to rotation and reversal.
//
// Complexity: O(n).
func EqualCycles(a, b Tour) bool {
	var n = len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	// Locate a[0] inside b.
	var (
		p = -1
		i int
	)
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	for i = 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}
