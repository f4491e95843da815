package tsp

// Point is one city of the instance. ID is the caller's label (e.g. the first
// column of a coordinate file); the point's position in the input slice is its
// index in every Tour and DistanceMatrix.
type Point struct {
	ID int
	X  float64
	Y  float64
}

// Tour is an ordered visit sequence over [0, N), interpreted as a closed cycle:
// the last city connects back to the first. Unlike a closed tour of length N+1,
// the starting city is not repeated at the end.
type Tour []int

// Clone returns an independent copy of t (nil stays nil).
//
// Complexity: O(N).
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// Len returns the number of cities in the tour.
func (t Tour) Len() int { return len(t) }
