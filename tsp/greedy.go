// Package tsp - greedy nearest-neighbour construction.
//
// The constructor builds the starting tour of every annealing run:
//  1. pick a start city (uniformly at random, or given),
//  2. repeatedly move to the closest unvisited city,
//  3. stop once every city has been visited.
//
// Ties are broken deterministically: candidates are scanned in ascending index
// order and only a strictly smaller distance replaces the incumbent, so the
// lowest-index city wins among equidistant ones.
package tsp

import "math/rand"

// NearestNeighbor builds a greedy tour starting from a city drawn uniformly
// from [0, N) with rng. Exactly one rng.Intn call is made.
//
// Errors (as *ConfigurationError): ErrEmptyPointSet for a nil or empty matrix,
// ErrNilRNG for a nil rng.
//
// Complexity: O(N²) time, O(N) space.
func NearestNeighbor(dist *DistanceMatrix, rng *rand.Rand) (Tour, error) {
	const op = "NearestNeighbor"
	if dist.Size() == 0 {
		return nil, configError(op, ErrEmptyPointSet)
	}
	if rng == nil {
		return nil, configError(op, ErrNilRNG)
	}

	return nearestNeighborFrom(dist, rng.Intn(dist.Size())), nil
}

// NearestNeighborFrom builds the greedy tour from a fixed start city.
//
// Errors (as *ConfigurationError): ErrEmptyPointSet, ErrStartOutOfRange.
//
// Complexity: O(N²) time, O(N) space.
func NearestNeighborFrom(dist *DistanceMatrix, start int) (Tour, error) {
	const op = "NearestNeighborFrom"
	if dist.Size() == 0 {
		return nil, configError(op, ErrEmptyPointSet)
	}
	if start < 0 || start >= dist.Size() {
		return nil, configError(op, ErrStartOutOfRange)
	}

	return nearestNeighborFrom(dist, start), nil
}

// nearestNeighborFrom assumes 0 ≤ start < N.
func nearestNeighborFrom(dist *DistanceMatrix, start int) Tour {
	var n = dist.n
	tour := make(Tour, 0, n)
	visited := make([]bool, n)

	var (
		cur  = start
		step int
		j    int
		next int
		best float64
		row  []float64
	)
	tour = append(tour, cur)
	visited[cur] = true

	for step = 1; step < n; step++ {
		row = dist.Row(cur)
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			// Strict '<' keeps the first (lowest-index) minimum.
			if next == -1 || row[j] < best {
				next = j
				best = row[j]
			}
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}

	return tour
}
