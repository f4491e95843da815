// Package tsp provides the geometric building blocks of the annealing
// Travelling Salesman search: points, the Euclidean distance matrix, tour
// utilities, the cyclic tour length (fitness) and the greedy nearest-neighbour
// constructor used to seed every annealing run.
//
// Everything here works on an index space [0, N) defined by the order of the
// input points:
//
//   - NewDistanceMatrix: all pairwise Euclidean distances, rounded to 4
//     digits. O(N²) time and memory.
//   - TourLength: cyclic length of a tour, closing edge included. O(N).
//   - NearestNeighbor: greedy tour from a random start, ties to lowest
//     index. O(N²).
//   - OneTreeBound: Held–Karp lower bound used to judge tour quality.
//     O(iterations·N²).
//
// A Tour is an *open* permutation of [0, N); the edge from the last city back
// to the first is implied. Every helper in this package preserves that
// invariant or reports ErrInvalidTour.
//
// The package never logs and never panics on user input. Failures are either
// bare sentinels (low-level helpers) or one of the typed errors
// ConfigurationError, ComputationError and AggregateRunError, which the
// anneal and runner packages reuse.
//
// Randomness is always explicit: callers pass a *rand.Rand, and NewRNG /
// DeriveSeed produce independent, reproducible streams for parallel runs.
package tsp
