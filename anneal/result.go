package anneal

import (
	"time"

	"github.com/katalvlaran/annealtsp/tsp"
)

// RunResult is the immutable outcome of one annealing search. Its slices are
// copies owned by the result.
type RunResult struct {
	Tour           tsp.Tour   // best tour found
	Fitness        float64    // length of Tour
	GreedyFitness  float64    // length of the starting tour
	FitnessHistory []float64  // best fitness after k iterations, k = 0..Iterations
	TourHistory    []tsp.Tour // best tour after k iterations (nil if disabled)
	Iterations     int
	Elapsed        time.Duration
	Stop           StopReason
	InitialTemp    float64
	FinalTemp      float64 // live temperature when the search stopped
	Accepted       int     // accepted moves, improving or not
	Improved       int     // moves that produced a new best
}

// Improvement returns the relative gain over the starting tour in percent,
// 100·(greedy − best)/greedy. A zero-length starting tour yields 0.
func (r RunResult) Improvement() float64 {
	if r.GreedyFitness == 0 {
		return 0
	}

	return 100 * (r.GreedyFitness - r.Fitness) / r.GreedyFitness
}

// Converged reports whether the search ended on a stopping condition rather
// than by cancellation or failure.
func (r RunResult) Converged() bool {
	return r.Stop == StopTemperature || r.Stop == StopMaxIterations
}
