package anneal

import (
	"fmt"

	"github.com/katalvlaran/annealtsp/tsp"
)

// Status is the engine's position in its state machine.
type Status int

const (
	// Searching: iterations may still be performed.
	Searching Status = iota
	// Converged: a stopping condition was met; the result is final.
	Converged
	// Failed: an iteration raised a ComputationError; the result holds the
	// last valid state.
	Failed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Searching:
		return "searching"
	case Converged:
		return "converged"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// StopReason records why a search ended.
type StopReason int

const (
	// StopNone: the search has not stopped (yet).
	StopNone StopReason = iota
	// StopTemperature: the live temperature dropped below Options.StopTemp.
	StopTemperature
	// StopMaxIterations: the iteration counter reached Options.MaxIterations.
	StopMaxIterations
	// StopCancelled: the context passed to Run was cancelled.
	StopCancelled
	// StopFailed: an iteration failed with a ComputationError.
	StopFailed
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopTemperature:
		return "temperature"
	case StopMaxIterations:
		return "max-iterations"
	case StopCancelled:
		return "cancelled"
	case StopFailed:
		return "failed"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// State is the mutable search state owned by one Engine. Values returned by
// Engine.State are snapshots: mutating them does not affect the engine.
//
// FitnessHistory[k] and TourHistory[k] describe the best solution after k
// iterations; index 0 is the starting tour. BestFitness is non-increasing
// along FitnessHistory.
type State struct {
	Current        tsp.Tour
	CurrentFitness float64
	Best           tsp.Tour
	BestFitness    float64
	Temperature    float64 // live temperature, cooled every iteration
	Iteration      int
	FitnessHistory []float64
	TourHistory    []tsp.Tour
}

// snapshot deep-copies the tours and history slices. Tour snapshots inside
// TourHistory are immutable once recorded and are shared, not copied.
func (s *State) snapshot() State {
	out := *s
	out.Current = s.Current.Clone()
	out.Best = s.Best.Clone()
	if s.FitnessHistory != nil {
		out.FitnessHistory = append([]float64(nil), s.FitnessHistory...)
	}
	if s.TourHistory != nil {
		out.TourHistory = append([]tsp.Tour(nil), s.TourHistory...)
	}

	return out
}
