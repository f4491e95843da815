// Package anneal - cooling schedule and acceptance criterion.
package anneal

import "math"

// metropolis returns the probability of accepting a move that worsens the
// fitness by delta ≥ 0 at temperature divisor.
//
// Complexity: O(1).
func metropolis(delta, divisor float64) float64 {
	return math.Exp(-delta / divisor)
}

// divisor selects the Metropolis divisor for the configured mode.
func (e *Engine) divisor() float64 {
	if e.opts.Acceptance == AcceptLiveTemperature {
		return e.state.Temperature
	}

	return e.opts.InitialTemp
}

// stopReason reports which stopping condition currently holds, if any.
// The temperature check runs first, so a run hitting both conditions at the
// same iteration reports StopTemperature.
func (e *Engine) stopReason() StopReason {
	if e.state.Temperature < e.opts.StopTemp {
		return StopTemperature
	}
	if e.state.Iteration >= e.opts.MaxIterations {
		return StopMaxIterations
	}

	return StopNone
}

// IterationBound returns the iteration at which a search with the given
// schedule stops: the smallest k such that t0·αᵏ < tmin, capped at maxIter.
//
// It replays the engine's repeated multiplication rather than evaluating
// ln(tmin/t0)/ln(α), so the result matches the loop exactly. Whenever that
// ratio is not an integer the result equals ceil(ln(tmin/t0)/ln(α)).
// Invalid schedules (see Options.Validate) return 0.
//
// Complexity: O(result).
func IterationBound(t0, alpha, tmin float64, maxIter int) int {
	o := Options{InitialTemp: t0, Alpha: alpha, StopTemp: tmin, MaxIterations: maxIter}
	if o.Validate() != nil {
		return 0
	}

	var (
		k int
		t = t0
	)
	for t >= tmin && k < maxIter {
		t *= alpha
		k++
	}

	return k
}
