// Package anneal - the annealing engine.
//
// An Engine owns exactly one State and one *rand.Rand. It is not safe for
// concurrent use; run independent searches on independent engines.
package anneal

import (
	"context"
	"math/rand"
	"time"

	"github.com/katalvlaran/annealtsp/tsp"
)

const opStep = "anneal.Step"

// Engine performs simulated annealing from a given initial tour.
type Engine struct {
	dist *tsp.DistanceMatrix
	opts Options
	rng  *rand.Rand

	state     State
	candidate tsp.Tour // scratch buffer, swapped with state.Current on acceptance

	initialFitness float64
	status         Status
	stop           StopReason
	err            error

	accepted int
	improved int
	elapsed  time.Duration
}

// New validates the configuration and returns an engine whose current and
// best tours are a copy of initial. The fitness and tour histories are seeded
// with that starting entry.
//
// Errors:
//   - *tsp.ConfigurationError for invalid options, fewer than MinCities
//     cities (tsp.ErrTooFewPoints) or an initial tour that is not a
//     permutation of the matrix indices (tsp.ErrInvalidTour).
//   - *tsp.ComputationError if the initial tour's length is not finite.
//
// Complexity: O(N) time and space.
func New(dist *tsp.DistanceMatrix, initial tsp.Tour, opts ...Option) (*Engine, error) {
	const op = "anneal.New"

	o := Apply(opts...)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if dist.Size() < MinCities {
		return nil, &tsp.ConfigurationError{Op: op, Err: tsp.ErrTooFewPoints}
	}
	if err := tsp.ValidateTour(dist, initial); err != nil {
		return nil, &tsp.ConfigurationError{Op: op, Err: err}
	}

	fit, err := tsp.TourLength(dist, initial)
	if err != nil {
		return nil, &tsp.ComputationError{Op: op, Iteration: 0, Err: err}
	}

	rng := o.RNG
	if rng == nil {
		rng = tsp.NewRNG(o.Seed)
	}

	e := &Engine{
		dist:           dist,
		opts:           o,
		rng:            rng,
		candidate:      make(tsp.Tour, len(initial)),
		initialFitness: fit,
		status:         Searching,
	}
	e.state = State{
		Current:        initial.Clone(),
		CurrentFitness: fit,
		Best:           initial.Clone(),
		BestFitness:    fit,
		Temperature:    o.InitialTemp,
	}
	if o.KeepHistory {
		e.state.FitnessHistory = []float64{fit}
		if o.KeepTourHistory {
			e.state.TourHistory = []tsp.Tour{e.state.Best}
		}
	}

	return e, nil
}

// Options returns the validated configuration the engine runs with.
func (e *Engine) Options() Options { return e.opts }

// Status reports the engine's position in its state machine.
func (e *Engine) Status() Status { return e.status }

// State returns a snapshot of the search state.
func (e *Engine) State() State { return e.state.snapshot() }

// Step performs one iteration: propose a segment reversal, evaluate it,
// accept or reject it, cool the live temperature and record the best entry.
//
// It returns false once a stopping condition holds (the engine is then
// Converged) or after a failure. A failing evaluation returns a
// *tsp.ComputationError and leaves the engine Failed with its last valid
// state intact.
//
// Complexity: O(N) per call.
func (e *Engine) Step() (bool, error) {
	switch e.status {
	case Converged:
		return false, nil
	case Failed:
		return false, e.err
	}
	if r := e.stopReason(); r != StopNone {
		e.finish(Converged, r)
		return false, nil
	}

	var (
		n        = len(e.state.Current)
		segLen   = 2 + e.rng.Intn(n-2) // [2, n-1]
		segStart = e.rng.Intn(n - segLen + 1)
	)
	copy(e.candidate, e.state.Current)
	if err := tsp.ReverseSegment(e.candidate, segStart, segLen); err != nil {
		return false, e.fail(err)
	}

	fit, err := tsp.TourLength(e.dist, e.candidate)
	if err != nil {
		return false, e.fail(err)
	}

	if e.accept(fit) {
		e.state.Current, e.candidate = e.candidate, e.state.Current
		e.state.CurrentFitness = fit
		e.accepted++
		if fit < e.state.BestFitness {
			// Best is replaced, never mutated, so history entries stay valid.
			e.state.Best = e.state.Current.Clone()
			e.state.BestFitness = fit
			e.improved++
		}
	}

	e.state.Temperature *= e.opts.Alpha
	e.state.Iteration++
	if e.opts.KeepHistory {
		e.state.FitnessHistory = append(e.state.FitnessHistory, e.state.BestFitness)
		if e.opts.KeepTourHistory {
			e.state.TourHistory = append(e.state.TourHistory, e.state.Best)
		}
	}

	return true, nil
}

// accept applies the Metropolis criterion. Only non-improving candidates
// consume a random draw.
func (e *Engine) accept(fit float64) bool {
	delta := fit - e.state.CurrentFitness
	if delta < 0 {
		return true
	}

	return e.rng.Float64() < metropolis(delta, e.divisor())
}

func (e *Engine) fail(err error) error {
	e.err = &tsp.ComputationError{Op: opStep, Iteration: e.state.Iteration, Err: err}
	e.finish(Failed, StopFailed)

	return e.err
}

func (e *Engine) finish(s Status, r StopReason) {
	e.status = s
	e.stop = r
}

// Run iterates until a stopping condition holds, an iteration fails or ctx is
// cancelled. The context is checked before every iteration.
//
// The returned RunResult is always valid: on cancellation it reflects the
// iterations completed so far (Stop == StopCancelled) and the error is
// ctx.Err(); on failure it holds the last valid state and the error is the
// *tsp.ComputationError. Calling Run on a finished engine returns the final
// result again.
func (e *Engine) Run(ctx context.Context) (RunResult, error) {
	start := time.Now()
	err := e.loop(ctx)
	e.elapsed += time.Since(start)

	return e.Result(), err
}

func (e *Engine) loop(ctx context.Context) error {
	if e.status == Searching {
		e.stop = StopNone
	}
	for {
		if e.status == Searching {
			if err := ctx.Err(); err != nil {
				e.stop = StopCancelled
				return err
			}
		}
		ok, err := e.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Result builds an immutable RunResult from the current state. It may be
// called at any time; before the search stops, Stop is StopNone (or
// StopCancelled after an interrupted Run).
func (e *Engine) Result() RunResult {
	snap := e.state.snapshot()

	return RunResult{
		Tour:           snap.Best,
		Fitness:        snap.BestFitness,
		GreedyFitness:  e.initialFitness,
		FitnessHistory: snap.FitnessHistory,
		TourHistory:    snap.TourHistory,
		Iterations:     snap.Iteration,
		Elapsed:        e.elapsed,
		Stop:           e.stop,
		InitialTemp:    e.opts.InitialTemp,
		FinalTemp:      snap.Temperature,
		Accepted:       e.accepted,
		Improved:       e.improved,
	}
}
