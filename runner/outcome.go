package runner

import (
	"time"

	"github.com/katalvlaran/annealtsp/anneal"
)

// RunReport summarises one run. Err is non-nil for failed, cancelled and
// skipped runs; such runs never take part in selection.
type RunReport struct {
	Run           int
	Seed          int64
	Fitness       float64
	GreedyFitness float64
	Iterations    int
	Elapsed       time.Duration
	Stop          anneal.StopReason
	Skipped       bool // not started because the context was cancelled
	Err           error
}

// Outcome is the reduced result of all runs.
type Outcome struct {
	Best    anneal.RunResult // winning run; zero value when BestRun < 0
	BestRun int              // index of the winning run, -1 if none succeeded
	Runs    []RunReport      // one entry per run, in run order

	Points       int            // number of cities
	Seed         int64          // base seed
	Anneal       anneal.Options // shared engine configuration (RNG omitted)
	TotalElapsed time.Duration  // sum of per-run elapsed times
	WallClock    time.Duration  // end-to-end time of Runner.Run
}

// Failed returns the number of runs that did not complete successfully.
func (o Outcome) Failed() int {
	var n int
	for i := range o.Runs {
		if o.Runs[i].Err != nil {
			n++
		}
	}

	return n
}

// Succeeded returns the number of runs that took part in selection.
func (o Outcome) Succeeded() int { return len(o.Runs) - o.Failed() }

// StoppingIteration returns the iteration at which the shared schedule stops.
func (o Outcome) StoppingIteration() int {
	return anneal.IterationBound(o.Anneal.InitialTemp, o.Anneal.Alpha, o.Anneal.StopTemp, o.Anneal.MaxIterations)
}
