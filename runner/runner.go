package runner

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/tsp"
)

// Runner orchestrates repeated searches over one instance.
type Runner struct {
	dist   *tsp.DistanceMatrix
	opts   Options
	anneal anneal.Options
	log    logrus.FieldLogger
}

// New builds the distance matrix for points and validates the options.
// Configuration errors are returned before any run starts.
//
// Complexity: O(N²) for the matrix.
func New(points []tsp.Point, opts ...Option) (*Runner, error) {
	dist, err := tsp.NewDistanceMatrix(points)
	if err != nil {
		return nil, err
	}

	return NewFromMatrix(dist, opts...)
}

// NewFromMatrix is New for a caller-built matrix. The matrix must not be
// modified while the Runner uses it.
func NewFromMatrix(dist *tsp.DistanceMatrix, opts ...Option) (*Runner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if dist.Size() < anneal.MinCities {
		return nil, &tsp.ConfigurationError{Op: "runner.New", Err: tsp.ErrTooFewPoints}
	}
	if o.EngineFactory == nil {
		o.EngineFactory = NewEngine
	}

	ao := anneal.Apply(o.Anneal...)
	ao.RNG = nil

	return &Runner{dist: dist, opts: o, anneal: ao, log: o.Logger}, nil
}

// Matrix returns the shared distance matrix.
func (r *Runner) Matrix() *tsp.DistanceMatrix { return r.dist }

// Options returns the runner configuration.
func (r *Runner) Options() Options { return r.opts }

// Run executes Repetitions independent runs, at most Parallelism at a time,
// and returns the best one (minimum fitness, ties to the lowest run index).
//
// Errors:
//   - ctx.Err() if the context was cancelled; the Outcome then covers the
//     runs that completed before cancellation;
//   - *tsp.AggregateRunError if every run failed.
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	var (
		start   = time.Now()
		reps    = r.opts.Repetitions
		reports = make([]RunReport, reps)
		results = make([]anneal.RunResult, reps)
		workers = r.opts.workers()
	)

	r.log.WithFields(logrus.Fields{
		"points":      r.dist.Size(),
		"repetitions": reps,
		"workers":     workers,
		"seed":        r.opts.Seed,
	}).Info("search started")

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := 0; i < reps; i++ {
		reports[i] = RunReport{Run: i, Seed: tsp.DeriveSeed(r.opts.Seed, uint64(i))}
		g.Go(func() error {
			results[i], reports[i] = r.runOne(ctx, i, reports[i].Seed)
			return nil
		})
	}
	_ = g.Wait() // errors captured in RunReport.Err

	out := r.reduce(reports, results)
	out.WallClock = time.Since(start)

	if err := ctx.Err(); err != nil {
		r.log.WithError(err).WithField("completed", out.Succeeded()).Warn("search cancelled")
		return out, err
	}
	if out.BestRun < 0 {
		errs := make([]error, reps)
		for i := range reports {
			errs[i] = reports[i].Err
		}
		agg := &tsp.AggregateRunError{Errs: errs}
		r.log.WithError(agg).Error("all runs failed")

		return out, agg
	}

	r.log.WithFields(logrus.Fields{
		"best_run":   out.BestRun,
		"fitness":    out.Best.Fitness,
		"greedy":     out.Best.GreedyFitness,
		"failed":     out.Failed(),
		"wall_clock": out.WallClock,
		"total_time": out.TotalElapsed,
	}).Info("search finished")

	return out, nil
}

// runOne performs run i: greedy construction from a random start followed by
// annealing, both drawing from the run's private RNG stream.
func (r *Runner) runOne(ctx context.Context, i int, seed int64) (anneal.RunResult, RunReport) {
	rep := RunReport{Run: i, Seed: seed}
	log := r.log.WithFields(logrus.Fields{"run": i, "seed": seed})

	if err := ctx.Err(); err != nil {
		rep.Skipped = true
		rep.Err = err
		log.Debug("run skipped")

		return anneal.RunResult{}, rep
	}
	log.Debug("run started")

	rng := tsp.DeriveRNG(r.opts.Seed, uint64(i))
	res, err := r.search(ctx, i, rng)
	rep.Fitness = res.Fitness
	rep.GreedyFitness = res.GreedyFitness
	rep.Iterations = res.Iterations
	rep.Elapsed = res.Elapsed
	rep.Stop = res.Stop
	rep.Err = err

	if err != nil {
		log.WithError(err).WithField("iterations", res.Iterations).Warn("run failed")
	} else {
		log.WithFields(logrus.Fields{
			"fitness":    res.Fitness,
			"greedy":     res.GreedyFitness,
			"iterations": res.Iterations,
			"stop":       res.Stop,
			"elapsed":    res.Elapsed,
		}).Debug("run finished")
	}
	if r.opts.Hook != nil {
		r.opts.Hook(i, res, err)
	}

	return res, rep
}

func (r *Runner) search(ctx context.Context, i int, rng *rand.Rand) (anneal.RunResult, error) {
	tour, err := tsp.NearestNeighbor(r.dist, rng)
	if err != nil {
		return anneal.RunResult{}, err
	}

	opts := make([]anneal.Option, 0, len(r.opts.Anneal)+1)
	opts = append(opts, r.opts.Anneal...)
	opts = append(opts, anneal.WithRNG(rng))

	s, err := r.opts.EngineFactory(i, r.dist, tour, opts...)
	if err != nil {
		return anneal.RunResult{}, err
	}

	return s.Run(ctx)
}

// reduce selects the winner among successful runs.
func (r *Runner) reduce(reports []RunReport, results []anneal.RunResult) Outcome {
	out := Outcome{
		BestRun: -1,
		Runs:    reports,
		Points:  r.dist.Size(),
		Seed:    r.opts.Seed,
		Anneal:  r.anneal,
	}
	for i := range reports {
		out.TotalElapsed += reports[i].Elapsed
		if reports[i].Err != nil {
			continue
		}
		if out.BestRun < 0 || results[i].Fitness < out.Best.Fitness {
			out.BestRun = i
			out.Best = results[i]
		}
	}

	return out
}
