package runner

import (
	"context"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/tsp"
)

// DefaultRepetitions is the number of independent runs when none is set.
const DefaultRepetitions = 5

// Searcher is one prepared annealing search. *anneal.Engine implements it.
type Searcher interface {
	Run(ctx context.Context) (anneal.RunResult, error)
}

// EngineFactory builds the searcher for one run. run is the zero-based run
// index; opts already carry the run's private RNG.
type EngineFactory func(run int, dist *tsp.DistanceMatrix, initial tsp.Tour, opts ...anneal.Option) (Searcher, error)

// Hook observes every finished run. With Parallelism > 1 it may be called
// from several goroutines at once.
type Hook func(run int, res anneal.RunResult, err error)

// Options configures a Runner.
type Options struct {
	Repetitions   int                // independent runs, ≥ 1
	Parallelism   int                // concurrent runs; 0 ⇒ GOMAXPROCS, 1 ⇒ sequential
	Seed          int64              // base seed; run i uses tsp.DeriveSeed(Seed, i)
	Anneal        []anneal.Option    // applied to every run
	Logger        logrus.FieldLogger // defaults to logrus.StandardLogger()
	Hook          Hook               // optional
	EngineFactory EngineFactory      // defaults to NewEngine
}

// Option represents a functional option for configuring a Runner.
type Option func(*Options)

// WithRepetitions sets the number of runs.
func WithRepetitions(r int) Option {
	return func(o *Options) { o.Repetitions = r }
}

// WithParallelism bounds the number of concurrent runs.
func WithParallelism(p int) Option {
	return func(o *Options) { o.Parallelism = p }
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithAnnealOptions appends engine options shared by every run.
func WithAnnealOptions(opts ...anneal.Option) Option {
	return func(o *Options) { o.Anneal = append(o.Anneal, opts...) }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHook installs a per-run observer.
func WithHook(h Hook) Option {
	return func(o *Options) { o.Hook = h }
}

// WithEngineFactory substitutes engine construction.
func WithEngineFactory(f EngineFactory) Option {
	return func(o *Options) { o.EngineFactory = f }
}

// DefaultOptions returns:
//   - Repetitions: 5
//   - Parallelism: 0 (GOMAXPROCS)
//   - Seed:        0 (tsp.DefaultSeed)
//   - Logger:      logrus.StandardLogger()
//   - EngineFactory: NewEngine
func DefaultOptions() Options {
	return Options{
		Repetitions:   DefaultRepetitions,
		Logger:        logrus.StandardLogger(),
		EngineFactory: NewEngine,
	}
}

// NewEngine is the default EngineFactory: anneal.New.
func NewEngine(_ int, dist *tsp.DistanceMatrix, initial tsp.Tour, opts ...anneal.Option) (Searcher, error) {
	e, err := anneal.New(dist, initial, opts...)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Validate checks the runner-level fields and the shared anneal options.
func (o Options) Validate() error {
	const op = "runner.Options"
	if o.Repetitions < 1 {
		return &tsp.ConfigurationError{Op: op, Err: ErrRepetitions}
	}
	if o.Parallelism < 0 {
		return &tsp.ConfigurationError{Op: op, Err: ErrParallelism}
	}

	return anneal.Apply(o.Anneal...).Validate()
}

// workers resolves Parallelism to a concrete limit in [1, Repetitions].
func (o Options) workers() int {
	p := o.Parallelism
	if p == 0 {
		p = runtime.GOMAXPROCS(0)
	}
	if p > o.Repetitions {
		p = o.Repetitions
	}

	return p
}
