package runner

import "errors"

// Option validation sentinels, returned wrapped in a *tsp.ConfigurationError.
var (
	// ErrRepetitions indicates Repetitions < 1.
	ErrRepetitions = errors.New("runner: repetitions must be >= 1")

	// ErrParallelism indicates Parallelism < 0.
	ErrParallelism = errors.New("runner: parallelism must be >= 0")
)
