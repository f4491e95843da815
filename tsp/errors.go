// Package tsp - error taxonomy shared by the whole search pipeline.
//
// Three categories, each with a sentinel usable with errors.Is:
//   - ErrConfiguration: invalid input or parameters; fails fast, never retried.
//   - ErrComputation:   a run produced a non-finite value; fatal to that run only.
//   - ErrAllRunsFailed: every repetition of a multi-run search failed.
//
// Detail sentinels (ErrEmptyPointSet, ErrTooFewPoints, ...) are wrapped by the
// typed errors below, so both levels match:
//
//	errors.Is(err, tsp.ErrConfiguration) // category
//	errors.Is(err, tsp.ErrTooFewPoints)  // detail
package tsp

import (
	"errors"
	"fmt"
	"strings"
)

// Category sentinels.
var (
	// ErrConfiguration classifies invalid parameters and inputs.
	ErrConfiguration = errors.New("tsp: invalid configuration")

	// ErrComputation classifies numeric failures inside a run.
	ErrComputation = errors.New("tsp: computation failed")

	// ErrAllRunsFailed classifies a multi-run search where no run succeeded.
	ErrAllRunsFailed = errors.New("tsp: all runs failed")
)

// Detail sentinels.
var (
	// ErrEmptyPointSet is returned when no points (or an empty matrix) are given.
	ErrEmptyPointSet = errors.New("tsp: empty point set")

	// ErrTooFewPoints is returned when an operation needs more cities than provided.
	ErrTooFewPoints = errors.New("tsp: too few points")

	// ErrNonFiniteCoordinate is returned for NaN or ±Inf point coordinates.
	ErrNonFiniteCoordinate = errors.New("tsp: non-finite coordinate")

	// ErrNonSquare is returned when a distance matrix is not N×N.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal is returned when d[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: distance matrix diagonal not zero")

	// ErrAsymmetry is returned when d[i][j] != d[j][i].
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrNegativeDistance is returned for negative off-diagonal entries.
	ErrNegativeDistance = errors.New("tsp: negative distance")

	// ErrNonFinite is returned for NaN or ±Inf matrix entries.
	ErrNonFinite = errors.New("tsp: non-finite distance")

	// ErrIndexOutOfRange is returned by bounds-checked matrix accessors.
	ErrIndexOutOfRange = errors.New("tsp: index out of range")

	// ErrInvalidTour is returned when a tour is not a permutation of [0, N).
	ErrInvalidTour = errors.New("tsp: tour is not a permutation")

	// ErrNilRNG is returned when a required random source is missing.
	ErrNilRNG = errors.New("tsp: nil random source")

	// ErrStartOutOfRange is returned when a start index is outside [0, N).
	ErrStartOutOfRange = errors.New("tsp: start index out of range")

	// ErrNonFiniteFitness is returned when a tour length evaluates to NaN or ±Inf.
	ErrNonFiniteFitness = errors.New("tsp: non-finite fitness")
)

// ConfigurationError reports invalid parameters or inputs detected before any
// search work starts. Op names the rejecting operation.
type ConfigurationError struct {
	Op  string // operation that rejected the input, e.g. "NewDistanceMatrix"
	Err error  // detail sentinel, possibly wrapped
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the detail error.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// Is reports whether target is the ErrConfiguration category.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ComputationError reports a numeric failure inside one run. The run's state
// at Iteration is still the last valid one; nothing was committed.
type ComputationError struct {
	Op        string // operation that failed, e.g. "anneal.Step"
	Iteration int    // iteration at which the failure was detected
	Err       error  // detail sentinel, possibly wrapped
}

// Error implements error.
func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: iteration %d: %v", e.Op, e.Iteration, e.Err)
}

// Unwrap exposes the detail error.
func (e *ComputationError) Unwrap() error { return e.Err }

// Is reports whether target is the ErrComputation category.
func (e *ComputationError) Is(target error) bool { return target == ErrComputation }

// AggregateRunError is returned when every run of a multi-run search failed.
// Errs holds one error per run, in run order.
type AggregateRunError struct {
	Errs []error
}

// Error implements error.
func (e *AggregateRunError) Error() string {
	if len(e.Errs) == 0 {
		return ErrAllRunsFailed.Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d runs):", ErrAllRunsFailed.Error(), len(e.Errs))
	for i, err := range e.Errs {
		fmt.Fprintf(&b, " [run %d] %v;", i, err)
	}

	return strings.TrimSuffix(b.String(), ";")
}

// Unwrap exposes every per-run error to errors.Is / errors.As.
func (e *AggregateRunError) Unwrap() []error { return e.Errs }

// Is reports whether target is the ErrAllRunsFailed category.
func (e *AggregateRunError) Is(target error) bool { return target == ErrAllRunsFailed }

// configError wraps a detail sentinel into a *ConfigurationError.
func configError(op string, err error) error {
	return &ConfigurationError{Op: op, Err: err}
}
