package tsp_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/tsp"
)

func TestConfigurationError_MatchesCategoryAndDetail(t *testing.T) {
	var err error = &tsp.ConfigurationError{Op: "anneal.New", Err: tsp.ErrTooFewPoints}

	require.ErrorIs(t, err, tsp.ErrConfiguration)
	require.ErrorIs(t, err, tsp.ErrTooFewPoints)
	require.False(t, errors.Is(err, tsp.ErrComputation))
	require.Equal(t, "anneal.New: tsp: too few points", err.Error())
}

func TestComputationError_SurvivesWrapping(t *testing.T) {
	base := &tsp.ComputationError{Op: "anneal.Step", Iteration: 12, Err: tsp.ErrNonFiniteFitness}
	err := fmt.Errorf("run 3: %w", base)

	require.ErrorIs(t, err, tsp.ErrComputation)
	require.ErrorIs(t, err, tsp.ErrNonFiniteFitness)

	var ce *tsp.ComputationError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 12, ce.Iteration)
	require.Contains(t, err.Error(), "iteration 12")
}

func TestAggregateRunError(t *testing.T) {
	errs := []error{
		&tsp.ComputationError{Op: "anneal.Step", Iteration: 1, Err: tsp.ErrNonFiniteFitness},
		errors.New("boom"),
	}
	var err error = &tsp.AggregateRunError{Errs: errs}

	require.ErrorIs(t, err, tsp.ErrAllRunsFailed)
	require.ErrorIs(t, err, tsp.ErrComputation) // reachable through Unwrap() []error
	require.Contains(t, err.Error(), "2 runs")
	require.Contains(t, err.Error(), "[run 1] boom")

	require.Equal(t, tsp.ErrAllRunsFailed.Error(), (&tsp.AggregateRunError{}).Error())
}
