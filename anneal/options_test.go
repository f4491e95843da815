package anneal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/tsp"
)

func TestDefaultOptions(t *testing.T) {
	o := anneal.DefaultOptions()
	require.Equal(t, 100.0, o.InitialTemp)
	require.Equal(t, 0.99999, o.Alpha)
	require.Equal(t, 1e-3, o.StopTemp)
	require.Equal(t, 500000, o.MaxIterations)
	require.Equal(t, anneal.AcceptFixedInitial, o.Acceptance)
	require.True(t, o.KeepHistory)
	require.True(t, o.KeepTourHistory)
	require.Nil(t, o.RNG)
	require.NoError(t, o.Validate())
}

func TestApply_OrderAndNil(t *testing.T) {
	o := anneal.Apply(
		anneal.WithAlpha(0.5),
		nil,
		anneal.WithAlpha(0.9),
		anneal.WithAcceptance(anneal.AcceptLiveTemperature),
		anneal.WithHistory(false),
	)
	require.Equal(t, 0.9, o.Alpha, "later options win")
	require.Equal(t, anneal.AcceptLiveTemperature, o.Acceptance)
	require.False(t, o.KeepHistory)
}

func TestOptionsValidate(t *testing.T) {
	cases := []struct {
		name string
		opt  anneal.Option
		want error
	}{
		{"zero T0", anneal.WithInitialTemperature(0), anneal.ErrInitialTemperature},
		{"NaN T0", anneal.WithInitialTemperature(math.NaN()), anneal.ErrInitialTemperature},
		{"Inf T0", anneal.WithInitialTemperature(math.Inf(1)), anneal.ErrInitialTemperature},
		{"alpha 0", anneal.WithAlpha(0), anneal.ErrAlpha},
		{"alpha 1", anneal.WithAlpha(1), anneal.ErrAlpha},
		{"alpha NaN", anneal.WithAlpha(math.NaN()), anneal.ErrAlpha},
		{"Tmin 0", anneal.WithStopTemperature(0), anneal.ErrStopTemperature},
		{"Tmin above T0", anneal.WithStopTemperature(200), anneal.ErrStopTemperature},
		{"no iterations", anneal.WithMaxIterations(0), anneal.ErrMaxIterations},
		{"bad mode", anneal.WithAcceptance(anneal.AcceptanceMode(9)), anneal.ErrAcceptanceMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := anneal.Apply(tc.opt).Validate()
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, tsp.ErrConfiguration)

			var ce *tsp.ConfigurationError
			require.True(t, errors.As(err, &ce))
			require.Equal(t, "anneal.Options", ce.Op)
		})
	}
}

func TestParseAcceptanceMode(t *testing.T) {
	for in, want := range map[string]anneal.AcceptanceMode{
		"":                  anneal.AcceptFixedInitial,
		"fixed":             anneal.AcceptFixedInitial,
		"Fixed-Initial":     anneal.AcceptFixedInitial,
		"live":              anneal.AcceptLiveTemperature,
		" live-temperature": anneal.AcceptLiveTemperature,
	} {
		got, err := anneal.ParseAcceptanceMode(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := anneal.ParseAcceptanceMode("boltzmann")
	require.ErrorIs(t, err, anneal.ErrAcceptanceMode)

	require.Equal(t, "fixed-initial", anneal.AcceptFixedInitial.String())
	require.Equal(t, "live-temperature", anneal.AcceptLiveTemperature.String())
	require.Equal(t, "AcceptanceMode(7)", anneal.AcceptanceMode(7).String())
}

func TestIterationBound(t *testing.T) {
	// ceil(ln(1e-5)/ln(0.99)) = ceil(1145.5) = 1146.
	require.Equal(t, 1146, anneal.IterationBound(100, 0.99, 1e-3, 100000))
	require.Equal(t,
		int(math.Ceil(math.Log(1e-3/100)/math.Log(0.99))),
		anneal.IterationBound(100, 0.99, 1e-3, 100000))

	// Capped by maxIter.
	require.Equal(t, 500, anneal.IterationBound(100, 0.99, 1e-3, 500))

	// Reference defaults: the cap binds long before Tmin is reached.
	require.Equal(t, 500000, anneal.IterationBound(100, 0.99999, 1e-3, 500000))

	// Invalid schedules.
	require.Equal(t, 0, anneal.IterationBound(100, 1.5, 1e-3, 10))
	require.Equal(t, 0, anneal.IterationBound(1e-3, 0.9, 100, 10))
}
