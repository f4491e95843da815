package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/tsp"
)

func TestDistanceMatrix_SymmetricZeroDiagonal(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17, 60} {
		d := mustMatrix(t, randomPoints(n, int64(n)))
		require.Equal(t, n, d.Size())
		require.NoError(t, d.Validate())

		var i, j int
		for i = 0; i < n; i++ {
			require.Zero(t, d.At(i, i), "diagonal at %d", i)
			for j = 0; j < n; j++ {
				require.Equal(t, d.At(i, j), d.At(j, i), "asymmetry at (%d,%d)", i, j)
				require.GreaterOrEqual(t, d.At(i, j), 0.0)
			}
		}
	}
}

func TestDistanceMatrix_RoundedToFourDigits(t *testing.T) {
	pts := []tsp.Point{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 1, Y: 1}, {ID: 2, X: 3, Y: 7}}
	d := mustMatrix(t, pts)

	require.Equal(t, 1.4142, d.At(0, 1)) // √2 = 1.41421356...
	require.Equal(t, 7.6158, d.At(0, 2)) // √58 = 7.61577310...
	require.Equal(t, 6.3246, d.At(1, 2)) // √40 = 6.32455532...
	require.Equal(t, d.At(0, 1), tsp.Round4(math.Sqrt2))
}

func TestDistanceMatrix_SinglePoint(t *testing.T) {
	d := mustMatrix(t, []tsp.Point{{ID: 9, X: 3, Y: 4}})
	require.Equal(t, 1, d.Size())
	require.Zero(t, d.At(0, 0))

	l, err := tsp.TourLength(d, tsp.Tour{0})
	require.NoError(t, err)
	require.Zero(t, l)
}

func TestDistanceMatrix_Errors(t *testing.T) {
	_, err := tsp.NewDistanceMatrix(nil)
	require.ErrorIs(t, err, tsp.ErrConfiguration)
	require.ErrorIs(t, err, tsp.ErrEmptyPointSet)

	_, err = tsp.NewDistanceMatrix([]tsp.Point{{X: math.NaN()}, {X: 1}})
	require.ErrorIs(t, err, tsp.ErrNonFiniteCoordinate)

	_, err = tsp.NewDistanceMatrix([]tsp.Point{{X: 0}, {Y: math.Inf(-1)}})
	require.ErrorIs(t, err, tsp.ErrNonFiniteCoordinate)
}

func TestDistanceMatrixFromRows_Validation(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"empty", nil, tsp.ErrEmptyPointSet},
		{"ragged", [][]float64{{0, 1}, {1}}, tsp.ErrNonSquare},
		{"diagonal", [][]float64{{1, 1}, {1, 0}}, tsp.ErrNonZeroDiagonal},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, tsp.ErrAsymmetry},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, tsp.ErrNegativeDistance},
		{"nan", [][]float64{{0, math.NaN()}, {math.NaN(), 0}}, tsp.ErrNonFinite},
		{"inf", [][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}, tsp.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.NewDistanceMatrixFromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, tsp.ErrConfiguration)

			var cfgErr *tsp.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			require.Equal(t, "NewDistanceMatrixFromRows", cfgErr.Op)
		})
	}
}

func TestDistanceMatrixFromRows_CopiesInput(t *testing.T) {
	rows := [][]float64{{0, 2, 3}, {2, 0, 4}, {3, 4, 0}}
	d, err := tsp.NewDistanceMatrixFromRows(rows)
	require.NoError(t, err)

	rows[0][1] = 99 // must not leak into d
	require.Equal(t, 2.0, d.At(0, 1))
	require.Equal(t, [][]float64{{0, 2, 3}, {2, 0, 4}, {3, 4, 0}}, d.Rows())
}

func TestDistanceMatrix_LookupAndRow(t *testing.T) {
	d := mustMatrix(t, unitSquare())

	v, err := d.Lookup(0, 2)
	require.NoError(t, err)
	require.Equal(t, 1.4142, v)

	_, err = d.Lookup(-1, 0)
	require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
	_, err = d.Lookup(0, 4)
	require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)

	row := d.Row(1)
	require.Equal(t, []float64{1, 0, 1, 1.4142}, row)
	require.Equal(t, len(row), cap(row))
}
