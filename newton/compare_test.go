package newton

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareCurves(t *testing.T) {

	t.Run("Stats", func(t *testing.T) {
		st, err := CompareCurves([]float64{0, 0, 0, 0}, []float64{1, -2, 3, -4})
		require.NoError(t, err)
		require.Equal(t, 4, st.Samples)
		require.Equal(t, 0, st.Skipped)
		require.InDelta(t, 2.5, st.Mean, 1e-15)
		require.InDelta(t, 2.5, st.Median, 1e-15)
		require.InDelta(t, math.Sqrt(1.25), st.StdDev, 1e-15)
		require.Equal(t, 4.0, st.Max)
	})

	t.Run("SkipsNonFinite", func(t *testing.T) {
		st, err := CompareCurves([]float64{1, math.NaN(), 2}, []float64{1, 0, math.Inf(1)})
		require.NoError(t, err)
		require.Equal(t, 1, st.Samples)
		require.Equal(t, 2, st.Skipped)
		require.Equal(t, 0.0, st.Max)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := CompareCurves([]float64{1}, nil)
		require.ErrorIs(t, err, ErrLengthMismatch)
		_, err = CompareCurves([]float64{math.NaN()}, []float64{1})
		require.ErrorIs(t, err, ErrEmpty)
		_, err = CompareCurves(nil, nil)
		require.ErrorIs(t, err, ErrEmpty)
	})
}
