package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllDistinct(t *testing.T) {
	require.True(t, AllDistinct([]float64{}))
	require.True(t, AllDistinct([]float64{1}))
	require.True(t, AllDistinct([]float64{1, 2, 3}))
	require.False(t, AllDistinct([]float64{1, 1}))
	require.False(t, AllDistinct([]int{1, 2, 3, 4, 5, 5}))
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, -1, 7, 2})
	require.Equal(t, -1.0, min)
	require.Equal(t, 7.0, max)

	min, max = MinMax([]float64{4})
	require.Equal(t, 4.0, min)
	require.Equal(t, 4.0, max)

	require.Panics(t, func() { MinMax([]int{}) })
}

func TestIsFinite(t *testing.T) {
	require.True(t, IsFinite(1.0))
	require.False(t, IsFinite(math.NaN()))
	require.False(t, IsFinite(math.Inf(-1)))
	require.False(t, IsFinite(float32(math.Inf(1))))
}
