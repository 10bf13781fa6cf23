package dataset

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {

	t.Run("Whitespace", func(t *testing.T) {
		table, err := Parse(strings.NewReader("2 7\n0\t1\n\n  1   3  \n"))
		require.NoError(t, err)
		require.Equal(t, []float64{0, 1, 2}, table.X)
		require.Equal(t, []float64{1, 3, 7}, table.Y)
		require.Equal(t, 0, table.Dropped)
		require.False(t, table.HasDuplicates)
		require.Equal(t, 2, table.Degree())
	})

	t.Run("Comma", func(t *testing.T) {
		table, err := Parse(strings.NewReader("1.5,2\n-1, 4e-1\n0,0\n"))
		require.NoError(t, err)
		require.Equal(t, []float64{-1, 0, 1.5}, table.X)
		require.Equal(t, []float64{0.4, 0, 2}, table.Y)
	})

	t.Run("DropsMissing", func(t *testing.T) {
		table, err := Parse(strings.NewReader("0 1\n1 NaN\n2\n3 9\nna 4\n"))
		require.NoError(t, err)
		require.Equal(t, []float64{0, 3}, table.X)
		require.Equal(t, []float64{1, 9}, table.Y)
		require.Equal(t, 3, table.Dropped)
	})

	t.Run("DropsMissing/Comma", func(t *testing.T) {
		table, err := Parse(strings.NewReader("0,1\n1,\n,4\n2,5\n"))
		require.NoError(t, err)
		require.Equal(t, []float64{0, 2}, table.X)
		require.Equal(t, 2, table.Dropped)
	})

	t.Run("Duplicates", func(t *testing.T) {
		table, err := Parse(strings.NewReader("1 2\n0 0\n1 3\n"))
		require.NoError(t, err)
		require.True(t, table.HasDuplicates)
		// Sorting is stable.
		require.Equal(t, []float64{0, 1, 1}, table.X)
		require.Equal(t, []float64{0, 2, 3}, table.Y)
	})

	t.Run("Range", func(t *testing.T) {
		table, err := Parse(strings.NewReader("3 0\n-2 1\n"))
		require.NoError(t, err)
		a, b := table.Range()
		require.Equal(t, -2.0, a)
		require.Equal(t, 3.0, b)

		table, err = Parse(strings.NewReader("4 0\n4 1\n"))
		require.NoError(t, err)
		a, b = table.Range()
		require.Equal(t, 3.5, a)
		require.Equal(t, 4.5, b)
	})

	t.Run("Infinity", func(t *testing.T) {
		table, err := Parse(strings.NewReader("0 inf\n1 2\n"))
		require.NoError(t, err)
		require.True(t, math.IsInf(table.Y[0], 1))
	})

	t.Run("TooFewPoints", func(t *testing.T) {
		for _, data := range []string{"", "1 2\n", "1 2\n3 nan\n", "1\n2\n3\n"} {
			_, err := Parse(strings.NewReader(data))
			require.ErrorIs(t, err, ErrTooFewPoints, data)
		}
	})

	t.Run("TooManyColumns", func(t *testing.T) {
		_, err := Parse(strings.NewReader("1 2 3\n4 5 6\n"))
		require.ErrorIs(t, err, ErrColumns)
	})

	t.Run("NotNumbers", func(t *testing.T) {
		_, err := Parse(strings.NewReader("x y\n1 2\n3 4\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "line 1")
	})

	t.Run("ReadError", func(t *testing.T) {
		_, err := Parse(errReader{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "Failed to read dataset")
	})
}

type errReader struct{}

func (errReader) Read(p []byte) (int, error) {
	return 0, errors.New("boom")
}
