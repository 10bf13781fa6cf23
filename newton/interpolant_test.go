package newton

import (
	"bytes"
	"math"
	"testing"

	"github.com/numerics/newtonpoly/utils/buffer"
	"github.com/stretchr/testify/require"
)

func TestInterpolant(t *testing.T) {

	p, err := NewChebyshevInterpolant(math.Cos, -math.Pi, math.Pi, 20)
	require.NoError(t, err)

	t.Run("Degree", func(t *testing.T) {
		require.Equal(t, 20, p.Degree())
		require.Len(t, p.Nodes, 21)
		require.Len(t, p.Coeffs, 21)
	})

	t.Run("Evaluate", func(t *testing.T) {
		for _, v := range []float64{-3, -1, 0, 0.5, 2.75} {
			y, err := p.Evaluate(v)
			require.NoError(t, err)
			require.InDelta(t, math.Cos(v), y, 1e-9)
		}

		ys, err := p.EvaluateSlice([]float64{0, math.Pi / 2})
		require.NoError(t, err)
		require.InDelta(t, 1.0, ys[0], 1e-9)
		require.InDelta(t, 0.0, ys[1], 1e-9)
	})

	t.Run("CopiesInputs", func(t *testing.T) {
		x := []float64{0, 1, 2}
		q, err := NewInterpolant(x, []float64{1, 3, 7})
		require.NoError(t, err)
		x[0] = 42
		require.Equal(t, 0.0, q.Nodes[0])
	})

	t.Run("CopyNew", func(t *testing.T) {
		q := p.CopyNew()
		require.True(t, p.Equal(q))
		q.Coeffs[0] += 1
		require.False(t, p.Equal(q))
		require.False(t, p.Equal(nil))
	})

	t.Run("Serialization", func(t *testing.T) {

		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, p.BinarySize())

		// Nodes then coefficients, each prefixed by its length.
		nodes, err := p.Nodes.MarshalBinary()
		require.NoError(t, err)
		coeffs, err := p.Coeffs.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, append(nodes, coeffs...), data)

		var w bytes.Buffer
		n, err := p.WriteTo(&w)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)
		require.Equal(t, data, w.Bytes())
	})

	t.Run("Serialization/BufferTooSmall", func(t *testing.T) {
		_, err := p.WriteTo(buffer.NewBufferSize(p.BinarySize() - 8))
		require.Error(t, err)
	})

	t.Run("Digest", func(t *testing.T) {
		d0, err := p.Digest()
		require.NoError(t, err)
		d1, err := p.CopyNew().Digest()
		require.NoError(t, err)
		require.Equal(t, d0, d1)

		q := p.CopyNew()
		q.Nodes[3] = math.Nextafter(q.Nodes[3], 0)
		d2, err := q.Digest()
		require.NoError(t, err)
		require.NotEqual(t, d0, d2)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := NewInterpolant([]float64{0, 1}, []float64{0})
		require.ErrorIs(t, err, ErrLengthMismatch)
		_, err = NewChebyshevInterpolant(math.Sin, 1, 0, 4)
		require.ErrorIs(t, err, ErrInvalidInterval)
	})
}
