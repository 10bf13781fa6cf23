package structs

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func TestStructs(t *testing.T) {
	t.Run("Vector/F64/Serialization&Equatable", func(t *testing.T) {
		testVector[float64](t)
	})

	t.Run("Vector/F32/Serialization&Equatable", func(t *testing.T) {
		testVector[float32](t)
	})

	t.Run("Vector/Empty", func(t *testing.T) {
		v := Vector[float64]{}
		data, err := v.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, make([]byte, 8), data)
	})

	t.Run("Vector/NaN", func(t *testing.T) {
		v := Vector[float64]{math.NaN(), 1}
		w := v.CopyNew()
		require.True(t, v.Equal(&w))
	})

	t.Run("Vector/Equal", func(t *testing.T) {
		v := Vector[float64]{1, 2, 3}
		require.False(t, v.Equal(nil))
		w := Vector[float64]{1, 2}
		require.False(t, v.Equal(&w))
		w = Vector[float64]{1, 2, 4}
		require.False(t, v.Equal(&w))
	})

	t.Run("Vector/CopyNew", func(t *testing.T) {
		v := Vector[float64]{1, 2, 3}
		w := v.CopyNew()
		w[0] = 4
		require.Equal(t, 1.0, v[0])
		require.Nil(t, Vector[float64](nil).CopyNew())
	})
}

func testVector[T constraints.Float](t *testing.T) {
	v := Vector[T](make([]T, 64))
	for i := range v {
		v[i] = T(i) / 4
	}

	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, v.BinarySize())

	// Length header followed by the components as float64.
	require.Equal(t, uint64(len(v)), binary.LittleEndian.Uint64(data))
	for i := range v {
		require.Equal(t, float64(v[i]), math.Float64frombits(binary.LittleEndian.Uint64(data[8+i<<3:])))
	}

	// io.Writer without exposed buffer
	stream := new(bytes.Buffer)
	n, err := v.WriteTo(stream)
	require.NoError(t, err)
	require.Equal(t, int64(v.BinarySize()), n)
	require.Equal(t, data, stream.Bytes())
}
