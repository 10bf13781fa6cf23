package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Sin", 1.4142135623730951, math.Sin, Sin, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("Abs", -1.4142135623730951, math.Abs, Abs, 0, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)

	t.Run("Pi", func(t *testing.T) {
		pi, _ := Pi(256).Float64()
		require.Equal(t, math.Pi, pi)
	})

	t.Run("NewFloat/InvalidType", func(t *testing.T) {
		require.Panics(t, func() { NewFloat("1", 53) })
	})

	t.Run("Float64Slice", func(t *testing.T) {
		x := []float64{-1.5, 0, 2.25}
		require.Equal(t, x, Float64Slice(NewFloatSlice(x, 128)))
	})
}

func TestChebyshevNodes(t *testing.T) {

	prec := uint(256)

	t.Run("MatchesFloat64", func(t *testing.T) {
		a, b, n := -3.0, 5.0, 9
		nodes := ChebyshevNodes(n, NewInterval(a, b, prec))
		require.Len(t, nodes, n+1)
		for i := range nodes {
			want := (a+b)/2 + (b-a)/2*math.Cos(float64(2*i+1)*math.Pi/float64(2*n+2))
			have, _ := nodes[i].Float64()
			require.InDelta(t, want, have, 1e-14)
			require.Equal(t, prec, nodes[i].Prec())
		}
	})

	t.Run("StrictlyDecreasing", func(t *testing.T) {
		nodes := ChebyshevNodes(16, NewInterval(-1, 1, prec))
		for i := 1; i < len(nodes); i++ {
			require.Equal(t, 1, nodes[i-1].Cmp(nodes[i]))
		}
	})

	t.Run("Validate", func(t *testing.T) {
		inter := NewInterval(1, 1, prec)
		require.Error(t, inter.Validate())
		inter = NewInterval(2, -2, prec)
		require.Error(t, inter.Validate())
		inter = NewInterval(-2, 2, prec)
		require.NoError(t, inter.Validate())
	})
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}
