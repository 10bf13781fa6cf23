package newton

import (
	"fmt"
	"math/big"

	"github.com/numerics/newtonpoly/utils/bignum"
)

// ChebyshevNodesBig is the arbitrary precision variant of ChebyshevNodes.
// The nodes are computed with the precision of a.
func ChebyshevNodesBig(a, b *big.Float, n int) (nodes []*big.Float, err error) {

	if n < 0 {
		return nil, fmt.Errorf("cannot ChebyshevNodesBig: %w: n=%d", ErrNegativeDegree, n)
	}

	inter := bignum.NewInterval(a, b, a.Prec())

	if err = inter.Validate(); err != nil {
		return nil, fmt.Errorf("cannot ChebyshevNodesBig: %w: %w", ErrInvalidInterval, err)
	}

	return bignum.ChebyshevNodes(n, inter), nil
}

// DividedDifferencesBig is the arbitrary precision variant of DividedDifferences.
// The coefficients take the precision of the first value of y.
func DividedDifferencesBig(x, y []*big.Float) (coeffs []*big.Float, err error) {

	if len(x) != len(y) {
		return nil, fmt.Errorf("cannot DividedDifferencesBig: %w: len(x)=%d != len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}

	n := len(x)

	if n == 0 {
		return nil, fmt.Errorf("cannot DividedDifferencesBig: %w", ErrEmpty)
	}

	prec := y[0].Prec()

	coeffs = make([]*big.Float, n)
	for i := range y {
		coeffs[i] = bignum.NewFloat(y[i], prec)
	}

	dx := new(big.Float).SetPrec(prec)

	for k := 1; k < n; k++ {
		for i := n - 1; i >= k; i-- {

			dx.Sub(x[i], x[i-k])

			if dx.Sign() == 0 {
				return nil, fmt.Errorf("cannot DividedDifferencesBig: %w: x[%d] = x[%d] = %v", ErrDuplicateNode, i-k, i, x[i])
			}

			coeffs[i].Sub(coeffs[i], coeffs[i-1])
			coeffs[i].Quo(coeffs[i], dx)
		}
	}

	return
}

// EvaluateBig is the arbitrary precision variant of Evaluate.
// The result takes the precision of t.
func EvaluateBig(coeffs, nodes []*big.Float, t *big.Float) (y *big.Float, err error) {

	if len(coeffs) != len(nodes) {
		return nil, fmt.Errorf("cannot EvaluateBig: %w: len(coeffs)=%d != len(nodes)=%d", ErrLengthMismatch, len(coeffs), len(nodes))
	}

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cannot EvaluateBig: %w", ErrEmpty)
	}

	return bignum.NewtonEval(t, coeffs, nodes), nil
}

// HornerBig is the arbitrary precision variant of Horner.
// The result takes the precision of t.
func HornerBig(t *big.Float, coeffs []*big.Float) (y *big.Float, err error) {

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cannot HornerBig: %w", ErrEmpty)
	}

	return bignum.HornerEval(t, coeffs), nil
}
