package bignum

import (
	"fmt"
	"math/big"
)

// Interval is a struct storing the domain [A, B] of an interpolation.
// The precision of A is used as the reference precision.
type Interval struct {
	A, B big.Float
}

// NewInterval returns the interval [a, b] with prec bits of precision.
func NewInterval(a, b interface{}, prec uint) Interval {
	return Interval{A: *NewFloat(a, prec), B: *NewFloat(b, prec)}
}

// Prec returns the reference precision of the interval.
func (inter *Interval) Prec() uint {
	return inter.A.Prec()
}

// Validate returns an error if the interval is empty or degenerate, i.e. if A >= B.
func (inter *Interval) Validate() (err error) {
	if inter.A.IsInf() || inter.B.IsInf() {
		return fmt.Errorf("interval [%v, %v] is not finite", &inter.A, &inter.B)
	}
	if inter.A.Cmp(&inter.B) >= 0 {
		return fmt.Errorf("interval [%v, %v] requires A < B", &inter.A, &inter.B)
	}
	return
}

// ChebyshevNodes returns the n+1 Chebyshev nodes of the interval, that is
// x_i = (a+b)/2 + (b-a)/2 * cos((2i+1)pi/(2n+2)) for i = 0 ... n.
// The nodes are returned in strictly decreasing order.
// The caller is expected to have validated the interval and n >= 0.
func ChebyshevNodes(n int, inter Interval) (nodes []*big.Float) {

	prec := inter.Prec()

	nodes = make([]*big.Float, n+1)

	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)

	x := new(big.Float).SetPrec(prec).Add(&inter.A, &inter.B)
	x.Mul(x, half)
	y := new(big.Float).SetPrec(prec).Sub(&inter.B, &inter.A)
	y.Mul(y, half)

	// pi / (2n+2)
	piOverN := Pi(prec)
	piOverN.Quo(piOverN, new(big.Float).SetInt64(int64(2*n+2)))

	for i := 0; i < n+1; i++ {
		up := new(big.Float).SetPrec(prec).SetInt64(int64(2*i + 1))
		up.Mul(up, piOverN)
		up = Cos(up)
		up.Mul(up, y)
		up.Add(up, x)
		nodes[i] = up
	}

	return
}
