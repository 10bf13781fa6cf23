package bignum

import (
	"math/big"
)

// HornerEval evaluates y = coeffs[0] x^m + coeffs[1] x^{m-1} + ... + coeffs[m]
// with the precision of x. coeffs must not be empty.
func HornerEval(x *big.Float, coeffs []*big.Float) (y *big.Float) {
	y = NewFloat(coeffs[0], x.Prec())
	for _, c := range coeffs[1:] {
		y.Mul(y, x)
		y.Add(y, c)
	}
	return
}

// NewtonEval evaluates the Newton-form polynomial
// y = coeffs[0] + (x-nodes[0])(coeffs[1] + (x-nodes[1])(... + (x-nodes[n-1])coeffs[n]))
// with the precision of x. coeffs must not be empty and nodes must have
// at least len(coeffs)-1 elements.
func NewtonEval(x *big.Float, coeffs, nodes []*big.Float) (y *big.Float) {
	n := len(coeffs) - 1
	y = NewFloat(coeffs[n], x.Prec())
	tmp := new(big.Float).SetPrec(x.Prec())
	for k := n - 1; k >= 0; k-- {
		tmp.Sub(x, nodes[k])
		y.Mul(y, tmp)
		y.Add(y, coeffs[k])
	}
	return
}
