package newton

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Horner returns a_0 t^m + a_1 t^{m-1} + ... + a_m, the power-basis polynomial
// with coefficients given highest degree first, evaluated with Horner's method.
// Returns ErrEmpty if there are no coefficients.
func Horner[T constraints.Float](t T, coeffs []T) (y T, err error) {
	if len(coeffs) == 0 {
		return y, fmt.Errorf("cannot Horner: %w", ErrEmpty)
	}
	return horner(t, coeffs), nil
}

// HornerSlice returns the power-basis polynomial evaluated at each t in ts, see Horner.
func HornerSlice[T constraints.Float](ts []T, coeffs []T) (ys []T, err error) {

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cannot HornerSlice: %w", ErrEmpty)
	}

	ys = make([]T, len(ts))
	for i := range ts {
		ys[i] = horner(ts[i], coeffs)
	}

	return
}

func horner[T constraints.Float](t T, coeffs []T) (acc T) {
	acc = coeffs[0]
	for _, c := range coeffs[1:] {
		acc = acc*t + c
	}
	return
}
