package newton

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// DividedDifferences returns the Newton coefficients c_0 ... c_n of the
// polynomial interpolating the points (x[i], y[i]), where c_i = f[x_0, ..., x_i].
//
// The coefficients are computed in place on a copy of y, collapsing the
// divided difference table one order per pass. y is never modified.
//
// Returns ErrLengthMismatch if len(x) != len(y), ErrEmpty if there are no
// points and ErrDuplicateNode if two nodes coincide. Non-finite nodes or
// values are not checked and propagate to the coefficients.
func DividedDifferences[T constraints.Float](x, y []T) (coeffs []T, err error) {

	if len(x) != len(y) {
		return nil, fmt.Errorf("cannot DividedDifferences: %w: len(x)=%d != len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}

	n := len(x)

	if n == 0 {
		return nil, fmt.Errorf("cannot DividedDifferences: %w", ErrEmpty)
	}

	coeffs = make([]T, n)
	copy(coeffs, y)

	for k := 1; k < n; k++ {
		// Descending so that coeffs[i-1] still holds the previous order.
		for i := n - 1; i >= k; i-- {

			dx := x[i] - x[i-k]

			if dx == 0 {
				return nil, fmt.Errorf("cannot DividedDifferences: %w: x[%d] = x[%d] = %v", ErrDuplicateNode, i-k, i, x[i])
			}

			coeffs[i] = (coeffs[i] - coeffs[i-1]) / dx
		}
	}

	return
}
