package newton

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Evaluate returns P(t) where P is the Newton-form polynomial defined by
// coeffs and the nodes they were computed from.
// Returns ErrLengthMismatch if len(coeffs) != len(nodes) and ErrEmpty if
// there are no coefficients.
func Evaluate[T constraints.Float](coeffs, nodes []T, t T) (y T, err error) {
	if err = checkNewtonForm(coeffs, nodes); err != nil {
		return y, fmt.Errorf("cannot Evaluate: %w", err)
	}
	return hornerNewton(coeffs, nodes, t), nil
}

// EvaluateSlice returns P(t) for each t in ts, see Evaluate.
func EvaluateSlice[T constraints.Float](coeffs, nodes, ts []T) (ys []T, err error) {

	if err = checkNewtonForm(coeffs, nodes); err != nil {
		return nil, fmt.Errorf("cannot EvaluateSlice: %w", err)
	}

	ys = make([]T, len(ts))
	for i := range ts {
		ys[i] = hornerNewton(coeffs, nodes, ts[i])
	}

	return
}

func checkNewtonForm[T constraints.Float](coeffs, nodes []T) error {
	if len(coeffs) != len(nodes) {
		return fmt.Errorf("%w: len(coeffs)=%d != len(nodes)=%d", ErrLengthMismatch, len(coeffs), len(nodes))
	}
	if len(coeffs) == 0 {
		return ErrEmpty
	}
	return nil
}

// hornerNewton evaluates the nested form
// c_0 + (t-x_0)(c_1 + (t-x_1)(c_2 + ... + (t-x_{n-1})c_n))
// in n multiply-add steps.
func hornerNewton[T constraints.Float](coeffs, nodes []T, t T) (acc T) {
	n := len(coeffs) - 1
	acc = coeffs[n]
	for k := n - 1; k >= 0; k-- {
		acc = acc*(t-nodes[k]) + coeffs[k]
	}
	return
}
