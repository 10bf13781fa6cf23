package newton

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ChebyshevNodes returns the n+1 Chebyshev nodes of the interval [a, b]:
//
//	x_i = (a+b)/2 + (b-a)/2 * cos((2i+1)pi/(2n+2)), i = 0 ... n.
//
// The nodes lie strictly inside (a, b), are symmetric about (a+b)/2 and are
// returned in strictly decreasing order. n = 0 yields the single midpoint node.
// Returns ErrInvalidInterval if a >= b or if an endpoint is not finite, and
// ErrNegativeDegree if n < 0.
func ChebyshevNodes[T constraints.Float](a, b T, n int) (nodes []T, err error) {

	if n < 0 {
		return nil, fmt.Errorf("cannot ChebyshevNodes: %w: n=%d", ErrNegativeDegree, n)
	}

	fa, fb := float64(a), float64(b)

	if math.IsNaN(fa) || math.IsNaN(fb) || math.IsInf(fa, 0) || math.IsInf(fb, 0) || fa >= fb {
		return nil, fmt.Errorf("cannot ChebyshevNodes: %w: [%v, %v]", ErrInvalidInterval, a, b)
	}

	// Halved before summing so that wide finite intervals do not overflow.
	mid := fa/2 + fb/2
	half := fb/2 - fa/2
	den := float64(2*n + 2)

	nodes = make([]T, n+1)
	for i := range nodes {
		nodes[i] = T(mid + half*math.Cos(float64(2*i+1)*math.Pi/den))
	}

	return
}
