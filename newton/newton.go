/*
Package newton implements polynomial interpolation in the Newton form.

Given nodes x_0 ... x_n and values y_0 ... y_n, DividedDifferences computes the
coefficients c_0 ... c_n of the unique polynomial of degree at most n that
passes through the points,

	P(x) = c_0 + c_1(x-x_0) + c_2(x-x_0)(x-x_1) + ... + c_n(x-x_0)...(x-x_{n-1}),

and Evaluate computes P at arbitrary points with the Horner-Newton scheme.
ChebyshevNodes places the nodes on an interval so that the interpolation of
smooth non-polynomial functions does not suffer from Runge's phenomenon.
Horner evaluates power-basis polynomials and is used to produce reference
values for polynomials whose coefficients are known.

All functions are pure: they never modify their inputs and hold no state.
A coefficient slice is only meaningful together with the node slice it was
computed from, see Interpolant.
*/
package newton

import (
	"errors"
)

var (
	// ErrLengthMismatch is returned when two sequences that must be paired
	// index by index have different lengths.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrEmpty is returned when a sequence that needs at least one element is empty.
	ErrEmpty = errors.New("empty sequence")

	// ErrInvalidInterval is returned when an interval [a, b] does not satisfy a < b
	// or has non-finite endpoints.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrNegativeDegree is returned when a negative polynomial degree is requested.
	ErrNegativeDegree = errors.New("negative degree")

	// ErrDuplicateNode is returned when two interpolation nodes coincide.
	ErrDuplicateNode = errors.New("duplicate node")
)
