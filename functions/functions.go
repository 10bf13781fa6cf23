// Package functions is the catalogue of real functions that can be
// interpolated by the command line tool and the MCP server.
package functions

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/numerics/newtonpoly/newton"
	"github.com/numerics/newtonpoly/utils/bignum"
)

// ErrUnknownFunction is returned by Lookup when no function matches the key.
var ErrUnknownFunction = errors.New("unknown function")

// Function is a catalogued real function f: R -> R.
type Function struct {
	// ID is the 1-based index of the function in the catalogue.
	ID int
	// Name is a short identifier, e.g. "runge".
	Name string
	// Label is the human readable expression, e.g. "1/(1+25x^2)".
	Label string

	// F evaluates the function in float64.
	F func(x float64) float64
	// FBig evaluates the function with the precision of x.
	FBig func(x *big.Float) *big.Float

	// Coeffs are the power-basis coefficients, highest degree first,
	// of polynomial functions. Nil otherwise.
	Coeffs []float64

	// XRange is the default plotting domain.
	XRange [2]float64
	// YRange is the default plotting range.
	YRange [2]float64
}

// IsPolynomial returns true if the function is a polynomial with known coefficients.
func (f Function) IsPolynomial() bool {
	return len(f.Coeffs) != 0
}

// Sample evaluates f at each point of ts. Polynomials are evaluated from
// their coefficients with Horner's method.
func (f Function) Sample(ts []float64) (ys []float64) {

	if f.IsPolynomial() {
		// Coeffs is never empty here.
		ys, _ = newton.HornerSlice(ts, f.Coeffs)
		return
	}

	ys = make([]float64, len(ts))
	for i := range ts {
		ys[i] = f.F(ts[i])
	}

	return
}

// SampleBig evaluates FBig at each point of ts.
func (f Function) SampleBig(ts []*big.Float) (ys []*big.Float) {
	ys = make([]*big.Float, len(ts))
	for i := range ts {
		ys[i] = f.FBig(ts[i])
	}
	return
}

func (f Function) String() string {
	return fmt.Sprintf("%d. %s (%s)", f.ID, f.Label, f.Name)
}

var catalogue = []Function{
	{
		Name:   "linear",
		Label:  "2x - 1",
		F:      func(x float64) float64 { return 2*x - 1 },
		FBig:   hornerBig([]float64{2, -1}),
		Coeffs: []float64{2, -1},
		XRange: [2]float64{-5, 5},
		YRange: [2]float64{-11, 9},
	},
	{
		Name:   "abs",
		Label:  "|x|",
		F:      math.Abs,
		FBig:   bignum.Abs,
		XRange: [2]float64{-5, 5},
		YRange: [2]float64{-1, 6},
	},
	{
		Name:   "quartic",
		Label:  "x^4 - 3x^2 + x - 2",
		F:      func(x float64) float64 { return x*x*x*x - 3*x*x + x - 2 },
		FBig:   hornerBig([]float64{1, 0, -3, 1, -2}),
		Coeffs: []float64{1, 0, -3, 1, -2},
		XRange: [2]float64{-3, 3},
		YRange: [2]float64{-10, 60},
	},
	{
		Name:  "trig",
		Label: "cos(2x) + sin(x)",
		F:     func(x float64) float64 { return math.Cos(2*x) + math.Sin(x) },
		FBig: func(x *big.Float) (y *big.Float) {
			y = new(big.Float).SetPrec(x.Prec()).Add(x, x)
			y = bignum.Cos(y)
			return y.Add(y, bignum.Sin(x))
		},
		XRange: [2]float64{-2 * math.Pi, 2 * math.Pi},
		YRange: [2]float64{-2.5, 2.5},
	},
	{
		Name:  "exp",
		Label: "e^|x-1| - 2",
		F:     func(x float64) float64 { return math.Exp(math.Abs(x-1)) - 2 },
		FBig: func(x *big.Float) (y *big.Float) {
			prec := x.Prec()
			y = new(big.Float).SetPrec(prec).Sub(x, bignum.NewFloat(1, prec))
			y = bignum.Exp(y.Abs(y))
			return y.Sub(y, bignum.NewFloat(2, prec))
		},
		XRange: [2]float64{-3, 5},
		YRange: [2]float64{-2, 55},
	},
	{
		Name:  "runge",
		Label: "1/(1+25x^2)",
		F:     func(x float64) float64 { return 1 / (1 + 25*x*x) },
		FBig: func(x *big.Float) (y *big.Float) {
			prec := x.Prec()
			y = new(big.Float).SetPrec(prec).Mul(x, x)
			y.Mul(y, bignum.NewFloat(25, prec))
			y.Add(y, bignum.NewFloat(1, prec))
			return y.Quo(bignum.NewFloat(1, prec), y)
		},
		XRange: [2]float64{-1, 1},
		YRange: [2]float64{-0.5, 1.5},
	},
}

func init() {
	for i := range catalogue {
		catalogue[i].ID = i + 1
	}
}

func hornerBig(coeffs []float64) func(x *big.Float) *big.Float {
	return func(x *big.Float) (y *big.Float) {
		// Coeffs is never empty here.
		y, _ = newton.HornerBig(x, bignum.NewFloatSlice(coeffs, x.Prec()))
		return
	}
}

// All returns the catalogue, ordered by ID.
func All() (fs []Function) {
	fs = make([]Function, len(catalogue))
	copy(fs, catalogue)
	return
}

// Lookup returns the function matching key, which can be its ID,
// its Name or its Label.
func Lookup(key string) (f Function, err error) {

	key = strings.TrimSpace(key)

	if id, err := strconv.Atoi(key); err == nil {
		if id < 1 || id > len(catalogue) {
			return f, fmt.Errorf("cannot Lookup: %w: id %d not in [1, %d]", ErrUnknownFunction, id, len(catalogue))
		}
		return catalogue[id-1], nil
	}

	for _, f := range catalogue {
		if strings.EqualFold(key, f.Name) || key == f.Label {
			return f, nil
		}
	}

	return f, fmt.Errorf("cannot Lookup: %w: %q", ErrUnknownFunction, key)
}

// Names returns the Name of every catalogued function.
func Names() (names []string) {
	names = make([]string, len(catalogue))
	for i := range catalogue {
		names[i] = catalogue[i].Name
	}
	return
}
