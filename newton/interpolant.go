package newton

import (
	"bufio"
	"fmt"
	"io"

	"github.com/numerics/newtonpoly/utils/buffer"
	"github.com/numerics/newtonpoly/utils/structs"
	"github.com/zeebo/blake3"
)

var (
	_ structs.BinarySizer            = (*Interpolant)(nil)
	_ structs.Equatable[Interpolant] = (*Interpolant)(nil)
)

// Interpolant is a polynomial in Newton form: the coefficients returned by
// DividedDifferences bundled with the nodes they were computed from.
// Both vectors always have the same length.
type Interpolant struct {
	Nodes  structs.Vector[float64]
	Coeffs structs.Vector[float64]
}

// NewInterpolant interpolates the points (x[i], y[i]) and returns the
// resulting Newton-form polynomial. x and y are copied.
func NewInterpolant(x, y []float64) (p *Interpolant, err error) {

	coeffs, err := DividedDifferences(x, y)
	if err != nil {
		return nil, fmt.Errorf("cannot NewInterpolant: %w", err)
	}

	return &Interpolant{
		Nodes:  structs.Vector[float64](x).CopyNew(),
		Coeffs: coeffs,
	}, nil
}

// NewChebyshevInterpolant interpolates f at the n+1 Chebyshev nodes of [a, b].
func NewChebyshevInterpolant(f func(float64) float64, a, b float64, n int) (p *Interpolant, err error) {

	nodes, err := ChebyshevNodes(a, b, n)
	if err != nil {
		return nil, fmt.Errorf("cannot NewChebyshevInterpolant: %w", err)
	}

	values := make([]float64, len(nodes))
	for i := range nodes {
		values[i] = f(nodes[i])
	}

	return NewInterpolant(nodes, values)
}

// Degree returns the maximum degree of the interpolating polynomial.
func (p *Interpolant) Degree() int {
	return len(p.Coeffs) - 1
}

// Evaluate returns P(t).
func (p *Interpolant) Evaluate(t float64) (y float64, err error) {
	return Evaluate(p.Coeffs, p.Nodes, t)
}

// EvaluateSlice returns P(t) for each t in ts.
func (p *Interpolant) EvaluateSlice(ts []float64) (ys []float64, err error) {
	return EvaluateSlice(p.Coeffs, p.Nodes, ts)
}

// CopyNew returns a deep copy of the receiver.
func (p *Interpolant) CopyNew() *Interpolant {
	return &Interpolant{
		Nodes:  p.Nodes.CopyNew(),
		Coeffs: p.Coeffs.CopyNew(),
	}
}

// Equal returns true if both interpolants have the same nodes and coefficients.
func (p *Interpolant) Equal(other *Interpolant) bool {
	return other != nil && p.Nodes.Equal(&other.Nodes) && p.Coeffs.Equal(&other.Coeffs)
}

// BinarySize returns the serialized size of the object in bytes.
func (p *Interpolant) BinarySize() int {
	return p.Nodes.BinarySize() + p.Coeffs.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer),
// it will be wrapped into a bufio.Writer.
func (p *Interpolant) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = p.Nodes.WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("p.Nodes.WriteTo: %w", err)
		}

		n += inc

		if inc, err = p.Coeffs.WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("p.Coeffs.WriteTo: %w", err)
		}

		return n + inc, nil

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *Interpolant) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// Digest returns the BLAKE3 hash of the binary encoding of the interpolant.
// Two interpolants have the same digest iff they have the same nodes and
// coefficients, bit for bit.
func (p *Interpolant) Digest() (digest [32]byte, err error) {
	var data []byte
	if data, err = p.MarshalBinary(); err != nil {
		return digest, fmt.Errorf("cannot Digest: %w", err)
	}
	return blake3.Sum256(data), nil
}
