package structs

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/numerics/newtonpoly/utils/buffer"
	"golang.org/x/exp/constraints"
)

// Vector is a slice of floating point values that can be copied,
// compared and serialized. Every component is serialized as an IEEE 754
// float64, preceded by the length of the vector.
type Vector[T constraints.Float] []T

// CopyNew returns a deep copy of the vector.
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {
	if v == nil {
		return nil
	}
	vcpy = make(Vector[T], len(v))
	copy(vcpy, v)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)<<3
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer),
// it will be wrapped into a bufio.Writer.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(v))); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		values := make([]float64, len(v))
		for i := range v {
			values[i] = float64(v[i])
		}

		if inc, err = buffer.WriteFloat64Slice(w, values); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloat64Slice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// Equal returns true if both vectors have the same length and the same
// components. NaN components compare equal to NaN.
func (v Vector[T]) Equal(other *Vector[T]) bool {

	if other == nil || len(v) != len(*other) {
		return false
	}

	for i := range v {
		a, b := float64(v[i]), float64((*other)[i])
		if math.Float64bits(a) != math.Float64bits(b) && a != b {
			return false
		}
	}

	return true
}
