package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes a uint64 c to w in little endian.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteFloat64 writes the IEEE 754 binary representation of c to w.
func WriteFloat64(w Writer, c float64) (n int64, err error) {
	return WriteUint64(w, math.Float64bits(c))
}

// WriteFloat64Slice writes a slice of float64 c to w, filling the
// available buffer and flushing as many times as needed.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {

	for len(c) > 0 {

		available := w.Available() >> 3

		if available == 0 {
			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot WriteFloat64Slice: available buffer/8 is zero even after flush")
			}
		}

		chunk := len(c)
		if chunk > available {
			chunk = available
		}

		buf := w.AvailableBuffer()[:chunk<<3]
		for i := 0; i < chunk; i++ {
			binary.LittleEndian.PutUint64(buf[i<<3:], math.Float64bits(c[i]))
		}

		var inc int
		if inc, err = w.Write(buf); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		c = c[chunk:]
	}

	return
}
