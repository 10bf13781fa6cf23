// Package buffer implements little-endian encoding of fixed-size numeric
// values on writers that expose their internal buffer.
package buffer

import (
	"fmt"
	"io"
)

// Writer is a writer whose free space can be filled in place before
// being committed with Write. bufio.Writer and Buffer implement it.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Buffer is a fixed-capacity Writer backed by a []byte.
type Buffer struct {
	buf []byte
	n   int
}

// NewBufferSize returns an empty Buffer that can hold size bytes.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Write appends p to b, failing if p does not fit.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p)+b.n > cap(b.buf) {
		return 0, fmt.Errorf("cannot Write: %d bytes exceed the %d available", len(p), b.Available())
	}
	n = copy(b.buf[b.n:], p)
	b.n += n
	return n, nil
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns an empty slice with b.Available() capacity,
// valid until the next write on b.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.n:][:0]
}

func (b *Buffer) Available() int {
	return len(b.buf) - b.n
}

// Bytes returns the bytes written so far.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}
