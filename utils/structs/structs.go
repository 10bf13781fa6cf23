// Package structs implements generic vectors of floating point values and
// their binary serialization.
package structs

// BinarySizer is implemented by objects that can report their serialized size.
type BinarySizer interface {
	BinarySize() int
}

// Equatable is implemented by objects that can be compared for equality.
type Equatable[T any] interface {
	Equal(*T) bool
}
