// Package sampling implements sampling of floating point values, permutations
// and evaluation grids, either from a secure source or from a keyed
// deterministic PRNG.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Uint64 reads a uniform uint64 from prng.
func Uint64(prng io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(prng, b); err != nil {
		panic(fmt.Errorf("prng.Read: %w", err))
	}
	return binary.LittleEndian.Uint64(b)
}

// Float64 returns a float in [min, max) sampled from prng.
func Float64(prng io.Reader, min, max float64) float64 {
	// 53 random bits give a uniform float in [0, 1).
	f := float64(Uint64(prng)>>11) / (1 << 53)
	return min + f*(max-min)
}

// Float64Slice returns n floats in [min, max) sampled from prng.
func Float64Slice(prng io.Reader, n int, min, max float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = Float64(prng, min, max)
	}
	return
}

// Permutation returns a uniform permutation of [0, n) sampled from prng
// (Fisher-Yates).
func Permutation(prng io.Reader, n int) (perm []int) {
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := int(Uint64(prng) % uint64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return
}

// Linspace returns n evenly spaced values over [a, b], both endpoints
// included. It returns an empty slice for n <= 0 and [a] for n = 1.
func Linspace(a, b float64, n int) (v []float64) {

	if n <= 0 {
		return []float64{}
	}

	v = make([]float64, n)

	if n == 1 {
		v[0] = a
		return
	}

	step := (b - a) / float64(n-1)
	for i := range v {
		v[i] = a + float64(i)*step
	}
	v[n-1] = b

	return
}
