// Package utils implements generic helpers on slices.
package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// AllDistinct returns true if all elements in s are distinct, and false otherwise.
func AllDistinct[V comparable](s []V) bool {
	m := make(map[V]struct{}, len(s))
	for _, si := range s {
		if _, exists := m[si]; exists {
			return false
		}
		m[si] = struct{}{}
	}
	return true
}

// MinMax returns the smallest and the largest element of s.
// It panics if s is empty.
func MinMax[V constraints.Ordered](s []V) (min, max V) {
	min, max = s[0], s[0]
	for _, si := range s[1:] {
		if si < min {
			min = si
		}
		if si > max {
			max = si
		}
	}
	return
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[V constraints.Float](x V) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
