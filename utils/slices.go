package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Max returns the maximum value of a and b.
func Max[V constraints.Ordered](a, b V) V {
	if a >= b {
		return a
	}
	return b
}

// Min returns the minimum value of a and b.
func Min[V constraints.Ordered](a, b V) V {
	if a <= b {
		return a
	}
	return b
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// Map returns a new slice with f applied to each element of s.
func Map[V, W any](s []V, f func(V) W) (r []W) {
	r = make([]W, len(s))
	for i := range s {
		r[i] = f(s[i])
	}
	return
}
