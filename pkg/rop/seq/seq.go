// Package seq provides positional edits on slices with splice-style indices:
// a negative index counts from the end and out-of-range indices are clamped.
package seq

import (
	"slices"

	"github.com/ib-77/stepkit/pkg/rop/mathx"
)

func normalize(index, n int) int {
	if index < 0 {
		index += n
	}
	// 0 <= n, so Clamp never fails here.
	i, _ := mathx.Clamp(index, 0, n)
	return i
}

// InsertAt inserts values before index and returns the updated slice.
func InsertAt[T any](s []T, index int, values ...T) []T {
	return slices.Insert(s, normalize(index, len(s)), values...)
}

// RemoveAt removes the element at index. It returns the remaining elements and
// the removed ones (empty when index is past the end).
func RemoveAt[T any](s []T, index int) (rest, removed []T) {
	i := normalize(index, len(s))
	if i >= len(s) {
		return s, []T{}
	}
	removed = []T{s[i]}
	return slices.Delete(s, i, i+1), removed
}

// Last returns the last element, false for an empty slice.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// SetLast overwrites the last element. It reports false for an empty slice.
func SetLast[T any](s []T, v T) bool {
	if len(s) == 0 {
		return false
	}
	s[len(s)-1] = v
	return true
}
