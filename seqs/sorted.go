package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// monotonic reports whether ok(prev, next) holds for every adjacent pair.
func monotonic[T any](seq iter.Seq[T], ok func(prev, next T) bool) bool {
	var prev T
	first := true
	for v := range seq {
		if !first && !ok(prev, v) {
			return false
		}
		prev, first = v, false
	}
	return true
}

// IsSorted reports whether seq is non-decreasing. Empty and single-element
// sequences are sorted.
func IsSorted[T constraints.Ordered](seq iter.Seq[T]) bool {
	return monotonic(seq, func(a, b T) bool { return a <= b })
}

// IsSortedDirectly reports whether seq is strictly increasing.
func IsSortedDirectly[T constraints.Ordered](seq iter.Seq[T]) bool {
	return monotonic(seq, func(a, b T) bool { return a < b })
}

// IsReversed reports whether seq is non-increasing.
func IsReversed[T constraints.Ordered](seq iter.Seq[T]) bool {
	return monotonic(seq, func(a, b T) bool { return a >= b })
}

// IsReversedDirectly reports whether seq is strictly decreasing.
func IsReversedDirectly[T constraints.Ordered](seq iter.Seq[T]) bool {
	return monotonic(seq, func(a, b T) bool { return a > b })
}
