package seqs

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

func ToMin[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var min T
	first := true
	for v := range seq {
		if first || v < min {
			min = v
			first = false
		}
	}
	return min, !first
}

func ToMax[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var max T
	first := true
	for v := range seq {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max, !first
}

// ToMinMax finds both extremes in one pass. ok is false for an empty seq.
func ToMinMax[T constraints.Ordered](seq iter.Seq[T]) (min, max T, ok bool) {
	return ToMinMaxBy(seq, func(v T) T { return v })
}

// ToMinMaxBy finds the elements with the smallest and largest compareBy
// keys. Ties keep the earliest element.
func ToMinMaxBy[T any, K constraints.Ordered](seq iter.Seq[T], compareBy func(T) K) (min, max T, ok bool) {
	var lo, hi K
	for v := range seq {
		k := compareBy(v)
		if !ok {
			min, max, lo, hi, ok = v, v, k, k, true
			continue
		}
		if cmp.Less(k, lo) {
			min, lo = v, k
		}
		if cmp.Less(hi, k) {
			max, hi = v, k
		}
	}
	return min, max, ok
}

type Bounds[T any] struct {
	Min T
	Max T
}

// ToBounds is ToMinMax returning a Bounds value.
func ToBounds[T constraints.Ordered](seq iter.Seq[T]) (Bounds[T], bool) {
	min, max, ok := ToMinMax(seq)
	return Bounds[T]{Min: min, Max: max}, ok
}

// ToAmplitude returns max - min.
func ToAmplitude[T Number](seq iter.Seq[T]) (T, bool) {
	min, max, ok := ToMinMax(seq)
	return max - min, ok
}
