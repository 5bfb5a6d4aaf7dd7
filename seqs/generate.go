package seqs

import (
	"iter"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// RandomInts yields size random integers in [0, n).
func RandomInts(size, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for range size {
			if !yield(rand.IntN(n)) {
				return
			}
		}
	}
}

// Range yields start, start+step, ... up to but excluding end.
// A zero step yields nothing.
func Range[T constraints.Integer](start, end, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range count {
			if !yield(value) {
				return
			}
		}
	}
}
