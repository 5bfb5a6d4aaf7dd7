package seqs

import (
	"iter"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// ToFirst returns the first element, or ErrEmpty.
func ToFirst[T any](seq iter.Seq[T]) (T, error) {
	for v := range seq {
		return v, nil
	}
	var zero T
	return zero, ErrEmpty
}

// ToLast returns the last element, or ErrEmpty.
func ToLast[T any](seq iter.Seq[T]) (T, error) {
	_, last, err := ToFirstAndLast(seq)
	return last, err
}

func ToFirstAndLast[T any](seq iter.Seq[T]) (first, last T, err error) {
	found := false
	for v := range seq {
		if !found {
			first = v
			found = true
		}
		last = v
	}
	if !found {
		return first, last, ErrEmpty
	}
	return first, last, nil
}

// ToNth returns the element at zero-based position pos.
func ToNth[T any](seq iter.Seq[T], pos int) (T, error) {
	var zero T
	if pos < 0 {
		return zero, errors.Wrapf(ErrOutOfRange, "position %d", pos)
	}
	i := 0
	for v := range seq {
		if i == pos {
			return v, nil
		}
		i++
	}
	return zero, errors.Wrapf(ErrOutOfRange, "position %d, length %d", pos, i)
}

// ToRandomValue picks one element uniformly (reservoir sampling, single
// pass), or returns ErrEmpty.
func ToRandomValue[T any](seq iter.Seq[T]) (T, error) {
	var pick T
	n := 0
	for v := range seq {
		n++
		if rand.IntN(n) == 0 {
			pick = v
		}
	}
	if n == 0 {
		return pick, ErrEmpty
	}
	return pick, nil
}

// ExactlyN reports whether exactly n elements satisfy predicate. It stops
// reading as soon as the answer is known to be false.
func ExactlyN[T any](seq iter.Seq[T], n int, predicate func(T) bool) bool {
	if n < 0 {
		return false
	}
	matched := 0
	for v := range seq {
		if predicate(v) {
			if matched++; matched > n {
				return false
			}
		}
	}
	return matched == n
}

func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}
