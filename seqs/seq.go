package seqs

import "iter"

// Filter yields only the elements of seq satisfying predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// Map yields transform(v) for every element of seq.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// FilterMap applies transform and keeps the results it marks as ok.
func FilterMap[T, R any](seq iter.Seq[T], transform func(T) (R, bool)) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			r, ok := transform(v)
			if !ok {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
