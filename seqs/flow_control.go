package seqs

import (
	"iter"
	"slices"
)

// Take yields at most n elements.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			if taken++; taken >= n {
				return
			}
		}
	}
}

// Skip drops the first n elements.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skip := n
		for v := range seq {
			if skip > 0 {
				skip--
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Chunk groups consecutive elements into slices of size. The last chunk may
// be shorter. A non-positive size yields nothing.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return Window(seq, size, size)
}

// Window yields slices of size elements, advancing step elements between
// windows. With step < size windows overlap; with step > size elements in
// between are dropped. Only a trailing partial window of a Chunk
// (step == size) is yielded; overlapping windows are always full.
func Window[T any](seq iter.Seq[T], size, step int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 || step <= 0 {
			return
		}
		buf := make([]T, 0, size)
		gap := 0
		for v := range seq {
			if gap > 0 {
				gap--
				continue
			}
			buf = append(buf, v)
			if len(buf) < size {
				continue
			}
			if !yield(slices.Clone(buf)) {
				return
			}
			if step >= size {
				buf = buf[:0]
				gap = step - size
			} else {
				buf = append(buf[:0], buf[step:]...)
			}
		}
		if step == size && len(buf) > 0 {
			yield(slices.Clone(buf))
		}
	}
}
