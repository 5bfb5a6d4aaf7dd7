package seqs

import "iter"

// Chain yields the elements of every sequence in turn. Nil sequences are
// skipped.
func Chain[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// pullAll converts every sequence into a pull function. The returned stop
// releases all of them.
func pullAll[T any](seqs []iter.Seq[T]) ([]func() (T, bool), func()) {
	nexts := make([]func() (T, bool), len(seqs))
	stops := make([]func(), len(seqs))
	for i, seq := range seqs {
		if seq == nil {
			seq = Empty[T]
		}
		nexts[i], stops[i] = iter.Pull(seq)
	}
	return nexts, func() {
		for _, stop := range stops {
			stop()
		}
	}
}

// Zip yields one row per position, holding the i-th element of every
// sequence. It stops as soon as the shortest sequence is exhausted.
// Each yielded row is a fresh slice.
func Zip[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts, stop := pullAll(seqs)
		defer stop()

		for {
			row := make([]T, len(nexts))
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				row[i] = v
			}
			if !yield(row) {
				return
			}
		}
	}
}

// ZipLongest is Zip that runs until the longest sequence is exhausted,
// padding the shorter ones with fill.
func ZipLongest[T any](fill T, seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts, stop := pullAll(seqs)
		defer stop()

		done := make([]bool, len(nexts))
		remaining := len(nexts)
		for {
			row := make([]T, len(nexts))
			for i, next := range nexts {
				if done[i] {
					row[i] = fill
					continue
				}
				v, ok := next()
				if !ok {
					done[i] = true
					remaining--
					v = fill
				}
				row[i] = v
			}
			// all done
			if remaining == 0 {
				return
			}
			if !yield(row) {
				return
			}
		}
	}
}
