package multiset

import (
	"iter"
	"slices"
)

// rule maps the counts of one key across all inputs (zero where the key is
// absent) to the number of times the key is emitted. counts may be
// reordered by the rule.
type rule func(counts []int) int

// combine drains every input, then visits keys in first-seen order across
// the inputs and yields each key's representative as many times as r says.
// The representative is the first value seen for the key.
func combine[V any, K comparable](key func(V) K, r rule, seqs []iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		if len(seqs) == 0 {
			return
		}
		sets := make([]*Multiset[V, K], len(seqs))
		for i, seq := range seqs {
			sets[i] = DrainBy(seq, key)
		}

		visited := make(map[K]struct{})
		counts := make([]int, len(sets))
		for _, ms := range sets {
			for _, e := range ms.entries {
				if _, ok := visited[e.Key]; ok {
					continue
				}
				visited[e.Key] = struct{}{}

				for j, other := range sets {
					counts[j] = other.CountKey(e.Key)
				}
				for range r(counts) {
					if !yield(e.Value) {
						return
					}
				}
			}
		}
	}
}

// streamUnion yields a value as soon as its running count within the
// current input exceeds the number of times its key was already emitted.
// The result carries max multiplicities without draining ahead, and a
// single input comes back in its original order.
func streamUnion[V any, K comparable](key func(V) K, seqs []iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		emitted := make(map[K]int)
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			local := New(key)
			for v := range seq {
				k, n := local.add(v)
				if n <= emitted[k] {
					continue
				}
				emitted[k] = n
				if !yield(v) {
					return
				}
			}
		}
	}
}

// streamDistinct yields the first value of every key.
func streamDistinct[V any, K comparable](key func(V) K, seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		if seq == nil {
			return
		}
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// ---------------------------------------------------------------
// Counting rules
// ---------------------------------------------------------------

// atLeast keeps keys present in at least m inputs. The multiplicity is the
// m-th largest count. With m == 1 this is union, with m == len(counts) it
// is intersection.
func atLeast(m int) rule {
	return func(counts []int) int {
		if m > len(counts) {
			return 0
		}
		slices.Sort(counts)
		return counts[len(counts)-m]
	}
}

// exactlyOne keeps keys found in a single input, with that input's count.
func exactlyOne(counts []int) int {
	found := 0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		if found != 0 {
			return 0
		}
		found = c
	}
	return found
}

// foldDifference folds pairwise multiset symmetric difference from left to
// right: r = |r - count_i|.
func foldDifference(counts []int) int {
	r := 0
	for _, c := range counts {
		r = abs(r - c)
	}
	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
