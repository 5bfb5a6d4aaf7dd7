// Package multiset counts occurrences of values in sequences and combines
// several counted sequences with multiset-aware set operations.
//
// Every operation takes its inputs as iter.Seq values and returns a lazy
// iter.Seq. Nothing is consumed until the result is ranged over. At that
// point each input is drained exactly once (union streams instead), and
// the output is yielded one value at a time. Stopping early is free.
//
// Values are grouped by a canonical key. The plain functions use
// [value.Strict]; the Coercive variants use [value.Coercive]; the By
// variants accept any comparable key selector.
package multiset

import (
	"iter"

	"itertools/value"
)

// Entry is one distinct key of a Multiset.
type Entry[V any, K comparable] struct {
	Key K
	// Value is the first value seen for Key.
	Value V
	Count int
	// Order is the position of Value in the drained sequence.
	Order int
}

// Multiset maps keys to occurrence counts, remembering the first value seen
// for every key and the order in which keys first appeared.
type Multiset[V any, K comparable] struct {
	key     func(V) K
	index   map[K]int
	entries []Entry[V, K]
	size    int
}

// New creates an empty Multiset grouping values by key.
func New[V any, K comparable](key func(V) K) *Multiset[V, K] {
	if key == nil {
		panic("multiset.New: key selector cannot be nil")
	}
	return &Multiset[V, K]{
		key:   key,
		index: make(map[K]int),
	}
}

// Add records one occurrence of v and returns the new count of its key.
func (m *Multiset[V, K]) Add(v V) int {
	_, n := m.add(v)
	return n
}

func (m *Multiset[V, K]) add(v V) (K, int) {
	k := m.key(v)
	pos := m.size
	m.size++
	if i, ok := m.index[k]; ok {
		m.entries[i].Count++
		return k, m.entries[i].Count
	}
	m.index[k] = len(m.entries)
	m.entries = append(m.entries, Entry[V, K]{Key: k, Value: v, Count: 1, Order: pos})
	return k, 1
}

// Len returns the total number of occurrences.
func (m *Multiset[V, K]) Len() int { return m.size }

// Distinct returns the number of distinct keys.
func (m *Multiset[V, K]) Distinct() int { return len(m.entries) }

// Count returns how many values equal to v have been added.
func (m *Multiset[V, K]) Count(v V) int {
	return m.CountKey(m.key(v))
}

// CountKey returns the count stored for k, or 0.
func (m *Multiset[V, K]) CountKey(k K) int {
	if i, ok := m.index[k]; ok {
		return m.entries[i].Count
	}
	return 0
}

// Entries yields one Entry per distinct key in first-seen order.
func (m *Multiset[V, K]) Entries() iter.Seq[Entry[V, K]] {
	return func(yield func(Entry[V, K]) bool) {
		for _, e := range m.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Values yields every key's representative repeated Count times, grouped
// by key in first-seen order.
func (m *Multiset[V, K]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries {
			for range e.Count {
				if !yield(e.Value) {
					return
				}
			}
		}
	}
}

// Drain consumes seq to completion, counting values under policy p.
// A nil seq counts as empty.
func Drain[V any](seq iter.Seq[V], p value.Policy) *Multiset[V, value.Key] {
	return DrainBy(seq, value.KeyFunc[V](p))
}

// DrainBy consumes seq to completion, grouping values by key.
func DrainBy[V any, K comparable](seq iter.Seq[V], key func(V) K) *Multiset[V, K] {
	m := New(key)
	if seq == nil {
		return m
	}
	for v := range seq {
		m.add(v)
	}
	return m
}
