// Package sliceutil offers eager, slice-in slice-out forms of the multiset
// operations, for callers that already hold their data in memory.
//
// Results are always freshly allocated and never nil; inputs are not
// modified.
package sliceutil

import (
	"iter"
	"slices"

	"itertools/multiset"
)

func sources[T any](lists [][]T) []iter.Seq[T] {
	out := make([]iter.Seq[T], len(lists))
	for i, l := range lists {
		out[i] = slices.Values(l)
	}
	return out
}

// collect gathers seq into a non-nil slice.
func collect[T any](seq iter.Seq[T], capacity int) []T {
	return slices.AppendSeq(make([]T, 0, capacity), seq)
}

// longest returns the length of the largest list, a safe upper bound for
// every operation except union.
func longest[T any](lists [][]T) int {
	n := 0
	for _, l := range lists {
		n = max(n, len(l))
	}
	return n
}

// Union returns every element with the largest multiplicity it has in any
// list.
//
//	Union([]int{1, 1, 2}, []int{2, 2, 3}) => [1 1 2 2 3]
func Union[T any](lists ...[]T) []T {
	return collect(multiset.Union(sources(lists)...), longest(lists))
}

// UnionCoercive is Union under coercive equality.
func UnionCoercive[T any](lists ...[]T) []T {
	return collect(multiset.UnionCoercive(sources(lists)...), longest(lists))
}

// UnionBy is Union using a key selector.
// Useful for non-comparable types or custom uniqueness logic.
func UnionBy[T any, K comparable](keySelector func(T) K, lists ...[]T) []T {
	return collect(multiset.UnionBy(keySelector, sources(lists)...), longest(lists))
}

// Intersection returns the elements present in every list, each with its
// smallest multiplicity.
func Intersection[T any](lists ...[]T) []T {
	return collect(multiset.Intersection(sources(lists)...), 0)
}

func IntersectionCoercive[T any](lists ...[]T) []T {
	return collect(multiset.IntersectionCoercive(sources(lists)...), 0)
}

// IntersectionBy returns the intersection of the lists using a key selector.
func IntersectionBy[T any, K comparable](keySelector func(T) K, lists ...[]T) []T {
	return collect(multiset.IntersectionBy(keySelector, sources(lists)...), 0)
}

// PartialIntersection returns the elements present in at least minCount
// lists. It fails with multiset.ErrInvalidMinCount when minCount < 1.
func PartialIntersection[T any](minCount int, lists ...[]T) ([]T, error) {
	seq, err := multiset.PartialIntersection(minCount, sources(lists)...)
	if err != nil {
		return nil, err
	}
	return collect(seq, 0), nil
}

func PartialIntersectionCoercive[T any](minCount int, lists ...[]T) ([]T, error) {
	seq, err := multiset.PartialIntersectionCoercive(minCount, sources(lists)...)
	if err != nil {
		return nil, err
	}
	return collect(seq, 0), nil
}

func PartialIntersectionBy[T any, K comparable](minCount int, keySelector func(T) K, lists ...[]T) ([]T, error) {
	seq, err := multiset.PartialIntersectionBy(minCount, keySelector, sources(lists)...)
	if err != nil {
		return nil, err
	}
	return collect(seq, 0), nil
}

// SymmetricDifference returns the elements found in exactly one list.
func SymmetricDifference[T any](lists ...[]T) []T {
	return collect(multiset.SymmetricDifference(sources(lists)...), 0)
}

func SymmetricDifferenceCoercive[T any](lists ...[]T) []T {
	return collect(multiset.SymmetricDifferenceCoercive(sources(lists)...), 0)
}

// SymmetricDifferenceBy returns the symmetric difference using a key selector.
func SymmetricDifferenceBy[T any, K comparable](keySelector func(T) K, lists ...[]T) []T {
	return collect(multiset.SymmetricDifferenceBy(keySelector, sources(lists)...), 0)
}

// Unique returns the first occurrence of every element, in order.
// Unlike the in-place variants in the standard library it works for any T.
func Unique[T any](collection []T) []T {
	return collect(multiset.Distinct(slices.Values(collection)), len(collection))
}

// UniqueBy returns the first element of every key, in order.
func UniqueBy[T any, K comparable](collection []T, keySelector func(T) K) []T {
	return collect(multiset.DistinctBy(keySelector, slices.Values(collection)), len(collection))
}
