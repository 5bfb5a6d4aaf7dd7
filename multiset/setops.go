package multiset

import (
	"iter"

	"github.com/pkg/errors"

	"itertools/value"
)

// ErrInvalidMinCount is returned by the partial intersections when the
// minimum number of inputs is below one.
var ErrInvalidMinCount = errors.New("multiset: minimum count must be at least 1")

func checkSelector[V any, K comparable](fn string, key func(V) K) {
	if key == nil {
		panic("multiset." + fn + ": key selector cannot be nil")
	}
}

// Union yields every value with the largest multiplicity it has in any
// input. Values from a single input keep their original order.
//
//	Union([1,1,2], [1,2,2,3]) => [1,1,2,2,3]
func Union[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return streamUnion(value.KeyFunc[V](value.Strict), seqs)
}

// UnionCoercive is Union under coercive equality.
func UnionCoercive[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return streamUnion(value.KeyFunc[V](value.Coercive), seqs)
}

// UnionBy is Union grouping values by key.
func UnionBy[V any, K comparable](key func(V) K, seqs ...iter.Seq[V]) iter.Seq[V] {
	checkSelector("UnionBy", key)
	return streamUnion(key, seqs)
}

// Intersection yields values present in every input, each with its
// smallest multiplicity.
//
//	Intersection([1,1,2,4], [1,1,1,2,3]) => [1,1,2]
func Intersection[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return combine(value.KeyFunc[V](value.Strict), atLeast(len(seqs)), seqs)
}

// IntersectionCoercive is Intersection under coercive equality.
func IntersectionCoercive[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return combine(value.KeyFunc[V](value.Coercive), atLeast(len(seqs)), seqs)
}

// IntersectionBy is Intersection grouping values by key.
func IntersectionBy[V any, K comparable](key func(V) K, seqs ...iter.Seq[V]) iter.Seq[V] {
	checkSelector("IntersectionBy", key)
	return combine(key, atLeast(len(seqs)), seqs)
}

// PartialIntersection yields values present in at least minCount of the
// inputs. A value's multiplicity is the minCount-th largest of its counts,
// so PartialIntersection(1, ...) is Union and PartialIntersection(n, ...)
// over n inputs is Intersection. minCount greater than the number of
// inputs yields nothing.
//
// minCount below 1 fails with ErrInvalidMinCount before any input is read.
func PartialIntersection[V any](minCount int, seqs ...iter.Seq[V]) (iter.Seq[V], error) {
	return PartialIntersectionBy(minCount, value.KeyFunc[V](value.Strict), seqs...)
}

// PartialIntersectionCoercive is PartialIntersection under coercive equality.
func PartialIntersectionCoercive[V any](minCount int, seqs ...iter.Seq[V]) (iter.Seq[V], error) {
	return PartialIntersectionBy(minCount, value.KeyFunc[V](value.Coercive), seqs...)
}

// PartialIntersectionBy is PartialIntersection grouping values by key.
func PartialIntersectionBy[V any, K comparable](minCount int, key func(V) K, seqs ...iter.Seq[V]) (iter.Seq[V], error) {
	checkSelector("PartialIntersectionBy", key)
	if minCount < 1 {
		return nil, errors.Wrapf(ErrInvalidMinCount, "got %d", minCount)
	}
	return combine(key, atLeast(minCount), seqs), nil
}

// SymmetricDifference yields values found in exactly one input, with that
// input's multiplicity.
//
//	SymmetricDifference([1,2,3], [2,3,4]) => [1,4]
func SymmetricDifference[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return combine(value.KeyFunc[V](value.Strict), exactlyOne, seqs)
}

// SymmetricDifferenceCoercive is SymmetricDifference under coercive equality.
func SymmetricDifferenceCoercive[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return combine(value.KeyFunc[V](value.Coercive), exactlyOne, seqs)
}

// SymmetricDifferenceBy is SymmetricDifference grouping values by key.
func SymmetricDifferenceBy[V any, K comparable](key func(V) K, seqs ...iter.Seq[V]) iter.Seq[V] {
	checkSelector("SymmetricDifferenceBy", key)
	return combine(key, exactlyOne, seqs)
}

// SymmetricDifferenceNonStrict folds the pairwise multiset symmetric
// difference over the inputs from left to right, under coercive equality.
// A value's multiplicity is |...||c1 - c2| - c3| ... - cn|. When every
// input holds a value at most once, a value survives iff it is present in
// an odd number of inputs.
func SymmetricDifferenceNonStrict[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return combine(value.KeyFunc[V](value.Coercive), foldDifference, seqs)
}

// Distinct yields the first occurrence of every value.
func Distinct[V any](seq iter.Seq[V]) iter.Seq[V] {
	return streamDistinct(value.KeyFunc[V](value.Strict), seq)
}

// DistinctCoercive is Distinct under coercive equality.
func DistinctCoercive[V any](seq iter.Seq[V]) iter.Seq[V] {
	return streamDistinct(value.KeyFunc[V](value.Coercive), seq)
}

// DistinctBy yields the first value of every key.
func DistinctBy[V any, K comparable](key func(V) K, seq iter.Seq[V]) iter.Seq[V] {
	checkSelector("DistinctBy", key)
	return streamDistinct(key, seq)
}
