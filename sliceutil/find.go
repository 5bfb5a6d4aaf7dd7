package sliceutil

import "itertools/value"

// IndexOf returns the index of the first element equal to target under
// policy p, or -1.
func IndexOf[T any](collection []T, target any, p value.Policy) int {
	if len(collection) == 0 {
		return -1
	}
	want := value.Classify(target, p)
	for i, v := range collection {
		if value.Classify(v, p) == want {
			return i
		}
	}
	return -1
}

// Contains reports whether an element equal to target under policy p exists.
func Contains[T any](collection []T, target any, p value.Policy) bool {
	return IndexOf(collection, target, p) >= 0
}

// CountOf returns how many elements equal target under policy p.
func CountOf[T any](collection []T, target any, p value.Policy) int {
	want := value.Classify(target, p)
	n := 0
	for _, v := range collection {
		if value.Classify(v, p) == want {
			n++
		}
	}
	return n
}

// Find searches for the first element that satisfies the predicate.
// Returns the element and true if found, otherwise returns the zero value and false.
func Find[T any](collection []T, predicate func(T) bool) (T, bool) {
	for _, v := range collection {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
