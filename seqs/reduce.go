package seqs

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// ToValue folds seq into a single value, starting from initial.
func ToValue[T, R any](seq iter.Seq[T], reducer func(R, T) R, initial R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

func ToSum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// ToProduct multiplies all elements. The product of nothing is 1.
func ToProduct[T Number](seq iter.Seq[T]) T {
	product := T(1)
	for v := range seq {
		product *= v
	}
	return product
}

func ToCount[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// ToAverage returns the arithmetic mean, or ErrEmpty.
func ToAverage[T Number](seq iter.Seq[T]) (float64, error) {
	var sum float64
	n := 0
	for v := range seq {
		sum += float64(v)
		n++
	}
	if n == 0 {
		return 0, ErrEmpty
	}
	return sum / float64(n), nil
}

// ToVectorLength returns the Euclidean norm of seq taken as a vector.
func ToVectorLength[T Number](seq iter.Seq[T]) float64 {
	var sq float64
	for v := range seq {
		f := float64(v)
		sq += f * f
	}
	return math.Sqrt(sq)
}

// ToString joins the elements formatted with fmt.Sprint, wrapped in
// prefix and suffix.
func ToString[T any](seq iter.Seq[T], separator, prefix, suffix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	first := true
	for v := range seq {
		if !first {
			b.WriteString(separator)
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteString(suffix)
	return b.String()
}
