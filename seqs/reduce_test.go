package seqs_test

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itertools/seqs"
)

func TestArithmetic(t *testing.T) {
	ints := slices.Values([]int{1, 2, 3, 4})
	empty := seqs.Empty[int]

	assert.Equal(t, 10, seqs.ToSum(ints))
	assert.Equal(t, 0, seqs.ToSum(empty))
	assert.Equal(t, 24, seqs.ToProduct(ints))
	assert.Equal(t, 1, seqs.ToProduct(empty))
	assert.Equal(t, 4, seqs.ToCount(ints))
	assert.Equal(t, 0, seqs.ToCount(empty))

	avg, err := seqs.ToAverage(ints)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, avg, 1e-9)
	_, err = seqs.ToAverage(empty)
	assert.ErrorIs(t, err, seqs.ErrEmpty)

	assert.InDelta(t, 5.0, seqs.ToVectorLength(slices.Values([]float64{3, 4})), 1e-9)
	assert.InDelta(t, math.Sqrt(30), seqs.ToVectorLength(ints), 1e-9)
	assert.Zero(t, seqs.ToVectorLength(empty))
}

func TestBounds(t *testing.T) {
	in := slices.Values([]int{3, -1, 7, 2})

	lo, ok := seqs.ToMin(in)
	assert.True(t, ok)
	assert.Equal(t, -1, lo)

	hi, ok := seqs.ToMax(in)
	assert.True(t, ok)
	assert.Equal(t, 7, hi)

	lo, hi, ok = seqs.ToMinMax(in)
	assert.True(t, ok)
	assert.Equal(t, []int{-1, 7}, []int{lo, hi})

	b, ok := seqs.ToBounds(slices.Values([]string{"pear", "apple", "zoo"}))
	assert.True(t, ok)
	assert.Equal(t, seqs.Bounds[string]{Min: "apple", Max: "zoo"}, b)

	amp, ok := seqs.ToAmplitude(in)
	assert.True(t, ok)
	assert.Equal(t, 8, amp)

	_, _, ok = seqs.ToMinMax(seqs.Empty[float64])
	assert.False(t, ok)
	_, ok = seqs.ToMin(seqs.Empty[int])
	assert.False(t, ok)
	_, ok = seqs.ToMax(seqs.Empty[int])
	assert.False(t, ok)
	_, ok = seqs.ToBounds(seqs.Empty[string])
	assert.False(t, ok)
	_, ok = seqs.ToAmplitude(seqs.Empty[int])
	assert.False(t, ok)
	_, _, ok = seqs.ToMinMaxBy(seqs.Empty[string], func(s string) int { return len(s) })
	assert.False(t, ok)
}

func TestToMinMaxBy(t *testing.T) {
	words := slices.Values([]string{"bb", "a", "ccc", "dd", "e"})
	shortest, longest, ok := seqs.ToMinMaxBy(words, func(s string) int { return len(s) })
	assert.True(t, ok)
	assert.Equal(t, "a", shortest, "ties keep the earliest")
	assert.Equal(t, "ccc", longest)
}

func TestPositional(t *testing.T) {
	in := slices.Values([]string{"a", "b", "c"})
	empty := seqs.Empty[string]

	first, err := seqs.ToFirst(in)
	require.NoError(t, err)
	assert.Equal(t, "a", first)

	last, err := seqs.ToLast(in)
	require.NoError(t, err)
	assert.Equal(t, "c", last)

	first, last, err = seqs.ToFirstAndLast(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, []string{first, last})

	for _, fn := range []func() error{
		func() error { _, err := seqs.ToFirst(empty); return err },
		func() error { _, err := seqs.ToLast(empty); return err },
		func() error { _, _, err := seqs.ToFirstAndLast(empty); return err },
		func() error { _, err := seqs.ToRandomValue(empty); return err },
	} {
		assert.ErrorIs(t, fn(), seqs.ErrEmpty)
	}

	nth, err := seqs.ToNth(in, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", nth)

	_, err = seqs.ToNth(in, 3)
	assert.ErrorIs(t, err, seqs.ErrOutOfRange)
	_, err = seqs.ToNth(in, -1)
	assert.ErrorIs(t, err, seqs.ErrOutOfRange)
}

func TestToRandomValue(t *testing.T) {
	pool := []int{10, 20, 30}
	for range 20 {
		v, err := seqs.ToRandomValue(slices.Values(pool))
		require.NoError(t, err)
		assert.Contains(t, pool, v)
	}
}

func TestToValueAndString(t *testing.T) {
	in := slices.Values([]int{1, 2, 3})
	got := seqs.ToValue(in, func(acc string, v int) string {
		return acc + strings.Repeat("*", v)
	}, ">")
	assert.Equal(t, ">******", got)

	assert.Equal(t, "[1, 2, 3]", seqs.ToString(in, ", ", "[", "]"))
	assert.Equal(t, "123", seqs.ToString(in, "", "", ""))
	assert.Equal(t, "()", seqs.ToString(seqs.Empty[int], ",", "(", ")"))
}

func TestSortedness(t *testing.T) {
	tests := []struct {
		name                       string
		in                         []int
		sorted, sortedDirectly     bool
		reversed, reversedDirectly bool
	}{
		{"Empty", nil, true, true, true, true},
		{"Single", []int{1}, true, true, true, true},
		{"Increasing", []int{1, 2, 3}, true, true, false, false},
		{"NonDecreasing", []int{1, 1, 2}, true, false, false, false},
		{"Decreasing", []int{3, 2, 1}, false, false, true, true},
		{"NonIncreasing", []int{3, 3, 1}, false, false, true, false},
		{"Flat", []int{5, 5}, true, false, true, false},
		{"Mixed", []int{1, 3, 2}, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Values(tt.in)
			assert.Equal(t, tt.sorted, seqs.IsSorted(in))
			assert.Equal(t, tt.sortedDirectly, seqs.IsSortedDirectly(in))
			assert.Equal(t, tt.reversed, seqs.IsReversed(in))
			assert.Equal(t, tt.reversedDirectly, seqs.IsReversedDirectly(in))
		})
	}
}

func TestExactlyN(t *testing.T) {
	in := slices.Values([]int{1, 2, 3, 4, 5, 6})
	even := func(v int) bool { return v%2 == 0 }

	assert.True(t, seqs.ExactlyN(in, 3, even))
	assert.False(t, seqs.ExactlyN(in, 2, even))
	assert.False(t, seqs.ExactlyN(in, 4, even))
	assert.True(t, seqs.ExactlyN(seqs.Empty[int], 0, even))
	assert.False(t, seqs.ExactlyN(in, -1, even))

	assert.True(t, seqs.Any(in, even))
	assert.False(t, seqs.All(in, even))
}
