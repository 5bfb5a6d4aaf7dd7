package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itertools/value"
)

type point struct {
	X, Y int
}

type label struct {
	name string
	tags []string
}

func TestClassifyStrict(t *testing.T) {
	p1, p2 := &point{1, 2}, &point{1, 2}
	fn := func() {}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"SameInt", 1, 1, true},
		{"IntVsString", 1, "1", false},
		{"IntVsFloat", 1, 1.0, false},
		{"IntVsInt64", 1, int64(1), false},
		{"FloatZeroSigns", 0.0, -0.0, true},
		{"TrueVsOne", true, 1, false},
		{"NilVsNil", nil, nil, true},
		{"NilVsFalse", nil, false, false},
		{"EmptyStrings", "", "", true},
		{"Strings", "abc", "abd", false},
		{"SliceStructure", []int{1, 2}, []int{1, 2}, true},
		{"SliceOrder", []int{1, 2}, []int{2, 1}, false},
		{"NilSliceVsEmpty", []int(nil), []int{}, true},
		{"NestedAnyTypes", []any{1, "a"}, []any{1, "a"}, true},
		{"NestedAnyDiffTypes", []any{1}, []any{"1"}, false},
		{"MapStructure", map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1}, true},
		{"MapValues", map[string]int{"a": 1}, map[string]int{"a": 2}, false},
		{"StructValue", point{1, 2}, point{1, 2}, true},
		{"StructDiff", point{1, 2}, point{2, 1}, false},
		{"UnexportedFields", label{"a", []string{"x"}}, label{"a", []string{"x"}}, true},
		{"PointerIdentity", p1, p1, true},
		{"PointerDistinct", p1, p2, false},
		{"FuncIdentity", fn, fn, true},
		{"StringLengthPrefix", []string{"ab", "c"}, []string{"a", "bc"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, value.Equal(tt.a, tt.b, value.Strict))
		})
	}
}

func TestClassifyCoercive(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"NumericString", 1, "1", true},
		{"NumericStringFloat", "1.0", 1, true},
		{"Exponent", "1e3", 1000, true},
		{"Whitespace", " 42 ", 42, true},
		{"TrueIsOne", true, 1, true},
		{"TrueIsOneFloat", true, 1.0, true},
		{"TrueIsNotTwo", true, 2, false},
		{"FalseIsNil", false, nil, true},
		{"FalseIsZero", false, 0, true},
		{"ZeroFloat", 0, 0.0, true},
		{"EmptyString", "", nil, true},
		{"EmptySlice", []int{}, false, true},
		{"EmptyMap", map[string]int{}, 0, true},
		{"ZeroString", "0", false, true},
		{"NonNumeric", "abc", "ABC", false},
		{"HexNotNumeric", "0x1A", 26, false},
		{"InfNotNumeric", "inf", "Inf", false},
		{"OverflowIsInfinite", "1e400", "2e400", true},
		{"OverflowSign", "1e400", "-1e400", false},
		{"OverflowNotString", "1e400", "1e400x", false},
		{"Uint", uint8(7), "7", true},
		{"NestedSlices", []any{"1", true}, []int{1, 1}, true},
		{"NestedLength", []int{1}, []int{1, 1}, false},
		{"MapKeysCoerce", map[any]any{"1": "x"}, map[int]string{1: "x"}, true},
		{"NilPointer", (*point)(nil), nil, true},
		{"StructFields", point{1, 0}, point{1, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, value.Equal(tt.a, tt.b, value.Coercive))
		})
	}
}

func TestFalsyClassCollapses(t *testing.T) {
	falsy := []any{false, nil, 0, 0.0, "", []any{}, "0"}
	first := value.Classify(falsy[0], value.Coercive)
	for _, v := range falsy[1:] {
		assert.Equal(t, first, value.Classify(v, value.Coercive), "value %#v", v)
	}
}

func TestClassifySelfReferentialSlice(t *testing.T) {
	s := make([]any, 1)
	s[0] = s

	require.NotPanics(t, func() {
		value.Classify(s, value.Strict)
		value.Classify(s, value.Coercive)
	})
	assert.True(t, value.Equal(s, s, value.Strict))
}

func TestClassifyWideCycle(t *testing.T) {
	s := make([]any, 2)
	s[0], s[1] = s, s

	m := map[string]any{}
	m["a"], m["b"] = m, s

	for _, p := range []value.Policy{value.Strict, value.Coercive} {
		assert.True(t, value.Equal(s, s, p))
		assert.True(t, value.Equal(m, m, p))
	}
}

// shared builds a value nested depth levels deep where every level holds
// its child twice.
func shared(depth int) []any {
	v := []any{"leaf"}
	for range depth {
		v = []any{v, v}
	}
	return v
}

func TestClassifySharedChildren(t *testing.T) {
	a, b := shared(64), shared(64)

	for _, p := range []value.Policy{value.Strict, value.Coercive} {
		assert.True(t, value.Equal(a, b, p))
		assert.False(t, value.Equal(a, shared(63), p))
		assert.Less(t, len(value.Classify(a, p).String()), 512)
	}
}

func TestClassifyDeepNesting(t *testing.T) {
	nest := func(leaf any) any {
		v := leaf
		for range 100 {
			v = []any{v}
		}
		return v
	}

	assert.True(t, value.Equal(nest(1), nest(1), value.Strict))
	assert.False(t, value.Equal(nest(1), nest(2), value.Strict))
	assert.True(t, value.Equal(nest(1), nest("1"), value.Coercive))
}

func TestClassifyCollidingMapKeysIsStable(t *testing.T) {
	m := map[any]any{1: "a", "1": "b"}
	first := value.Classify(m, value.Coercive)
	for range 200 {
		require.Equal(t, first, value.Classify(m, value.Coercive))
	}
	assert.True(t, value.Equal(m, map[any]any{"1": "a", 1: "b"}, value.Coercive))
}

func TestKeyFunc(t *testing.T) {
	key := value.KeyFunc[string](value.Coercive)
	assert.Equal(t, key("10"), key("1e1"))
	assert.NotEqual(t, key("10"), key("11"))
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    value.Policy
		wantErr bool
	}{
		{"strict", value.Strict, false},
		{"", value.Strict, false},
		{"Coercive", value.Coercive, false},
		{" loose ", value.Coercive, false},
		{"fuzzy", value.Strict, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := value.ParsePolicy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, value.ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, must(value.ParsePolicy(got.String())))
		})
	}
}

func must(p value.Policy, err error) value.Policy {
	if err != nil {
		panic(err)
	}
	return p
}
