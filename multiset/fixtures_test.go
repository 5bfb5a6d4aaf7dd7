package multiset_test

import (
	"iter"
	"slices"
	"testing"

	"itertools/seqs"
	"itertools/value"
)

// sourceKind builds a single-pass sequence from an in-memory list. Every
// engine scenario runs against each kind to make sure the result does not
// depend on how the input is produced.
type sourceKind struct {
	name string
	make func([]any) iter.Seq[any]
}

type listCursor struct {
	data []any
	pos  int
}

func (c *listCursor) HasNext() bool { return c.pos < len(c.data) }

func (c *listCursor) Next() any {
	v := c.data[c.pos]
	c.pos++
	return v
}

var sourceKinds = []sourceKind{
	{"Slice", func(vs []any) iter.Seq[any] { return slices.Values(vs) }},
	{"Generator", func(vs []any) iter.Seq[any] {
		return func(yield func(any) bool) {
			for _, v := range vs {
				if !yield(v) {
					return
				}
			}
		}
	}},
	{"Cursor", func(vs []any) iter.Seq[any] {
		return seqs.FromIterator[any](&listCursor{data: vs})
	}},
}

func forEachSource(t *testing.T, fn func(t *testing.T, src func(...[]any) []iter.Seq[any])) {
	for _, kind := range sourceKinds {
		t.Run(kind.name, func(t *testing.T) {
			fn(t, func(lists ...[]any) []iter.Seq[any] {
				out := make([]iter.Seq[any], len(lists))
				for i, l := range lists {
					out[i] = kind.make(l)
				}
				return out
			})
		})
	}
}

func l(vs ...any) []any { return vs }

// keys projects values onto their canonical keys so results can be
// compared as multisets under a policy.
func keys(vs []any, p value.Policy) []value.Key {
	out := make([]value.Key, len(vs))
	for i, v := range vs {
		out[i] = value.Classify(v, p)
	}
	return out
}
