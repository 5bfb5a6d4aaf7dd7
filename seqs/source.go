package seqs

import (
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"itertools/value"
)

// Iterator is a pull cursor: HasNext reports whether Next may be called.
type Iterator[T any] interface {
	HasNext() bool
	Next() T
}

// Empty is the empty sequence.
func Empty[T any](func(T) bool) {}

// Values ranges over a slice without copying it.
func Values[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// FromIterator drains a cursor. The cursor is shared: ranging twice
// continues where the first range stopped.
func FromIterator[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// FromPull adapts a next function, such as the one returned by iter.Pull.
func FromPull[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FromChannel receives from ch until it is closed. If the consumer stops
// early the remaining values stay in the channel.
func FromChannel[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

// From converts an arbitrary iterable into an iter.Seq[any]. Accepted are
// slices, arrays, maps (values, ordered by strict key of the map key),
// receive channels, iter.Seq of any element type, and cursors exposing
// HasNext() bool and Next() T. Anything else, including nil and strings,
// fails with ErrNotIterable.
func From(src any) (iter.Seq[any], error) {
	switch s := src.(type) {
	case nil:
		return nil, errors.Wrap(ErrNotIterable, "nil")
	case iter.Seq[any]:
		if s != nil {
			return s, nil
		}
	case func(func(any) bool):
		if s != nil {
			return s, nil
		}
	case []any:
		return Values(s), nil
	case Iterator[any]:
		return FromIterator(s), nil
	}

	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectIndexed(rv), nil
	case reflect.Map:
		return reflectMap(rv), nil
	case reflect.Chan:
		if rv.Type().ChanDir()&reflect.RecvDir != 0 {
			return reflectChan(rv), nil
		}
	case reflect.Func:
		if isSeqFunc(rv.Type()) && !rv.IsNil() {
			return reflectSeq(rv), nil
		}
	}
	if seq, ok := reflectCursor(rv); ok {
		return seq, nil
	}
	return nil, errors.Wrapf(ErrNotIterable, "%T", src)
}

// FromAll converts every argument with From. It fails on the first
// non-iterable, before anything is consumed.
func FromAll(srcs ...any) ([]iter.Seq[any], error) {
	out := make([]iter.Seq[any], len(srcs))
	for i, src := range srcs {
		seq, err := From(src)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		out[i] = seq
	}
	return out, nil
}

func reflectIndexed(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}

func reflectMap(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		keys := rv.MapKeys()
		reprs := make(map[int]string, len(keys))
		order := make([]int, len(keys))
		for i, k := range keys {
			order[i] = i
			reprs[i] = value.Classify(k.Interface(), value.Strict).String()
		}
		slices.SortFunc(order, func(a, b int) int {
			return strings.Compare(reprs[a], reprs[b])
		})
		for _, i := range order {
			if !yield(rv.MapIndex(keys[i]).Interface()) {
				return
			}
		}
	}
}

func reflectChan(rv reflect.Value) iter.Seq[any] {
	return func(yield func(any) bool) {
		for {
			v, ok := rv.Recv()
			if !ok || !yield(v.Interface()) {
				return
			}
		}
	}
}

// isSeqFunc reports whether t has the shape func(func(E) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func &&
		y.NumIn() == 1 && y.NumOut() == 1 &&
		y.Out(0).Kind() == reflect.Bool
}

func reflectSeq(rv reflect.Value) iter.Seq[any] {
	yieldType := rv.Type().In(0)
	return func(yield func(any) bool) {
		fn := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			return []reflect.Value{reflect.ValueOf(yield(args[0].Interface()))}
		})
		rv.Call([]reflect.Value{fn})
	}
}

func reflectCursor(rv reflect.Value) (iter.Seq[any], bool) {
	if !rv.IsValid() {
		return nil, false
	}
	hasNext := rv.MethodByName("HasNext")
	next := rv.MethodByName("Next")
	if !hasNext.IsValid() || !next.IsValid() {
		return nil, false
	}
	ht, nt := hasNext.Type(), next.Type()
	if ht.NumIn() != 0 || ht.NumOut() != 1 || ht.Out(0).Kind() != reflect.Bool ||
		nt.NumIn() != 0 || nt.NumOut() != 1 {
		return nil, false
	}
	return func(yield func(any) bool) {
		for hasNext.Call(nil)[0].Bool() {
			if !yield(next.Call(nil)[0].Interface()) {
				return
			}
		}
	}, true
}
