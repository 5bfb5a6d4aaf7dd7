package value

import (
	"cmp"
	"encoding/hex"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// digestThreshold is the length above which a nested representation is
// replaced by its digest inside the parent.
const digestThreshold = 64

// class prefixes used in coercive representations
const (
	classFalsy    = "F"
	classNumber   = "N"
	classString   = "S"
	classList     = "A"
	classMap      = "M"
	classObject   = "O"
	classIdentity = "@"
	classDigest   = "#"
)

// Classify returns the canonical key of v under policy p.
func Classify(v any, p Policy) Key {
	var w walker
	if p == Coercive {
		return Key{repr: w.coercive(reflect.ValueOf(v))}
	}
	if v == nil {
		return Key{repr: "nil"}
	}
	rv := reflect.ValueOf(v)
	return Key{typ: typeName(rv.Type()), repr: w.strict(rv)}
}

// KeyFunc adapts Classify to a typed key selector.
func KeyFunc[V any](p Policy) func(V) Key {
	return func(v V) Key {
		return Classify(v, p)
	}
}

// Equal reports whether a and b are equal under policy p.
func Equal(a, b any, p Policy) bool {
	return Classify(a, p) == Classify(b, p)
}

func typeName(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// writeField appends s with a length prefix so that adjacent fields can
// never run into each other.
func writeField(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}

func identity(rv reflect.Value) string {
	return classIdentity + strconv.FormatUint(uint64(rv.Pointer()), 16)
}

// nested returns the form of a child representation embedded in its parent.
// Long children are replaced by their digest so that a value sharing one
// child many times does not produce a key of exponential length.
func nested(s string) string {
	if len(s) <= digestThreshold {
		return s
	}
	sum := blake3.Sum256([]byte(s))
	return classDigest + hex.EncodeToString(sum[:])
}

// nodeID identifies the backing storage of a slice or map. Two slices with
// the same data pointer, length and type hold the same elements.
type nodeID struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// walker holds the per-call traversal state of Classify. Slices and maps on
// the current path are tracked so that a revisit yields the identity of the
// node instead of recursing forever. Finished nodes are memoised so that a
// node shared by many parents is rendered once.
type walker struct {
	onPath   map[nodeID]struct{}
	memo     map[nodeID]string
	backrefs int
}

func (w *walker) node(rv reflect.Value, render func() string) string {
	id := nodeID{ptr: rv.Pointer(), len: rv.Len(), typ: rv.Type()}
	if r, ok := w.memo[id]; ok {
		return r
	}
	if _, ok := w.onPath[id]; ok {
		w.backrefs++
		return identity(rv)
	}
	if w.onPath == nil {
		w.onPath = make(map[nodeID]struct{})
		w.memo = make(map[nodeID]string)
	}

	w.onPath[id] = struct{}{}
	before := w.backrefs
	r := render()
	delete(w.onPath, id)

	// A rendering that met a cycle depends on the path it was reached by.
	if w.backrefs == before {
		w.memo[id] = r
	}
	return r
}

// -------------------------------------------------------
// Strict
// -------------------------------------------------------

func (w *walker) strict(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Invalid:
		return "nil"
	case reflect.Bool:
		if rv.Bool() {
			return "true"
		}
		return "false"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return formatFloat(real(c)) + "," + formatFloat(imag(c))
	case reflect.String:
		return rv.String()
	case reflect.Interface:
		return w.strictTagged(rv)
	case reflect.Slice:
		if rv.IsNil() {
			return "[]"
		}
		return w.node(rv, func() string { return w.strictList(rv) })
	case reflect.Array:
		return w.strictList(rv)
	case reflect.Map:
		return w.node(rv, func() string { return w.mapRepr(rv, w.strictTagged) })
	case reflect.Struct:
		var b strings.Builder
		b.WriteByte('{')
		for i := range rv.NumField() {
			writeField(&b, nested(w.strictTagged(rv.Field(i))))
		}
		b.WriteByte('}')
		return b.String()
	default:
		// pointers, channels, functions
		return identity(rv)
	}
}

func (w *walker) strictList(rv reflect.Value) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range rv.Len() {
		writeField(&b, nested(w.strictTagged(rv.Index(i))))
	}
	b.WriteByte(']')
	return b.String()
}

// strictTagged prefixes the representation of a nested value with its
// dynamic type, so []any{1} and []any{"1"} differ.
func (w *walker) strictTagged(rv reflect.Value) string {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "nil"
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "nil"
	}
	var b strings.Builder
	writeField(&b, typeName(rv.Type()))
	b.WriteString(w.strict(rv))
	return b.String()
}

// -------------------------------------------------------
// Coercive
// -------------------------------------------------------

func (w *walker) coercive(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Invalid:
		return classFalsy
	case reflect.Bool:
		if rv.Bool() {
			return classNumber + "1"
		}
		return classFalsy
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() == 0 {
			return classFalsy
		}
		return classNumber + strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() == 0 {
			return classFalsy
		}
		return classNumber + strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return numberRepr(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		if imag(c) == 0 {
			return numberRepr(real(c))
		}
		return classNumber + formatFloat(real(c)) + "," + formatFloat(imag(c))
	case reflect.String:
		return stringRepr(rv.String())
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return classFalsy
		}
		if rv.Kind() == reflect.Pointer {
			return identity(rv)
		}
		return w.coercive(rv.Elem())
	case reflect.Slice:
		if rv.Len() == 0 {
			return classFalsy
		}
		return w.node(rv, func() string { return w.coerciveList(rv) })
	case reflect.Array:
		if rv.Len() == 0 {
			return classFalsy
		}
		return w.coerciveList(rv)
	case reflect.Map:
		if rv.Len() == 0 {
			return classFalsy
		}
		return w.node(rv, func() string { return classMap + w.mapRepr(rv, w.coercive) })
	case reflect.Struct:
		var b strings.Builder
		b.WriteString(classObject)
		writeField(&b, typeName(rv.Type()))
		for i := range rv.NumField() {
			writeField(&b, nested(w.coercive(rv.Field(i))))
		}
		return b.String()
	default:
		if rv.IsNil() {
			return classFalsy
		}
		return identity(rv)
	}
}

func (w *walker) coerciveList(rv reflect.Value) string {
	var b strings.Builder
	b.WriteString(classList)
	for i := range rv.Len() {
		writeField(&b, nested(w.coercive(rv.Index(i))))
	}
	return b.String()
}

func numberRepr(f float64) string {
	if f == 0 {
		return classFalsy
	}
	return classNumber + formatFloat(f)
}

// stringRepr folds numeric strings into the number class.
func stringRepr(s string) string {
	if s == "" {
		return classFalsy
	}
	if f, ok := parseNumeric(s); ok {
		return numberRepr(f)
	}
	return classString + s
}

// parseNumeric accepts decimal integers and floats with optional sign,
// exponent and surrounding whitespace. Hex, binary, underscores, "inf" and
// "nan" are not numeric. Magnitudes beyond float64 parse as infinities.
func parseNumeric(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, false
	}
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E':
		default:
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// formatFloat renders integral floats the way integers are rendered, so
// 1.0 and 1 share a representation. -0 collapses to 0.
func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// mapRepr renders map entries sorted by key representation. Distinct keys
// may share a representation under Coercive, so ties are broken by value.
func (w *walker) mapRepr(rv reflect.Value, repr func(reflect.Value) string) string {
	type pair struct{ k, v string }
	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{
			k: nested(repr(iter.Key())),
			v: nested(repr(iter.Value())),
		})
	}
	slices.SortFunc(pairs, func(a, b pair) int {
		return cmp.Or(strings.Compare(a.k, b.k), strings.Compare(a.v, b.v))
	})
	var b strings.Builder
	b.WriteByte('{')
	for _, p := range pairs {
		writeField(&b, p.k)
		writeField(&b, p.v)
	}
	b.WriteByte('}')
	return b.String()
}
