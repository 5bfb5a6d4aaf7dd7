// Package value derives canonical keys for arbitrary Go values so that
// values considered equal under a comparison Policy group together.
//
// Two policies are supported:
//
//   - [Strict]: same dynamic type and same value. Slices, arrays, maps and
//     structs compare structurally; pointers, channels and functions compare
//     by identity.
//   - [Coercive]: loose comparison. Numeric strings equal the numbers they
//     spell, true equals 1, and false, nil, 0, 0.0, "" and empty
//     collections all fall into one falsy class.
//
// A [Key] is comparable, so it can be used directly as a map key.
package value

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Policy selects the equality rules used by [Classify].
type Policy uint8

const (
	Strict Policy = iota
	Coercive
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("value: unknown policy")

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Coercive:
		return "coercive"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy maps "strict" / "coercive" (case-insensitive) to a Policy.
// "loose" is accepted as an alias of coercive.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "coercive", "loose":
		return Coercive, nil
	}
	return Strict, errors.Wrapf(ErrUnknownPolicy, "%q", s)
}

// Key is the canonical representation of a value under a Policy.
// Two values produce equal keys iff the policy considers them equal.
// Keys from different policies must not be mixed.
type Key struct {
	typ  string
	repr string
}

func (k Key) String() string {
	if k.typ == "" {
		return k.repr
	}
	return k.typ + ":" + k.repr
}
