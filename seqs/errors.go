package seqs

import "github.com/pkg/errors"

var (
	// ErrEmpty is returned by reductions that need at least one element.
	ErrEmpty = errors.New("seqs: empty sequence")
	// ErrOutOfRange is returned by ToNth for positions outside the sequence.
	ErrOutOfRange = errors.New("seqs: position out of range")
	// ErrNotIterable is returned by From for values that cannot be ranged over.
	ErrNotIterable = errors.New("seqs: value is not iterable")
)
