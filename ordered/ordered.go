// Package ordered holds the contracts every container in this repository
// builds on: the key-comparison abstraction and the sentinel errors raised
// for precondition violations. None of the six container engines depend on
// each other; all of them except triemap, whose keys are strings compared
// byte by byte, depend on this package.
package ordered

import (
	"cmp"

	"github.com/ordered-go/containers/sortable"
)

// Comparator reports the relative order of two keys: negative when a is
// less than b, zero when they are equal, positive when a is greater than b.
//
// This is the explicit-value half of the comparison primitive described by
// the containers' constructors ("supplied as a value"); the other half is
// the Sortable method-set convenience, bridged by FromSortable.
type Comparator[T any] func(a, b T) int

// FromSortable adapts the sortable.Sortable convenience interface into a
// Comparator, so every container's core algorithm is written once against
// Comparator[T] regardless of which constructor flavor the caller used.
func FromSortable[T sortable.Sortable[T]]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a.Equals(b):
			return 0
		case a.LessThan(b):
			return -1
		default:
			return 1
		}
	}
}

// Natural returns a Comparator derived from the built-in ordering of a
// cmp.Ordered key type, for passing to a ...Func constructor when the key
// type already orders the way Go's < does and implementing Sortable would
// be pure boilerplate.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}
