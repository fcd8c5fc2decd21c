// Package zero provides utilities for working with zero values of generic types.
//
// btreemap, skiplistmap, triemap, treapmap and sortedset return Value[V]()
// on a failed lookup or a cleared slot (a removed B-tree key, an unlinked
// skip-list node, a pruned trie node, ...) rather than declaring a local
// "var zero V" at each call site; redblackset declares its own local zero.
package zero

import "reflect"

// Value returns the zero value for type T.
// This is useful when you need to explicitly obtain the zero value of a generic type parameter.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultStr = zero.Value[string]()     // returns ""
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T.
// It uses reflect.DeepEqual to perform a deep comparison between value and the zero value of T.
//
// Example:
//
//	zero.IsZero(0)              // returns true
//	zero.IsZero(42)             // returns false
//	zero.IsZero("")             // returns true
//	zero.IsZero("hello")        // returns false
//	zero.IsZero[*MyStruct](nil) // returns true
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}
