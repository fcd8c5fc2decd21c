// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in sorted data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], and [String].
// These types are designed to work with sorted collections such as
// [github.com/ordered-go/containers/redblackset.New] and the other containers
// in this module that accept a Sortable type parameter.
//
// The Sortable interface extends [github.com/ordered-go/containers/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Use the provided wrapper types when you need sorted collections:
//
//	// Create a sorted set of integers
//	intSet := redblackset.New[sortable.Int]()
//	intSet.Put(sortable.Int(42))
//	intSet.Put(sortable.Int(10))
//	intSet.Put(sortable.Int(25))
//
//	// Elements are returned in sorted order: 10, 25, 42
//	for val := range intSet.All() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # Sortable vs a plain comparator function
//
// Every container in this module except triemap (whose keys are strings in
// byte order) also accepts an explicit
// [github.com/ordered-go/containers/ordered.Comparator] via its NewFunc
// constructor, for key types that don't implement Sortable (or that need a
// non-default ordering). Implement Sortable when a type has one natural
// ordering you want to reuse across containers; pass a Comparator when the
// ordering is situational.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. However, collections using these types (like red-black trees)
// are not thread-safe and require external synchronization for concurrent access.
package sortable
