// Package sortedset implements a dense ordered set backed by a single
// slice kept strictly increasing under the set's comparator. Unlike the
// tree- and list-based containers in this module, a sorted set has no
// node-level structure to rebalance: every mutation is a binary search
// followed by a slice shift.
package sortedset

import (
	"iter"
	"slices"

	"github.com/ordered-go/containers/optional"
	"github.com/ordered-go/containers/ordered"
	"github.com/ordered-go/containers/sortable"
	"github.com/ordered-go/containers/zero"
)

// Set is a sorted-array-backed set of unique values of type T, kept in
// ascending order under the set's comparator.
type Set[T any] struct {
	items []T
	cmp   ordered.Comparator[T]
}

// New creates an empty Set ordered by T's Sortable method set.
func New[T sortable.Sortable[T]]() *Set[T] {
	return NewFunc[T](ordered.FromSortable[T]())
}

// NewFunc creates an empty Set ordered by an explicit comparator.
func NewFunc[T any](cmp ordered.Comparator[T]) *Set[T] {
	return &Set[T]{cmp: cmp}
}

// Count returns the number of values currently stored.
func (s *Set[T]) Count() int {
	return len(s.items)
}

// Clear removes every value.
func (s *Set[T]) Clear() {
	s.items = nil
}

// lowerBound returns the smallest index i such that items[i] >= value,
// and len(items) if no such index exists.
func (s *Set[T]) lowerBound(value T) int {
	i, _ := slices.BinarySearchFunc(s.items, value, s.cmp)

	return i
}

// FindIndex returns the index of value, if present.
func (s *Set[T]) FindIndex(value T) (int, bool) {
	result := optional.None[int]()

	if i := s.lowerBound(value); i < len(s.items) && s.cmp(s.items[i], value) == 0 {
		result = optional.Some(i)
	}

	return result.Get()
}

// Contains reports whether value is present.
func (s *Set[T]) Contains(value T) bool {
	_, found := s.FindIndex(value)

	return found
}

// Put inserts value via binary search for the lower bound. If an equal
// value is already present at that position, Put returns false and the
// set is unchanged; otherwise the tail shifts right, value is inserted,
// and Put returns true.
func (s *Set[T]) Put(value T) bool {
	i := s.lowerBound(value)
	if i < len(s.items) && s.cmp(s.items[i], value) == 0 {
		return false
	}

	s.items = slices.Insert(s.items, i, value)

	return true
}

// RemoveAt deletes the value at index, shifting the tail left. An
// out-of-range index is a precondition violation: debug-asserted, then
// (in release builds where assertions compile to no-ops) returns the
// zero value and false rather than panicking the caller's process.
func (s *Set[T]) RemoveAt(index int) (T, bool) {
	inRange := index >= 0 && index < len(s.items)
	ordered.RequireValid(inRange, ordered.ErrIndexOutOfRange, "index", index, "count", len(s.items))

	if !inRange {
		return zero.Value[T](), false
	}

	value := s.items[index]
	s.items = slices.Delete(s.items, index, index+1)

	return value, true
}

// RemoveValue deletes value, if present, and returns it.
func (s *Set[T]) RemoveValue(value T) (T, bool) {
	i, found := s.FindIndex(value)
	if !found {
		return zero.Value[T](), false
	}

	return s.RemoveAt(i)
}

// All returns an ascending iterator over every value in the set.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}
