// Package treapmap implements a cartesian tree (treap) mapping unique,
// totally ordered keys to values. A treap is simultaneously a binary
// search tree by key and a max-heap by a randomly assigned priority;
// maintaining both orderings keeps the tree balanced in expectation
// without any explicit rebalancing step. split and merge, grounded on the
// same primitives as any treap implementation, do the structural work
// that rotation does in a red-black tree.
package treapmap

import (
	"crypto/rand"
	"encoding/binary"
	"iter"

	"github.com/ordered-go/containers/ordered"
	"github.com/ordered-go/containers/sortable"
	"github.com/ordered-go/containers/zero"
)

// node is a single treap node: BST-ordered by key, max-heap-ordered by
// priority along every root-to-descendant path.
type node[K, V any] struct {
	key      K
	value    V
	priority uint32
	left     *node[K, V]
	right    *node[K, V]
}

// Tree is a treap-backed map from unique keys of type K to values of type
// V, kept in ascending key order under the tree's comparator.
type Tree[K, V any] struct {
	root *node[K, V]
	cmp  ordered.Comparator[K]
	size int
}

// New creates an empty Tree ordered by K's Sortable method set.
func New[K sortable.Sortable[K], V any]() *Tree[K, V] {
	return NewFunc[K, V](ordered.FromSortable[K]())
}

// NewFunc creates an empty Tree ordered by an explicit comparator.
func NewFunc[K, V any](cmp ordered.Comparator[K]) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp}
}

// Count returns the number of keys currently stored.
func (t *Tree[K, V]) Count() int {
	return t.size
}

// Clear removes every entry.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, found := t.Get(key)

	return found
}

// Get returns the value stored for key, if any.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n := t.root

	for n != nil {
		switch c := t.cmp(key, n.key); {
		case c == 0:
			return n.value, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}

	return zero.Value[V](), false
}

// Put inserts key/value with a priority drawn from a cryptographically
// strong 32-bit random source, or overwrites the value in place when key
// is already present.
func (t *Tree[K, V]) Put(key K, value V) {
	t.PutWithPriority(key, value, randomPriority())
}

// PutWithPriority inserts key/value with an explicit priority. If key is
// already present its value is overwritten in place and its priority is
// left unchanged. Otherwise descent proceeds by key comparison until a
// node whose priority is below the new one; that subtree is split at key
// and the new node becomes the local root with the resulting halves as
// children.
func (t *Tree[K, V]) PutWithPriority(key K, value V, priority uint32) {
	for n := t.root; n != nil; {
		switch c := t.cmp(key, n.key); {
		case c == 0:
			n.value = value

			return
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}

	inserted := false
	t.root = t.put(t.root, key, value, priority, &inserted)

	if inserted {
		t.size++
	}
}

func (t *Tree[K, V]) put(n *node[K, V], key K, value V, priority uint32, inserted *bool) *node[K, V] {
	if n == nil {
		*inserted = true

		return &node[K, V]{key: key, value: value, priority: priority}
	}

	switch c := t.cmp(key, n.key); {
	case c == 0:
		n.value = value

		return n
	case priority > n.priority:
		left, right := t.split(n, key)
		*inserted = true

		return &node[K, V]{key: key, value: value, priority: priority, left: left, right: right}
	case c < 0:
		n.left = t.put(n.left, key, value, priority, inserted)

		return n
	default:
		n.right = t.put(n.right, key, value, priority, inserted)

		return n
	}
}

// split partitions the subtree rooted at n into L (keys strictly less
// than key) and R (keys greater than or equal to key).
func (t *Tree[K, V]) split(n *node[K, V], key K) (left, right *node[K, V]) {
	if n == nil {
		return nil, nil
	}

	if t.cmp(n.key, key) < 0 {
		l, r := t.split(n.right, key)
		n.right = l

		return n, r
	}

	l, r := t.split(n.left, key)
	n.left = r

	return l, n
}

// merge combines two treaps into one, requiring that every key in left be
// strictly less than every key in right. The node with the higher
// priority of the two root candidates becomes the new root.
func (t *Tree[K, V]) merge(left, right *node[K, V]) *node[K, V] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	case left.priority > right.priority:
		left.right = t.merge(left.right, right)

		return left
	default:
		right.left = t.merge(left, right.left)

		return right
	}
}

// Remove deletes key, if present, by locating its node and replacing it
// with merge(left, right).
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	var (
		removed V
		found   bool
	)

	t.root = t.remove(t.root, key, &removed, &found)

	if found {
		t.size--
	}

	return removed, found
}

func (t *Tree[K, V]) remove(n *node[K, V], key K, removed *V, found *bool) *node[K, V] {
	if n == nil {
		return nil
	}

	switch c := t.cmp(key, n.key); {
	case c == 0:
		*removed = n.value
		*found = true

		return t.merge(n.left, n.right)
	case c < 0:
		n.left = t.remove(n.left, key, removed, found)

		return n
	default:
		n.right = t.remove(n.right, key, removed, found)

		return n
	}
}

// All returns an in-order (ascending) iterator over every key/value pair.
// Mutating the tree while iterating invalidates the iterator.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(*node[K, V]) bool

		walk = func(n *node[K, V]) bool {
			if n == nil {
				return true
			}

			if !walk(n.left) {
				return false
			}

			if !yield(n.key, n.value) {
				return false
			}

			return walk(n.right)
		}

		walk(t.root)
	}
}

// randomPriority draws a cryptographically strong 32-bit priority, per
// the spec's explicit requirement that Put's default priority source be
// cryptographically strong (the one call site in this repository that
// reaches for crypto/rand instead of math/rand/v2).
func randomPriority() uint32 {
	var buf [4]byte

	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}

	return binary.BigEndian.Uint32(buf[:])
}
