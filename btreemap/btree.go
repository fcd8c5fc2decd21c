// Package btreemap implements a balanced multi-way search tree mapping
// unique, totally ordered keys to values. Node-local keys and values live
// in parallel sorted slices; overflow on insertion is resolved by a median
// split, underflow on deletion by borrowing from a sibling or merging with
// one, following the standard CLRS B-tree algorithm.
package btreemap

import (
	"iter"

	"github.com/ordered-go/containers/ordered"
	"github.com/ordered-go/containers/sortable"
	"github.com/ordered-go/containers/zero"
)

// node is a single B-tree node. keys and values are kept parallel and
// sorted; children holds len(keys)+1 entries for an internal node and is
// nil for a leaf.
type node[K, V any] struct {
	keys     []K
	values   []V
	children []*node[K, V]
	leaf     bool
}

func (n *node[K, V]) full(maxKeys int) bool {
	return len(n.keys) == maxKeys
}

// Tree is a B-tree-backed map from unique keys of type K to values of type
// V, kept in ascending key order under the tree's comparator.
type Tree[K, V any] struct {
	root     *node[K, V]
	cmp      ordered.Comparator[K]
	size     int
	branch   int // B: maximum number of children a node may have.
	minKeys  int // floor((B-1)/2): minimum keys in any non-root node.
	maxKeys  int // B-1: maximum keys in any node.
}

// New creates an empty Tree with the given branching factor, ordered by
// K's Sortable method set. branchingFactor must be at least 3.
func New[K sortable.Sortable[K], V any](branchingFactor int) *Tree[K, V] {
	return NewFunc[K, V](branchingFactor, ordered.FromSortable[K]())
}

// NewFunc creates an empty Tree with the given branching factor, ordered by
// an explicit comparator. branchingFactor must be at least 3.
func NewFunc[K, V any](branchingFactor int, cmp ordered.Comparator[K]) *Tree[K, V] {
	ordered.RequireValid(branchingFactor >= 3, ordered.ErrInvalidBranchingFactor, "branchingFactor", branchingFactor)

	return &Tree[K, V]{
		cmp:     cmp,
		branch:  branchingFactor,
		minKeys: (branchingFactor - 1) / 2,
		maxKeys: branchingFactor - 1,
		root:    &node[K, V]{leaf: true},
	}
}

// Count returns the number of keys currently stored.
func (t *Tree[K, V]) Count() int {
	return t.size
}

// Clear removes every entry, resetting the tree to a single empty leaf.
func (t *Tree[K, V]) Clear() {
	t.root = &node[K, V]{leaf: true}
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
		i, found := t.search(n, key)
		if found {
			return n.values[i], true
		}

		if n.leaf {
			break
		}

		n = n.children[i]
	}

	return zero.Value[V](), false
}

// GetMut returns a pointer directly into the node's value slot for key, if
// present. The pointer is valid only until the next structural mutation of
// the tree (including another Put that triggers a split).
func (t *Tree[K, V]) GetMut(key K) (*V, bool) {
	n := t.root

	for n != nil {
		i, found := t.search(n, key)
		if found {
			return &n.values[i], true
		}

		if n.leaf {
			break
		}

		n = n.children[i]
	}

	return nil, false
}

// Put inserts key/value, or overwrites the value in place when key is
// already present (size unchanged). The new entry goes into a leaf; any
// node left holding more than B-1 keys is split on the way back up, and
// if the root overflows a new root is created above it, growing the
// tree's height by one.
func (t *Tree[K, V]) Put(key K, value V) {
	t.insert(t.root, key, value)

	if len(t.root.keys) > t.maxKeys {
		oldRoot := t.root
		t.root = &node[K, V]{children: []*node[K, V]{oldRoot}}
		t.splitChild(t.root, 0)
	}
}

// insert inserts key/value into the subtree rooted at n. If an equal key
// already exists anywhere along the descent it is overwritten in place and
// size is not changed. A child left holding more than B-1 keys is split
// before insert returns, so only n itself may be left overfull.
func (t *Tree[K, V]) insert(n *node[K, V], key K, value V) {
	i, found := t.search(n, key)
	if found {
		n.values[i] = value

		return
	}

	if n.leaf {
		n.keys = insertAt(n.keys, i, key)
		n.values = insertAt(n.values, i, value)
		t.size++

		return
	}

	t.insert(n.children[i], key, value)

	if len(n.children[i].keys) > t.maxKeys {
		t.splitChild(n, i)
	}
}

// splitChild splits the overfull child (B keys) at index i of parent,
// promoting the median key/value into parent at index i and inserting the
// new right sibling at index i+1. Each half keeps at least floor((B-1)/2)
// keys; parent gains one key and may itself become overfull.
func (t *Tree[K, V]) splitChild(parent *node[K, V], i int) {
	child := parent.children[i]
	mid := len(child.keys) / 2

	right := &node[K, V]{leaf: child.leaf}
	right.keys = append(right.keys, child.keys[mid+1:]...)
	right.values = append(right.values, child.values[mid+1:]...)

	if !child.leaf {
		right.children = append(right.children, child.children[mid+1:]...)
		child.children = child.children[:mid+1]
	}

	medianKey, medianValue := child.keys[mid], child.values[mid]
	child.keys = child.keys[:mid]
	child.values = child.values[:mid]

	parent.keys = insertAt(parent.keys, i, medianKey)
	parent.values = insertAt(parent.values, i, medianValue)
	parent.children = insertAt(parent.children, i+1, right)
}

// Remove deletes key, if present, and returns its value.
func (t *Tree[K, V]) Remove(key K) (V, bool) {
	i, found := t.search(t.root, key)
	if !found && t.root.leaf {
		return zero.Value[V](), false
	}

	value, ok := t.removeFrom(t.root, key, i, found)

	if !t.root.leaf && len(t.root.keys) == 0 {
		t.root = t.root.children[0]
	}

	if ok {
		t.size--
	}

	return value, ok
}

// removeFrom deletes key from the subtree rooted at n. i/found describe
// the result of searching n for key, precomputed by the caller's initial
// search (or by a recursive call after ensuring the child has capacity).
// For odd B, merging two minimum-size children yields a node of B keys;
// if a child still holds B keys once the delete below n returns, it is
// split again, so every node ends within [floor((B-1)/2), B-1] keys.
func (t *Tree[K, V]) removeFrom(n *node[K, V], key K, i int, found bool) (V, bool) {
	switch {
	case found && n.leaf:
		value := n.values[i]
		n.keys = removeAt(n.keys, i)
		n.values = removeAt(n.values, i)

		return value, true

	case n.leaf:
		return zero.Value[V](), false
	}

	var (
		value V
		ok    bool
	)

	if found {
		value, ok = t.removeFromInternal(n, i)
	} else {
		i = t.ensureCapacity(n, i)
		childI, childFound := t.search(n.children[i], key)
		value, ok = t.removeFrom(n.children[i], key, childI, childFound)
	}

	for ci, child := range n.children {
		if len(child.keys) > t.maxKeys {
			t.splitChild(n, ci)

			break
		}
	}

	return value, ok
}

// removeFromInternal deletes the key at index i of internal node n by
// replacing it with the in-order predecessor (if the left child has spare
// keys), the in-order successor (if the right child does), or by merging
// the separator and the two children into one node and recursing into it.
func (t *Tree[K, V]) removeFromInternal(n *node[K, V], i int) (V, bool) {
	removedKey, removedValue := n.keys[i], n.values[i]

	left, right := n.children[i], n.children[i+1]

	switch {
	case len(left.keys) > t.minKeys:
		predKey, predValue := t.maxEntry(left)
		n.keys[i], n.values[i] = predKey, predValue

		ci := t.ensureCapacity(n, i)
		childI, childFound := t.search(n.children[ci], predKey)
		t.removeFrom(n.children[ci], predKey, childI, childFound)

	case len(right.keys) > t.minKeys:
		succKey, succValue := t.minEntry(right)
		n.keys[i], n.values[i] = succKey, succValue

		ci := t.ensureCapacity(n, i+1)
		childI, childFound := t.search(n.children[ci], succKey)
		t.removeFrom(n.children[ci], succKey, childI, childFound)

	default:
		t.mergeChildren(n, i)

		childI, childFound := t.search(n.children[i], removedKey)
		t.removeFrom(n.children[i], removedKey, childI, childFound)
	}

	return removedValue, true
}

func (t *Tree[K, V]) maxEntry(n *node[K, V]) (K, V) {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}

	last := len(n.keys) - 1

	return n.keys[last], n.values[last]
}

func (t *Tree[K, V]) minEntry(n *node[K, V]) (K, V) {
	for !n.leaf {
		n = n.children[0]
	}

	return n.keys[0], n.values[0]
}

// ensureCapacity guarantees that the subtree the caller is about to
// descend into holds more than the minimum number of keys, borrowing from
// a sibling with spare keys (rotating through the parent separator) or
// merging with a sibling otherwise. It returns the index into
// parent.children of that subtree, which shifts down by one when the
// child at i had to merge with its left sibling (the right-edge case).
func (t *Tree[K, V]) ensureCapacity(parent *node[K, V], i int) int {
	child := parent.children[i]
	if len(child.keys) > t.minKeys {
		return i
	}

	switch {
	case i > 0 && len(parent.children[i-1].keys) > t.minKeys:
		t.borrowFromLeft(parent, i)

		return i
	case i < len(parent.children)-1 && len(parent.children[i+1].keys) > t.minKeys:
		t.borrowFromRight(parent, i)

		return i
	case i < len(parent.children)-1:
		t.mergeChildren(parent, i)

		return i
	default:
		t.mergeChildren(parent, i-1)

		return i - 1
	}
}

// borrowFromLeft rotates the left sibling's last key/value through the
// parent separator into child i.
func (t *Tree[K, V]) borrowFromLeft(parent *node[K, V], i int) {
	child := parent.children[i]
	left := parent.children[i-1]

	child.keys = insertAt(child.keys, 0, parent.keys[i-1])
	child.values = insertAt(child.values, 0, parent.values[i-1])

	lastKeyIdx := len(left.keys) - 1
	parent.keys[i-1] = left.keys[lastKeyIdx]
	parent.values[i-1] = left.values[lastKeyIdx]

	left.keys = left.keys[:lastKeyIdx]
	left.values = left.values[:lastKeyIdx]

	if !left.leaf {
		lastChildIdx := len(left.children) - 1
		child.children = insertAt(child.children, 0, left.children[lastChildIdx])
		left.children = left.children[:lastChildIdx]
	}
}

// borrowFromRight rotates the right sibling's first key/value through the
// parent separator into child i.
func (t *Tree[K, V]) borrowFromRight(parent *node[K, V], i int) {
	child := parent.children[i]
	right := parent.children[i+1]

	child.keys = append(child.keys, parent.keys[i])
	child.values = append(child.values, parent.values[i])

	parent.keys[i] = right.keys[0]
	parent.values[i] = right.values[0]

	right.keys = removeAt(right.keys, 0)
	right.values = removeAt(right.values, 0)

	if !right.leaf {
		child.children = append(child.children, right.children[0])
		right.children = removeAt(right.children, 0)
	}
}

// mergeChildren merges parent.children[i], the separator at parent index
// i, and parent.children[i+1] into a single node replacing both, then
// removes the separator from parent.
func (t *Tree[K, V]) mergeChildren(parent *node[K, V], i int) {
	left, right := parent.children[i], parent.children[i+1]

	left.keys = append(left.keys, parent.keys[i])
	left.values = append(left.values, parent.values[i])
	left.keys = append(left.keys, right.keys...)
	left.values = append(left.values, right.values...)

	if !left.leaf {
		left.children = append(left.children, right.children...)
	}

	parent.keys = removeAt(parent.keys, i)
	parent.values = removeAt(parent.values, i)
	parent.children = removeAt(parent.children, i+1)
}

// search returns the smallest index i such that n.keys[i] >= key, and
// whether n.keys[i] == key. When found is false, i is the child index to
// descend into (for an internal node) or the insertion point (for a leaf).
func (t *Tree[K, V]) search(n *node[K, V], key K) (int, bool) {
	lo, hi := 0, len(n.keys)

	for lo < hi {
		mid := (lo + hi) / 2

		switch c := t.cmp(key, n.keys[mid]); {
		case c == 0:
			return mid, true
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}

	return lo, false
}

// All returns an in-order (ascending) iterator over every key/value pair.
// Mutating the tree while iterating invalidates the iterator.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var walk func(*node[K, V]) bool

		walk = func(n *node[K, V]) bool {
			for i := range n.keys {
				if !n.leaf && !walk(n.children[i]) {
					return false
				}

				if !yield(n.keys[i], n.values[i]) {
					return false
				}
			}

			if !n.leaf {
				return walk(n.children[len(n.children)-1])
			}

			return true
		}

		walk(t.root)
	}
}

func insertAt[S any](slice []S, i int, value S) []S {
	slice = append(slice, zero.Value[S]())
	copy(slice[i+1:], slice[i:])
	slice[i] = value

	return slice
}

func removeAt[S any](slice []S, i int) []S {
	copy(slice[i:], slice[i+1:])
	slice[len(slice)-1] = zero.Value[S]()

	return slice[:len(slice)-1]
}
