// Package redblackset implements a self-balancing binary search tree of
// unique, totally ordered values. Rebalancing follows the standard
// left-leaning-free CLRS algorithm: red-red violations on insertion are
// fixed by uncle-color recoloring or zig-zig/zig-zag rotation; deletions
// that remove a black node are fixed by a four-case double-black walk.
package redblackset

import (
	"iter"

	"github.com/ordered-go/containers/ordered"
	"github.com/ordered-go/containers/sortable"
)

// color represents the color of a node in the red-black tree.
type color bool

const (
	// black and red represent the two possible node colors. Black is
	// represented as true; isRed treats a nil node (an implicit leaf) as
	// black.
	black, red color = true, false
)

func (c color) String() string {
	if c == black {
		return "black"
	}

	return "red"
}

// node is a single element of the tree.
type node[T any] struct {
	value  T
	color  color
	left   *node[T]
	right  *node[T]
	parent *node[T]
}

// Tree is a red-black-tree-backed set of unique values of type T, kept in
// ascending order under the tree's comparator.
type Tree[T any] struct {
	root *node[T]
	cmp  ordered.Comparator[T]
	size int
}

// New creates an empty Tree ordered by T's Sortable method set.
func New[T sortable.Sortable[T]]() *Tree[T] {
	return NewFunc[T](ordered.FromSortable[T]())
}

// NewFunc creates an empty Tree ordered by an explicit comparator, for key
// types that do not implement sortable.Sortable.
func NewFunc[T any](cmp ordered.Comparator[T]) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// Put inserts value into the set. If an equal value is already present, it
// is overwritten in place (the node is not moved) and Put returns false;
// size is unchanged. Otherwise a new red node is inserted via standard BST
// descent and the red-red rebalance cases run, and Put returns true.
func (t *Tree[T]) Put(value T) bool {
	if t.root == nil {
		t.root = &node[T]{value: value, color: black}
		t.size = 1

		return true
	}

	parent, dir := t.locate(value)
	if dir == 0 {
		parent.value = value

		return false
	}

	n := &node[T]{value: value, parent: parent}

	if dir < 0 {
		parent.left = n
	} else {
		parent.right = n
	}

	t.fixupPut(n)
	t.size++

	return true
}

// Contains reports whether value (or an equal value) is present.
func (t *Tree[T]) Contains(value T) bool {
	_, found := t.getNode(value)

	return found
}

// Get returns the stored value equal to value, if any. Because values are
// compared but not necessarily identical, this lets a caller recover the
// canonical stored instance.
func (t *Tree[T]) Get(value T) (T, bool) {
	n, found := t.getNode(value)
	if !found {
		var zero T

		return zero, false
	}

	return n.value, true
}

// Remove deletes the value equal to value, if present, and returns it.
// Deletion follows CLRS chapter 13: locate the node, splice it out (via its
// in-order successor when it has two children), then run the double-black
// fixup loop if a black node was removed.
func (t *Tree[T]) Remove(value T) (T, bool) {
	z, found := t.getNode(value)
	if !found {
		var zero T

		return zero, false
	}

	removed := z.value

	y := z
	yOriginalColor := y.color

	var (
		x        *node[T]
		xParent  *node[T]
		xIsRight bool
	)

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		xIsRight = z.parent != nil && z.parent.right == z
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		xIsRight = z.parent != nil && z.parent.right == z
		t.transplant(z, z.left)
	default:
		y = minNode(z.right)
		yOriginalColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
			xIsRight = true

			if x != nil {
				x.parent = y
			}
		} else {
			xParent = y.parent
			xIsRight = y.parent.right == y
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOriginalColor == black {
		t.fixupDelete(x, xParent, xIsRight)
	}

	t.size--

	return removed, true
}

// Count returns the number of values currently stored.
func (t *Tree[T]) Count() int {
	return t.size
}

// Clear removes every value from the set.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Min returns the smallest value in the set.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T

		return zero, false
	}

	return minNode(t.root).value, true
}

// Max returns the largest value in the set.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T

		return zero, false
	}

	return maxNode(t.root).value, true
}

// All returns an in-order (ascending) iterator over every value in the set.
// Mutating the set while iterating invalidates the iterator.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var walk func(*node[T]) bool

		walk = func(n *node[T]) bool {
			if n == nil {
				return true
			}

			if !walk(n.left) {
				return false
			}

			if !yield(n.value) {
				return false
			}

			return walk(n.right)
		}

		walk(t.root)
	}
}

// locate descends from the root looking for value. It returns the parent
// under which value would be inserted and a direction: -1 (insert left),
// +1 (insert right), or 0 (value already present at the returned node,
// which is then the matching node itself rather than its parent).
func (t *Tree[T]) locate(value T) (*node[T], int) {
	n := t.root
	var parent *node[T]
	dir := 0

	for n != nil {
		parent = n

		switch c := t.cmp(value, n.value); {
		case c == 0:
			return n, 0
		case c < 0:
			dir = -1
			n = n.left
		default:
			dir = 1
			n = n.right
		}
	}

	return parent, dir
}

func (t *Tree[T]) getNode(value T) (*node[T], bool) {
	n := t.root

	for n != nil {
		switch c := t.cmp(value, n.value); {
		case c == 0:
			return n, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}

	return nil, false
}

func minNode[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func maxNode[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}

	return n
}

// rotateLeft performs a left rotation around x, promoting x's right child.
//
//	    x                 y
//	   / \               / \
//	  a   y     =>      x   c
//	     / \           / \
//	    b   c         a   b
func (t *Tree[T]) rotateLeft(x *node[T]) { //nolint:varnamelen
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent

	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// rotateRight performs a right rotation around y, promoting y's left child.
//
//	      y               x
//	     / \             / \
//	    x   c     =>    a   y
//	   / \                 / \
//	  a   b               b   c
func (t *Tree[T]) rotateRight(y *node[T]) { //nolint:varnamelen
	x := y.left
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	x.parent = y.parent

	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}

	x.right = y
	y.parent = x
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *Tree[T]) transplant(u, v *node[T]) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// fixupPut restores the red-black properties after a red-node insertion.
// The loop handles three cases based on the color of z's uncle: uncle red
// recolors and walks up; uncle black and z a "middle child" rotates into
// the outer-child case; uncle black and z an "outer child" rotates and
// recolors and terminates.
func (t *Tree[T]) fixupPut(z *node[T]) { //nolint:varnamelen
loop:
	for {
		switch {
		case z.parent == nil:
			fallthrough
		case z.parent.color == black:
			break loop
		default:
			grandparent := z.parent.parent
			if z.parent == grandparent.left {
				uncle := grandparent.right
				if isRed(uncle) {
					z.parent.color = black
					uncle.color = black
					grandparent.color = red
					z = grandparent
				} else {
					if z == z.parent.right {
						z = z.parent
						t.rotateLeft(z)
					}

					z.parent.color = black
					grandparent.color = red
					t.rotateRight(grandparent)
				}
			} else {
				uncle := grandparent.left
				if isRed(uncle) {
					z.parent.color = black
					uncle.color = black
					grandparent.color = red
					z = grandparent
				} else {
					if z == z.parent.left {
						z = z.parent
						t.rotateRight(z)
					}

					z.parent.color = black
					grandparent.color = red
					t.rotateLeft(grandparent)
				}
			}
		}
	}

	t.root.color = black
}

// fixupDelete restores the red-black properties after removing a black
// node, pushing an "extra black" on x up the tree (via recoloring and
// rotation) until x is red or the root, following the four sibling cases.
//
// x may be nil: unlike CLRS's sentinel T.nil, a nil *node carries no parent
// link, so the first iteration's parent and side (was x its parent's left
// or right child) are threaded through explicitly as parent/xIsRight. Every
// case that loops again first reassigns x to a real, non-nil node (x.parent
// or t.root), so parent/xIsRight are consulted only on that first step.
func (t *Tree[T]) fixupDelete(x, parent *node[T], xIsRight bool) { //nolint:varnamelen
	for x != t.root {
		if isRed(x) {
			break
		}

		p := parent
		isRight := xIsRight

		if x != nil {
			p = x.parent
			isRight = x == p.right
		}

		if p == nil {
			break
		}

		if isRight {
			w := p.left
			if isRed(w) {
				w.color = black
				p.color = red
				t.rotateRight(p)
				w = p.left
			}

			if w != nil {
				switch {
				case !isRed(w.left) && !isRed(w.right):
					w.color = red
					x = p
				case isRed(w.right) && !isRed(w.left):
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = p.left
				}

				if isRed(w.left) {
					w.color = p.color
					p.color = black
					w.left.color = black
					t.rotateRight(p)
					x = t.root
				}
			}
		} else {
			w := p.right
			if isRed(w) {
				w.color = black
				p.color = red
				t.rotateLeft(p)
				w = p.right
			}

			if w != nil {
				switch {
				case !isRed(w.left) && !isRed(w.right):
					w.color = red
					x = p
				case isRed(w.left) && !isRed(w.right):
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = p.right
				}

				if isRed(w.right) {
					w.color = p.color
					p.color = black
					w.right.color = black
					t.rotateLeft(p)
					x = t.root
				}
			}
		}
	}

	if x != nil {
		x.color = black
	}
}

// isRed reports whether n is red; a nil node (an implicit leaf) is black.
func isRed[T any](n *node[T]) bool {
	return n != nil && n.color == red
}
