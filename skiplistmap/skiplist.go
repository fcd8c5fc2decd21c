// Package skiplistmap implements a probabilistic multi-level linked
// structure mapping unique, totally ordered keys to values. Levels are
// drawn per node by a Bernoulli coin-flip cascade at insertion time, so
// search, insert, and delete all run in expected logarithmic time without
// the rebalancing machinery a tree-based container needs.
package skiplistmap

import (
	"iter"
	"math/rand/v2"

	"github.com/ordered-go/containers/ordered"
	"github.com/ordered-go/containers/sortable"
	"github.com/ordered-go/containers/zero"
)

// node is a single skip-list element. forward holds len(forward) ==
// level+1 links, one per level the node participates in.
type node[K, V any] struct {
	key     K
	value   V
	forward []*node[K, V]
}

// List is a skip-list-backed map from unique keys of type K to values of
// type V, kept in ascending key order under the list's comparator.
type List[K, V any] struct {
	header   *node[K, V]
	cmp      ordered.Comparator[K]
	rng      *rand.Rand
	maxLevel int
	level    int // current max level in use, 0-based.
	size     int
}

// New creates an empty List with the given maximum level, ordered by K's
// Sortable method set. maxLevel must be in [1, 32].
func New[K sortable.Sortable[K], V any](maxLevel int) *List[K, V] {
	return NewFunc[K, V](maxLevel, ordered.FromSortable[K]())
}

// NewFunc creates an empty List with the given maximum level, ordered by
// an explicit comparator. maxLevel must be in [1, 32].
func NewFunc[K, V any](maxLevel int, cmp ordered.Comparator[K]) *List[K, V] {
	// math/rand/v2's top-level generator is already auto-seeded from a
	// non-deterministic source; wrapping it in a *rand.Rand here gives the
	// instance its own independent stream (see Design Notes: "a global RNG
	// would introduce hidden coupling").
	seed1, seed2 := rand.Uint64(), rand.Uint64()

	return newList[K, V](maxLevel, cmp, rand.New(rand.NewPCG(seed1, seed2)))
}

// NewSeeded creates an empty List using an explicit random source, for
// deterministic tests of this otherwise-randomized structure.
func NewSeeded[K sortable.Sortable[K], V any](maxLevel int, rng *rand.Rand) *List[K, V] {
	return NewFuncSeeded[K, V](maxLevel, ordered.FromSortable[K](), rng)
}

// NewFuncSeeded creates an empty List using an explicit comparator and
// random source.
func NewFuncSeeded[K, V any](maxLevel int, cmp ordered.Comparator[K], rng *rand.Rand) *List[K, V] {
	return newList[K, V](maxLevel, cmp, rng)
}

func newList[K, V any](maxLevel int, cmp ordered.Comparator[K], rng *rand.Rand) *List[K, V] {
	ordered.RequireValid(maxLevel >= 1 && maxLevel <= 32, ordered.ErrInvalidMaxLevel, "maxLevel", maxLevel)

	return &List[K, V]{
		header:   &node[K, V]{forward: make([]*node[K, V], maxLevel)},
		cmp:      cmp,
		rng:      rng,
		maxLevel: maxLevel,
	}
}

// Count returns the number of keys currently stored.
func (l *List[K, V]) Count() int {
	return l.size
}

// Clear removes every entry.
func (l *List[K, V]) Clear() {
	l.header = &node[K, V]{forward: make([]*node[K, V], l.maxLevel)}
	l.level = 0
	l.size = 0
}

// Contains reports whether key is present.
func (l *List[K, V]) Contains(key K) bool {
	_, found := l.Get(key)

	return found
}

// Get returns the value stored for key, if any.
func (l *List[K, V]) Get(key K) (V, bool) {
	n := l.findSuccessor(key)
	if n != nil && l.cmp(n.key, key) == 0 {
		return n.value, true
	}

	return zero.Value[V](), false
}

// GetMut returns a pointer directly into the node's value slot for key, if
// present. The pointer is valid only until the next mutation of the list.
func (l *List[K, V]) GetMut(key K) (*V, bool) {
	n := l.findSuccessor(key)
	if n != nil && l.cmp(n.key, key) == 0 {
		return &n.value, true
	}

	return nil, false
}

// findSuccessor walks from the current max level downward, advancing at
// each level while the next key is strictly less than key, and returns
// the level-0 successor: the first node whose key is >= key, or nil.
func (l *List[K, V]) findSuccessor(key K) *node[K, V] {
	x := l.header

	for i := l.level; i >= 0; i-- {
		for x.forward[i] != nil && l.cmp(x.forward[i].key, key) < 0 {
			x = x.forward[i]
		}
	}

	return x.forward[0]
}

// update computes, for every level, the last node whose forward link will
// need to change to splice in or unlink a node at key.
func (l *List[K, V]) update(key K) ([]*node[K, V], *node[K, V]) {
	update := make([]*node[K, V], l.maxLevel)
	x := l.header

	for i := l.level; i >= 0; i-- {
		for x.forward[i] != nil && l.cmp(x.forward[i].key, key) < 0 {
			x = x.forward[i]
		}

		update[i] = x
	}

	return update, x.forward[0]
}

// Put inserts key/value, or overwrites the value in place when key is
// already present (size unchanged).
func (l *List[K, V]) Put(key K, value V) {
	update, next := l.update(key)

	if next != nil && l.cmp(next.key, key) == 0 {
		next.value = value

		return
	}

	level := l.randomLevel()
	if level > l.level {
		for i := l.level + 1; i <= level; i++ {
			update[i] = l.header
		}

		l.level = level
	}

	n := &node[K, V]{key: key, value: value, forward: make([]*node[K, V], level+1)}
	for i := 0; i <= level; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}

	l.size++
}

// Remove deletes key, if present, and returns its value.
func (l *List[K, V]) Remove(key K) (V, bool) {
	update, next := l.update(key)

	if next == nil || l.cmp(next.key, key) != 0 {
		return zero.Value[V](), false
	}

	for i := 0; i <= l.level; i++ {
		if update[i].forward[i] != next {
			break
		}

		update[i].forward[i] = next.forward[i]
	}

	for l.level > 0 && l.header.forward[l.level] == nil {
		l.level--
	}

	l.size--

	return next.value, true
}

// randomLevel draws a level in [0, maxLevel) via a Bernoulli coin-flip
// cascade: level starts at 0 and increases with probability 0.5 per toss.
func (l *List[K, V]) randomLevel() int {
	level := 0

	for level < l.maxLevel-1 && l.rng.Uint64()&1 == 1 {
		level++
	}

	return level
}

// All returns an ascending iterator over every key/value pair, walking the
// level-0 list. Mutating the list while iterating invalidates the
// iterator.
func (l *List[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := l.header.forward[0]; n != nil; n = n.forward[0] {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
