package redblackset_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordered-go/containers/redblackset"
	"github.com/ordered-go/containers/sortable"
)

func TestPutContainsCount(t *testing.T) {
	t.Parallel()

	tree := redblackset.New[sortable.Int]()

	assert.True(t, tree.Put(sortable.Int(10)))
	assert.True(t, tree.Put(sortable.Int(20)))
	assert.False(t, tree.Put(sortable.Int(10)), "re-inserting an existing value returns false")
	assert.Equal(t, 2, tree.Count())
	assert.True(t, tree.Contains(sortable.Int(10)))
	assert.False(t, tree.Contains(sortable.Int(99)))
}

func TestRemove(t *testing.T) {
	t.Parallel()

	tree := redblackset.New[sortable.Int]()
	for _, v := range []int{10, 20, 5, 3, 7} {
		tree.Put(sortable.Int(v))
	}

	removed, ok := tree.Remove(sortable.Int(5))
	require.True(t, ok)
	assert.Equal(t, sortable.Int(5), removed)
	assert.Equal(t, 4, tree.Count())
	assert.False(t, tree.Contains(sortable.Int(5)))

	_, ok = tree.Remove(sortable.Int(123))
	assert.False(t, ok, "removing an absent value reports not-found")
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	tree := redblackset.New[sortable.Int]()

	_, ok := tree.Min()
	assert.False(t, ok, "empty tree has no minimum")

	for _, v := range []int{10, 20, 5, 3, 7} {
		tree.Put(sortable.Int(v))
	}

	mn, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, sortable.Int(3), mn)

	mx, ok := tree.Max()
	require.True(t, ok)
	assert.Equal(t, sortable.Int(20), mx)
}

func TestAllYieldsAscendingOrder(t *testing.T) {
	t.Parallel()

	tree := redblackset.New[sortable.Int]()
	for _, v := range []int{30, 10, 20, 0, 25} {
		tree.Put(sortable.Int(v))
	}

	var got []int
	for v := range tree.All() {
		got = append(got, int(v))
	}

	assert.Equal(t, []int{0, 10, 20, 25, 30}, got)
}

func TestClear(t *testing.T) {
	t.Parallel()

	tree := redblackset.New[sortable.Int]()
	tree.Put(sortable.Int(1))
	tree.Put(sortable.Int(2))

	tree.Clear()

	assert.Equal(t, 0, tree.Count())

	count := 0
	for range tree.All() {
		count++
	}

	assert.Equal(t, 0, count)
}

// TestScenarioS4 reproduces the RedBlackTreeSet end-to-end scenario.
func TestScenarioS4(t *testing.T) {
	t.Parallel()

	tree := redblackset.New[sortable.Int]()
	for _, v := range []int{10, 20, 5, 3, 7} {
		tree.Put(sortable.Int(v))
	}

	assert.Equal(t, 5, tree.Count())
	assert.True(t, tree.Contains(sortable.Int(7)))

	removed, ok := tree.Remove(sortable.Int(5))
	require.True(t, ok)
	assert.Equal(t, sortable.Int(5), removed)
	assert.Equal(t, 4, tree.Count())
	assert.False(t, tree.Contains(sortable.Int(5)))

	assertBlackHeightInvariant(t, tree)
}

func TestFuncConstructorWithExplicitComparator(t *testing.T) {
	t.Parallel()

	cmp := func(a, b int) int { return a - b }
	tree := redblackset.NewFunc[int](cmp)

	tree.Put(3)
	tree.Put(1)
	tree.Put(2)

	var got []int
	for v := range tree.All() {
		got = append(got, v)
	}

	assert.Equal(t, []int{1, 2, 3}, got)
}

// TestRandomOperationsPreserveInvariants runs a seeded random stream of
// inserts and removals and verifies the structural invariants after every
// step, per the "deterministic testing of randomized structures" guidance.
func TestRandomOperationsPreserveInvariants(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // deterministic test seed, not security-sensitive
	tree := redblackset.New[sortable.Int]()
	present := map[int]bool{}

	for i := 0; i < 2000; i++ {
		v := rnd.IntN(200)

		if rnd.IntN(2) == 0 {
			tree.Put(sortable.Int(v))
			present[v] = true
		} else {
			tree.Remove(sortable.Int(v))
			delete(present, v)
		}

		assert.Equal(t, len(present), tree.Count())
		assertBlackHeightInvariant(t, tree)
	}

	for v := range present {
		assert.True(t, tree.Contains(sortable.Int(v)))
	}
}

// assertBlackHeightInvariant walks every root-to-leaf path and fails the
// test if black-height is not uniform, or if a red node has a red child.
func assertBlackHeightInvariant(t *testing.T, tree *redblackset.Tree[sortable.Int]) {
	t.Helper()

	_, err := tree.BlackHeight()
	assert.NoError(t, err)
}
