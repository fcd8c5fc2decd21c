package treapmap_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordered-go/containers/sortable"
	"github.com/ordered-go/containers/treapmap"
)

func TestScenarioS6(t *testing.T) {
	t.Parallel()

	tree := treapmap.New[sortable.Int, string]()

	tree.PutWithPriority(10, "a", 50)
	tree.PutWithPriority(5, "b", 100)
	tree.PutWithPriority(15, "c", 75)

	v, ok := tree.Get(15)
	require.True(t, ok)
	assert.Equal(t, "c", v)

	removed, ok := tree.Remove(5)
	require.True(t, ok)
	assert.Equal(t, "b", removed)
	assert.Equal(t, 2, tree.Count())

	require.NoError(t, tree.CheckInvariants())
}

func TestPutOverwritesExistingKey(t *testing.T) {
	t.Parallel()

	tree := treapmap.New[sortable.Int, string]()
	tree.PutWithPriority(1, "a", 10)
	tree.PutWithPriority(1, "b", 999)

	assert.Equal(t, 1, tree.Count())

	v, _ := tree.Get(1)
	assert.Equal(t, "b", v)
}

func TestPutDrawsCryptoPriority(t *testing.T) {
	t.Parallel()

	tree := treapmap.New[sortable.Int, int]()
	for i := range 50 {
		tree.Put(sortable.Int(i), i)
	}

	assert.Equal(t, 50, tree.Count())
	require.NoError(t, tree.CheckInvariants())
}

func TestClear(t *testing.T) {
	t.Parallel()

	tree := treapmap.New[sortable.Int, int]()
	tree.PutWithPriority(1, 1, 5)
	tree.Clear()

	assert.Equal(t, 0, tree.Count())
	assert.False(t, tree.Contains(1))
}

func TestInsertThenDeleteAllLeavesEmpty(t *testing.T) {
	t.Parallel()

	tree := treapmap.New[sortable.Int, int]()

	const n = 300

	rng := rand.New(rand.NewPCG(7, 7))
	perm := rng.Perm(n)

	for _, v := range perm {
		tree.PutWithPriority(sortable.Int(v), v, rng.Uint32())
	}

	require.Equal(t, n, tree.Count())
	require.NoError(t, tree.CheckInvariants())

	var keys []int
	for k := range tree.All() {
		keys = append(keys, int(k))
	}

	for i := range n {
		assert.Equal(t, i, keys[i])
	}

	delOrder := rand.New(rand.NewPCG(8, 8)).Perm(n)
	for _, v := range delOrder {
		_, ok := tree.Remove(sortable.Int(v))
		require.True(t, ok)
	}

	assert.Equal(t, 0, tree.Count())
	require.NoError(t, tree.CheckInvariants())
}

func TestRemoveAbsentKey(t *testing.T) {
	t.Parallel()

	tree := treapmap.New[sortable.Int, int]()
	tree.PutWithPriority(1, 1, 5)

	_, ok := tree.Remove(99)
	assert.False(t, ok)
	assert.Equal(t, 1, tree.Count())
}
