package skiplistmap_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordered-go/containers/skiplistmap"
	"github.com/ordered-go/containers/sortable"
)

func newDeterministic[V any](maxLevel int, seed uint64) *skiplistmap.List[sortable.Int, V] {
	return skiplistmap.NewSeeded[sortable.Int, V](maxLevel, rand.New(rand.NewPCG(seed, seed)))
}

func TestScenarioS3(t *testing.T) {
	t.Parallel()

	list := newDeterministic[string](16, 1)

	list.Put(10, "ten")
	list.Put(20, "twenty")
	list.Put(5, "five")
	list.Put(15, "fifteen")
	list.Put(10, "updated")

	v, ok := list.Get(10)
	require.True(t, ok)
	assert.Equal(t, "updated", v)
	assert.Equal(t, 4, list.Count())

	var keys []int
	for k := range list.All() {
		keys = append(keys, int(k))
	}
	assert.Equal(t, []int{5, 10, 15, 20}, keys)

	removed, ok := list.Remove(20)
	require.True(t, ok)
	assert.Equal(t, "twenty", removed)

	_, ok = list.Get(20)
	assert.False(t, ok)
	assert.Equal(t, 3, list.Count())

	require.NoError(t, list.CheckInvariants())
}

func TestRemoveAbsentKey(t *testing.T) {
	t.Parallel()

	list := newDeterministic[string](8, 2)
	list.Put(1, "a")

	_, ok := list.Remove(99)
	assert.False(t, ok)
	assert.Equal(t, 1, list.Count())
}

func TestInvalidMaxLevelPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		skiplistmap.New[sortable.Int, string](0)
	})

	assert.Panics(t, func() {
		skiplistmap.New[sortable.Int, string](33)
	})
}

func TestGetMut(t *testing.T) {
	t.Parallel()

	list := newDeterministic[string](8, 3)
	list.Put(1, "a")

	ptr, ok := list.GetMut(1)
	require.True(t, ok)
	*ptr = "z"

	v, _ := list.Get(1)
	assert.Equal(t, "z", v)
}

func TestClear(t *testing.T) {
	t.Parallel()

	list := newDeterministic[int](8, 4)
	for i := range 20 {
		list.Put(sortable.Int(i), i)
	}

	list.Clear()
	assert.Equal(t, 0, list.Count())
	assert.False(t, list.Contains(sortable.Int(5)))
}

func TestInsertThenDeleteAllLeavesEmptyAndOrdered(t *testing.T) {
	t.Parallel()

	list := newDeterministic[int](16, 5)

	const n = 300

	perm := rand.New(rand.NewPCG(99, 99)).Perm(n)
	for _, v := range perm {
		list.Put(sortable.Int(v), v)
	}

	require.Equal(t, n, list.Count())
	require.NoError(t, list.CheckInvariants())

	var keys []int
	for k := range list.All() {
		keys = append(keys, int(k))
	}

	for i := range n {
		assert.Equal(t, i, keys[i])
	}

	delOrder := rand.New(rand.NewPCG(100, 100)).Perm(n)
	for _, v := range delOrder {
		_, ok := list.Remove(sortable.Int(v))
		require.True(t, ok)
	}

	assert.Equal(t, 0, list.Count())
	require.NoError(t, list.CheckInvariants())
}
