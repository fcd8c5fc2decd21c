package ordered_test

import (
	"testing"

	"github.com/ordered-go/containers/ordered"
	"github.com/ordered-go/containers/redblackset"
	"github.com/ordered-go/containers/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNatural(t *testing.T) {
	t.Parallel()

	cmp := ordered.Natural[int]()

	assert.Negative(t, cmp(1, 2))
	assert.Zero(t, cmp(2, 2))
	assert.Positive(t, cmp(3, 2))
}

func TestNatural_WiredIntoFuncConstructor(t *testing.T) {
	t.Parallel()

	set := redblackset.NewFunc[int](ordered.Natural[int]())

	set.Put(3)
	set.Put(1)
	set.Put(2)

	var got []int
	for v := range set.All() {
		got = append(got, v)
	}

	require.Equal(t, []int{1, 2, 3}, got)
}

func TestFromSortable(t *testing.T) {
	t.Parallel()

	cmp := ordered.FromSortable[sortable.Int]()

	assert.Negative(t, cmp(sortable.Int(1), sortable.Int(2)))
	assert.Zero(t, cmp(sortable.Int(2), sortable.Int(2)))
	assert.Positive(t, cmp(sortable.Int(3), sortable.Int(2)))
}

func TestRequireValid(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		ordered.RequireValid(true, ordered.ErrIndexOutOfRange)
	})

	require.Panics(t, func() {
		ordered.RequireValid(false, ordered.ErrIndexOutOfRange, "index", -1)
	})
}
