package treapmap_test

import (
	"math/rand/v2"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/ordered-go/containers/sortable"
	"github.com/ordered-go/containers/treapmap"
)

// TestRandomOperationStreamPreservesInvariants drives a long stream of
// random puts and removes (with explicit priorities, for reproducibility)
// against both the treap and a plain map oracle, checking the BST and
// max-heap invariants after every operation. Logged through slogt so a
// failing seed's trace prints inline with go test -v.
func TestRandomOperationStreamPreservesInvariants(t *testing.T) {
	t.Parallel()

	log := slogt.New(t)

	seed := uint64(54321)
	rng := rand.New(rand.NewPCG(seed, seed))

	tree := treapmap.New[sortable.Int, int]()
	oracle := map[int]int{}

	const steps = 2000

	for i := range steps {
		key := rng.IntN(200)

		if rng.IntN(2) == 0 {
			tree.PutWithPriority(sortable.Int(key), key, rng.Uint32())
			oracle[key] = key
		} else {
			tree.Remove(sortable.Int(key))
			delete(oracle, key)
		}

		if err := tree.CheckInvariants(); err != nil {
			log.Error("invariant violated", "step", i, "err", err)
			require.NoError(t, err)
		}
	}

	require.Equal(t, len(oracle), tree.Count())

	for k, v := range oracle {
		got, ok := tree.Get(sortable.Int(k))
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}
