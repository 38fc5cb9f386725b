package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisjointSet(t *testing.T) {
	t.Run("Fresh elements are their own roots", func(t *testing.T) {
		ds, err := NewDisjointSet(9)
		require.NoError(t, err)

		for i := 0; i < 9; i++ {
			assert.Equal(t, i, ds.Find(i))
		}
		assert.Equal(t, 9, ds.Sets())
		assert.Equal(t, 9, ds.Len())
	})

	t.Run("Union joins sets once", func(t *testing.T) {
		ds, err := NewDisjointSet(3 * 3)
		require.NoError(t, err)

		assert.Equal(t, 0, ds.Find(0))
		assert.True(t, ds.Union(0, 1))
		assert.Equal(t, ds.Find(0), ds.Find(1))
		assert.False(t, ds.Union(0, 1))
		assert.False(t, ds.Union(1, 0))
		assert.Equal(t, 8, ds.Sets())
	})

	t.Run("Union is transitive", func(t *testing.T) {
		ds, err := NewDisjointSet(6)
		require.NoError(t, err)

		assert.True(t, ds.Union(0, 1))
		assert.True(t, ds.Union(2, 3))
		assert.False(t, ds.Connected(1, 3))
		assert.True(t, ds.Union(1, 3))
		assert.True(t, ds.Connected(0, 2))
		assert.False(t, ds.Connected(0, 5))
		assert.Equal(t, 3, ds.Sets())
	})

	t.Run("Find is idempotent", func(t *testing.T) {
		ds, err := NewDisjointSet(100)
		require.NoError(t, err)
		for i := 1; i < 100; i++ {
			ds.Union(i-1, i)
		}

		root := ds.Find(99)
		for i := 0; i < 100; i++ {
			assert.Equal(t, root, ds.Find(i))
			assert.Equal(t, root, ds.Find(i))
		}
		assert.Equal(t, 1, ds.Sets())
	})

	t.Run("Find compresses the walked path", func(t *testing.T) {
		ds, err := NewDisjointSet(5)
		require.NoError(t, err)
		// Build the chain 4 -> 3 -> 2 -> 1 -> 0 by hand.
		for x := 1; x < 5; x++ {
			ds.parent[x] = x - 1
		}

		assert.Equal(t, 0, ds.Find(4))
		for x := 0; x < 5; x++ {
			assert.Equal(t, 0, ds.parent[x], "node %d", x)
		}
	})

	t.Run("Union by rank keeps the taller root", func(t *testing.T) {
		ds, err := NewDisjointSet(4)
		require.NoError(t, err)

		ds.Union(0, 1) // rank(0) becomes 1
		ds.Union(2, 0) // rank(2) is 0, so 2 goes under 0
		assert.Equal(t, 0, ds.Find(2))
		assert.Equal(t, 1, ds.rank[0])
	})

	t.Run("Zero elements", func(t *testing.T) {
		ds, err := NewDisjointSet(0)
		require.NoError(t, err)
		assert.Equal(t, 0, ds.Sets())
	})

	t.Run("Negative count", func(t *testing.T) {
		_, err := NewDisjointSet(-1)
		assert.ErrorIs(t, err, ErrNegativeCount)
	})

	t.Run("Out of range index panics", func(t *testing.T) {
		ds, err := NewDisjointSet(2)
		require.NoError(t, err)

		assert.Panics(t, func() { ds.Find(2) })
		assert.Panics(t, func() { ds.Find(-1) })
		assert.Panics(t, func() { ds.Union(0, 5) })
	})
}
