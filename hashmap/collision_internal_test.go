package hashmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// collidingKeys scans candidate keys until want of them land in the same
// bucket of m, using the map's own hash. Deterministic for a given map
// because the seed is fixed at construction.
func collidingKeys(m *Map[string, int], want int) []string {
	byBucket := make(map[int][]string)
	for i := 0; ; i++ {
		key := fmt.Sprintf("c%d", i)
		idx := m.bucketIndex(key)
		byBucket[idx] = append(byBucket[idx], key)
		if len(byBucket[idx]) == want {
			return byBucket[idx]
		}
	}
}

// Co-bucketed entries must remain independently retrievable and removable.
func TestChainedCollisions(t *testing.T) {
	require := require.New(t)

	// Capacity 8 holds up to 6 pairs before growth (7/8 ≥ 0.80), so three
	// colliding keys chain inside one bucket without triggering a rehash.
	m := New[string, int](WithCapacity(8))
	keys := collidingKeys(m, 3)

	for i, k := range keys {
		require.NoError(m.Put(k, i))
	}
	require.Equal(8, m.Capacity(), "no rehash expected at this load")

	// All co-bucketed keys resolve to their own values.
	for i, k := range keys {
		got, err := m.Get(k)
		require.NoError(err)
		require.Equal(i, got)
	}

	// Removing the middle entry leaves its chain neighbors intact.
	removed, err := m.Remove(keys[1])
	require.NoError(err)
	require.Equal(1, removed)
	require.False(m.ContainsKey(keys[1]))

	got, err := m.Get(keys[0])
	require.NoError(err)
	require.Equal(0, got)
	got, err = m.Get(keys[2])
	require.NoError(err)
	require.Equal(2, got)

	// And the removed key can be reinserted into the same chain.
	require.NoError(m.Put(keys[1], 42))
	got, err = m.Get(keys[1])
	require.NoError(err)
	require.Equal(42, got)
}

// The bucket index must always be within range, whatever the key.
func TestBucketIndexInRange(t *testing.T) {
	require := require.New(t)

	m := New[string, int](WithCapacity(7))
	for i := 0; i < 200; i++ {
		idx := m.bucketIndex(fmt.Sprintf("k%d", i))
		require.GreaterOrEqual(idx, 0)
		require.Less(idx, 7)
	}
}

// Rehash must relocate every chained pair to its recomputed bucket.
func TestRehashRedistributesChains(t *testing.T) {
	require := require.New(t)

	m := New[string, int](WithCapacity(2))
	for i := 0; i < 12; i++ {
		require.NoError(m.Put(fmt.Sprintf("k%d", i), i))
	}
	// 2 → 4 → 8 → 16 across the 12 insertions.
	require.Equal(16, m.Capacity())

	for idx, bucket := range m.buckets {
		for _, p := range bucket {
			require.Equal(idx, m.bucketIndex(p.key), "pair %q sits in the wrong bucket", p.key)
		}
	}
	for i := 0; i < 12; i++ {
		got, err := m.Get(fmt.Sprintf("k%d", i))
		require.NoError(err)
		require.Equal(i, got)
	}
}
