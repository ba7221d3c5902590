package kvstore

import (
	"testing"

	"github.com/amp-labs/amp-kvstore/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIndex_RemoveShiftsPositions(t *testing.T) {
	t.Parallel()

	x := newKeyIndex[string](hashing.Xxh3, digestComparable[string], 0)

	slots := make([]slot, 0, 4)

	for i, k := range []string{"a", "b", "c", "d"} {
		sl, err := x.slotOf(k)
		require.NoError(t, err)
		require.True(t, sl.hashed)

		x.add(sl, i)
		slots = append(slots, sl)
	}

	x.remove(slots[1], 1)

	_, ok := x.buckets[slots[1].digest]
	assert.False(t, ok, "empty bucket should be dropped")
	assert.Equal(t, []int{0}, x.positions(slots[0]))
	assert.Equal(t, []int{1}, x.positions(slots[2]))
	assert.Equal(t, []int{2}, x.positions(slots[3]))

	x.reset(8)
	assert.Empty(t, x.buckets)
}

func TestKeyIndex_SharedBucket(t *testing.T) {
	t.Parallel()

	x := newKeyIndex[int](func(hashing.Hashable) (string, error) { return "one", nil }, digestComparable[int], 0)

	one, err := x.slotOf(7)
	require.NoError(t, err)

	for i := range 4 {
		x.add(one, i)
	}

	x.remove(one, 2)
	assert.Equal(t, []int{0, 1, 2}, x.positions(one))

	x.remove(one, 0)
	assert.Equal(t, []int{0, 1}, x.positions(one))
}

func TestKeyIndex_Overflow(t *testing.T) {
	t.Parallel()

	type point struct{ x, y int }

	x := newKeyIndex[any](hashing.Xxh3, digestComparable[any], 0)

	keys := []any{"a", point{1, 2}, 3, point{4, 5}}
	slots := make([]slot, 0, len(keys))

	for i, k := range keys {
		sl, err := x.slotOf(k)
		if _, isPoint := k.(point); isPoint {
			require.ErrorIs(t, err, errUnhashableKey)
			assert.False(t, sl.hashed)
		} else {
			require.NoError(t, err)
		}

		x.add(sl, i)
		slots = append(slots, sl)
	}

	assert.Equal(t, []int{1, 3}, x.positions(slot{}))

	// Removing a digested key shifts overflow positions too.
	x.remove(slots[0], 0)
	assert.Equal(t, []int{0, 2}, x.positions(slot{}))
	assert.Equal(t, []int{1}, x.positions(slots[2]))

	x.remove(slots[1], 0)
	assert.Equal(t, []int{1}, x.positions(slot{}))
	assert.Equal(t, []int{0}, x.positions(slots[2]))

	x.reset(4)
	assert.Empty(t, x.positions(slot{}))
	assert.Empty(t, x.buckets)
}

func TestDeleteAt(t *testing.T) {
	t.Parallel()

	backing := []string{"a", "b", "c"}

	got := deleteAt(backing, 0)
	assert.Equal(t, []string{"b", "c"}, got)
	assert.Empty(t, backing[2], "vacated slot should be cleared")

	got = deleteAt(got, 1)
	assert.Equal(t, []string{"b"}, got)
}
