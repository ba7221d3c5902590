package kvstore

import (
	"fmt"
	"slices"

	"github.com/amp-labs/amp-kvstore/collectable"
	"github.com/amp-labs/amp-kvstore/hashing"
)

// digestFunc turns a key into the string the index buckets on.
type digestFunc[K any] func(hash hashing.HashFunc, key K) (string, error)

// digestComparable digests plain comparable keys through collectable, which
// knows how to hash strings, numbers, booleans, types defined on them and
// Hashable values.
func digestComparable[K comparable](hash hashing.HashFunc, key K) (string, error) {
	digest, err := hash(collectable.FromComparable(key))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errUnhashableKey, err)
	}

	return digest, nil
}

// digestHashable digests keys that implement hashing.Hashable at runtime.
func digestHashable[K any](hash hashing.HashFunc, key K) (string, error) {
	hashable, ok := any(key).(hashing.Hashable)
	if !ok {
		return "", fmt.Errorf("%w: %T does not implement hashing.Hashable", errUnhashableKey, key)
	}

	digest, err := hash(hashable)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errUnhashableKey, err)
	}

	return digest, nil
}

// slot says where a key's position lives in the index: in the bucket for
// digest, or in the overflow list when the key could not be digested.
type slot struct {
	digest string
	hashed bool
}

// keyIndex maps key digests to positions in the store's key slice. A bucket
// holds more than one position only when distinct keys share a digest; the
// store resolves that with its equality relation. Keys that can't be digested
// are kept in overflow and found by scanning it.
type keyIndex[K any] struct {
	hash     hashing.HashFunc
	digest   digestFunc[K]
	buckets  map[string][]int
	overflow []int
}

func newKeyIndex[K any](hash hashing.HashFunc, digest digestFunc[K], capacity int) *keyIndex[K] {
	return &keyIndex[K]{
		hash:    hash,
		digest:  digest,
		buckets: make(map[string][]int, capacity),
	}
}

// slotOf digests key. On error the returned slot still points at the
// overflow list, so callers can carry on with it.
func (x *keyIndex[K]) slotOf(key K) (slot, error) {
	digest, err := x.digest(x.hash, key)
	if err != nil {
		return slot{}, err
	}

	return slot{digest: digest, hashed: true}, nil
}

func (x *keyIndex[K]) positions(sl slot) []int {
	if !sl.hashed {
		return x.overflow
	}

	return x.buckets[sl.digest]
}

func (x *keyIndex[K]) add(sl slot, pos int) {
	if !sl.hashed {
		x.overflow = append(x.overflow, pos)

		return
	}

	x.buckets[sl.digest] = append(x.buckets[sl.digest], pos)
}

// remove drops pos from its slot and shifts every later position down by
// one, mirroring the order-preserving delete on the key and value slices.
func (x *keyIndex[K]) remove(sl slot, pos int) {
	if sl.hashed {
		bucket := dropPosition(x.buckets[sl.digest], pos)
		if len(bucket) == 0 {
			delete(x.buckets, sl.digest)
		} else {
			x.buckets[sl.digest] = bucket
		}
	} else {
		x.overflow = dropPosition(x.overflow, pos)
	}

	for _, b := range x.buckets {
		shiftDown(b, pos)
	}

	shiftDown(x.overflow, pos)
}

func (x *keyIndex[K]) reset(capacity int) {
	x.buckets = make(map[string][]int, capacity)
	x.overflow = nil
}

func dropPosition(positions []int, pos int) []int {
	if i := slices.Index(positions, pos); i >= 0 {
		return slices.Delete(positions, i, i+1)
	}

	return positions
}

func shiftDown(positions []int, removed int) {
	for i, p := range positions {
		if p > removed {
			positions[i] = p - 1
		}
	}
}
