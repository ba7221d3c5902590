// Package hashing turns Hashable values into string digests. Digests are used by
// the kvstore key index to bucket keys before the equality check runs.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc takes a Hashable and returns a string digest of it.
// Sha256, Xxh3 and XXHash64 are all HashFuncs, which lets callers pick
// a strategy without caring how it is computed.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is implemented by anything that can feed its contents into a hash.Hash.
// Two values that are equal must write the same bytes.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// digest runs the hashable through h and hex-encodes the sum.
func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sha256 returns the hex-encoded SHA-256 digest of the given Hashable.
// Slow compared to the xx family, but collisions are practically impossible.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Xxh3 returns the hex-encoded 64-bit XXH3 digest of the given Hashable.
func Xxh3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXHash64 returns the hex-encoded 64-bit xxHash digest of the given Hashable.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}
