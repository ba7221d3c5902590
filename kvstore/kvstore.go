// Package kvstore provides Store, a small associative container that maps
// unique keys to values and remembers insertion order.
//
// Keys and values live in two parallel slices: the value at position i belongs
// to the key at position i. Every operation first locates the key's position
// and only then touches the slices, so a failed call never leaves the two
// slices out of step.
//
// By default a key is located with a linear scan using the key type's equality
// relation. WithKeyHash adds a digest index that makes lookups O(1) on average
// while keeping the same observable behavior.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must provide their own locking.
//
// Example:
//
//	s := kvstore.New[string, int]()
//	_ = s.Insert("x", 1)
//
//	err := s.Insert("x", 3)            // errors.Is(err, kvstore.ErrDuplicateKey)
//	v := s.Lookup("x").GetOrElse(-1)   // 1
package kvstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amp-labs/amp-kvstore/assert"
	"github.com/amp-labs/amp-kvstore/collectable"
	"github.com/amp-labs/amp-kvstore/compare"
	"github.com/amp-labs/amp-kvstore/hashing"
	"github.com/amp-labs/amp-kvstore/logger"
	"github.com/amp-labs/amp-kvstore/optional"
	"github.com/amp-labs/amp-kvstore/zero"
)

// Store maps unique keys to values. Create one with New, NewComparable,
// NewCollectable or NewWithEquality; the zero Store is not usable.
type Store[K any, V any] struct {
	keys   []K
	values []V

	eq      compare.EqualFunc[K]
	index   *keyIndex[K] // nil unless WithKeyHash was given
	name    string
	log     *slog.Logger
	metrics *storeMetrics
}

// New creates a Store whose keys are compared with ==.
//
// With WithKeyHash, strings, booleans, numbers, types defined on them (such as
// type UserID string), byte arrays and keys implementing hashing.Hashable are
// indexed by digest. Other keys, such as structs, still work but are found by
// a linear scan over just those keys.
func New[K comparable, V any](opts ...Option) *Store[K, V] {
	return newStore[K, V](compare.Operator[K](), digestComparable[K], opts)
}

// NewComparable creates a Store whose keys are compared with their own Equals
// method. WithKeyHash only speeds up lookups if K also implements
// hashing.Hashable.
func NewComparable[K compare.Comparable[K], V any](opts ...Option) *Store[K, V] {
	return newStore[K, V](compare.Method[K](), digestHashable[K], opts)
}

// NewCollectable creates a Store for keys that can both hash and compare
// themselves. The digest index is on by default, using hashing.Xxh3 unless
// WithKeyHash picks something else.
func NewCollectable[K collectable.Collectable[K], V any](opts ...Option) *Store[K, V] {
	opts = append([]Option{WithKeyHash(hashing.Xxh3)}, opts...)

	return newStore[K, V](compare.Method[K](), digestHashable[K], opts)
}

// NewWithEquality creates a Store that uses eq to decide whether two keys are
// the same. eq must be a proper equivalence relation and must not be nil.
// WithKeyHash only speeds up lookups if K implements hashing.Hashable, and
// equal keys must then produce equal digests.
func NewWithEquality[K any, V any](eq compare.EqualFunc[K], opts ...Option) *Store[K, V] {
	if eq == nil {
		panic("kvstore: NewWithEquality called with a nil equality function")
	}

	return newStore[K, V](eq, digestHashable[K], opts)
}

func newStore[K any, V any](eq compare.EqualFunc[K], digest digestFunc[K], opts []Option) *Store[K, V] {
	cfg := config{capacity: DefaultCapacity}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = logger.Get(logger.WithSubsystem(context.Background(), "kvstore"))
	}

	if cfg.name != "" {
		cfg.logger = cfg.logger.With("store", cfg.name)
	}

	s := &Store[K, V]{
		keys:   make([]K, 0, cfg.capacity),
		values: make([]V, 0, cfg.capacity),
		eq:     eq,
		name:   cfg.name,
		log:    cfg.logger,
	}

	if cfg.hash != nil {
		s.index = newKeyIndex(cfg.hash, digest, cfg.capacity)
	}

	if cfg.metrics {
		s.metrics = &storeMetrics{name: cfg.name}
		s.metrics.setSize(0)
	}

	return s
}

// find returns the position of key, or -1. When the index is on, the key's
// slot is returned too so callers can update the index without rehashing.
func (s *Store[K, V]) find(op string, key K) (int, slot) {
	if s.index == nil {
		for i, k := range s.keys {
			if s.eq(k, key) {
				return i, slot{}
			}
		}

		return -1, slot{}
	}

	sl, err := s.index.slotOf(key)
	if err != nil {
		s.log.Debug("key cannot be digested, scanning overflow", "op", op, "error", err)
	}

	for _, p := range s.index.positions(sl) {
		if s.eq(s.keys[p], key) {
			return p, sl
		}
	}

	return -1, sl
}

// Reset discards every pair. capacityHint pre-allocates room for that many
// pairs and has no other effect; negative hints are treated as zero.
func (s *Store[K, V]) Reset(capacityHint int) {
	capacityHint = max(capacityHint, 0)

	s.keys = make([]K, 0, capacityHint)
	s.values = make([]V, 0, capacityHint)

	if s.index != nil {
		s.index.reset(capacityHint)
	}

	s.checkInvariant()
	s.log.Debug("store reset", "capacityHint", capacityHint)
	s.metrics.observe(opReset, outcomeOK)
	s.metrics.setSize(0)
}

// Insert adds a new pair at the end of the insertion order.
//
// If an equal key is already stored, Insert returns a *DuplicateKeyError
// (errors.Is(err, ErrDuplicateKey) holds) and changes nothing; use Update to
// replace a value. No other error is ever returned.
func (s *Store[K, V]) Insert(key K, value V) error {
	pos, sl := s.find(opInsert, key)
	if pos >= 0 {
		s.log.Debug("rejected duplicate key", "keyType", fmt.Sprintf("%T", key))
		s.metrics.observe(opInsert, outcomeDuplicate)

		return &DuplicateKeyError{Key: key}
	}

	if s.index != nil {
		s.index.add(sl, len(s.keys))
	}

	s.keys = append(s.keys, key)
	s.values = append(s.values, value)

	s.checkInvariant()
	s.metrics.observe(opInsert, outcomeOK)
	s.metrics.setSize(len(s.keys))

	return nil
}

// Remove deletes the pair for key and returns its value. The remaining pairs
// keep their relative order. Returns None, changing nothing, if the key is absent.
func (s *Store[K, V]) Remove(key K) optional.Value[V] {
	pos, sl := s.find(opRemove, key)
	if pos < 0 {
		s.metrics.observe(opRemove, outcomeMiss)

		return optional.None[V]()
	}

	removed := s.values[pos]

	s.keys = deleteAt(s.keys, pos)
	s.values = deleteAt(s.values, pos)

	if s.index != nil {
		s.index.remove(sl, pos)
	}

	s.checkInvariant()
	s.metrics.observe(opRemove, outcomeOK)
	s.metrics.setSize(len(s.keys))

	return optional.Some(removed)
}

// Update replaces the value stored for key, leaving the key and its position
// alone. It returns false, changing nothing, if the key is absent.
func (s *Store[K, V]) Update(key K, value V) bool {
	pos, _ := s.find(opUpdate, key)
	if pos < 0 {
		s.metrics.observe(opUpdate, outcomeMiss)

		return false
	}

	s.values[pos] = value

	s.metrics.observe(opUpdate, outcomeOK)

	return true
}

// Lookup returns the value stored for key, or None if the key is absent.
// Stored zero values and nils come back as Some.
func (s *Store[K, V]) Lookup(key K) optional.Value[V] {
	pos, _ := s.find(opLookup, key)
	if pos < 0 {
		s.metrics.observe(opLookup, outcomeMiss)

		return optional.None[V]()
	}

	s.metrics.observe(opLookup, outcomeOK)

	return optional.Some(s.values[pos])
}

// Contains reports whether key is stored.
func (s *Store[K, V]) Contains(key K) bool {
	pos, _ := s.find(opContains, key)

	return pos >= 0
}

// Size returns the number of stored pairs.
func (s *Store[K, V]) Size() int {
	return len(s.keys)
}

// IsEmpty reports whether the store holds no pairs.
func (s *Store[K, V]) IsEmpty() bool {
	return len(s.keys) == 0
}

// String summarizes the store without listing its contents.
func (s *Store[K, V]) String() string {
	if s.name == "" {
		return fmt.Sprintf("kvstore.Store(size=%d)", len(s.keys))
	}

	return fmt.Sprintf("kvstore.Store(name=%s, size=%d)", s.name, len(s.keys))
}

func (s *Store[K, V]) checkInvariant() {
	assert.True(len(s.keys) == len(s.values), "kvstore: %d keys but %d values", len(s.keys), len(s.values))
}

// deleteAt removes xs[i], shifting the tail left, and clears the vacated last
// slot so the backing array doesn't pin the old element.
func deleteAt[T any](xs []T, i int) []T {
	copy(xs[i:], xs[i+1:])

	last := len(xs) - 1
	xs[last] = zero.Value[T]()

	return xs[:last]
}
