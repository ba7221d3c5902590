package kvstore

import (
	"log/slog"

	"github.com/amp-labs/amp-kvstore/hashing"
)

// DefaultCapacity is the capacity hint used when none is given.
const DefaultCapacity = 10

type config struct {
	capacity int
	hash     hashing.HashFunc
	logger   *slog.Logger
	name     string
	metrics  bool
}

// Option configures a Store at construction time.
type Option func(*config)

// WithCapacity pre-allocates room for n pairs. It is a hint, not a bound:
// the store keeps growing past it. Negative values are treated as zero.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = max(n, 0)
	}
}

// WithKeyHash turns on the key digest index. Lookups hash the key and only
// compare against stored keys with the same digest. Keys that can't be
// digested (see New, NewComparable and NewWithEquality) are still accepted and
// found by a linear scan over just those keys. A nil hash leaves the index off.
func WithKeyHash(hash hashing.HashFunc) Option {
	return func(c *config) {
		c.hash = hash
	}
}

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithName labels the store in log output.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithMetrics names the store and publishes Prometheus metrics for it under that name.
func WithMetrics(name string) Option {
	return func(c *config) {
		c.name = name
		c.metrics = true
	}
}
