package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-kvstore/envutil"
	"github.com/amp-labs/amp-kvstore/hashing"
)

const (
	// EnvCapacity is the initial capacity hint (a non-negative int).
	EnvCapacity = "KVSTORE_CAPACITY"

	// EnvKeyHash selects the digest index hash: none, xxh3, xxhash or sha256.
	EnvKeyHash = "KVSTORE_KEY_HASH"

	// EnvMetricsName turns on metrics under the given store name.
	EnvMetricsName = "KVSTORE_METRICS_NAME"
)

var errNegativeCapacity = errors.New("capacity must not be negative")

// HashFuncByName maps a configuration name to a hash function. "none" and the
// empty string map to nil, meaning no digest index.
func HashFuncByName(name string) (hashing.HashFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "xxh3":
		return hashing.Xxh3, nil
	case "xxhash", "xxhash64":
		return hashing.XXHash64, nil
	case "sha256":
		return hashing.Sha256, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyHash, name)
	}
}

// OptionsFromEnv builds store options from KVSTORE_CAPACITY, KVSTORE_KEY_HASH
// and KVSTORE_METRICS_NAME. Bad values are logged and replaced by defaults, so
// the result is always usable. Options passed after these to a constructor win.
func OptionsFromEnv(ctx context.Context) []Option {
	capacity := envutil.Int(ctx, EnvCapacity,
		envutil.Default(DefaultCapacity),
		envutil.Validate(func(n int) error {
			if n < 0 {
				return fmt.Errorf("%w: %d", errNegativeCapacity, n)
			}

			return nil
		})).ValueOrElse(DefaultCapacity)

	hash := envutil.Map(envutil.String(ctx, EnvKeyHash, envutil.Default("none")), HashFuncByName).
		ValueOrElse(nil)

	opts := []Option{WithCapacity(capacity), WithKeyHash(hash)}

	if name := envutil.String(ctx, EnvMetricsName).ValueOrElse(""); name != "" {
		opts = append(opts, WithMetrics(name))
	}

	return opts
}
