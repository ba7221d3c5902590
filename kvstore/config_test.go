package kvstore_test

import (
	"testing"

	"github.com/amp-labs/amp-kvstore/envutil"
	"github.com/amp-labs/amp-kvstore/hashing"
	"github.com/amp-labs/amp-kvstore/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFuncByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "none", " NONE "} {
		hash, err := kvstore.HashFuncByName(name)
		require.NoError(t, err, name)
		assert.Nil(t, hash, name)
	}

	for _, name := range []string{"xxh3", "xxhash", "XXHash64", "sha256"} {
		hash, err := kvstore.HashFuncByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, hash, name)

		digest, err := hash(hashing.HashableString("k"))
		require.NoError(t, err)
		assert.NotEmpty(t, digest)
	}

	_, err := kvstore.HashFuncByName("md5")
	require.ErrorIs(t, err, kvstore.ErrUnknownKeyHash)
}

func TestOptionsFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		s := kvstore.New[string, int](kvstore.OptionsFromEnv(t.Context())...)
		assert.Equal(t, kvstore.DefaultCapacity, s.Capacity())
		assert.False(t, s.Indexed())
		assert.Equal(t, "kvstore.Store(size=0)", s.String())
	})

	t.Run("configured", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), kvstore.EnvCapacity, "64")
		ctx = envutil.WithEnvOverride(ctx, kvstore.EnvKeyHash, "xxh3")
		ctx = envutil.WithEnvOverride(ctx, kvstore.EnvMetricsName, "env-configured-store")

		s := kvstore.New[string, int](kvstore.OptionsFromEnv(ctx)...)
		assert.Equal(t, 64, s.Capacity())
		assert.True(t, s.Indexed())
		assert.Equal(t, "kvstore.Store(name=env-configured-store, size=0)", s.String())

		require.NoError(t, s.Insert("a", 1))
		assert.Equal(t, 1, s.Lookup("a").GetOrPanic())
	})

	t.Run("bad values fall back", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), kvstore.EnvCapacity, "-4")
		ctx = envutil.WithEnvOverride(ctx, kvstore.EnvKeyHash, "md5")

		s := kvstore.New[string, int](kvstore.OptionsFromEnv(ctx)...)
		assert.Equal(t, kvstore.DefaultCapacity, s.Capacity())
		assert.False(t, s.Indexed())

		ctx = envutil.WithEnvOverride(t.Context(), kvstore.EnvCapacity, "lots")
		s = kvstore.New[string, int](kvstore.OptionsFromEnv(ctx)...)
		assert.Equal(t, kvstore.DefaultCapacity, s.Capacity())
	})

	t.Run("explicit options win", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), kvstore.EnvKeyHash, "sha256")

		opts := append(kvstore.OptionsFromEnv(ctx), kvstore.WithKeyHash(nil), kvstore.WithCapacity(2))
		s := kvstore.New[string, int](opts...)
		assert.False(t, s.Indexed())
		assert.Equal(t, 2, s.Capacity())
	})
}
