package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rget/pkg/redis"
	"github.com/dmitrymomot/rget/pkg/store"
)

var _ store.Store = (*redis.Storage)(nil)

func newStorage(t *testing.T) (*redis.Storage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	st := redis.NewStorage(client, "test:")
	t.Cleanup(func() { _ = st.Close() })
	return st, mr
}

func TestStorage_Sections(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st, mr := newStorage(t)

	_, ok, err := st.Get(ctx, "email", store.KeyType)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Set(ctx, "email", store.KeyType, "re"))
	require.NoError(t, st.Set(ctx, "email", store.KeyValue, "[an(10),'@x.io']"))
	require.NoError(t, st.Set(ctx, "bb", store.KeyType, "cc"))

	v, ok, err := st.Get(ctx, "email", store.KeyValue)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[an(10),'@x.io']", v)
	assert.Equal(t, "re", mr.HGet("test:section:email", "type"))

	has, err := st.HasSection(ctx, "email")
	require.NoError(t, err)
	assert.True(t, has)

	names, err := st.ListSections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bb", "email"}, names)

	require.NoError(t, st.RemoveSection(ctx, "email"))
	assert.False(t, mr.Exists("test:section:email"))

	has, err = st.HasSection(ctx, "email")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStorage_WithDefinitions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st, _ := newStorage(t)
	defs := store.NewDefinitions(st)

	require.NoError(t, defs.Add(ctx, store.KindCharset, "hex", "0123456789abcdef"))
	require.ErrorIs(t, defs.Add(ctx, store.KindCharset, "hex", "x"), store.ErrDefinitionExists)

	list, err := defs.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.Definition{{Name: "hex", Kind: store.KindCharset, Value: "0123456789abcdef"}}, list)
}

func TestConnect(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)

	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://" + mr.Addr() + "/0",
		RetryAttempts:  1,
		ConnectTimeout: time.Second,
	})
	require.NoError(t, err)
	require.NoError(t, client.Close())
}

func TestConnect_Errors(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	require.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "://bad"})
	require.ErrorIs(t, err, redis.ErrInvalidConnectionURL)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://" + addr + "/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: time.Second,
	})
	require.ErrorIs(t, err, redis.ErrRedisNotReady)
}
