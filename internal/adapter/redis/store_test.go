package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCmdable struct {
	data     map[string]string
	failWith error
	ttls     map[string]time.Duration
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failWith != nil {
		return redis.NewStringResult("", f.failWith)
	}
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failWith != nil {
		return redis.NewStatusResult("", f.failWith)
	}
	f.data[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.failWith != nil {
		return redis.NewIntResult(0, f.failWith)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCmdable()
	s := &store{client: fake}

	_, err := s.Get(ctx, "storefront:abc:cart")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, s.Set(ctx, "storefront:abc:cart", `[]`))
	assert.Equal(t, time.Duration(0), fake.ttls["storefront:abc:cart"])

	val, err := s.Get(ctx, "storefront:abc:cart")
	require.NoError(t, err)
	assert.Equal(t, `[]`, val)

	require.NoError(t, s.Remove(ctx, "storefront:abc:cart"))
	require.NoError(t, s.Remove(ctx, "storefront:abc:cart"))
	_, err = s.Get(ctx, "storefront:abc:cart")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_PropagatesBackendErrors(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCmdable()
	fake.failWith = errors.New("connection refused")
	s := &store{client: fake}

	_, err := s.Get(ctx, "k")
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrNotFound))

	assert.ErrorContains(t, s.Set(ctx, "k", "v"), "connection refused")
	assert.ErrorContains(t, s.Remove(ctx, "k"), "connection refused")
}
