package flowsession

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type store interface {
	Load(ctx context.Context, flowID string) ([]byte, error)
	Store(ctx context.Context, flowID string, data []byte) error
	AcquireSubmitLock(ctx context.Context, flowID string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, flowID string) error
}

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisStore(client, time.Hour, time.Minute)
}

func stores(t *testing.T) map[string]store {
	_, redisStore := setupRedis(t)
	return map[string]store{
		"redis":  redisStore,
		"memory": NewMemoryStore(time.Hour),
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Load(ctx, "flow-1")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Store(ctx, "flow-1", []byte(`{"step":"selection"}`)))
			data, err := s.Load(ctx, "flow-1")
			require.NoError(t, err)
			assert.JSONEq(t, `{"step":"selection"}`, string(data))

			require.NoError(t, s.Store(ctx, "flow-1", []byte(`{"step":"datetime"}`)))
			data, err = s.Load(ctx, "flow-1")
			require.NoError(t, err)
			assert.JSONEq(t, `{"step":"datetime"}`, string(data))
		})
	}
}

func TestStore_SubmitLockIsSingleFlight(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			ok, err := s.AcquireSubmitLock(ctx, "flow-1")
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = s.AcquireSubmitLock(ctx, "flow-1")
			require.NoError(t, err)
			assert.False(t, ok, "second submit must be rejected")

			ok, err = s.AcquireSubmitLock(ctx, "flow-2")
			require.NoError(t, err)
			assert.True(t, ok, "locks are per flow")

			require.NoError(t, s.ReleaseSubmitLock(ctx, "flow-1"))
			ok, err = s.AcquireSubmitLock(ctx, "flow-1")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestRedisStore_TTL(t *testing.T) {
	mr, s := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, s.Store(ctx, "flow-1", []byte(`{}`)))
	assert.Equal(t, time.Hour, mr.TTL("booking-flow:flow-1"))

	mr.FastForward(2 * time.Hour)
	_, err := s.Load(ctx, "flow-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_LockExpires(t *testing.T) {
	mr, s := setupRedis(t)
	ctx := context.Background()

	ok, err := s.AcquireSubmitLock(ctx, "flow-1")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)
	ok, err = s.AcquireSubmitLock(ctx, "flow-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Store(ctx, "flow-1", []byte(`{}`)))

	now = now.Add(30 * time.Second)
	_, err := s.Load(ctx, "flow-1")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = s.Load(ctx, "flow-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	data := []byte(`{"a":1}`)
	require.NoError(t, s.Store(ctx, "flow-1", data))
	data[2] = 'b'

	loaded, err := s.Load(ctx, "flow-1")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(loaded))
}
