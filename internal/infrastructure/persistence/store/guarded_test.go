package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/flatstore/pkg/circuitbreaker"
)

func newGuarded(t *testing.T, openTimeout time.Duration) (*miniredis.Miniredis, *GuardedBackend) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr:        mr.Addr(),
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })

	g := NewGuardedBackend(NewRedisBackend(client, "flatstore"), "redis-test", BreakerOptions{
		MaxFailures: 2,
		OpenTimeout: openTimeout,
	}, zap.NewNop())
	return mr, g
}

func TestGuardedBackend_MissingKeyDoesNotTrip(t *testing.T) {
	_, g := newGuarded(t, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := g.Read(ctx, "nope.json")
		assert.ErrorIs(t, err, ErrNotExist)
	}
	assert.Equal(t, circuitbreaker.StateClosed, g.State())
}

func TestGuardedBackend_TripsAndRecovers(t *testing.T) {
	mr, g := newGuarded(t, 100*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, g.Write(ctx, "books.json", []byte("[]")))

	mr.Close()
	for i := 0; i < 2; i++ {
		_, err := g.Read(ctx, "books.json")
		require.Error(t, err)
		assert.NotErrorIs(t, err, circuitbreaker.ErrOpenState)
	}
	assert.Equal(t, circuitbreaker.StateOpen, g.State())

	// 熔断期间快速失败
	err := g.Write(ctx, "books.json", []byte("[]"))
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)

	require.NoError(t, mr.Restart())
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, circuitbreaker.StateHalfOpen, g.State())

	data, err := g.Read(ctx, "books.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Equal(t, circuitbreaker.StateClosed, g.State())
}

func TestGuardedBackend_CollectionSurfacesStorageError(t *testing.T) {
	mr, g := newGuarded(t, time.Minute)
	mr.Close()

	c := NewCollection(g, "books.json", seedRecords, nil)
	_, err := c.Load(context.Background())
	assert.Error(t, err)
}
