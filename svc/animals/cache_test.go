package animals_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/petadopt/svc/animals"
)

type countingStore struct {
	animals.Store
	gets int
}

func (s *countingStore) Get(ctx context.Context, id int64) (animals.Animal, error) {
	s.gets++
	return s.Store.Get(ctx, id)
}

func TestCachedStore_ReadThrough(t *testing.T) {
	inner := &countingStore{Store: animals.NewMemoryStore(animals.SeedAnimals()...)}
	store := animals.NewCachedStore(inner, animals.NewLRUCache(4))
	ctx := context.Background()

	first, err := store.Get(ctx, 1)
	require.NoError(t, err)
	second, err := store.Get(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.gets)
}

func TestCachedStore_MissIsNotCached(t *testing.T) {
	inner := &countingStore{Store: animals.NewMemoryStore()}
	store := animals.NewCachedStore(inner, animals.NewLRUCache(4))
	ctx := context.Background()

	for range 2 {
		_, err := store.Get(ctx, 42)
		assert.ErrorIs(t, err, animals.ErrNotFound)
	}
	assert.Equal(t, 2, inner.gets)
}

func TestCachedStore_CreateWarmsCache(t *testing.T) {
	inner := &countingStore{Store: animals.NewMemoryStore()}
	store := animals.NewCachedStore(inner, animals.NewLRUCache(4))
	ctx := context.Background()

	created, err := store.Create(ctx, animals.Animal{Name: "Rex"})
	require.NoError(t, err)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Name)
	assert.Zero(t, inner.gets)
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	c := animals.NewRedisCache(client, time.Minute, nil)
	ctx := context.Background()
	a := animals.Animal{ID: time.Now().UnixNano(), Name: "Rex", Age: 3}

	_, ok := c.Get(ctx, a.ID)
	assert.False(t, ok)

	c.Set(ctx, a)
	got, ok := c.Get(ctx, a.ID)
	require.True(t, ok)
	assert.Equal(t, a.Name, got.Name)
	assert.Equal(t, a.Age, got.Age)
}
