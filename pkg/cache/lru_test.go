package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/petadopt/pkg/cache"
)

func TestLRUCache_GetPut(t *testing.T) {
	c := cache.NewLRUCache[string, int](2)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Put("a", 1)
	c.Put("a", 2)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := cache.NewLRUCache[int, string](2)
	c.Put(1, "one")
	c.Put(2, "two")

	_, _ = c.Get(1)
	c.Put(3, "three")

	_, ok := c.Get(2)
	assert.False(t, ok, "2 was least recently used")
	_, ok = c.Get(1)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRUCache_TTL(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := cache.NewLRUCache[int, string](4,
		cache.WithTTL(time.Minute),
		cache.WithClock(func() time.Time { return now }),
	)

	c.Put(1, "one")
	now = now.Add(59 * time.Second)
	_, ok := c.Get(1)
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get(1)
	assert.False(t, ok)
	assert.Zero(t, c.Len())

	c.Put(2, "two")
	now = now.Add(50 * time.Second)
	c.Put(2, "two again")
	now = now.Add(50 * time.Second)
	v, ok := c.Get(2)
	assert.True(t, ok, "rewriting refreshes expiry")
	assert.Equal(t, "two again", v)
}

func TestLRUCache_Remove(t *testing.T) {
	c := cache.NewLRUCache[string, int](2)
	c.Put("a", 1)

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.Zero(t, c.Len())
}

func TestLRUCache_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { cache.NewLRUCache[int, int](0) })
}

func TestLRUCache_Concurrent(t *testing.T) {
	c := cache.NewLRUCache[int, int](16)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				c.Put(i*100+j, j)
				_, _ = c.Get(j)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
