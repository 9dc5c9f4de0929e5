package animals

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/petadopt/pkg/cache"
	"github.com/dmitrymomot/petadopt/pkg/logger"
)

// Cache holds listings by ID. Listings never change after creation, so
// entries are never invalidated, only evicted or expired.
type Cache interface {
	Get(ctx context.Context, id int64) (Animal, bool)
	Set(ctx context.Context, a Animal)
}

// CachedStore serves Get through a read-through Cache and warms it on Create.
// Every other call goes straight to the wrapped Store.
type CachedStore struct {
	Store
	cache Cache
}

func NewCachedStore(store Store, c Cache) *CachedStore {
	return &CachedStore{Store: store, cache: c}
}

func (s *CachedStore) Get(ctx context.Context, id int64) (Animal, error) {
	if a, ok := s.cache.Get(ctx, id); ok {
		return a, nil
	}
	a, err := s.Store.Get(ctx, id)
	if err != nil {
		return Animal{}, err
	}
	s.cache.Set(ctx, a)
	return a, nil
}

func (s *CachedStore) Create(ctx context.Context, a Animal) (Animal, error) {
	created, err := s.Store.Create(ctx, a)
	if err != nil {
		return Animal{}, err
	}
	s.cache.Set(ctx, created)
	return created, nil
}

// LRUCache keeps the most recently read listings in process memory.
type LRUCache struct {
	lru *cache.LRUCache[int64, Animal]
}

func NewLRUCache(capacity int) *LRUCache {
	return &LRUCache{lru: cache.NewLRUCache[int64, Animal](capacity)}
}

func (c *LRUCache) Get(_ context.Context, id int64) (Animal, bool) {
	return c.lru.Get(id)
}

func (c *LRUCache) Set(_ context.Context, a Animal) {
	c.lru.Put(a.ID, a)
}

// RedisCache stores listings as JSON under "<prefix><id>" with a TTL.
// Redis failures degrade to cache misses and are logged.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

func NewRedisCache(client redis.UniversalClient, ttl time.Duration, log *slog.Logger) *RedisCache {
	if log == nil {
		log = slog.Default()
	}
	return &RedisCache{
		client: client,
		prefix: "petadopt:animal:",
		ttl:    ttl,
		log:    log,
	}
}

func (c *RedisCache) key(id int64) string {
	return c.prefix + strconv.FormatInt(id, 10)
}

func (c *RedisCache) Get(ctx context.Context, id int64) (Animal, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "animal cache read failed",
				logger.Component("animal_cache"),
				logger.AnimalID(id),
				logger.Error(err),
			)
		}
		return Animal{}, false
	}

	var a Animal
	if err := json.Unmarshal(raw, &a); err != nil {
		c.log.WarnContext(ctx, "animal cache entry is corrupt",
			logger.Component("animal_cache"),
			logger.AnimalID(id),
			logger.Error(err),
		)
		return Animal{}, false
	}
	return a, true
}

func (c *RedisCache) Set(ctx context.Context, a Animal) {
	raw, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(a.ID), raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "animal cache write failed",
			logger.Component("animal_cache"),
			logger.AnimalID(a.ID),
			logger.Error(err),
		)
	}
}
