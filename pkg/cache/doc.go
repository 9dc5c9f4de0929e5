// Package cache provides a generic in-memory LRU cache with optional TTL,
// used to keep hot animal listings close to the HTTP handlers.
//
//	c := cache.NewLRUCache[int64, animals.Animal](256, cache.WithTTL(10*time.Minute))
//	c.Put(a.ID, a)
//	a, ok := c.Get(id)
package cache
