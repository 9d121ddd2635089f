// Package cache provides a generic, thread-safe memoization cache with a
// soft size limit.
//
// When a Set or GetOrCreate pushes the cache over its limit, the least
// recently used quarter of the entries is evicted in one batch:
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// The cache counts hits, misses and evictions; Stats reports them.
// An eviction hook installed with OnEvict observes every batch.
package cache
