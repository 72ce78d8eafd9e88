package common

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Keys for the read-mostly public queries. Every blog write invalidates both.
const (
	CacheKeyFeaturedBlogs = "blogs:featured"
	CacheKeyBlogStats     = "blogs:stats"
)

// Cache is an in-process TTL cache. Values are stored as-is, so callers must
// not mutate what they put in or get out.
//
// Every invalidation bumps a generation counter. A reader that loaded its
// value before an invalidation uses SetAt so the stale value is dropped
// instead of cached.
type Cache struct {
	mu    sync.Mutex
	gen   uint64
	store *cache.Cache
}

func NewCache(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{store: cache.New(defaultTTL, cleanupInterval)}
}

// Set stores value for ttl. A zero ttl uses the cache default.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value, ttl)
}

// Generation returns the current invalidation generation. Read it before
// loading a value that will be passed to SetAt.
func (c *Cache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.gen
}

// SetAt stores value only if nothing was invalidated since gen was read.
func (c *Cache) SetAt(gen uint64, key string, value any, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return false
	}
	c.set(key, value, ttl)

	return true
}

func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	for _, key := range keys {
		c.store.Delete(key)
	}
}

func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.store.Flush()
}

func (c *Cache) set(key string, value any, ttl time.Duration) {
	if ttl == 0 {
		ttl = cache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)
}

// Lookup returns the value under key if present and of type T.
func Lookup[T any](c *Cache, key string) (T, bool) {
	var zero T

	v, ok := c.store.Get(key)
	if !ok {
		return zero, false
	}

	typed, ok := v.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}
