package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheLookup(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)

	c.Set(CacheKeyFeaturedBlogs, []string{"a"}, 0)

	v, ok := Lookup[[]string](c, CacheKeyFeaturedBlogs)
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, v)

	// wrong type reads as a miss
	n, ok := Lookup[int](c, CacheKeyFeaturedBlogs)
	assert.False(t, ok)
	assert.Zero(t, n)

	_, ok = Lookup[[]string](c, "missing")
	assert.False(t, ok)
}

func TestCacheExpiration(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)

	c.Set(CacheKeyBlogStats, 1, time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := Lookup[int](c, CacheKeyBlogStats)
	assert.False(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)

	c.Set(CacheKeyFeaturedBlogs, "featured", 0)
	c.Set(CacheKeyBlogStats, "stats", 0)
	c.Set("other", "kept", 0)

	c.Invalidate(CacheKeyFeaturedBlogs, CacheKeyBlogStats)

	_, ok := Lookup[string](c, CacheKeyFeaturedBlogs)
	assert.False(t, ok)
	_, ok = Lookup[string](c, CacheKeyBlogStats)
	assert.False(t, ok)

	v, ok := Lookup[string](c, "other")
	assert.True(t, ok)
	assert.Equal(t, "kept", v)

	c.Flush()
	_, ok = Lookup[string](c, "other")
	assert.False(t, ok)
}

func TestCacheSetAt(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)

	gen := c.Generation()
	assert.True(t, c.SetAt(gen, CacheKeyBlogStats, 1, 0))

	v, ok := Lookup[int](c, CacheKeyBlogStats)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	// a value loaded before an invalidation is not cached
	stale := c.Generation()
	c.Invalidate(CacheKeyBlogStats)
	assert.False(t, c.SetAt(stale, CacheKeyBlogStats, 2, 0))

	_, ok = Lookup[int](c, CacheKeyBlogStats)
	assert.False(t, ok)

	// Flush counts as an invalidation too
	stale = c.Generation()
	c.Flush()
	assert.False(t, c.SetAt(stale, CacheKeyFeaturedBlogs, "x", 0))

	assert.True(t, c.SetAt(c.Generation(), CacheKeyBlogStats, 3, 0))
	v, ok = Lookup[int](c, CacheKeyBlogStats)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}
