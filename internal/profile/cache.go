package profile

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SceneIt_Go/internal/domain"
)

// cachedProfileEntry wraps a profile with version metadata for cache invalidation
type cachedProfileEntry struct {
	Version  string
	Profile  domain.Profile
	CachedAt time.Time
}

// profileCache is an in-memory LRU of profiles by id with time-based expiration
type profileCache struct {
	lru *expirable.LRU[string, *cachedProfileEntry]
}

func newProfileCache(size int, ttl time.Duration) *profileCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &profileCache{
		lru: expirable.NewLRU[string, *cachedProfileEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached profile. Entries with an old schema version are dropped.
func (c *profileCache) Get(id string) (*domain.Profile, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}
	p := entry.Profile
	return &p, true
}

// Set stores a copy so callers can't mutate the cached value
func (c *profileCache) Set(p *domain.Profile) {
	c.lru.Add(p.ID, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		Profile:  *p,
		CachedAt: time.Now(),
	})
}

func (c *profileCache) Invalidate(id string) {
	c.lru.Remove(id)
}

func (c *profileCache) Len() int {
	return c.lru.Len()
}
