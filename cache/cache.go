package cache

import (
	"regexp"
	"sync"

	"github.com/golang/groupcache/lru"
)

// PatternCache provides thread-safe caching of compiled comment patterns,
// keyed by their source expression. Callers that take patterns as strings
// (the CLI, per-repo config) go through it to avoid recompiling on every
// file.
type PatternCache struct {
	cache *lru.Cache
	mu    sync.RWMutex
}

// NewPatternCache creates a PatternCache holding at most size entries.
func NewPatternCache(size int) *PatternCache {
	return &PatternCache{
		cache: lru.New(size),
	}
}

// Get returns the cached pattern for the given expression, if available.
func (c *PatternCache) Get(expr string) (*regexp.Regexp, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if val, ok := c.cache.Get(expr); ok {
		return val.(*regexp.Regexp), true
	}
	return nil, false
}

// Compile returns the compiled pattern for the expression, using the
// cache to avoid redundant compilation.
func (c *PatternCache) Compile(expr string) (*regexp.Regexp, error) {
	// Try reading with a read lock first.
	c.mu.RLock()
	if val, ok := c.cache.Get(expr); ok {
		c.mu.RUnlock()
		return val.(*regexp.Regexp), nil
	}
	c.mu.RUnlock()

	// If not found, acquire a write lock and compile.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check in case another goroutine compiled it meanwhile.
	if val, ok := c.cache.Get(expr); ok {
		return val.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	c.cache.Add(expr, re)
	return re, nil
}

// Clear clears the cache.
func (c *PatternCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
}
