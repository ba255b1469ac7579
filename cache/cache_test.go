package cache_test

import (
	"testing"

	"github.com/TFMV/indentscore/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternCacheCompile(t *testing.T) {
	c := cache.NewPatternCache(8)

	re, err := c.Compile(`^\s*#`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("  # comment"))

	// second compile returns the cached instance
	again, err := c.Compile(`^\s*#`)
	require.NoError(t, err)
	assert.Same(t, re, again)
}

func TestPatternCacheGet(t *testing.T) {
	c := cache.NewPatternCache(8)

	_, ok := c.Get(`^\s*//`)
	assert.False(t, ok)

	re, err := c.Compile(`^\s*//`)
	require.NoError(t, err)

	cached, ok := c.Get(`^\s*//`)
	assert.True(t, ok)
	assert.Same(t, re, cached)
}

func TestPatternCacheInvalidPattern(t *testing.T) {
	c := cache.NewPatternCache(8)

	_, err := c.Compile(`[unclosed`)
	assert.Error(t, err)

	// a failed compile is not cached
	_, ok := c.Get(`[unclosed`)
	assert.False(t, ok)
}

func TestPatternCacheClear(t *testing.T) {
	c := cache.NewPatternCache(8)

	_, err := c.Compile(`^--`)
	require.NoError(t, err)

	c.Clear()
	_, ok := c.Get(`^--`)
	assert.False(t, ok)
}
