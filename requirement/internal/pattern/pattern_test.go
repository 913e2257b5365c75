//go:build unit

package pattern

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCacheLen() int {
	mu.RLock()
	defer mu.RUnlock()

	return len(cache)
}

// Tests in this file share the package-level cache and do not run in parallel.

func TestCompile(t *testing.T) {
	ClearCache()

	t.Run("valid pattern", func(t *testing.T) {
		re, err := Compile(`^\d{4}-\d{2}-\d{2}$`)

		require.NoError(t, err)
		assert.True(t, re.MatchString("2026-01-27"))
		assert.False(t, re.MatchString("invalid"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		re, err := Compile(`[invalid(`)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPattern)
		assert.Nil(t, re)
	})

	t.Run("caching", func(t *testing.T) {
		ClearCache()

		re1, err1 := Compile(`^\d+$`)
		re2, err2 := Compile(`^\d+$`)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Same(t, re1, re2)
		assert.Equal(t, 1, testCacheLen())
	})
}

func TestMatchString(t *testing.T) {
	ClearCache()

	matched, err := MatchString(`\d+`, "0123456789")
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = MatchString(`\d+`, "aaaaaaaaaa")
	require.NoError(t, err)
	assert.False(t, matched)

	matched, err = MatchString(`(`, "x")
	require.ErrorIs(t, err, ErrInvalidPattern)
	assert.False(t, matched)
}

func TestSetCacheSize(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, SetCacheSize(DefaultCacheSize))
	})

	require.ErrorIs(t, SetCacheSize(0), ErrInvalidCacheSize)
	require.ErrorIs(t, SetCacheSize(-3), ErrInvalidCacheSize)

	require.NoError(t, SetCacheSize(2))
	assert.Equal(t, 2, CacheSize())

	for i := 0; i < 5; i++ {
		_, err := Compile(fmt.Sprintf("^p%d$", i))
		require.NoError(t, err)
		assert.LessOrEqual(t, testCacheLen(), 2)
	}
}
