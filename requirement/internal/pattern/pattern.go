// Package pattern compiles and caches the regular expressions used by the
// pattern checks.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// ErrInvalidPattern is returned when a pattern cannot be compiled.
var ErrInvalidPattern = errors.New("invalid regular expression")

// ErrInvalidCacheSize is returned when the cache bound is not positive.
var ErrInvalidCacheSize = errors.New("pattern cache size must be positive")

// DefaultCacheSize is the cache bound used until SetCacheSize is called.
const DefaultCacheSize = 1024

// When the bound is reached the whole cache is dropped, so dynamic
// caller-provided patterns cannot grow it without limit.
var (
	mu        sync.RWMutex
	cache     = make(map[string]*regexp.Regexp)
	cacheSize = DefaultCacheSize
)

func load(key string) (*regexp.Regexp, bool) {
	mu.RLock()
	defer mu.RUnlock()

	re, ok := cache[key]

	return re, ok
}

func store(key string, re *regexp.Regexp) {
	mu.Lock()
	defer mu.Unlock()

	if len(cache) >= cacheSize {
		cache = make(map[string]*regexp.Regexp)
	}

	cache[key] = re
}

// Compile compiles pattern with RE2 semantics, returning a cached instance
// when the same pattern was compiled before.
func Compile(pattern string) (*regexp.Regexp, error) {
	if cached, ok := load(pattern); ok {
		return cached, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	store(pattern, re)

	return re, nil
}

// MatchString reports whether input contains any match of pattern.
func MatchString(pattern, input string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(input), nil
}

// SetCacheSize changes the cache bound. Existing entries are dropped.
func SetCacheSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, size)
	}

	mu.Lock()
	defer mu.Unlock()

	cacheSize = size
	cache = make(map[string]*regexp.Regexp)

	return nil
}

// CacheSize returns the current cache bound.
func CacheSize() int {
	mu.RLock()
	defer mu.RUnlock()

	return cacheSize
}

// ClearCache drops every cached pattern.
func ClearCache() {
	mu.Lock()
	defer mu.Unlock()

	cache = make(map[string]*regexp.Regexp)
}
