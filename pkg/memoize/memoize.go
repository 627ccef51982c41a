// Package memoize caches method results per distinct argument signature.
//
// A Cache is owned by the instance whose methods it memoizes; embed one in
// the owning struct and route calls through Do. The zero value is ready to
// use and allocates its backing map on first call. By default the cache is
// unbounded and never evicts; WithCapacity switches it to an LRU store.
//
// A Cache is not synchronized. Concurrent calls against the same instance
// may compute a value more than once; stored entries are never corrupted
// since writes are last-write-wins on a single key.
package memoize

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a per-instance memoization cache
type Cache struct {
	entries map[string]any
	bounded *lru.Cache[string, any]
}

// Option is a configuration option for a Cache
type Option func(*Cache)

// WithCapacity bounds the cache to n entries with LRU eviction. The
// default cache is unbounded.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		// lru.New only fails for non-positive sizes
		if bounded, err := lru.New[string, any](n); err == nil {
			c.bounded = bounded
		}
	}
}

// NewCache creates a memoization cache
func NewCache(opts ...Option) *Cache {
	c := &Cache{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do returns the cached result for name plus the argument signature,
// computing and storing it on first call. The key is the concatenation of
// name and the lossy stringification of each argument (see Key).
func Do[R any](c *Cache, name string, compute func() R, args ...any) R {
	key := name + Key(args...)
	if v, ok := c.lookup(key); ok {
		return v.(R)
	}
	result := compute()
	c.store(key, result)
	return result
}

// Func1 wraps a one-argument function with a cache of its own
func Func1[A any, R any](name string, fn func(A) R, opts ...Option) func(A) R {
	c := NewCache(opts...)
	return func(a A) R {
		return Do(c, name, func() R { return fn(a) }, a)
	}
}

// Func2 wraps a two-argument function with a cache of its own
func Func2[A, B any, R any](name string, fn func(A, B) R, opts ...Option) func(A, B) R {
	c := NewCache(opts...)
	return func(a A, b B) R {
		return Do(c, name, func() R { return fn(a, b) }, a, b)
	}
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	if c.bounded != nil {
		return c.bounded.Len()
	}
	return len(c.entries)
}

// Flush drops every cached entry
func (c *Cache) Flush() {
	if c.bounded != nil {
		c.bounded.Purge()
		return
	}
	c.entries = nil
}

func (c *Cache) lookup(key string) (any, bool) {
	if c.bounded != nil {
		return c.bounded.Get(key)
	}
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) store(key string, v any) {
	if c.bounded != nil {
		c.bounded.Add(key, v)
		return
	}
	if c.entries == nil {
		c.entries = make(map[string]any)
	}
	c.entries[key] = v
}
