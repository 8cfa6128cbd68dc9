// Package lru provides a generic LRU cache built on the intrusive list.
//
// Each cache entry embeds its recency link, so Get/Set reorderings are pure
// pointer rewrites with no allocation beyond the entry itself. The package
// doubles as the reference consumer of github.com/motoki317/ilist; the API
// mirrors github.com/motoki317/lru.
package lru

import (
	"github.com/motoki317/ilist"
)

// byRecency tags the recency chain inside entries.
type byRecency[K comparable, V any] struct{}

func (byRecency[K, V]) NodeOf(e *entry[K, V]) *ilist.Node[entry[K, V], byRecency[K, V]] {
	return &e.node
}

// entry is a single key-value pair. The recency link is embedded, so moving
// an entry within the order is O(1) and allocation-free.
type entry[K comparable, V any] struct {
	node  ilist.Node[entry[K, V], byRecency[K, V]]
	key   K
	value V
}

// Cache is a non-goroutine-safe LRU cache.
type Cache[K comparable, V any] struct {
	entries  map[K]*entry[K, V]
	order    ilist.List[entry[K, V], byRecency[K, V]] // front is most recently used
	capacity int
}

type config struct {
	capacity int
}

// Option configures a Cache.
type Option func(c *config)

// WithCapacity sets the maximum number of entries.
// Capacity of 0 or less means the cache never evicts.
func WithCapacity(capacity int) Option {
	return func(c *config) {
		c.capacity = capacity
	}
}

// New creates a new Cache.
func New[K comparable, V any](options ...Option) *Cache[K, V] {
	c := config{}
	for _, option := range options {
		option(&c)
	}

	hint := c.capacity
	if hint < 0 {
		hint = 0
	}
	return &Cache[K, V]{
		entries:  make(map[K]*entry[K, V], hint),
		capacity: c.capacity,
	}
}

// Get looks up a key's value and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (v V, ok bool) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	c.order.MoveToFront(e)
	return e.value, true
}

// Peek looks up a key's value without updating its recency.
func (c *Cache[K, V]) Peek(key K) (v V, ok bool) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	return e.value, true
}

// Set stores a value for key and marks it most recently used, evicting the
// least recently used entry if the cache is over capacity.
func (c *Cache[K, V]) Set(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.order.MoveToFront(e)
		return
	}

	e := &entry[K, V]{key: key, value: value}
	c.entries[key] = e
	c.order.PushFront(e)

	if c.capacity > 0 && len(c.entries) > c.capacity {
		c.DeleteOldest()
	}
}

// Delete removes key from the cache, reporting whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	delete(c.entries, key)
	c.order.Remove(e)
	return true
}

// DeleteOldest removes and returns the least recently used entry.
func (c *Cache[K, V]) DeleteOldest() (key K, v V, ok bool) {
	e := c.order.PopBack()
	if e == nil {
		return
	}
	delete(c.entries, e.key)
	return e.key, e.value, true
}

// DeleteIf deletes all entries that match the predicate.
func (c *Cache[K, V]) DeleteIf(predicate func(key K, value V) bool) {
	for it := c.order.Begin(); it != c.order.End(); {
		e := it.Elem()
		if predicate(e.key, e.value) {
			delete(c.entries, e.key)
			it = c.order.Erase(it)
		} else {
			it = it.Next()
		}
	}
}

// Flush removes all entries.
func (c *Cache[K, V]) Flush() {
	// This form is optimized by the Go compiler into an internal mapclear()
	// instead of a loop. https://go.dev/doc/go1.11#performance
	for key := range c.entries {
		delete(c.entries, key)
	}
	c.order.Clear()
}

// Len is the current number of entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}
