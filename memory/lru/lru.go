// Package lru provides the default memory layer: a strict
// least-recently-used cache with a hard capacity bound.
//
// Unlike the approximate layers (ristretto, bigcache) the eviction
// order here is exact: recency is defined purely by the order of Get
// and Set calls, and the oldest-untouched entry is evicted first.
package lru

import (
	"container/list"
	"errors"
	"sync"
)

type entry[V any] struct {
	key   string
	value V
}

// Cache is a mutex-guarded LRU: a doubly-linked list in recency order
// (oldest at the front) plus a hash index for O(1) lookup.
type Cache[V any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // of *entry[V]
	index    map[string]*list.Element
}

// New constructs an LRU holding at most capacity entries.
func New[V any](capacity int) (*Cache[V], error) {
	if capacity < 1 {
		return nil, errors.New("lru: capacity must be >= 1")
	}
	return &Cache[V]{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[string]*list.Element, capacity),
	}, nil
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToBack(el)
	return el.Value.(*entry[V]).value, true
}

// Set inserts or replaces the value for key. A replace only touches
// recency; a fresh insert at capacity evicts the oldest entry first.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		el.Value.(*entry[V]).value = value
		c.order.MoveToBack(el)
		return
	}
	if c.order.Len() == c.capacity {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(*entry[V]).key)
	}
	c.index[key] = c.order.PushBack(&entry[V]{key: key, value: value})
}

// Clear drops all entries; capacity is unchanged.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.index = make(map[string]*list.Element, c.capacity)
}

// Len reports the current number of entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Contains reports whether key is cached, without touching recency.
func (c *Cache[V]) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.index[key]
	return ok
}

func (c *Cache[V]) Close() error { return nil }
