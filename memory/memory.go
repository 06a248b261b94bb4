// Package memory defines the bounded in-process layer of the cache.
//
// A Store holds decoded values and tracks access recency; it may drop
// entries at any time (capacity pressure), so a miss is always legal.
// The persistent layer below it is the source of truth for anything
// the memory layer has let go.
//
// Implementations must be safe for concurrent use by a single Cache
// instance.
package memory

// Store is a bounded recency-tracking map of decoded values.
type Store[V any] interface {
	// Get returns the value for key and marks it most recently used.
	Get(key string) (V, bool)

	// Set inserts or replaces the value for key, marking it most
	// recently used. Implementations evict to stay within their bound.
	Set(key string, value V)

	// Clear drops all entries. The capacity bound is unchanged.
	Clear()

	// Close releases resources.
	Close() error
}
