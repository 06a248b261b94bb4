package tiercache

import (
	"context"

	c "github.com/unkn0wn-root/tiercache/codec"
	mem "github.com/unkn0wn-root/tiercache/memory"
	st "github.com/unkn0wn-root/tiercache/store"
)

// Cache is the two-level cache API. V is the caller's value type;
// serialization is handled by a pluggable codec.Codec[V].
type Cache[V any] interface {
	// Get returns the value for key, consulting memory first and then
	// the persistent layer (promoting the hit into memory). A key
	// absent from both layers yields a *NotFoundError.
	Get(ctx context.Context, key string) (V, error)

	// GetOr is Get with a fallback: a not-found miss returns fallback
	// and a nil error. Other errors propagate unchanged.
	GetOr(ctx context.Context, key string, fallback V) (V, error)

	// Set stores value in both layers. When it returns nil the key is
	// retrievable from either layer (memory subject to eviction).
	Set(ctx context.Context, key string, value V) error

	// ClearMemory drops every memory-layer entry; the persistent layer
	// is untouched.
	ClearMemory()

	// Close releases layer resources.
	Close(ctx context.Context) error
}

// Options tune the cache. Only Version is always required; Directory
// is required unless a Store is injected. Everything else defaults.
type Options[V any] struct {
	// Directory roots the default disk store; created (with parents)
	// if missing. Ignored when Store is set.
	Directory string

	// Version tags every persisted record. Records carrying another
	// tag are invisible to this instance, so bumping it invalidates
	// the whole persistent cache without deleting anything.
	Version string

	Capacity int          // memory entries; 0 => 128
	Codec    c.Codec[V]   // nil => codec.JSON[V]
	Memory   mem.Store[V] // nil => strict LRU bounded by Capacity
	Store    st.Store     // nil => disk store rooted at Directory
	Logger   Logger       // nil => NopLogger
	Hooks    Hooks        // nil => NopHooks
}

// DefaultCapacity bounds the default memory layer when Options.Capacity
// is zero.
const DefaultCapacity = 128

func New[V any](opts Options[V]) (Cache[V], error) {
	return newCache[V](opts)
}
