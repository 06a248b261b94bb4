// Package tiercache implements a two-level key/value cache: a bounded
// in-memory LRU layer in front of a persistent, content-addressed
// store. Reads consult memory first, then the persistent layer,
// promoting hits back into memory; writes populate both layers.
//
// Components:
//   - memory.Store[V]: bounded recency-tracking layer (strict LRU by
//     default; ristretto/bigcache adapters available).
//   - store.Store: persistent versioned-record layer (one file per
//     key on disk by default; Redis implementation available).
//   - codec.Codec[V]: (de)serializes V <-> []byte (JSON by default).
//
// Every persisted record embeds the cache's version tag and its own
// key. A record written under a different tag (or sitting at a
// colliding path) is treated as nonexistent, not as an error: old
// files stay on disk, unreachable until overwritten. There is no TTL
// and no garbage collection; entries live until evicted from memory by
// capacity pressure or overwritten on disk.
//
// Typical use:
//
//	cache, err := tiercache.New[Entry](tiercache.Options[Entry]{
//	    Directory: "/var/cache/addr",
//	    Version:   "v1",
//	    Capacity:  128,
//	})
//	...
//	v, err := cache.Get(ctx, key)
//	if tiercache.IsNotFound(err) { ... }
//
// A single Cache instance is safe for concurrent use when its memory
// and persistent layers are (the defaults are). Multiple processes
// sharing one directory get per-file atomicity from the rename-based
// writes but no cross-process ordering.
package tiercache
