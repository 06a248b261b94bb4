// Package store defines the persistent layer of the cache.
//
// A Store keeps one versioned record per key. The version tag is
// supplied on every call: a record written under a different tag is
// invisible (an ordinary miss), which lets incompatible schema runs
// share a backing store without deleting each other's data.
//
// Implementations must be byte-for-byte transparent: Read must return
// exactly the payload previously passed to Write for the same key and
// version — no re-encoding, no mutation.
package store

import "context"

// Store is a persistent byte store addressed by key and version tag.
type Store interface {
	// Read returns the payload stored for key under version.
	// Miss => (nil, false, nil). A record whose stored version or key
	// does not byte-for-byte match the arguments is a miss, never an
	// error. A record that cannot be parsed at all is reported as
	// record.ErrCorrupt (wrapped); the caller decides the policy.
	Read(ctx context.Context, key string, version []byte) ([]byte, bool, error)

	// Write persists payload for key under version, overwriting any
	// previous record at that key regardless of its version.
	Write(ctx context.Context, key string, version, payload []byte) error

	// Close releases resources.
	Close(ctx context.Context) error
}
