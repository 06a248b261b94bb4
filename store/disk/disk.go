// Package disk implements the default persistent layer: a
// content-addressed directory with one record file per key.
//
// The filename is the lowercase hex digest of a fast non-cryptographic
// hash (xxhash64) over the UTF-8 key bytes; collision safety comes from
// the stored-key re-check on read, not from hash strength. Writes go
// through write-to-temp-then-rename so readers never observe a
// half-written record from this process. Nothing is ever deleted:
// records invalidated by a version bump (or shadowed by a collision)
// stay on disk until a later Write at the same path overwrites them.
package disk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/natefinch/atomic"

	"github.com/unkn0wn-root/tiercache/internal/record"
	st "github.com/unkn0wn-root/tiercache/store"
)

type Store struct {
	dir string
}

var _ st.Store = (*Store)(nil)

// New creates the directory (including parents) if absent and returns
// a store rooted there.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("disk: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("disk: create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the file a key resolves to. Exposed for tooling and
// tests; the mapping is stable across runs.
func (s *Store) Path(key string) string {
	sum := xxhash.Sum64String(key)
	return filepath.Join(s.dir, fmt.Sprintf("%016x", sum))
}

func (s *Store) Read(_ context.Context, key string, version []byte) ([]byte, bool, error) {
	b, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("disk: read %q: %w", key, err)
	}

	ver, storedKey, payload, err := record.Decode(b)
	if err != nil {
		return nil, false, fmt.Errorf("disk: record for %q: %w", key, err)
	}
	if !bytes.Equal(ver, version) {
		return nil, false, nil // written under another version tag
	}
	if !bytes.Equal(storedKey, []byte(key)) {
		return nil, false, nil // another key hashed to this path
	}
	return payload, true, nil
}

func (s *Store) Write(_ context.Context, key string, version, payload []byte) error {
	b := record.Encode(version, []byte(key), payload)
	if err := atomic.WriteFile(s.Path(key), bytes.NewReader(b)); err != nil {
		return fmt.Errorf("disk: write %q: %w", key, err)
	}
	return nil
}

func (s *Store) Close(context.Context) error { return nil }
