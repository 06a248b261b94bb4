// Package redis implements the persistent layer on Redis.
//
// Values carry the same record framing as the disk store, so version
// isolation and the stored-key re-check behave identically; only the
// addressing differs (Redis keys are binary safe, so no hashing is
// needed). Entries are written without expiry to match the disk
// store's keep-until-overwritten lifecycle; bound growth with Redis's
// own eviction policy if needed.
package redis

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/tiercache/internal/record"
	st "github.com/unkn0wn-root/tiercache/store"
)

var ErrNilClient = errors.New("redis store: nil client")

type Store struct {
	rdb         goredis.UniversalClient
	prefix      string
	closeClient bool
}

var _ st.Store = (*Store)(nil)

type Config struct {
	Client goredis.UniversalClient
	// Prefix namespaces this cache's keys, e.g. "tiercache:addr".
	Prefix string
	// CloseClient: set true only if this store exclusively owns the client.
	CloseClient bool
}

func New(cfg Config) (*Store, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Store{rdb: cfg.Client, prefix: cfg.Prefix, closeClient: cfg.CloseClient}, nil
}

func (s *Store) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}

func (s *Store) Read(ctx context.Context, key string, version []byte) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}

	ver, storedKey, payload, err := record.Decode(b)
	if err != nil {
		return nil, false, fmt.Errorf("redis store: record for %q: %w", key, err)
	}
	if !bytes.Equal(ver, version) {
		return nil, false, nil
	}
	if !bytes.Equal(storedKey, []byte(key)) {
		return nil, false, nil // foreign write under our prefix
	}
	return payload, true, nil
}

func (s *Store) Write(ctx context.Context, key string, version, payload []byte) error {
	b := record.Encode(version, []byte(key), payload)
	return s.rdb.Set(ctx, s.key(key), b, 0).Err()
}

// Close releases the underlying redis client only when this store owns
// it. Safe to call multiple times; repeated calls become no-ops.
func (s *Store) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
