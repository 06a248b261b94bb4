// Package ristretto adapts dgraph-io/ristretto as a memory layer.
//
// Ristretto's admission and eviction are approximate (TinyLFU), not
// strict LRU: a Set may be rejected under pressure and recency is
// sampled. That is within the memory.Store contract (misses are always
// legal) but callers needing deterministic eviction order should use
// the default lru layer instead.
package ristretto

import (
	"errors"

	rc "github.com/dgraph-io/ristretto"

	mem "github.com/unkn0wn-root/tiercache/memory"
)

type Store[V any] struct {
	c *rc.Cache
}

var _ mem.Store[struct{}] = (*Store[struct{}])(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New[V any](cfg Config) (*Store[V], error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store[V]{c: c}, nil
}

func (s *Store[V]) Get(key string) (V, bool) {
	var zero V
	raw, ok := s.c.Get(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(V)
	if !ok {
		// drop unexpected entry shape
		s.c.Del(key)
		return zero, false
	}
	return v, true
}

func (s *Store[V]) Set(key string, value V) {
	// Unit cost per entry; rejected writes are ordinary misses later.
	s.c.Set(key, value, 1)
}

func (s *Store[V]) Clear() {
	s.c.Clear()
}

func (s *Store[V]) Close() error {
	s.c.Wait()
	s.c.Close()
	return nil
}

// Metrics exposes ristretto metrics when enabled in Config
// (not part of the memory.Store contract).
func (s *Store[V]) Metrics() *rc.Metrics { return s.c.Metrics }
