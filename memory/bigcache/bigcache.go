// Package bigcache adapts allegro/bigcache as a memory layer.
//
// BigCache stores bytes, so values pass through a codec on the way in
// and out; a codec failure simply skips the entry (the persistent
// layer remains the source of truth). Capacity is governed by
// BigCache's global windows rather than an entry count.
package bigcache

import (
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/tiercache/codec"
	mem "github.com/unkn0wn-root/tiercache/memory"
)

type Store[V any] struct {
	c     *bc.BigCache
	codec codec.Codec[V]
}

var _ mem.Store[struct{}] = (*Store[struct{}])(nil)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New[V any](cfg Config, cd codec.Codec[V]) (*Store[V], error) {
	if cd == nil {
		return nil, errors.New("bigcache: codec is required")
	}
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Store[V]{c: c, codec: cd}, nil
}

func (s *Store[V]) Get(key string) (V, bool) {
	var zero V
	b, err := s.c.Get(key)
	if err != nil {
		return zero, false
	}
	v, err := s.codec.Decode(b)
	if err != nil {
		_ = s.c.Delete(key)
		return zero, false
	}
	return v, true
}

func (s *Store[V]) Set(key string, value V) {
	b, err := s.codec.Encode(value)
	if err != nil {
		return // best effort; entry is simply not cached
	}
	_ = s.c.Set(key, b)
}

func (s *Store[V]) Clear() {
	_ = s.c.Reset()
}

func (s *Store[V]) Close() error {
	return s.c.Close()
}
