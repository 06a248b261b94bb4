package tiercache

import (
	"context"
	"errors"
	"fmt"

	c "github.com/unkn0wn-root/tiercache/codec"
	"github.com/unkn0wn-root/tiercache/internal/record"
	mem "github.com/unkn0wn-root/tiercache/memory"
	"github.com/unkn0wn-root/tiercache/memory/lru"
	st "github.com/unkn0wn-root/tiercache/store"
	"github.com/unkn0wn-root/tiercache/store/disk"
)

type cache[V any] struct {
	version []byte
	memory  mem.Store[V]
	store   st.Store
	codec   c.Codec[V]
	log     Logger
	hooks   Hooks
}

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.Version == "" {
		return nil, fmt.Errorf("tiercache: version is required")
	}
	if opts.Store == nil && opts.Directory == "" {
		return nil, fmt.Errorf("tiercache: directory is required")
	}

	cc := &cache[V]{
		version: []byte(opts.Version),
		memory:  opts.Memory,
		store:   opts.Store,
	}

	// defaults
	cc.log = coalesce[Logger](opts.Logger, NopLogger{})
	cc.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if opts.Codec != nil {
		cc.codec = opts.Codec
	} else {
		cc.codec = c.JSON[V]{}
	}

	if cc.memory == nil {
		m, err := lru.New[V](coalesce[int](opts.Capacity, DefaultCapacity))
		if err != nil {
			return nil, err
		}
		cc.memory = m
	}
	if cc.store == nil {
		s, err := disk.New(opts.Directory)
		if err != nil {
			return nil, err
		}
		cc.store = s
	}
	return cc, nil
}

func (cc *cache[V]) Get(ctx context.Context, key string) (V, error) {
	if v, ok := cc.memory.Get(key); ok {
		return v, nil
	}
	var zero V

	payload, ok, err := cc.store.Read(ctx, key, cc.version)
	if err != nil {
		if errors.Is(err, record.ErrCorrupt) {
			// Unreadable record, likely a crash mid-write by an
			// unsynchronized writer. Degrades to a miss; the next Set
			// at this key overwrites it.
			cc.log.Warn("corrupt record treated as miss", Fields{"key": key, "err": err})
			cc.hooks.RecordCorrupt(key, err)
			return zero, &NotFoundError{Key: key}
		}
		return zero, err
	}
	if !ok {
		return zero, &NotFoundError{Key: key}
	}

	v, err := cc.codec.Decode(payload)
	if err != nil {
		cc.log.Warn("undecodable payload treated as miss", Fields{"key": key, "err": err})
		cc.hooks.ValueDecodeError(key, err)
		return zero, &NotFoundError{Key: key}
	}

	// promote so the next read is memory-only
	cc.memory.Set(key, v)
	cc.hooks.Promoted(key)
	return v, nil
}

func (cc *cache[V]) GetOr(ctx context.Context, key string, fallback V) (V, error) {
	v, err := cc.Get(ctx, key)
	if err != nil {
		if IsNotFound(err) {
			return fallback, nil
		}
		var zero V
		return zero, err
	}
	return v, nil
}

func (cc *cache[V]) Set(ctx context.Context, key string, value V) error {
	payload, err := cc.codec.Encode(value)
	if err != nil {
		return err // neither layer touched
	}
	cc.memory.Set(key, value)
	return cc.store.Write(ctx, key, cc.version, payload)
}

func (cc *cache[V]) ClearMemory() {
	cc.memory.Clear()
}

func (cc *cache[V]) Close(ctx context.Context) error {
	// Close memory first (best effort)
	if cc.memory != nil {
		_ = cc.memory.Close()
	}
	if cc.store != nil {
		return cc.store.Close(ctx)
	}
	return nil
}
