// Package asynchook decouples hook sinks from the cache's hot path.
//
// Events are queued on a bounded channel and delivered by worker
// goroutines; when the queue is full events are dropped rather than
// blocking a cache read.
//
// usage:
//
//	raw := sloghook.New(slog.Default(), sloghook.Options{CorruptEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := tiercache.New[Entry](tiercache.Options[Entry]{
//	    Directory: dir,
//	    Version:   "v1",
//	    Hooks:     hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/tiercache"
)

type Hooks struct {
	inner tiercache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once

	// guards q against send-after-close; events arriving after Close
	// are dropped, not panicked on
	mu     sync.RWMutex
	closed bool
}

var _ tiercache.Hooks = (*Hooks)(nil)

func New(inner tiercache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		h.mu.Unlock()
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) RecordCorrupt(key string, err error) {
	h.try(func() { h.inner.RecordCorrupt(key, err) })
}
func (h *Hooks) ValueDecodeError(key string, err error) {
	h.try(func() { h.inner.ValueDecodeError(key, err) })
}
func (h *Hooks) Promoted(key string) { h.try(func() { h.inner.Promoted(key) }) }
