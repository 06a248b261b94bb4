package sloghook

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/tiercache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	CorruptEvery  uint64
	PromotedEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	corruptCtr  atomic.Uint64
	promotedCtr atomic.Uint64
}

var _ tiercache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) RecordCorrupt(key string, err error) {
	if h.l == nil || !sample(h.opts.CorruptEvery, &h.corruptCtr) {
		return
	}
	h.l.Warn("tiercache.record_corrupt",
		"key", h.redact(key),
		"err", err)
}

func (h *Hooks) ValueDecodeError(key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("tiercache.value_decode_error",
		"key", h.redact(key),
		"err", err)
}

func (h *Hooks) Promoted(key string) {
	if h.l == nil || !sample(h.opts.PromotedEvery, &h.promotedCtr) {
		return
	}
	h.l.Debug("tiercache.promoted",
		"key", h.redact(key))
}
