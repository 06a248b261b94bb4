package tiercache

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; the cache calls them
// on hot paths. Wrap with hooks/async to offload slow sinks.
type Hooks interface {
	// A persisted record failed to parse and was treated as a miss.
	// The record stays in place until the next Set overwrites it.
	RecordCorrupt(key string, err error)

	// A record parsed and matched, but its payload failed to decode
	// (usually a codec change without a version bump). Treated as a miss.
	ValueDecodeError(key string, err error)

	// A persistent-layer hit was copied into the memory layer.
	Promoted(key string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) RecordCorrupt(string, error)    {}
func (NopHooks) ValueDecodeError(string, error) {}
func (NopHooks) Promoted(string)                {}
