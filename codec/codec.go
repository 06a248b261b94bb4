// Package codec defines how cached values are (de)serialized.
//
// A Codec must round-trip: Decode(Encode(v)) == v for every value the
// caller stores. The cache never inspects a value except through its
// codec, so swapping implementations changes only the persisted bytes,
// not cache semantics. Records written with one codec are not readable
// with another; bump the cache version tag when switching.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
