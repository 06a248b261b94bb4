package codec

import "google.golang.org/protobuf/proto"

// Protobuf serializes proto.Message values using google.golang.org/protobuf.
// The zero value is NOT ready to use: decoding needs a concrete message
// to unmarshal into, so construct with NewProtobuf and a constructor.
//
// Protobuf payloads are not self-describing; pair a message schema
// change with a cache version bump, as wire-compatible field edits are
// the only safe in-place evolution.
type Protobuf[T proto.Message] struct {
	new func() T
}

// NewProtobuf constructs a Protobuf codec around a message constructor,
// e.g. NewProtobuf(func() *addrpb.Entry { return &addrpb.Entry{} }).
func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
