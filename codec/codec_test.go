package codec

import (
	"bytes"
	"reflect"
	"testing"

	"google.golang.org/protobuf/types/known/wrapperspb"
)

type sample struct {
	Name  string            `json:"name" msgpack:"name"`
	Count int               `json:"count" msgpack:"count"`
	Tags  []string          `json:"tags" msgpack:"tags"`
	Meta  map[string]string `json:"meta" msgpack:"meta"`
}

func TestStructCodecsRoundTrip(t *testing.T) {
	want := sample{
		Name:  "帯広市",
		Count: 3,
		Tags:  []string{"a", "b"},
		Meta:  map[string]string{"pref": "北海道"},
	}
	codecs := map[string]Codec[sample]{
		"json":           JSON[sample]{},
		"msgpack":        Msgpack[sample]{},
		"cbor-canonical": MustCBOR[sample](true),
		"cbor-preferred": MustCBOR[sample](false),
	}
	for name, c := range codecs {
		enc, err := c.Encode(want)
		if err != nil {
			t.Fatalf("%s: Encode: %v", name, err)
		}
		got, err := c.Decode(enc)
		if err != nil {
			t.Fatalf("%s: Decode: %v", name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s: round trip mismatch: got %+v want %+v", name, got, want)
		}
	}
}

func TestCanonicalCBORIsDeterministic(t *testing.T) {
	c := MustCBOR[map[string]int](true)
	v := map[string]int{"b": 2, "a": 1, "c": 3}

	first, err := c.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i := 0; i < 8; i++ {
		enc, err := c.Encode(v)
		if err != nil {
			t.Fatalf("Encode #%d: %v", i, err)
		}
		if !bytes.Equal(enc, first) {
			t.Fatalf("canonical encoding not stable: %x vs %x", enc, first)
		}
	}
}

func TestProtobufRoundTrip(t *testing.T) {
	c := NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })

	enc, err := c.Encode(wrapperspb.String("hello"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.GetValue() != "hello" {
		t.Fatalf("round trip mismatch: %q", got.GetValue())
	}
}

func TestIdentityCodecs(t *testing.T) {
	raw := []byte{0x00, 0xFF, 0x7F}
	enc, err := Bytes{}.Encode(raw)
	if err != nil || !bytes.Equal(enc, raw) {
		t.Fatalf("Bytes.Encode: %x err=%v", enc, err)
	}
	dec, err := Bytes{}.Decode(enc)
	if err != nil || !bytes.Equal(dec, raw) {
		t.Fatalf("Bytes.Decode: %x err=%v", dec, err)
	}

	senc, err := String{}.Encode("日本橋")
	if err != nil || !bytes.Equal(senc, []byte("日本橋")) {
		t.Fatalf("String.Encode: %x err=%v", senc, err)
	}
	s, err := String{}.Decode(senc)
	if err != nil || s != "日本橋" {
		t.Fatalf("String.Decode: %q err=%v", s, err)
	}
}

func TestLimitGuardsDecodeOnly(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 4}

	// Encode is forwarded regardless of size.
	enc, err := c.Encode("123456")
	if err != nil || string(enc) != "123456" {
		t.Fatalf("Encode: %q err=%v", enc, err)
	}

	if got, err := c.Decode([]byte("1234")); err != nil || got != "1234" {
		t.Fatalf("Decode at limit: %q err=%v", got, err)
	}
	if _, err := c.Decode([]byte("12345")); err == nil {
		t.Fatalf("Decode over limit should fail")
	}

	// MaxDecode <= 0 disables the guard.
	unlimited := Limit[string]{Inner: String{}}
	if got, err := unlimited.Decode([]byte("123456789")); err != nil || got != "123456789" {
		t.Fatalf("unlimited Decode: %q err=%v", got, err)
	}
}
