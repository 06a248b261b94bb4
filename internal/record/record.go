package record

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Persistent record layout (all lengths little-endian uint64):
//
//	verLen(u64 le) | version(verLen) | keyLen(u64 le) | key(keyLen) | valLen(u64 le) | value(valLen)
//
// The version and key fields are re-checked by the store on read; a
// record written under a different version tag, or sitting at a
// colliding path, decodes fine but is rejected there as a miss.

var ErrCorrupt = errors.New("tiercache: corrupt record")

const lenField = 8

// Encode frames version, key and value into a single record.
func Encode(version, key, value []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(3*lenField + len(version) + len(key) + len(value))

	var u8 [lenField]byte

	binary.LittleEndian.PutUint64(u8[:], uint64(len(version)))
	buf.Write(u8[:])
	buf.Write(version)

	binary.LittleEndian.PutUint64(u8[:], uint64(len(key)))
	buf.Write(u8[:])
	buf.Write(key)

	binary.LittleEndian.PutUint64(u8[:], uint64(len(value)))
	buf.Write(u8[:])
	buf.Write(value)

	return buf.Bytes()
}

// Decode splits a record into its version, key and value fields.
// The returned slices alias b. Truncated input, a length field
// announcing more bytes than remain, or trailing bytes after the value
// field all yield ErrCorrupt.
func Decode(b []byte) (version, key, value []byte, err error) {
	off := 0

	version, off, err = field(b, off)
	if err != nil {
		return nil, nil, nil, err
	}
	key, off, err = field(b, off)
	if err != nil {
		return nil, nil, nil, err
	}
	value, off, err = field(b, off)
	if err != nil {
		return nil, nil, nil, err
	}
	if off != len(b) {
		return nil, nil, nil, ErrCorrupt
	}
	return version, key, value, nil
}

func field(b []byte, off int) ([]byte, int, error) {
	if off+lenField > len(b) {
		return nil, 0, ErrCorrupt
	}
	n := binary.LittleEndian.Uint64(b[off : off+lenField])
	off += lenField
	if n > uint64(len(b)-off) { // overflow-safe bound check
		return nil, 0, ErrCorrupt
	}
	return b[off : off+int(n)], off + int(n), nil
}
