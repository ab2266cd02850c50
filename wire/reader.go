// Package wire deserializes the raw transaction and block byte stream of a
// Bitcoin-derived chain into structured records, and computes the
// version-2 rich transaction identifier.
package wire

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

var endian = binary.LittleEndian

// ErrTruncatedFormat is returned whenever a read runs past the end of the
// underlying buffer.
var ErrTruncatedFormat = errors.New("truncated format")

// Reader is a stateful cursor over an externally-owned byte buffer. It is
// single-use: once a block or transaction has been read, the Reader backing
// it is discarded. The cursor may be saved and restored, which
// readTxOutput uses to peek a tentative contract-output tag.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential reading starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

// Pos returns the current cursor offset into the original buffer.
func (r *Reader) Pos() int {
	return r.pos
}

// Mark returns an opaque cursor position that can later be passed to Reset
// to rewind the reader, without copying the buffer.
func (r *Reader) Mark() int {
	return r.pos
}

// Reset rewinds the cursor to a position previously returned by Mark.
func (r *Reader) Reset(mark int) {
	r.pos = mark
}

func (r *Reader) require(n int) error {
	if n < 0 || n > r.Len() {
		return ErrTruncatedFormat
	}
	return nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadNBytes reads and returns the next n bytes. The returned slice is a
// view into the reader's backing buffer, not a copy.
func (r *Reader) ReadNBytes(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadVarInt reads a Bitcoin variable-length integer: a discriminant byte
// n; if n<253 the value is n; if n==253 a following LE u16; if n==254 a
// following LE u32; if n==255 a following LE u64.
func (r *Reader) ReadVarInt() (uint64, error) {
	n, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	switch {
	case n < 253:
		return uint64(n), nil
	case n == 253:
		v, err := r.ReadUint16LE()
		return uint64(v), err
	case n == 254:
		v, err := r.ReadUint32LE()
		return uint64(v), err
	default:
		return r.ReadUint64LE()
	}
}

// ReadVarBytes reads a varint length followed by that many bytes.
func (r *Reader) ReadVarBytes() ([]byte, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	return r.ReadNBytes(int(n))
}

// ReadInt32LE reads a little-endian two's-complement 32-bit integer.
func (r *Reader) ReadInt32LE() (int32, error) {
	b, err := r.ReadNBytes(4)
	if err != nil {
		return 0, err
	}
	return int32(endian.Uint32(b)), nil
}

// ReadUint16LE reads a little-endian unsigned 16-bit integer.
func (r *Reader) ReadUint16LE() (uint16, error) {
	b, err := r.ReadNBytes(2)
	if err != nil {
		return 0, err
	}
	return endian.Uint16(b), nil
}

// ReadUint16BE reads a big-endian unsigned 16-bit integer.
func (r *Reader) ReadUint16BE() (uint16, error) {
	b, err := r.ReadNBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32LE reads a little-endian unsigned 32-bit integer.
func (r *Reader) ReadUint32LE() (uint32, error) {
	b, err := r.ReadNBytes(4)
	if err != nil {
		return 0, err
	}
	return endian.Uint32(b), nil
}

// ReadInt64LE reads a little-endian two's-complement 64-bit integer.
func (r *Reader) ReadInt64LE() (int64, error) {
	b, err := r.ReadNBytes(8)
	if err != nil {
		return 0, err
	}
	return int64(endian.Uint64(b)), nil
}

// ReadUint64LE reads a little-endian unsigned 64-bit integer.
func (r *Reader) ReadUint64LE() (uint64, error) {
	b, err := r.ReadNBytes(8)
	if err != nil {
		return 0, err
	}
	return endian.Uint64(b), nil
}

// ReadUint256LE reads a little-endian unsigned 256-bit integer as its raw
// 32-byte wire encoding; callers that need arithmetic convert through
// math/big.Int.SetBytes on the byte-reversed (big-endian) form.
func (r *Reader) ReadUint256LE() ([]byte, error) {
	return r.ReadNBytes(32)
}
