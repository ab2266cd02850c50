package bitcoin

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	// Hash32Size is the length in bytes of a Hash32.
	Hash32Size = 32
)

// ErrWrongSize is returned when a fixed-size field is given the wrong number
// of bytes.
var ErrWrongSize = errors.New("Wrong Size")

// Hash32 is a 32 byte hash value, stored and serialized in the same byte
// order it appears on the wire (no reversal for display).
type Hash32 [Hash32Size]byte

// NewHash32 builds a Hash32 from exactly 32 bytes.
func NewHash32(b []byte) (*Hash32, error) {
	if len(b) != Hash32Size {
		return nil, errors.Wrapf(ErrWrongSize, "got %d, want %d", len(b), Hash32Size)
	}
	result := Hash32{}
	copy(result[:], b)
	return &result, nil
}

// Bytes returns the underlying 32 bytes.
func (h Hash32) Bytes() []byte {
	return h[:]
}

// SetBytes sets the value of the hash.
func (h *Hash32) SetBytes(b []byte) error {
	if len(b) != Hash32Size {
		return errors.Wrapf(ErrWrongSize, "got %d, want %d", len(b), Hash32Size)
	}
	copy(h[:], b)
	return nil
}

// String returns the lowercase hex encoding of the hash.
func (h Hash32) String() string {
	return hex.EncodeToString(h[:])
}

// Equal returns true if the two hashes have the same value.
func (h Hash32) Equal(o Hash32) bool {
	return bytes.Equal(h[:], o[:])
}

// IsZero reports whether the hash is all zero bytes, as a coinbase/generation
// input's prev_hash is.
func (h Hash32) IsZero() bool {
	var zero Hash32
	return h.Equal(zero)
}

// Serialize writes the hash to w in its wire byte order.
func (h Hash32) Serialize(w io.Writer) error {
	_, err := w.Write(h[:])
	return err
}

// DeserializeHash32 reads a Hash32 from r.
func DeserializeHash32(r io.Reader) (Hash32, error) {
	var result Hash32
	if _, err := io.ReadFull(r, result[:]); err != nil {
		return result, err
	}
	return result, nil
}

// MarshalJSON encodes the hash as a hex string.
func (h Hash32) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", h.String())), nil
}

// UnmarshalJSON decodes a hex string into the hash.
func (h *Hash32) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "unquote")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrap(err, "hex")
	}
	return h.SetBytes(b)
}
