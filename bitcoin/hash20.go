package bitcoin

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// Hash20Size is the length in bytes of a Hash20, the size of a Hash160
// (Ripemd160(Sha256(x))) public key hash.
const Hash20Size = 20

// Hash20 is a 20 byte hash value, such as the pubkey hash in a P2PKH locking
// script.
type Hash20 [Hash20Size]byte

// NewHash20 builds a Hash20 from exactly 20 bytes.
func NewHash20(b []byte) (*Hash20, error) {
	if len(b) != Hash20Size {
		return nil, errors.Wrapf(ErrWrongSize, "got %d, want %d", len(b), Hash20Size)
	}
	result := Hash20{}
	copy(result[:], b)
	return &result, nil
}

// Bytes returns the underlying 20 bytes.
func (h Hash20) Bytes() []byte {
	return h[:]
}

// SetBytes sets the value of the hash.
func (h *Hash20) SetBytes(b []byte) error {
	if len(b) != Hash20Size {
		return errors.Wrapf(ErrWrongSize, "got %d, want %d", len(b), Hash20Size)
	}
	copy(h[:], b)
	return nil
}

// String returns the lowercase hex encoding of the hash.
func (h Hash20) String() string {
	return hex.EncodeToString(h[:])
}
