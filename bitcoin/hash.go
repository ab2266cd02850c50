package bitcoin

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns the SHA256 digest of b. Treated as a given byte-to-byte
// primitive; nothing in this package second-guesses its output.
func Sha256(b []byte) []byte {
	result := sha256.Sum256(b)
	return result[:]
}

// DoubleSha256 returns Sha256(Sha256(b)), the hash used for legacy (non-v2)
// transaction identifiers.
func DoubleSha256(b []byte) []byte {
	return Sha256(Sha256(b))
}

// Ripemd160 returns the RIPEMD-160 digest of b.
func Ripemd160(b []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(b)
	return hasher.Sum(nil)
}

// Hash160 returns Ripemd160(Sha256(b)), as used by P2PKH/P2SH scripts.
func Hash160(b []byte) []byte {
	return Ripemd160(Sha256(b))
}
