package bitcoin

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
)

// endian is the byte order used throughout the wire format: little-endian
// for every multi-byte integer field except where a component explicitly
// calls for big-endian (see wire.Reader.ReadUint16BE).
var endian = binary.LittleEndian

func readUint16LE(b []byte) uint16 { return endian.Uint16(b) }
func readUint32LE(b []byte) uint32 { return endian.Uint32(b) }

func putUint16LE(b []byte, v uint16) { endian.PutUint16(b, v) }
func putUint32LE(b []byte, v uint32) { endian.PutUint32(b, v) }

func hexEncode(b []byte) string { return hex.EncodeToString(b) }

func itoaLen(n int) string { return strconv.Itoa(n) }
