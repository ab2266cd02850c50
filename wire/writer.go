package wire

import "io"

func writeUint16LE(w io.Writer, v uint16) error {
	b := make([]byte, 2)
	endian.PutUint16(b, v)
	_, err := w.Write(b)
	return err
}

func writeUint32LE(w io.Writer, v uint32) error {
	b := make([]byte, 4)
	endian.PutUint32(b, v)
	_, err := w.Write(b)
	return err
}

func writeInt32LE(w io.Writer, v int32) error {
	return writeUint32LE(w, uint32(v))
}

func writeUint64LE(w io.Writer, v uint64) error {
	b := make([]byte, 8)
	endian.PutUint64(b, v)
	_, err := w.Write(b)
	return err
}

func writeInt64LE(w io.Writer, v int64) error {
	return writeUint64LE(w, uint64(v))
}

// writeVarInt writes n using the Bitcoin variable-length integer encoding.
func writeVarInt(w io.Writer, n uint64) error {
	switch {
	case n < 253:
		_, err := w.Write([]byte{byte(n)})
		return err
	case n <= 0xffff:
		if _, err := w.Write([]byte{253}); err != nil {
			return err
		}
		return writeUint16LE(w, uint16(n))
	case n <= 0xffffffff:
		if _, err := w.Write([]byte{254}); err != nil {
			return err
		}
		return writeUint32LE(w, uint32(n))
	default:
		if _, err := w.Write([]byte{255}); err != nil {
			return err
		}
		return writeUint64LE(w, n)
	}
}

// writeVarBytes writes a varint length prefix followed by b.
func writeVarBytes(w io.Writer, b []byte) error {
	if err := writeVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}
