package wire

import (
	"bytes"
	"io"

	"github.com/lambda-chain/txcore/bitcoin"
)

// TxVersion2 is the transaction version that triggers rich-transaction id
// computation instead of a plain double-sha256 of the serialized bytes.
const TxVersion2 = int32(2)

// GenerationPrevIndex is the prev_idx value of a coinbase/generation input.
const GenerationPrevIndex = uint32(0xFFFFFFFF)

// TxInput is one input of a transaction.
type TxInput struct {
	PrevHash  bitcoin.Hash32
	PrevIndex uint32
	Script    []byte
	Sequence  uint32
}

// IsGeneration reports whether the input is a coinbase/generation input:
// prev_idx is 0xFFFFFFFF and prev_hash is all-zero.
func (in TxInput) IsGeneration() bool {
	return in.PrevIndex == GenerationPrevIndex && in.PrevHash.IsZero()
}

// Serialize writes prev_hash || LE u32 prev_idx || varbytes(script) || LE
// u32 sequence.
func (in TxInput) Serialize(w io.Writer) error {
	if _, err := w.Write(in.PrevHash[:]); err != nil {
		return err
	}
	if err := writeUint32LE(w, in.PrevIndex); err != nil {
		return err
	}
	if err := writeVarBytes(w, in.Script); err != nil {
		return err
	}
	return writeUint32LE(w, in.Sequence)
}

func readTxInput(r *Reader) (TxInput, error) {
	var result TxInput

	hash, err := r.ReadNBytes(32)
	if err != nil {
		return result, err
	}
	copy(result.PrevHash[:], hash)

	prevIndex, err := r.ReadUint32LE()
	if err != nil {
		return result, err
	}
	result.PrevIndex = prevIndex

	script, err := r.ReadVarBytes()
	if err != nil {
		return result, err
	}
	result.Script = script

	sequence, err := r.ReadUint32LE()
	if err != nil {
		return result, err
	}
	result.Sequence = sequence

	return result, nil
}

// TxOutput is one output of a transaction. When Contract is non-nil, the
// on-wire value field was decoded as an unsigned LE u64 instead of the
// ordinary path's signed LE i64; Value still stores the result as int64 via
// a same-width conversion, which Serialize reverses the same way, so the
// round trip is exact either way.
type TxOutput struct {
	Value    int64
	Script   []byte
	Contract *TxContractOutput
}

// Serialize writes, for a contract output, contract.Serialize() || LE u64
// value || varbytes(script); for an ordinary output, LE i64 value ||
// varbytes(script).
func (out TxOutput) Serialize(w io.Writer) error {
	if out.Contract != nil {
		if err := out.Contract.Serialize(w); err != nil {
			return err
		}
		if err := writeUint64LE(w, uint64(out.Value)); err != nil {
			return err
		}
	} else {
		if err := writeInt64LE(w, out.Value); err != nil {
			return err
		}
	}
	return writeVarBytes(w, out.Script)
}

func readTxOutput(r *Reader) (TxOutput, error) {
	var result TxOutput

	mark := r.Mark()
	tentative, err := r.ReadUint64LE()
	r.Reset(mark)
	if err != nil {
		return result, err
	}

	if IsContractType(tentative) {
		contract, err := readTxContractOutput(r)
		if err != nil {
			return result, err
		}
		result.Contract = &contract

		value, err := r.ReadUint64LE()
		if err != nil {
			return result, err
		}
		result.Value = int64(value)
	} else {
		value, err := r.ReadInt64LE()
		if err != nil {
			return result, err
		}
		result.Value = value
	}

	script, err := r.ReadVarBytes()
	if err != nil {
		return result, err
	}
	result.Script = script

	return result, nil
}

// Tx is a fully parsed transaction. Once built by the Deserializer it is
// treated as an immutable value.
type Tx struct {
	Version  int32
	Inputs   []TxInput
	Outputs  []TxOutput
	LockTime uint32
}

// Serialize writes LE i32 version || varint(len(inputs)) || inputs* ||
// varint(len(outputs)) || outputs* || LE u32 locktime.
func (tx Tx) Serialize(w io.Writer) error {
	if err := writeInt32LE(w, tx.Version); err != nil {
		return err
	}
	if err := writeVarInt(w, uint64(len(tx.Inputs))); err != nil {
		return err
	}
	for _, in := range tx.Inputs {
		if err := in.Serialize(w); err != nil {
			return err
		}
	}
	if err := writeVarInt(w, uint64(len(tx.Outputs))); err != nil {
		return err
	}
	for _, out := range tx.Outputs {
		if err := out.Serialize(w); err != nil {
			return err
		}
	}
	return writeUint32LE(w, tx.LockTime)
}

// Bytes returns tx's serialized form.
func (tx Tx) Bytes() []byte {
	var buf bytes.Buffer
	// Serialize over a bytes.Buffer never fails.
	_ = tx.Serialize(&buf)
	return buf.Bytes()
}
