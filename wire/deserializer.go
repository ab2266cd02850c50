package wire

import (
	"bytes"

	"github.com/lambda-chain/txcore/bitcoin"
	"github.com/pkg/errors"
)

// Deserializer drives a Reader over a single block or transaction stream.
// It is single-threaded and owns its cursor; distinct Deserializer
// instances over distinct buffers may run in parallel without
// coordination.
type Deserializer struct {
	r *Reader
}

// NewDeserializer wraps buf for reading.
func NewDeserializer(buf []byte) *Deserializer {
	return &Deserializer{r: NewReader(buf)}
}

// ReadTx reads a single transaction: LE i32 version, a varint-counted list
// of inputs, a varint-counted list of outputs, LE u32 locktime.
func (d *Deserializer) ReadTx() (Tx, error) {
	var tx Tx

	version, err := d.r.ReadInt32LE()
	if err != nil {
		return tx, errors.Wrap(err, "version")
	}
	tx.Version = version

	inputCount, err := d.r.ReadVarInt()
	if err != nil {
		return tx, errors.Wrap(err, "input count")
	}
	tx.Inputs = make([]TxInput, inputCount)
	for i := range tx.Inputs {
		in, err := readTxInput(d.r)
		if err != nil {
			return tx, errors.Wrapf(err, "input %d", i)
		}
		tx.Inputs[i] = in
	}

	outputCount, err := d.r.ReadVarInt()
	if err != nil {
		return tx, errors.Wrap(err, "output count")
	}
	tx.Outputs = make([]TxOutput, outputCount)
	for i := range tx.Outputs {
		out, err := readTxOutput(d.r)
		if err != nil {
			return tx, errors.Wrapf(err, "output %d", i)
		}
		tx.Outputs[i] = out
	}

	lockTime, err := d.r.ReadUint32LE()
	if err != nil {
		return tx, errors.Wrap(err, "locktime")
	}
	tx.LockTime = lockTime

	return tx, nil
}

// ReadTxAndHash reads a transaction and returns it along with its
// identifier: the version-2 rich transaction id (see richTxID) if
// tx.Version == 2, otherwise double_sha256 of the transaction's raw
// serialized bytes as they appeared in the input buffer.
func (d *Deserializer) ReadTxAndHash() (Tx, []byte, error) {
	start := d.r.Pos()
	tx, err := d.ReadTx()
	if err != nil {
		return tx, nil, err
	}

	if tx.Version == TxVersion2 {
		id, err := richTxID(tx)
		if err != nil {
			return tx, nil, errors.Wrap(err, "rich tx id")
		}
		return tx, id, nil
	}

	raw := d.r.buf[start:d.r.pos]
	return tx, bitcoin.DoubleSha256(raw), nil
}

// ReadBlock reads a varint transaction count followed by that many
// (Tx, txid) pairs, per the block wire format. Trailing bytes beyond the
// declared count are tolerated and left unread.
func (d *Deserializer) ReadBlock() ([]Tx, [][]byte, error) {
	count, err := d.r.ReadVarInt()
	if err != nil {
		return nil, nil, errors.Wrap(err, "tx count")
	}

	txs := make([]Tx, 0, count)
	ids := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		tx, id, err := d.ReadTxAndHash()
		if err != nil {
			return txs, ids, errors.Wrapf(err, "tx %d", i)
		}
		txs = append(txs, tx)
		ids = append(ids, id)
	}

	return txs, ids, nil
}

// richTxID computes the version-2 transaction identifier: a layered
// sha256 composition over per-field sub-hashes, not a simple double-hash
// of the raw bytes.
func richTxID(tx Tx) ([]byte, error) {
	hashInputs, err := hashTxInputs(tx.Inputs)
	if err != nil {
		return nil, errors.Wrap(err, "hash inputs")
	}

	hashOutputs, err := hashTxOutputs(tx.Outputs)
	if err != nil {
		return nil, errors.Wrap(err, "hash outputs")
	}

	var preimage bytes.Buffer
	if err := writeUint32LE(&preimage, uint32(tx.Version)); err != nil {
		return nil, err
	}
	// Asymmetric by design: the version field is unsigned, the input count
	// that follows is signed. This mismatch is preserved verbatim from the
	// source format and must not be "normalized".
	if err := writeInt32LE(&preimage, int32(len(tx.Inputs))); err != nil {
		return nil, err
	}
	preimage.Write(hashInputs)
	if err := writeInt32LE(&preimage, int32(len(tx.Outputs))); err != nil {
		return nil, err
	}
	preimage.Write(hashOutputs)
	if err := writeUint32LE(&preimage, tx.LockTime); err != nil {
		return nil, err
	}

	return bitcoin.DoubleSha256(preimage.Bytes()), nil
}

// hashTxInputs returns sha256(concat over inputs of sha256(prev_hash ||
// LE u32 prev_idx || sha256(script) || LE u32 sequence)).
func hashTxInputs(inputs []TxInput) ([]byte, error) {
	var concat bytes.Buffer
	for _, in := range inputs {
		var preimage bytes.Buffer
		preimage.Write(in.PrevHash[:])
		if err := writeUint32LE(&preimage, in.PrevIndex); err != nil {
			return nil, err
		}
		preimage.Write(bitcoin.Sha256(in.Script))
		if err := writeUint32LE(&preimage, in.Sequence); err != nil {
			return nil, err
		}
		concat.Write(bitcoin.Sha256(preimage.Bytes()))
	}
	return bitcoin.Sha256(concat.Bytes()), nil
}

// hashTxOutputs returns sha256(concat over outputs of
// sha256(output_hash_j)), where output_hash_j optionally prepends the
// contract's serialized form, always appends LE u64 value and
// sha256(pk_script), and additionally appends the two state-separator
// sub-hashes when GetState finds a split.
func hashTxOutputs(outputs []TxOutput) ([]byte, error) {
	var concat bytes.Buffer
	for _, out := range outputs {
		var preimage bytes.Buffer

		if out.Contract != nil {
			if err := out.Contract.Serialize(&preimage); err != nil {
				return nil, err
			}
		}

		if err := writeUint64LE(&preimage, uint64(out.Value)); err != nil {
			return nil, err
		}
		preimage.Write(bitcoin.Sha256(out.Script))

		if pc, ok := GetState(out.Script); ok {
			preimage.Write(bitcoin.Sha256(out.Script[:pc]))
			preimage.Write(bitcoin.Sha256(out.Script[pc:]))
		}

		concat.Write(bitcoin.Sha256(preimage.Bytes()))
	}
	return bitcoin.Sha256(concat.Bytes()), nil
}

// GetState probes pk_script for a trailing state-separator region of the
// form OP_RETURN <state bytes> <LE u32 stateLen>. It returns the offset of
// the byte just after the OP_RETURN (the split point, where the state bytes
// begin) and true if one is found, or (0, false) otherwise. It never panics
// on adversarial input.
func GetState(script []byte) (int, bool) {
	l := len(script)
	if l < 6 {
		return 0, false
	}

	stateLen := int(endian.Uint32(script[l-4:]))
	if l < 1+stateLen+4+1 {
		return 0, false
	}

	pc := l - 4 - stateLen
	if script[pc-1] != bitcoin.OP_RETURN {
		return 0, false
	}

	return pc, true
}
