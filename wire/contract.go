package wire

import (
	"encoding/hex"
	"io"

	"github.com/lambda-chain/txcore/bitcoin"
)

// Uint256Size is the length in bytes of a little-endian 256-bit integer as
// it appears on the wire.
const Uint256Size = 32

// Uint256 is a 256-bit unsigned integer stored in its little-endian wire
// byte order. Contract values and max-supply fields use this width; nothing
// in this module does arithmetic on them, so they are kept as opaque byte
// arrays rather than converted through math/big.
type Uint256 [Uint256Size]byte

// Bytes returns the little-endian wire encoding.
func (u Uint256) Bytes() []byte {
	return u[:]
}

// String returns the big-endian (conventional display order) hex encoding.
func (u Uint256) String() string {
	reversed := make([]byte, Uint256Size)
	for i, b := range u {
		reversed[Uint256Size-1-i] = b
	}
	return hex.EncodeToString(reversed)
}

// Serialize writes the 32 bytes in wire order.
func (u Uint256) Serialize(w io.Writer) error {
	_, err := w.Write(u[:])
	return err
}

// Contract type tags. CONTRACT_FLAG marks a tag as a contract output;
// MAX_CONTRACT_TYPE bounds the defined symbolic values below it.
const (
	ContractFlag    uint64 = 1 << 63
	MaxContractType uint64 = ContractFlag | 0xff

	ContractFT     uint64 = ContractFlag | 0x01
	ContractNFT    uint64 = ContractFlag | 0x02
	ContractFTMint uint64 = ContractFlag | 0x03
	ContractNFTMint uint64 = ContractFlag | 0x04
)

// IsContractType reports whether tag identifies a contract output: the
// CONTRACT_FLAG bit is set and the tag does not exceed MaxContractType.
func IsContractType(tag uint64) bool {
	return tag&ContractFlag != 0 && tag <= MaxContractType
}

// ContractTypeName returns the symbolic name of a contract type tag, or
// "None" for any in-range tag that isn't one of the four defined values.
func ContractTypeName(tag uint64) string {
	switch tag {
	case ContractFT:
		return "FT"
	case ContractNFT:
		return "NFT"
	case ContractFTMint:
		return "FT_MINT"
	case ContractNFTMint:
		return "NFT_MINT"
	default:
		return "None"
	}
}

// TxOutPoint names a UTXO: the hash of the transaction that created it, and
// the output index within that transaction.
type TxOutPoint struct {
	Hash  bitcoin.Hash32
	Index uint32
}

// Serialize writes hash || LE u32 index.
func (o TxOutPoint) Serialize(w io.Writer) error {
	if _, err := w.Write(o.Hash[:]); err != nil {
		return err
	}
	return writeUint32LE(w, o.Index)
}

func readTxOutPoint(r *Reader) (TxOutPoint, error) {
	var result TxOutPoint
	hash, err := r.ReadNBytes(32)
	if err != nil {
		return result, err
	}
	copy(result.Hash[:], hash)

	index, err := r.ReadUint32LE()
	if err != nil {
		return result, err
	}
	result.Index = index
	return result, nil
}

// TxContractOutput is the length-free contract-output record consumed
// ahead of the ordinary value/script fields when an output's leading 8
// bytes carry a recognized contract type tag.
type TxContractOutput struct {
	Type       uint64
	Outpoint   TxOutPoint
	Value      Uint256
	MaxSupply  Uint256
	Metadata   []byte
}

// TypeName returns the symbolic name of the contract's type tag.
func (c TxContractOutput) TypeName() string {
	return ContractTypeName(c.Type)
}

// Serialize writes LE u64 type || outpoint || LE u256 value || LE u256
// max_supply || varbytes(metadata).
func (c TxContractOutput) Serialize(w io.Writer) error {
	if err := writeUint64LE(w, c.Type); err != nil {
		return err
	}
	if err := c.Outpoint.Serialize(w); err != nil {
		return err
	}
	if err := c.Value.Serialize(w); err != nil {
		return err
	}
	if err := c.MaxSupply.Serialize(w); err != nil {
		return err
	}
	return writeVarBytes(w, c.Metadata)
}

func readTxContractOutput(r *Reader) (TxContractOutput, error) {
	var result TxContractOutput

	typ, err := r.ReadUint64LE()
	if err != nil {
		return result, err
	}
	result.Type = typ

	outpoint, err := readTxOutPoint(r)
	if err != nil {
		return result, err
	}
	result.Outpoint = outpoint

	value, err := r.ReadUint256LE()
	if err != nil {
		return result, err
	}
	copy(result.Value[:], value)

	maxSupply, err := r.ReadUint256LE()
	if err != nil {
		return result, err
	}
	copy(result.MaxSupply[:], maxSupply)

	metadata, err := r.ReadVarBytes()
	if err != nil {
		return result, err
	}
	result.Metadata = metadata

	return result, nil
}
