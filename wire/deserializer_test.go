package wire

import (
	"bytes"
	"testing"

	"github.com/lambda-chain/txcore/bitcoin"
)

func simpleTx(version int32, script []byte) Tx {
	return Tx{
		Version: version,
		Inputs: []TxInput{
			{PrevHash: mustHash(0x11), PrevIndex: 0, Script: []byte{0x47, 0x30}, Sequence: 0xFFFFFFFF},
		},
		Outputs: []TxOutput{
			{Value: 5000000000, Script: script},
		},
		LockTime: 0,
	}
}

func TestReadTxAndHashLegacyIsDoubleSha256OfBytes(t *testing.T) {
	pkh := bitcoin.Hash20{}
	script := bitcoin.P2PKHScript(pkh)
	tx := simpleTx(1, script)

	data := tx.Bytes()
	d := NewDeserializer(data)
	_, id, err := d.ReadTxAndHash()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := bitcoin.DoubleSha256(data)
	if !bytes.Equal(id, want) {
		t.Errorf("got %x, want %x", id, want)
	}
}

func TestReadTxAndHashV2IsNotRawDoubleSha256(t *testing.T) {
	pkh := bitcoin.Hash20{}
	script := bitcoin.P2PKHScript(pkh)
	tx := simpleTx(2, script)

	data := tx.Bytes()
	d := NewDeserializer(data)
	gotTx, id, err := d.ReadTxAndHash()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	rawHash := bitcoin.DoubleSha256(data)
	if bytes.Equal(id, rawHash) {
		t.Error("v2 identifier must not equal the raw double-sha256 of the serialized bytes")
	}

	wantID, err := richTxID(gotTx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(id, wantID) {
		t.Errorf("got %x, want %x", id, wantID)
	}
}

func TestReadTxAndHashV2WithStateSeparator(t *testing.T) {
	state := bytes.Repeat([]byte{0x09}, 20)
	script := append([]byte{0x51}, 0x6a)
	script = append(script, state...)
	lenBytes := make([]byte, 4)
	endian.PutUint32(lenBytes, 20)
	script = append(script, lenBytes...)

	tx := simpleTx(2, script)
	data := tx.Bytes()

	d := NewDeserializer(data)
	gotTx, id, err := d.ReadTxAndHash()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	pc, ok := GetState(gotTx.Outputs[0].Script)
	if !ok {
		t.Fatal("expected state separator to be found")
	}
	if want := len(script) - 24; pc != want {
		t.Errorf("got split point %d, want %d", pc, want)
	}

	wantID, err := richTxID(gotTx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(id, wantID) {
		t.Errorf("got %x, want %x", id, wantID)
	}
}

func TestReadBlockToleratesTrailingBytes(t *testing.T) {
	tx := simpleTx(1, []byte{0x6a})
	var buf bytes.Buffer
	buf.Write([]byte{0x01}) // varint tx count = 1
	buf.Write(tx.Bytes())
	buf.Write([]byte{0xDE, 0xAD, 0xBE, 0xEF}) // trailing excess data

	d := NewDeserializer(buf.Bytes())
	txs, ids, err := d.ReadBlock()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(txs) != 1 || len(ids) != 1 {
		t.Fatalf("got %d txs / %d ids, want 1/1", len(txs), len(ids))
	}
}

func TestReadBlockEmpty(t *testing.T) {
	d := NewDeserializer([]byte{0x00})
	txs, ids, err := d.ReadBlock()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(txs) != 0 || len(ids) != 0 {
		t.Errorf("got %d txs / %d ids, want 0/0", len(txs), len(ids))
	}
}

func TestContractOutputFieldOrder(t *testing.T) {
	// End-to-end scenario 4: contract output consumes type, outpoint,
	// value, max_supply, metadata, then the ordinary value and script.
	tx := Tx{
		Version: 1,
		Inputs: []TxInput{
			{PrevHash: mustHash(0x01), PrevIndex: 0, Script: nil, Sequence: 0},
		},
		Outputs: []TxOutput{
			{
				Value:  42,
				Script: []byte{0x6a, 0x01},
				Contract: &TxContractOutput{
					Type:      ContractFlag | ContractFT,
					Outpoint:  TxOutPoint{Hash: mustHash(0x03), Index: 7},
					Value:     Uint256{9},
					MaxSupply: Uint256{8},
					Metadata:  []byte{0x01, 0x02, 0x03},
				},
			},
		},
		LockTime: 1,
	}

	data := tx.Bytes()
	d := NewDeserializer(data)
	got, err := d.ReadTx()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	out := got.Outputs[0]
	if out.Contract == nil {
		t.Fatal("expected contract output to be detected")
	}
	if out.Value != 42 {
		t.Errorf("got value %d, want 42", out.Value)
	}
	if !bytes.Equal(out.Script, []byte{0x6a, 0x01}) {
		t.Errorf("got script %x", out.Script)
	}
}
