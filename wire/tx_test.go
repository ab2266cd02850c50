package wire

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/lambda-chain/txcore/bitcoin"
)

func mustHash(b byte) bitcoin.Hash32 {
	var h bitcoin.Hash32
	for i := range h {
		h[i] = b
	}
	return h
}

func TestTxSerializeRoundTrip(t *testing.T) {
	tx := Tx{
		Version: 1,
		Inputs: []TxInput{
			{PrevHash: mustHash(0xAA), PrevIndex: 0, Script: []byte{0x01, 0x02}, Sequence: 0xFFFFFFFF},
		},
		Outputs: []TxOutput{
			{Value: 5000, Script: []byte{0x76, 0xa9}},
		},
		LockTime: 0,
	}

	data := tx.Bytes()
	d := NewDeserializer(data)
	got, err := d.ReadTx()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if diff := deep.Equal(got, tx); diff != nil {
		t.Errorf("round trip mismatch: %v\ngot: %s\nwant: %s", diff, spew.Sdump(got), spew.Sdump(tx))
	}
}

func TestTxSerializeRoundTripGeneration(t *testing.T) {
	tx := Tx{
		Version: 1,
		Inputs: []TxInput{
			{PrevHash: bitcoin.Hash32{}, PrevIndex: GenerationPrevIndex, Script: []byte{0xff}, Sequence: 0},
		},
		Outputs: []TxOutput{
			{Value: 100, Script: []byte{}},
		},
		LockTime: 500000,
	}

	data := tx.Bytes()
	d := NewDeserializer(data)
	got, err := d.ReadTx()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if !got.Inputs[0].IsGeneration() {
		t.Error("expected generation input")
	}
	if diff := deep.Equal(got, tx); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
}

func TestTxSerializeRoundTripContractOutput(t *testing.T) {
	tx := Tx{
		Version: 2,
		Inputs: []TxInput{
			{PrevHash: mustHash(0x01), PrevIndex: 1, Script: []byte{0x51}, Sequence: 1},
		},
		Outputs: []TxOutput{
			{
				Value:  1000,
				Script: []byte{0x6a},
				Contract: &TxContractOutput{
					Type:      ContractFT,
					Outpoint:  TxOutPoint{Hash: mustHash(0x02), Index: 3},
					Value:     Uint256{1},
					MaxSupply: Uint256{2},
					Metadata:  []byte("meta"),
				},
			},
		},
		LockTime: 0,
	}

	data := tx.Bytes()
	d := NewDeserializer(data)
	got, err := d.ReadTx()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if diff := deep.Equal(got, tx); diff != nil {
		t.Errorf("round trip mismatch: %v", diff)
	}
	if got.Outputs[0].Contract.TypeName() != "FT" {
		t.Errorf("got type name %q, want FT", got.Outputs[0].Contract.TypeName())
	}
}

func TestReadTxTruncated(t *testing.T) {
	// Declares one input but the buffer ends before it is fully readable.
	data := []byte{
		0x01, 0x00, 0x00, 0x00, // version
		0x01, // 1 input
	}
	d := NewDeserializer(data)
	if _, err := d.ReadTx(); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestContractDetectionBoundary(t *testing.T) {
	if IsContractType(0) {
		t.Error("zero tag should not be a contract")
	}
	if !IsContractType(ContractFT) {
		t.Error("ContractFT should be a contract")
	}
	if IsContractType(ContractFlag | 0xffff) {
		t.Error("tag above MaxContractType should not be a contract")
	}
}

func TestGetState(t *testing.T) {
	// <payload> OP_RETURN <20 state bytes> <LE u32 20>
	payload := []byte{0x51}
	state := bytes.Repeat([]byte{0x22}, 20)
	script := append([]byte{}, payload...)
	script = append(script, 0x6a)
	script = append(script, state...)
	lenBytes := make([]byte, 4)
	endian.PutUint32(lenBytes, 20)
	script = append(script, lenBytes...)

	pc, ok := GetState(script)
	if !ok {
		t.Fatal("expected state separator found")
	}
	wantPC := len(script) - 24
	if pc != wantPC {
		t.Errorf("got pc %d, want %d", pc, wantPC)
	}

	if _, ok := GetState([]byte{0x6a}); ok {
		t.Error("short script should report no split")
	}
	if _, ok := GetState(nil); ok {
		t.Error("empty script should report no split")
	}
}
