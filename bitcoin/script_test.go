package bitcoin

import (
	"bytes"
	"testing"

	"github.com/go-test/deep"
)

func TestGetOpsRoundTrip(t *testing.T) {
	// Property: concatenating each opcode byte, its PUSHDATA length prefix
	// (if any) and its payload from GetOps reproduces the original script
	// exactly.
	scripts := [][]byte{
		{},
		{OP_DUP, OP_HASH160},
		append([]byte{20}, bytes.Repeat([]byte{0xAB}, 20)...),
		append([]byte{OP_PUSHDATA1, 0}, nil...),
		append([]byte{OP_PUSHINPUTREF}, bytes.Repeat([]byte{0xCD}, 36)...),
	}

	for i, script := range scripts {
		ops, err := GetOps(script)
		if err != nil {
			t.Fatalf("script %d: unexpected error: %s", i, err)
		}

		var rebuilt []byte
		for _, op := range ops {
			rebuilt = append(rebuilt, op.Code)
			if op.IsPush() {
				rebuilt = append(rebuilt, pushLengthPrefix(op.Code, len(op.Data))...)
				rebuilt = append(rebuilt, op.Data...)
			}
		}

		if !bytes.Equal(rebuilt, script) {
			t.Errorf("script %d: round trip mismatch, got %x want %x", i, rebuilt, script)
		}
	}
}

func TestGetOpsReferenceOpcodeIsIndependentBranch(t *testing.T) {
	// OP_PUSHINPUTREF (0xd0) is above OP_PUSHDATA4 (0x4e); this confirms the
	// 36-byte payload is actually consumed rather than falling through a
	// dead branch nested under the push-data gate.
	payload := bytes.Repeat([]byte{0x11}, 36)
	script := append([]byte{OP_PUSHINPUTREF}, payload...)
	script = append(script, OP_CHECKSIG)

	ops, err := GetOps(script)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(ops) != 2 {
		t.Fatalf("got %d ops, want 2", len(ops))
	}
	if ops[0].Code != OP_PUSHINPUTREF || !bytes.Equal(ops[0].Data, payload) {
		t.Errorf("ref op = %+v", ops[0])
	}
	if ops[1].Code != OP_CHECKSIG || ops[1].IsPush() {
		t.Errorf("checksig op = %+v", ops[1])
	}
}

func TestGetOpsTruncated(t *testing.T) {
	cases := [][]byte{
		{OP_PUSHDATA2, 0x01}, // insufficient length bytes
		{10, 1, 2, 3},        // declared 10-byte push, only 3 present
		{OP_PUSHINPUTREF, 0x01, 0x02},
	}
	for i, script := range cases {
		if _, err := GetOps(script); err != ErrTruncatedScript {
			t.Errorf("case %d: got err %v, want ErrTruncatedScript", i, err)
		}
	}
}

func TestGetOpsEmptyScript(t *testing.T) {
	ops, err := GetOps(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(ops) != 0 {
		t.Errorf("got %d ops, want 0", len(ops))
	}
}

func TestGetOpsPushData1ZeroLength(t *testing.T) {
	script := []byte{OP_PUSHDATA1, 0x00}
	ops, err := GetOps(script)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(ops) != 1 || !ops[0].IsPush() || len(ops[0].Data) != 0 {
		t.Errorf("got %+v", ops)
	}
}

func TestGetPushInputRefs(t *testing.T) {
	refA := bytes.Repeat([]byte{0xAA}, 36)
	refB := bytes.Repeat([]byte{0xBB}, 36)

	script := append([]byte{OP_PUSHINPUTREF}, refA...)
	script = append(script, OP_CHECKSIG)

	refs, err := GetPushInputRefs(script)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(refs.All) != 1 || !bytes.Equal(refs.All[0], refA) {
		t.Errorf("all = %v", refs.All)
	}
	if len(refs.Normal) != 1 || len(refs.Singleton) != 0 {
		t.Errorf("normal/singleton = %v/%v", refs.Normal, refs.Singleton)
	}

	script2 := append([]byte{OP_PUSHINPUTREFSINGLETON}, refB...)
	refs2, err := GetPushInputRefs(script2)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(refs2.All) != 1 || len(refs2.Singleton) != 1 || len(refs2.Normal) != 0 {
		t.Errorf("refs2 = %+v", refs2)
	}

	// require/disallow opcodes consume their payload but contribute nothing.
	script3 := append([]byte{OP_REQUIREINPUTREF}, refA...)
	refs3, err := GetPushInputRefs(script3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(refs3.All) != 0 {
		t.Errorf("refs3 = %+v, want empty", refs3)
	}
}

func TestGetPushInputRefsUnionEqualsAll(t *testing.T) {
	refA := bytes.Repeat([]byte{0x01}, 36)
	refB := bytes.Repeat([]byte{0x02}, 36)
	script := append([]byte{OP_PUSHINPUTREF}, refA...)
	script = append(script, OP_PUSHINPUTREFSINGLETON)
	script = append(script, refB...)

	refs, err := GetPushInputRefs(script)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	var union [][]byte
	union = append(union, refs.Normal...)
	// Rebuild encounter order: Normal then Singleton won't generally match
	// All's order for interleaved scripts, so compare as sets via length and
	// membership instead of positional equality.
	union = append(union, refs.Singleton...)
	if len(union) != len(refs.All) {
		t.Fatalf("union length %d != all length %d", len(union), len(refs.All))
	}
	for _, u := range union {
		found := false
		for _, a := range refs.All {
			if bytes.Equal(u, a) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ref %x missing from all", u)
		}
	}
}

func TestZeroRefsNoSignatureCheckIsUnchanged(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 36)
	script := append([]byte{OP_PUSHINPUTREFSINGLETON}, payload...)

	out, err := ZeroRefs(script)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(out, script) {
		t.Errorf("got %x, want unchanged %x", out, script)
	}
}

func TestZeroRefsWithSignatureCheck(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 36)
	script := append([]byte{OP_PUSHINPUTREF}, payload...)
	script = append(script, OP_CHECKSIG)

	out, err := ZeroRefs(script)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := append([]byte{OP_PUSHINPUTREF}, make([]byte, 36)...)
	want = append(want, OP_CHECKSIG)
	if !bytes.Equal(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestZeroRefsPreservesNonRefPushes(t *testing.T) {
	pubkey := bytes.Repeat([]byte{0x03}, 33)
	script := PushData(pubkey)
	script = append(script, OP_CHECKSIG)

	out, err := ZeroRefs(script)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(out, script) {
		t.Errorf("got %x, want unchanged %x", out, script)
	}
}

func TestPushData(t *testing.T) {
	cases := []struct {
		size    int
		wantLen int
		prefix  []byte
	}{
		{75, 1 + 75, nil},
		{76, 2 + 76, []byte{OP_PUSHDATA1}},
		{256, 3 + 256, []byte{OP_PUSHDATA2}},
		{65536, 5 + 65536, []byte{OP_PUSHDATA4}},
	}

	for _, c := range cases {
		data := bytes.Repeat([]byte{0x01}, c.size)
		out := PushData(data)
		if len(out) != c.wantLen {
			t.Errorf("size %d: got len %d, want %d", c.size, len(out), c.wantLen)
		}
		if c.prefix != nil && out[0] != c.prefix[0] {
			t.Errorf("size %d: got opcode %x, want %x", c.size, out[0], c.prefix[0])
		}
	}
}

func TestIsUnspendable(t *testing.T) {
	cases := []struct {
		script   []byte
		legacy   bool
		genesis  bool
	}{
		{nil, false, false},
		{[]byte{OP_RETURN}, true, false},
		{[]byte{OP_FALSE, OP_RETURN}, true, true},
		{[]byte{OP_FALSE, OP_RETURN, 0x01}, true, true},
		{[]byte{OP_DUP}, false, false},
	}

	for i, c := range cases {
		if got := IsUnspendableLegacy(c.script); got != c.legacy {
			t.Errorf("case %d: IsUnspendableLegacy = %v, want %v", i, got, c.legacy)
		}
		if got := IsUnspendableGenesis(c.script); got != c.genesis {
			t.Errorf("case %d: IsUnspendableGenesis = %v, want %v", i, got, c.genesis)
		}
	}
}

func TestClassifyOutputScript(t *testing.T) {
	pkh := Hash20{}
	for i := range pkh {
		pkh[i] = byte(i)
	}

	if got := ClassifyOutputScript(P2PKHScript(pkh)); got != "p2pkh" {
		t.Errorf("p2pkh script classified as %q", got)
	}
	if got := ClassifyOutputScript(P2SHScript(pkh)); got != "p2sh" {
		t.Errorf("p2sh script classified as %q", got)
	}

	pubkey := bytes.Repeat([]byte{0x02}, 33)
	p2pk := append(PushData(pubkey), OP_CHECKSIG)
	if got := ClassifyOutputScript(p2pk); got != "p2pk" {
		t.Errorf("p2pk script classified as %q", got)
	}

	if got := ClassifyOutputScript([]byte{OP_FALSE, OP_RETURN, 0x01, 0x02}); got != "op_return" {
		t.Errorf("op_return script classified as %q", got)
	}

	if got := ClassifyOutputScript([]byte{OP_DUP, OP_DUP}); got != "nonstandard" {
		t.Errorf("nonstandard script classified as %q", got)
	}
}

func TestMatchOpsWildcard(t *testing.T) {
	ops := []Op{
		{Code: OP_DUP},
		{Code: OP_HASH160},
		{Code: 20, Data: make([]byte, 20)},
		{Code: OP_EQUALVERIFY},
		{Code: OP_CHECKSIG},
	}
	if !MatchOps(ops, TemplateP2PKH) {
		t.Error("expected P2PKH template match")
	}
	if diff := deep.Equal(ops[2].Data, make([]byte, 20)); diff != nil {
		t.Errorf("unexpected push payload diff: %v", diff)
	}
}
