package bitcoin

import (
	"github.com/pkg/errors"
)

// ErrTruncatedScript is returned by the script walker when a declared push
// length or implicit reference payload runs past the end of the script.
var ErrTruncatedScript = errors.New("truncated script")

// ErrPushInputRefScript is returned by GetPushInputRefs when the script
// cannot be walked to completion.
var ErrPushInputRefScript = errors.New("get_push_input_refs script")

// Script is a raw output or input script, as it appears on the wire.
type Script []byte

// Op is a single item from a walked script: either a bare opcode, or an
// opcode paired with its push payload. Data is nil for a bare opcode and
// non-nil (possibly zero-length) for a push.
type Op struct {
	Code byte
	Data []byte
}

// IsPush reports whether the op carries a payload.
func (o Op) IsPush() bool {
	return o.Data != nil
}

// GetOps walks script and returns its ordered op-items. The reference
// opcodes (OP_PUSHINPUTREF and friends) are tested on an independent branch
// from the OP_PUSHDATA* gate, not nested inside the "op <= OP_PUSHDATA4"
// test: every reference opcode value is 0xd0 or above, so nesting the branch
// there would make it unreachable. The 36-byte payload is always consumed
// on its own branch.
func GetOps(script []byte) ([]Op, error) {
	var ops []Op
	pos := 0
	n := len(script)

	for pos < n {
		op := script[pos]
		pos++

		if op <= OP_PUSHDATA4 {
			var dlen int
			switch {
			case op < OP_PUSHDATA1:
				dlen = int(op)
			case op == OP_PUSHDATA1:
				if pos+1 > n {
					return nil, ErrTruncatedScript
				}
				dlen = int(script[pos])
				pos++
			case op == OP_PUSHDATA2:
				if pos+2 > n {
					return nil, ErrTruncatedScript
				}
				dlen = int(readUint16LE(script[pos:]))
				pos += 2
			case op == OP_PUSHDATA4:
				if pos+4 > n {
					return nil, ErrTruncatedScript
				}
				dlen = int(readUint32LE(script[pos:]))
				pos += 4
			}

			if pos+dlen > n {
				return nil, ErrTruncatedScript
			}
			ops = append(ops, Op{Code: op, Data: script[pos : pos+dlen : pos+dlen]})
			pos += dlen
			continue
		}

		if isReferenceOpcode(op) {
			if pos+36 > n {
				return nil, ErrTruncatedScript
			}
			ops = append(ops, Op{Code: op, Data: script[pos : pos+36 : pos+36]})
			pos += 36
			continue
		}

		ops = append(ops, Op{Code: op})
	}

	return ops, nil
}

// PushInputRefs are the three ordered sequences GetPushInputRefs reports.
type PushInputRefs struct {
	All       [][]byte
	Normal    [][]byte
	Singleton [][]byte
}

// GetPushInputRefs walks script under the same framing rules as GetOps and
// collects the payloads of the input-reference push opcodes. The
// require/disallow reference opcodes consume their 36-byte payload but
// contribute no entry to any of the three sequences.
func GetPushInputRefs(script []byte) (PushInputRefs, error) {
	ops, err := GetOps(script)
	if err != nil {
		return PushInputRefs{}, errors.Wrap(ErrPushInputRefScript, err.Error())
	}

	var refs PushInputRefs
	for _, op := range ops {
		switch op.Code {
		case OP_PUSHINPUTREF:
			refs.All = append(refs.All, op.Data)
			refs.Normal = append(refs.Normal, op.Data)
		case OP_PUSHINPUTREFSINGLETON:
			refs.All = append(refs.All, op.Data)
			refs.Singleton = append(refs.Singleton, op.Data)
		}
	}

	return refs, nil
}

// ZeroRefs returns a canonicalized copy of script for use in a
// signature-preimage hash: every reference opcode's 36-byte payload is
// replaced with zeros. If script contains none of OP_CHECKSIG,
// OP_CHECKSIGVERIFY, OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY, the original
// script is returned unchanged (same backing array, not a copy), since a
// script that never checks a signature has no preimage to sanitize.
func ZeroRefs(script []byte) ([]byte, error) {
	ops, err := GetOps(script)
	if err != nil {
		return nil, err
	}

	hasCheckSig := false
	for _, op := range ops {
		if isCheckSigOpcode(op.Code) {
			hasCheckSig = true
			break
		}
	}

	if !hasCheckSig {
		return script, nil
	}

	out := make([]byte, 0, len(script))
	for _, op := range ops {
		out = append(out, op.Code)
		if !op.IsPush() {
			continue
		}
		if isReferenceOpcode(op.Code) {
			out = append(out, make([]byte, len(op.Data))...)
			continue
		}
		out = append(out, pushLengthPrefix(op.Code, len(op.Data))...)
		out = append(out, op.Data...)
	}

	return out, nil
}

// pushLengthPrefix returns the length-encoding bytes (beyond the opcode
// itself) that GetOps consumed for a standard push of the given length, so
// ZeroRefs can reproduce them unchanged.
func pushLengthPrefix(op byte, dlen int) []byte {
	switch {
	case op < OP_PUSHDATA1:
		return nil
	case op == OP_PUSHDATA1:
		return []byte{byte(dlen)}
	case op == OP_PUSHDATA2:
		b := make([]byte, 2)
		putUint16LE(b, uint16(dlen))
		return b
	default: // OP_PUSHDATA4
		b := make([]byte, 4)
		putUint32LE(b, uint32(dlen))
		return b
	}
}

// PushData returns the minimal push-data encoding for data: a bare opcode
// plus, where needed, a length prefix, then the bytes themselves.
func PushData(data []byte) []byte {
	n := len(data)
	switch {
	case n < int(OP_PUSHDATA1):
		result := make([]byte, 1+n)
		result[0] = byte(n)
		copy(result[1:], data)
		return result
	case n < 256:
		result := make([]byte, 2+n)
		result[0] = OP_PUSHDATA1
		result[1] = byte(n)
		copy(result[2:], data)
		return result
	case n < 65536:
		result := make([]byte, 3+n)
		result[0] = OP_PUSHDATA2
		putUint16LE(result[1:3], uint16(n))
		copy(result[3:], data)
		return result
	default:
		result := make([]byte, 5+n)
		result[0] = OP_PUSHDATA4
		putUint32LE(result[1:5], uint32(n))
		copy(result[5:], data)
		return result
	}
}

// IsUnspendableLegacy reports whether s is unspendable under the legacy
// rule: it begins with "OP_FALSE OP_RETURN", or its first byte is
// OP_RETURN.
func IsUnspendableLegacy(s []byte) bool {
	if len(s) >= 2 && s[0] == OP_FALSE && s[1] == OP_RETURN {
		return true
	}
	return len(s) >= 1 && s[0] == OP_RETURN
}

// IsUnspendableGenesis reports whether s begins with "OP_FALSE OP_RETURN".
func IsUnspendableGenesis(s []byte) bool {
	return len(s) >= 2 && s[0] == OP_FALSE && s[1] == OP_RETURN
}

// MatchOps reports whether ops matches pattern element for element. A
// pattern element of -1 matches any push item (an Op with a non-nil Data);
// any other pattern element must equal the corresponding op's opcode
// exactly, with no payload.
func MatchOps(ops []Op, pattern []int) bool {
	if len(ops) != len(pattern) {
		return false
	}
	for i, want := range pattern {
		op := ops[i]
		if want == -1 {
			if !op.IsPush() {
				return false
			}
			continue
		}
		if op.IsPush() || int(op.Code) != want {
			return false
		}
	}
	return true
}

// Script templates for the three standard output forms, consumed by
// MatchOps/ClassifyOutputScript. -1 stands for "any push item".
var (
	TemplateP2PKH = []int{int(OP_DUP), int(OP_HASH160), -1, int(OP_EQUALVERIFY), int(OP_CHECKSIG)}
	TemplateP2SH  = []int{int(OP_HASH160), -1, int(OP_EQUAL)}
	TemplateP2PK  = []int{-1, int(OP_CHECKSIG)}
)

// P2PKHScript builds a standard pay-to-pubkey-hash locking script for the
// given 20-byte public key hash.
func P2PKHScript(pkh Hash20) Script {
	result := make([]byte, 0, 25)
	result = append(result, OP_DUP, OP_HASH160)
	result = append(result, PushData(pkh.Bytes())...)
	result = append(result, OP_EQUALVERIFY, OP_CHECKSIG)
	return result
}

// P2SHScript builds a standard pay-to-script-hash locking script for the
// given 20-byte script hash.
func P2SHScript(sh Hash20) Script {
	result := make([]byte, 0, 23)
	result = append(result, OP_HASH160)
	result = append(result, PushData(sh.Bytes())...)
	result = append(result, OP_EQUAL)
	return result
}

// ClassifyOutputScript names the standard form of an output script, or
// "nonstandard" if none of the known templates match. It does not execute
// or evaluate the script.
func ClassifyOutputScript(script Script) string {
	if IsUnspendableLegacy(script) {
		return "op_return"
	}

	ops, err := GetOps(script)
	if err != nil {
		return "nonstandard"
	}

	switch {
	case MatchOps(ops, TemplateP2PKH):
		return "p2pkh"
	case MatchOps(ops, TemplateP2SH):
		return "p2sh"
	case MatchOps(ops, TemplateP2PK):
		return "p2pk"
	default:
		return "nonstandard"
	}
}

// Dump returns a human-readable, one-line-per-op disassembly of script,
// "OP_NAME <hex> (<n> bytes)" for pushes and "OP_NAME" for bare opcodes. It
// does not execute or evaluate the script; a script that fails to parse
// reports the parse error instead of a partial dump.
func Dump(script []byte) (string, error) {
	ops, err := GetOps(script)
	if err != nil {
		return "", err
	}

	var out []byte
	for i, op := range ops {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, OpcodeName(op.Code)...)
		if op.IsPush() {
			out = append(out, " "...)
			out = append(out, hexEncode(op.Data)...)
			out = append(out, []byte(" ("+itoaLen(len(op.Data))+" bytes)")...)
		}
	}
	return string(out), nil
}
