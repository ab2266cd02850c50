package bitcoin

import "strconv"

// Script opcodes, standard Bitcoin values plus the Lambda chain extensions:
// input-reference opcodes (0xd0-0xed) and the state-separator / check-data-sig
// opcodes (0xba-0xbf). Values are asserted against their conventional byte in
// init() below so an accidental renumbering fails at startup instead of
// silently diverging from consensus.
const (
	OP_0     = byte(0x00)
	OP_FALSE = OP_0

	OP_PUSHDATA1 = byte(0x4c)
	OP_PUSHDATA2 = byte(0x4d)
	OP_PUSHDATA4 = byte(0x4e)
	OP_1NEGATE   = byte(0x4f)
	OP_RESERVED  = byte(0x50)

	OP_1  = byte(0x51)
	OP_TRUE = OP_1
	OP_2  = byte(0x52)
	OP_3  = byte(0x53)
	OP_4  = byte(0x54)
	OP_5  = byte(0x55)
	OP_6  = byte(0x56)
	OP_7  = byte(0x57)
	OP_8  = byte(0x58)
	OP_9  = byte(0x59)
	OP_10 = byte(0x5a)
	OP_11 = byte(0x5b)
	OP_12 = byte(0x5c)
	OP_13 = byte(0x5d)
	OP_14 = byte(0x5e)
	OP_15 = byte(0x5f)
	OP_16 = byte(0x60)

	OP_NOP      = byte(0x61)
	OP_VER      = byte(0x62)
	OP_IF       = byte(0x63)
	OP_NOTIF    = byte(0x64)
	OP_VERIF    = byte(0x65)
	OP_VERNOTIF = byte(0x66)
	OP_ELSE     = byte(0x67)
	OP_ENDIF    = byte(0x68)
	OP_VERIFY   = byte(0x69)
	OP_RETURN   = byte(0x6a)

	OP_TOALTSTACK   = byte(0x6b)
	OP_FROMALTSTACK = byte(0x6c)
	OP_2DROP        = byte(0x6d)
	OP_2DUP         = byte(0x6e)
	OP_3DUP         = byte(0x6f)
	OP_2OVER        = byte(0x70)
	OP_2ROT         = byte(0x71)
	OP_2SWAP        = byte(0x72)
	OP_IFDUP        = byte(0x73)
	OP_DEPTH        = byte(0x74)
	OP_DROP         = byte(0x75)
	OP_DUP          = byte(0x76)
	OP_NIP          = byte(0x77)
	OP_OVER         = byte(0x78)
	OP_PICK         = byte(0x79)
	OP_ROLL         = byte(0x7a)
	OP_ROT          = byte(0x7b)
	OP_SWAP         = byte(0x7c)
	OP_TUCK         = byte(0x7d)

	OP_CAT     = byte(0x7e)
	OP_SPLIT   = byte(0x7f)
	OP_NUM2BIN = byte(0x80)
	OP_BIN2NUM = byte(0x81)
	OP_SIZE    = byte(0x82)

	OP_INVERT = byte(0x83)
	OP_AND    = byte(0x84)
	OP_OR     = byte(0x85)
	OP_XOR    = byte(0x86)

	OP_EQUAL       = byte(0x87)
	OP_EQUALVERIFY = byte(0x88)

	OP_RESERVED1 = byte(0x89)
	OP_RESERVED2 = byte(0x8a)

	OP_1ADD      = byte(0x8b)
	OP_1SUB      = byte(0x8c)
	OP_2MUL      = byte(0x8d)
	OP_2DIV      = byte(0x8e)
	OP_NEGATE    = byte(0x8f)
	OP_ABS       = byte(0x90)
	OP_NOT       = byte(0x91)
	OP_0NOTEQUAL = byte(0x92)

	OP_ADD    = byte(0x93)
	OP_SUB    = byte(0x94)
	OP_MUL    = byte(0x95)
	OP_DIV    = byte(0x96)
	OP_MOD    = byte(0x97)
	OP_LSHIFT = byte(0x98)
	OP_RSHIFT = byte(0x99)

	OP_BOOLAND            = byte(0x9a)
	OP_BOOLOR             = byte(0x9b)
	OP_NUMEQUAL           = byte(0x9c)
	OP_NUMEQUALVERIFY     = byte(0x9d)
	OP_NUMNOTEQUAL        = byte(0x9e)
	OP_LESSTHAN           = byte(0x9f)
	OP_GREATERTHAN        = byte(0xa0)
	OP_LESSTHANOREQUAL    = byte(0xa1)
	OP_GREATERTHANOREQUAL = byte(0xa2)
	OP_MIN                = byte(0xa3)
	OP_MAX                = byte(0xa4)
	OP_WITHIN             = byte(0xa5)

	OP_RIPEMD160           = byte(0xa6)
	OP_SHA1                = byte(0xa7)
	OP_SHA256              = byte(0xa8)
	OP_HASH160             = byte(0xa9)
	OP_HASH256             = byte(0xaa)
	OP_CODESEPARATOR       = byte(0xab)
	OP_CHECKSIG            = byte(0xac)
	OP_CHECKSIGVERIFY      = byte(0xad)
	OP_CHECKMULTISIG       = byte(0xae)
	OP_CHECKMULTISIGVERIFY = byte(0xaf)

	OP_NOP1                = byte(0xb0)
	OP_CHECKLOCKTIMEVERIFY = byte(0xb1) // BIP65
	OP_CHECKSEQUENCEVERIFY = byte(0xb2) // BIP112
	OP_NOP4                = byte(0xb3)
	OP_NOP5                = byte(0xb4)
	OP_NOP6                = byte(0xb5)
	OP_NOP7                = byte(0xb6)
	OP_NOP8                = byte(0xb7)
	OP_NOP9                = byte(0xb8)
	OP_NOP10               = byte(0xb9)

	// Lambda extensions.
	OP_CHECKDATASIG       = byte(0xba)
	OP_CHECKDATASIGVERIFY = byte(0xbb)
	OP_REVERSEBYTES       = byte(0xbc)

	OP_STATESEPERATOR              = byte(0xbd)
	OP_STATESEPERATORINDEX_UTXO    = byte(0xbe)
	OP_STATESEPERATORINDEX_OUTPUT  = byte(0xbf)

	OP_PUSHINPUTREF                 = byte(0xd0)
	OP_REQUIREINPUTREF              = byte(0xd1)
	OP_DISALLOWPUSHINPUTREF         = byte(0xd2)
	OP_DISALLOWPUSHINPUTREFSIBLING  = byte(0xd3)

	OP_REFHASHDATASUMMARY_UTXO   = byte(0xd4)
	OP_REFHASHVALUESUM_UTXOS    = byte(0xd5)
	OP_REFHASHDATASUMMARY_OUTPUT = byte(0xd6)
	OP_REFHASHVALUESUM_OUTPUTS  = byte(0xd7)

	OP_PUSHINPUTREFSINGLETON = byte(0xd8)
	OP_REFTYPE_UTXO          = byte(0xd9)
	OP_REFTYPE_OUTPUT        = byte(0xda)

	OP_REFVALUESUM_UTXOS                       = byte(0xdb)
	OP_REFVALUESUM_OUTPUTS                     = byte(0xdc)
	OP_REFOUTPUTCOUNT_UTXOS                     = byte(0xdd)
	OP_REFOUTPUTCOUNT_OUTPUTS                   = byte(0xde)
	OP_REFOUTPUTCOUNTZEROVALUED_UTXOS           = byte(0xdf)
	OP_REFOUTPUTCOUNTZEROVALUED_OUTPUTS         = byte(0xe0)
	OP_REFDATASUMMARY_UTXO                      = byte(0xe1)
	OP_REFDATASUMMARY_OUTPUT                    = byte(0xe2)

	OP_CODESCRIPTHASHVALUESUM_UTXOS             = byte(0xe3)
	OP_CODESCRIPTHASHVALUESUM_OUTPUTS           = byte(0xe4)
	OP_CODESCRIPTHASHOUTPUTCOUNT_UTXOS          = byte(0xe5)
	OP_CODESCRIPTHASHOUTPUTCOUNT_OUTPUTS        = byte(0xe6)
	OP_CODESCRIPTHASHZEROVALUEDOUTPUTCOUNT_UTXOS   = byte(0xe7)
	OP_CODESCRIPTHASHZEROVALUEDOUTPUTCOUNT_OUTPUTS = byte(0xe8)
	OP_CODESCRIPTBYTECODE_UTXO                  = byte(0xe9)
	OP_CODESCRIPTBYTECODE_OUTPUT                = byte(0xea)
	OP_STATESCRIPTBYTECODE_UTXO                 = byte(0xeb)
	OP_STATESCRIPTBYTECODE_OUTPUT               = byte(0xec)

	OP_PUSH_TX_STATE = byte(0xed)

	// OP_MAX_SINGLE_BYTE_PUSH_DATA is the largest opcode value that is itself
	// the number of data bytes to push (opcodes 1..75).
	OP_MAX_SINGLE_BYTE_PUSH_DATA = byte(0x4b)
)

// referenceOpcodes are the five opcodes whose payload is an implicit 36-byte
// outpoint (32-byte hash + 4-byte index) with no length prefix.
var referenceOpcodes = map[byte]bool{
	OP_PUSHINPUTREF:                true,
	OP_REQUIREINPUTREF:             true,
	OP_DISALLOWPUSHINPUTREF:        true,
	OP_DISALLOWPUSHINPUTREFSIBLING: true,
	OP_PUSHINPUTREFSINGLETON:       true,
}

// isReferenceOpcode reports whether op implicitly carries a 36-byte payload.
func isReferenceOpcode(op byte) bool {
	return referenceOpcodes[op]
}

// isCheckSigOpcode reports whether op is one of the four signature-check
// opcodes that trigger zeroing of reference payloads in ZeroRefs.
func isCheckSigOpcode(op byte) bool {
	switch op {
	case OP_CHECKSIG, OP_CHECKSIGVERIFY, OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
		return true
	}
	return false
}

var opcodeNames = map[byte]string{
	OP_0:        "OP_0",
	OP_1NEGATE:  "OP_1NEGATE",
	OP_RESERVED: "OP_RESERVED",
	OP_1:        "OP_1",
	OP_2:        "OP_2",
	OP_3:        "OP_3",
	OP_4:        "OP_4",
	OP_5:        "OP_5",
	OP_6:        "OP_6",
	OP_7:        "OP_7",
	OP_8:        "OP_8",
	OP_9:        "OP_9",
	OP_10:       "OP_10",
	OP_11:       "OP_11",
	OP_12:       "OP_12",
	OP_13:       "OP_13",
	OP_14:       "OP_14",
	OP_15:       "OP_15",
	OP_16:       "OP_16",

	OP_NOP:      "OP_NOP",
	OP_VER:      "OP_VER",
	OP_IF:       "OP_IF",
	OP_NOTIF:    "OP_NOTIF",
	OP_VERIF:    "OP_VERIF",
	OP_VERNOTIF: "OP_VERNOTIF",
	OP_ELSE:     "OP_ELSE",
	OP_ENDIF:    "OP_ENDIF",
	OP_VERIFY:   "OP_VERIFY",
	OP_RETURN:   "OP_RETURN",

	OP_TOALTSTACK:   "OP_TOALTSTACK",
	OP_FROMALTSTACK: "OP_FROMALTSTACK",
	OP_2DROP:        "OP_2DROP",
	OP_2DUP:         "OP_2DUP",
	OP_3DUP:         "OP_3DUP",
	OP_2OVER:        "OP_2OVER",
	OP_2ROT:         "OP_2ROT",
	OP_2SWAP:        "OP_2SWAP",
	OP_IFDUP:        "OP_IFDUP",
	OP_DEPTH:        "OP_DEPTH",
	OP_DROP:         "OP_DROP",
	OP_DUP:          "OP_DUP",
	OP_NIP:          "OP_NIP",
	OP_OVER:         "OP_OVER",
	OP_PICK:         "OP_PICK",
	OP_ROLL:         "OP_ROLL",
	OP_ROT:          "OP_ROT",
	OP_SWAP:         "OP_SWAP",
	OP_TUCK:         "OP_TUCK",

	OP_CAT:     "OP_CAT",
	OP_SPLIT:   "OP_SPLIT",
	OP_NUM2BIN: "OP_NUM2BIN",
	OP_BIN2NUM: "OP_BIN2NUM",
	OP_SIZE:    "OP_SIZE",

	OP_INVERT: "OP_INVERT",
	OP_AND:    "OP_AND",
	OP_OR:     "OP_OR",
	OP_XOR:    "OP_XOR",

	OP_EQUAL:       "OP_EQUAL",
	OP_EQUALVERIFY: "OP_EQUALVERIFY",
	OP_RESERVED1:   "OP_RESERVED1",
	OP_RESERVED2:   "OP_RESERVED2",

	OP_1ADD:      "OP_1ADD",
	OP_1SUB:      "OP_1SUB",
	OP_2MUL:      "OP_2MUL",
	OP_2DIV:      "OP_2DIV",
	OP_NEGATE:    "OP_NEGATE",
	OP_ABS:       "OP_ABS",
	OP_NOT:       "OP_NOT",
	OP_0NOTEQUAL: "OP_0NOTEQUAL",

	OP_ADD:    "OP_ADD",
	OP_SUB:    "OP_SUB",
	OP_MUL:    "OP_MUL",
	OP_DIV:    "OP_DIV",
	OP_MOD:    "OP_MOD",
	OP_LSHIFT: "OP_LSHIFT",
	OP_RSHIFT: "OP_RSHIFT",

	OP_BOOLAND:            "OP_BOOLAND",
	OP_BOOLOR:             "OP_BOOLOR",
	OP_NUMEQUAL:           "OP_NUMEQUAL",
	OP_NUMEQUALVERIFY:     "OP_NUMEQUALVERIFY",
	OP_NUMNOTEQUAL:        "OP_NUMNOTEQUAL",
	OP_LESSTHAN:           "OP_LESSTHAN",
	OP_GREATERTHAN:        "OP_GREATERTHAN",
	OP_LESSTHANOREQUAL:    "OP_LESSTHANOREQUAL",
	OP_GREATERTHANOREQUAL: "OP_GREATERTHANOREQUAL",
	OP_MIN:                "OP_MIN",
	OP_MAX:                "OP_MAX",
	OP_WITHIN:             "OP_WITHIN",

	OP_RIPEMD160:           "OP_RIPEMD160",
	OP_SHA1:                "OP_SHA1",
	OP_SHA256:              "OP_SHA256",
	OP_HASH160:             "OP_HASH160",
	OP_HASH256:             "OP_HASH256",
	OP_CODESEPARATOR:       "OP_CODESEPARATOR",
	OP_CHECKSIG:            "OP_CHECKSIG",
	OP_CHECKSIGVERIFY:      "OP_CHECKSIGVERIFY",
	OP_CHECKMULTISIG:       "OP_CHECKMULTISIG",
	OP_CHECKMULTISIGVERIFY: "OP_CHECKMULTISIGVERIFY",

	OP_NOP1:                "OP_NOP1",
	OP_CHECKLOCKTIMEVERIFY: "OP_CHECKLOCKTIMEVERIFY",
	OP_CHECKSEQUENCEVERIFY: "OP_CHECKSEQUENCEVERIFY",
	OP_NOP4:                "OP_NOP4",
	OP_NOP5:                "OP_NOP5",
	OP_NOP6:                "OP_NOP6",
	OP_NOP7:                "OP_NOP7",
	OP_NOP8:                "OP_NOP8",
	OP_NOP9:                "OP_NOP9",
	OP_NOP10:               "OP_NOP10",

	OP_CHECKDATASIG:       "OP_CHECKDATASIG",
	OP_CHECKDATASIGVERIFY: "OP_CHECKDATASIGVERIFY",
	OP_REVERSEBYTES:       "OP_REVERSEBYTES",

	OP_STATESEPERATOR:             "OP_STATESEPERATOR",
	OP_STATESEPERATORINDEX_UTXO:   "OP_STATESEPERATORINDEX_UTXO",
	OP_STATESEPERATORINDEX_OUTPUT: "OP_STATESEPERATORINDEX_OUTPUT",

	OP_PUSHINPUTREF:                "OP_PUSHINPUTREF",
	OP_REQUIREINPUTREF:             "OP_REQUIREINPUTREF",
	OP_DISALLOWPUSHINPUTREF:        "OP_DISALLOWPUSHINPUTREF",
	OP_DISALLOWPUSHINPUTREFSIBLING: "OP_DISALLOWPUSHINPUTREFSIBLING",

	OP_REFHASHDATASUMMARY_UTXO:   "OP_REFHASHDATASUMMARY_UTXO",
	OP_REFHASHVALUESUM_UTXOS:     "OP_REFHASHVALUESUM_UTXOS",
	OP_REFHASHDATASUMMARY_OUTPUT: "OP_REFHASHDATASUMMARY_OUTPUT",
	OP_REFHASHVALUESUM_OUTPUTS:   "OP_REFHASHVALUESUM_OUTPUTS",

	OP_PUSHINPUTREFSINGLETON: "OP_PUSHINPUTREFSINGLETON",
	OP_REFTYPE_UTXO:          "OP_REFTYPE_UTXO",
	OP_REFTYPE_OUTPUT:        "OP_REFTYPE_OUTPUT",

	OP_REFVALUESUM_UTXOS:                           "OP_REFVALUESUM_UTXOS",
	OP_REFVALUESUM_OUTPUTS:                         "OP_REFVALUESUM_OUTPUTS",
	OP_REFOUTPUTCOUNT_UTXOS:                        "OP_REFOUTPUTCOUNT_UTXOS",
	OP_REFOUTPUTCOUNT_OUTPUTS:                      "OP_REFOUTPUTCOUNT_OUTPUTS",
	OP_REFOUTPUTCOUNTZEROVALUED_UTXOS:              "OP_REFOUTPUTCOUNTZEROVALUED_UTXOS",
	OP_REFOUTPUTCOUNTZEROVALUED_OUTPUTS:            "OP_REFOUTPUTCOUNTZEROVALUED_OUTPUTS",
	OP_REFDATASUMMARY_UTXO:                         "OP_REFDATASUMMARY_UTXO",
	OP_REFDATASUMMARY_OUTPUT:                       "OP_REFDATASUMMARY_OUTPUT",
	OP_CODESCRIPTHASHVALUESUM_UTXOS:                "OP_CODESCRIPTHASHVALUESUM_UTXOS",
	OP_CODESCRIPTHASHVALUESUM_OUTPUTS:              "OP_CODESCRIPTHASHVALUESUM_OUTPUTS",
	OP_CODESCRIPTHASHOUTPUTCOUNT_UTXOS:             "OP_CODESCRIPTHASHOUTPUTCOUNT_UTXOS",
	OP_CODESCRIPTHASHOUTPUTCOUNT_OUTPUTS:           "OP_CODESCRIPTHASHOUTPUTCOUNT_OUTPUTS",
	OP_CODESCRIPTHASHZEROVALUEDOUTPUTCOUNT_UTXOS:   "OP_CODESCRIPTHASHZEROVALUEDOUTPUTCOUNT_UTXOS",
	OP_CODESCRIPTHASHZEROVALUEDOUTPUTCOUNT_OUTPUTS: "OP_CODESCRIPTHASHZEROVALUEDOUTPUTCOUNT_OUTPUTS",
	OP_CODESCRIPTBYTECODE_UTXO:                     "OP_CODESCRIPTBYTECODE_UTXO",
	OP_CODESCRIPTBYTECODE_OUTPUT:                   "OP_CODESCRIPTBYTECODE_OUTPUT",
	OP_STATESCRIPTBYTECODE_UTXO:                    "OP_STATESCRIPTBYTECODE_UTXO",
	OP_STATESCRIPTBYTECODE_OUTPUT:                  "OP_STATESCRIPTBYTECODE_OUTPUT",

	OP_PUSH_TX_STATE: "OP_PUSH_TX_STATE",
}

func init() {
	// Paranoia to make it hard to ship a renumbered opcode table.
	assertOp(OP_DUP, 0x76)
	assertOp(OP_HASH160, 0xa9)
	assertOp(OP_EQUAL, 0x87)
	assertOp(OP_EQUALVERIFY, 0x88)
	assertOp(OP_CHECKSIG, 0xac)
	assertOp(OP_CHECKMULTISIG, 0xae)
	assertOp(OP_RETURN, 0x6a)
	assertOp(OP_0, 0x00)
	assertOp(OP_PUSHDATA1, 0x4c)
	assertOp(OP_PUSHDATA2, 0x4d)
	assertOp(OP_PUSHDATA4, 0x4e)

	assertOp(OP_CHECKDATASIG, 0xba)
	assertOp(OP_CHECKDATASIGVERIFY, 0xbb)
	assertOp(OP_REVERSEBYTES, 0xbc)
	assertOp(OP_STATESEPERATOR, 0xbd)
	assertOp(OP_STATESEPERATORINDEX_UTXO, 0xbe)
	assertOp(OP_STATESEPERATORINDEX_OUTPUT, 0xbf)

	assertOp(OP_PUSHINPUTREF, 0xd0)
	assertOp(OP_REQUIREINPUTREF, 0xd1)
	assertOp(OP_DISALLOWPUSHINPUTREF, 0xd2)
	assertOp(OP_DISALLOWPUSHINPUTREFSIBLING, 0xd3)
	assertOp(OP_REFHASHDATASUMMARY_UTXO, 0xd4)
	assertOp(OP_REFHASHVALUESUM_UTXOS, 0xd5)
	assertOp(OP_REFHASHDATASUMMARY_OUTPUT, 0xd6)
	assertOp(OP_REFHASHVALUESUM_OUTPUTS, 0xd7)
	assertOp(OP_PUSHINPUTREFSINGLETON, 0xd8)
	assertOp(OP_REFTYPE_UTXO, 0xd9)
	assertOp(OP_REFTYPE_OUTPUT, 0xda)
	assertOp(OP_REFVALUESUM_UTXOS, 0xdb)
	assertOp(OP_REFVALUESUM_OUTPUTS, 0xdc)
	assertOp(OP_REFOUTPUTCOUNT_UTXOS, 0xdd)
	assertOp(OP_REFOUTPUTCOUNT_OUTPUTS, 0xde)
	assertOp(OP_REFOUTPUTCOUNTZEROVALUED_UTXOS, 0xdf)
	assertOp(OP_REFOUTPUTCOUNTZEROVALUED_OUTPUTS, 0xe0)
	assertOp(OP_REFDATASUMMARY_UTXO, 0xe1)
	assertOp(OP_REFDATASUMMARY_OUTPUT, 0xe2)
	assertOp(OP_CODESCRIPTHASHVALUESUM_UTXOS, 0xe3)
	assertOp(OP_CODESCRIPTHASHVALUESUM_OUTPUTS, 0xe4)
	assertOp(OP_CODESCRIPTHASHOUTPUTCOUNT_UTXOS, 0xe5)
	assertOp(OP_CODESCRIPTHASHOUTPUTCOUNT_OUTPUTS, 0xe6)
	assertOp(OP_CODESCRIPTHASHZEROVALUEDOUTPUTCOUNT_UTXOS, 0xe7)
	assertOp(OP_CODESCRIPTHASHZEROVALUEDOUTPUTCOUNT_OUTPUTS, 0xe8)
	assertOp(OP_CODESCRIPTBYTECODE_UTXO, 0xe9)
	assertOp(OP_CODESCRIPTBYTECODE_OUTPUT, 0xea)
	assertOp(OP_STATESCRIPTBYTECODE_UTXO, 0xeb)
	assertOp(OP_STATESCRIPTBYTECODE_OUTPUT, 0xec)
	assertOp(OP_PUSH_TX_STATE, 0xed)
}

func assertOp(got, want byte) {
	if got != want {
		panic("bitcoin: opcode table assignment mismatch")
	}
}

// OpcodeName returns the canonical name for op: "OP_<n>" for literal-length
// pushes 1..75, the name table entry otherwise, or "OP_UNKNOWN:<n>".
func OpcodeName(op byte) string {
	if op > OP_0 && op < OP_PUSHDATA1 {
		return "OP_" + strconv.Itoa(int(op))
	}
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "OP_UNKNOWN:" + strconv.Itoa(int(op))
}
