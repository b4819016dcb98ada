// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// populateOpcodeArray fills in opcodeArray, mapping every byte value to its
// name, wire length, and handler. Direct-push opcodes (OP_DATA_1..75) and
// the PUSHDATA family share opcodePushData; OP_0 and OP_1NEGATE/OP_1..16
// have dedicated handlers since they push a derived value rather than
// literal chunk bytes.
func populateOpcodeArray() {
	set := func(value byte, name string, length int, fn func(*parsedOpcode, *Engine) error) {
		opcodeArray[value] = opcode{value: value, name: name, length: length, exec: fn}
	}

	set(OP_0, "OP_0", 1, opcodeFalse)
	for v := OP_DATA_1; v <= OP_DATA_75; v++ {
		set(byte(v), opcodeDataName(v), v+1, opcodePushData)
	}
	set(OP_PUSHDATA1, "OP_PUSHDATA1", -1, opcodePushData)
	set(OP_PUSHDATA2, "OP_PUSHDATA2", -2, opcodePushData)
	set(OP_PUSHDATA4, "OP_PUSHDATA4", -4, opcodePushData)
	set(OP_1NEGATE, "OP_1NEGATE", 1, opcode1Negate)
	set(OP_RESERVED, "OP_RESERVED", 1, opcodeReserved)
	for v := OP_1; v <= OP_16; v++ {
		set(byte(v), opcodeNName(v), 1, opcodeN)
	}

	set(OP_NOP, "OP_NOP", 1, opcodeNop)
	set(OP_VER, "OP_VER", 1, opcodeReserved)
	set(OP_IF, "OP_IF", 1, nil)
	set(OP_NOTIF, "OP_NOTIF", 1, nil)
	set(OP_VERIF, "OP_VERIF", 1, opcodeInvalid)
	set(OP_VERNOTIF, "OP_VERNOTIF", 1, opcodeInvalid)
	set(OP_ELSE, "OP_ELSE", 1, nil)
	set(OP_ENDIF, "OP_ENDIF", 1, nil)
	set(OP_VERIFY, "OP_VERIFY", 1, opcodeVerify)
	set(OP_RETURN, "OP_RETURN", 1, opcodeReturn)

	set(OP_TOALTSTACK, "OP_TOALTSTACK", 1, opcodeToAltStack)
	set(OP_FROMALTSTACK, "OP_FROMALTSTACK", 1, opcodeFromAltStack)
	set(OP_2DROP, "OP_2DROP", 1, opcode2Drop)
	set(OP_2DUP, "OP_2DUP", 1, opcode2Dup)
	set(OP_3DUP, "OP_3DUP", 1, opcode3Dup)
	set(OP_2OVER, "OP_2OVER", 1, opcode2Over)
	set(OP_2ROT, "OP_2ROT", 1, opcode2Rot)
	set(OP_2SWAP, "OP_2SWAP", 1, opcode2Swap)
	set(OP_IFDUP, "OP_IFDUP", 1, opcodeIfDup)
	set(OP_DEPTH, "OP_DEPTH", 1, opcodeDepth)
	set(OP_DROP, "OP_DROP", 1, opcodeDrop)
	set(OP_DUP, "OP_DUP", 1, opcodeDup)
	set(OP_NIP, "OP_NIP", 1, opcodeNip)
	set(OP_OVER, "OP_OVER", 1, opcodeOver)
	set(OP_PICK, "OP_PICK", 1, opcodePick)
	set(OP_ROLL, "OP_ROLL", 1, opcodeRoll)
	set(OP_ROT, "OP_ROT", 1, opcodeRot)
	set(OP_SWAP, "OP_SWAP", 1, opcodeSwap)
	set(OP_TUCK, "OP_TUCK", 1, opcodeTuck)

	set(OP_CAT, "OP_CAT", 1, opcodeCat)
	set(OP_SPLIT, "OP_SPLIT", 1, opcodeSplit)
	set(OP_NUM2BIN, "OP_NUM2BIN", 1, opcodeNum2Bin)
	set(OP_BIN2NUM, "OP_BIN2NUM", 1, opcodeBin2Num)
	set(OP_SIZE, "OP_SIZE", 1, opcodeSize)
	set(OP_INVERT, "OP_INVERT", 1, nil)
	set(OP_AND, "OP_AND", 1, opcodeAnd)
	set(OP_OR, "OP_OR", 1, opcodeOr)
	set(OP_XOR, "OP_XOR", 1, opcodeXor)
	set(OP_EQUAL, "OP_EQUAL", 1, opcodeEqual)
	set(OP_EQUALVERIFY, "OP_EQUALVERIFY", 1, opcodeEqualVerify)
	set(OP_RESERVED1, "OP_RESERVED1", 1, opcodeReserved)
	set(OP_RESERVED2, "OP_RESERVED2", 1, opcodeReserved)

	set(OP_1ADD, "OP_1ADD", 1, opcode1Add)
	set(OP_1SUB, "OP_1SUB", 1, opcode1Sub)
	set(OP_2MUL, "OP_2MUL", 1, nil)
	set(OP_2DIV, "OP_2DIV", 1, nil)
	set(OP_NEGATE, "OP_NEGATE", 1, opcodeNegate)
	set(OP_ABS, "OP_ABS", 1, opcodeAbs)
	set(OP_NOT, "OP_NOT", 1, opcodeNot)
	set(OP_0NOTEQUAL, "OP_0NOTEQUAL", 1, opcode0NotEqual)
	set(OP_ADD, "OP_ADD", 1, opcodeAdd)
	set(OP_SUB, "OP_SUB", 1, opcodeSub)
	set(OP_MUL, "OP_MUL", 1, nil)
	set(OP_DIV, "OP_DIV", 1, opcodeDiv)
	set(OP_MOD, "OP_MOD", 1, opcodeMod)
	set(OP_LSHIFT, "OP_LSHIFT", 1, nil)
	set(OP_RSHIFT, "OP_RSHIFT", 1, nil)
	set(OP_BOOLAND, "OP_BOOLAND", 1, opcodeBoolAnd)
	set(OP_BOOLOR, "OP_BOOLOR", 1, opcodeBoolOr)
	set(OP_NUMEQUAL, "OP_NUMEQUAL", 1, opcodeNumEqual)
	set(OP_NUMEQUALVERIFY, "OP_NUMEQUALVERIFY", 1, opcodeNumEqualVerify)
	set(OP_NUMNOTEQUAL, "OP_NUMNOTEQUAL", 1, opcodeNumNotEqual)
	set(OP_LESSTHAN, "OP_LESSTHAN", 1, opcodeLessThan)
	set(OP_GREATERTHAN, "OP_GREATERTHAN", 1, opcodeGreaterThan)
	set(OP_LESSTHANOREQUAL, "OP_LESSTHANOREQUAL", 1, opcodeLessThanOrEqual)
	set(OP_GREATERTHANOREQUAL, "OP_GREATERTHANOREQUAL", 1, opcodeGreaterThanOrEqual)
	set(OP_MIN, "OP_MIN", 1, opcodeMin)
	set(OP_MAX, "OP_MAX", 1, opcodeMax)
	set(OP_WITHIN, "OP_WITHIN", 1, opcodeWithin)

	set(OP_RIPEMD160, "OP_RIPEMD160", 1, opcodeRipemd160)
	set(OP_SHA1, "OP_SHA1", 1, opcodeSha1)
	set(OP_SHA256, "OP_SHA256", 1, opcodeSha256)
	set(OP_HASH160, "OP_HASH160", 1, opcodeHash160)
	set(OP_HASH256, "OP_HASH256", 1, opcodeHash256)
	set(OP_CODESEPARATOR, "OP_CODESEPARATOR", 1, opcodeCodeSeparator)
	set(OP_CHECKSIG, "OP_CHECKSIG", 1, opcodeCheckSig)
	set(OP_CHECKSIGVERIFY, "OP_CHECKSIGVERIFY", 1, opcodeCheckSigVerify)
	set(OP_CHECKMULTISIG, "OP_CHECKMULTISIG", 1, opcodeCheckMultiSig)
	set(OP_CHECKMULTISIGVERIFY, "OP_CHECKMULTISIGVERIFY", 1, opcodeCheckMultiSigVerify)

	set(OP_NOP1, "OP_NOP1", 1, opcodeUnallocatedNop)
	set(OP_CHECKLOCKTIMEVERIFY, "OP_CHECKLOCKTIMEVERIFY", 1, opcodeCheckLockTimeVerify)
	set(OP_CHECKSEQUENCEVERIFY, "OP_CHECKSEQUENCEVERIFY", 1, opcodeUnallocatedNop)
	set(OP_NOP4, "OP_NOP4", 1, opcodeUnallocatedNop)
	set(OP_NOP5, "OP_NOP5", 1, opcodeUnallocatedNop)
	set(OP_NOP6, "OP_NOP6", 1, opcodeUnallocatedNop)
	set(OP_NOP7, "OP_NOP7", 1, opcodeUnallocatedNop)
	set(OP_NOP8, "OP_NOP8", 1, opcodeUnallocatedNop)
	set(OP_NOP9, "OP_NOP9", 1, opcodeUnallocatedNop)
	set(OP_NOP10, "OP_NOP10", 1, opcodeUnallocatedNop)

	// Everything else (0xba..0xff) is an unassigned opcode; leaving exec
	// nil causes the dispatcher to reject it with SCRIPT_ERR_BAD_OPCODE.
	for v := 0xba; v <= 0xff; v++ {
		if opcodeArray[v].name == "" {
			set(byte(v), "OP_UNKNOWN", 1, nil)
		}
	}
}

func opcodeDataName(n int) string {
	return pushDataNames[n]
}

func opcodeNName(n int) string {
	return smallIntNames[n-OP_1]
}

var pushDataNames = func() [76]string {
	var names [76]string
	for i := 1; i <= 75; i++ {
		names[i] = "OP_DATA_" + itoa(i)
	}
	return names
}()

var smallIntNames = func() [16]string {
	var names [16]string
	for i := 1; i <= 16; i++ {
		names[i-1] = "OP_" + itoa(i)
	}
	return names
}()

// itoa is a tiny decimal formatter for the small constant ranges above,
// avoiding a strconv import for a handful of two-digit numbers.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
