// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// VerifyFlags is a bitmask of independent rule-variant toggles. Each flag
// enables one validation rule on top of the unconditional consensus rules;
// an empty VerifyFlags value runs the bare interpreter with none of the
// optional rules enabled.
type VerifyFlags uint32

const (
	// ScriptP2SH enables BIP16-style Pay-to-Script-Hash re-evaluation and
	// the push-only requirement on scriptSig when the locking script
	// matches the P2SH template.
	ScriptP2SH VerifyFlags = 1 << iota

	// ScriptStrictEnc requires canonical public key and signature hash
	// type encoding.
	ScriptStrictEnc

	// ScriptDerSig requires signatures to be valid, strict DER.
	ScriptDerSig

	// ScriptLowS requires the S value of a signature to be at most
	// curve order / 2, preventing signature malleability.
	ScriptLowS

	// ScriptMinimalData requires the shortest possible push encoding and
	// minimally-encoded script numbers.
	ScriptMinimalData

	// ScriptDiscourageUpgradableNops rejects the unallocated NOP opcodes
	// (OP_NOP1, OP_NOP3..OP_NOP10) instead of treating them as no-ops.
	ScriptDiscourageUpgradableNops

	// ScriptCheckLockTimeVerify enables OP_CHECKLOCKTIMEVERIFY; without
	// this flag the opcode is a plain NOP (subject to
	// ScriptDiscourageUpgradableNops).
	ScriptCheckLockTimeVerify

	// ScriptNullDummy requires the dummy stack element consumed by
	// OP_CHECKMULTISIG(VERIFY) to be the empty byte string.
	ScriptNullDummy

	// ScriptMonolithOpcodes enables OP_CAT, OP_SPLIT, OP_AND, OP_OR,
	// OP_XOR, OP_DIV, OP_MOD, OP_NUM2BIN and OP_BIN2NUM, which are
	// otherwise treated as disabled.
	ScriptMonolithOpcodes
)

// HasFlag returns whether the given flag is set.
func (f VerifyFlags) HasFlag(flag VerifyFlags) bool {
	return f&flag == flag
}

// requireCanonicalSig reports whether any of the flags that imply canonical
// (strict DER, at minimum) signature encoding are set.
func (f VerifyFlags) requireCanonicalSig() bool {
	return f.HasFlag(ScriptStrictEnc) || f.HasFlag(ScriptDerSig) || f.HasFlag(ScriptLowS)
}
