// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

const (
	// MaxScriptSize is the maximum allowed length of a raw script.
	MaxScriptSize = 10000

	// MaxScriptElementSize is the maximum allowed size, in bytes, of an
	// element pushed onto the data or alt stack.
	MaxScriptElementSize = 520

	// MaxOpsPerScript is the maximum number of non-push opcodes (opcodes
	// above OP_16) that are allowed in a script.
	MaxOpsPerScript = 201

	// MaxStackSize is the maximum combined size, measured in element
	// count, of the data stack and the alt stack after any opcode.
	MaxStackSize = 1000

	// MaxPubKeysPerMultiSig is the maximum number of public keys that
	// OP_CHECKMULTISIG(VERIFY) will accept.
	MaxPubKeysPerMultiSig = 20

	// defaultScriptNumLen is the maximum number of bytes allowed for a
	// script number operand in the general case.
	defaultScriptNumLen = 4

	// cltvMaxScriptNumLen is the maximum number of bytes allowed for the
	// operand of OP_CHECKLOCKTIMEVERIFY, which is one byte longer than the
	// general case to avoid the year-2038 problem.
	cltvMaxScriptNumLen = 5

	// lockTimeThreshold is the number below which a locktime (or CLTV
	// operand) is interpreted as a block height, and above or equal to
	// which it is interpreted as a Unix timestamp.
	lockTimeThreshold = 500000000

	// sequenceLockTimeDisabled is the sequence value that marks an input
	// as final, bypassing relative/absolute locktime enforcement.
	sequenceLockTimeDisabled = 0xffffffff
)
