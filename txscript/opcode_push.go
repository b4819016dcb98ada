// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// opcodePushData pushes the data associated with a direct-push or
// OP_PUSHDATA1/2/4 opcode. Minimal-encoding is checked by the dispatcher
// before this handler runs.
func opcodePushData(pop *parsedOpcode, vm *Engine) error {
	vm.dstack.PushByteArray(pop.data)
	return nil
}

// opcodeFalse pushes the empty byte vector representing zero/false.
func opcodeFalse(pop *parsedOpcode, vm *Engine) error {
	vm.dstack.PushByteArray(nil)
	return nil
}

// opcode1Negate pushes the script number -1.
func opcode1Negate(pop *parsedOpcode, vm *Engine) error {
	vm.dstack.PushScriptNum(scriptNumFromInt(-1))
	return nil
}

// opcodeN pushes the small integer 1 through 16 encoded by OP_1..OP_16.
func opcodeN(pop *parsedOpcode, vm *Engine) error {
	n := int64(pop.opcode.value) - int64(OP_1) + 1
	vm.dstack.PushScriptNum(scriptNumFromInt(n))
	return nil
}

// opcodeReserved always fails; the OP_RESERVED family is not a valid
// opcode to execute.
func opcodeReserved(pop *parsedOpcode, vm *Engine) error {
	return scriptError(ErrBadOpcode, fmt.Sprintf(
		"attempt to execute reserved opcode %s", pop.opcode.name))
}

// opcodeInvalid always fails.
func opcodeInvalid(pop *parsedOpcode, vm *Engine) error {
	return scriptError(ErrBadOpcode, fmt.Sprintf(
		"attempt to execute invalid opcode %s", pop.opcode.name))
}

// opcodeNop is a no-op for the allocated, harmless NOPs (plain OP_NOP).
func opcodeNop(pop *parsedOpcode, vm *Engine) error {
	return nil
}

// opcodeUnallocatedNop implements the unallocated NOP opcodes reserved for
// future soft-fork upgrades (OP_NOP1, OP_NOP4..OP_NOP10, and
// OP_CHECKSEQUENCEVERIFY when treated as a plain NOP): they pass silently
// unless ScriptDiscourageUpgradableNops is set, in which case using one is
// itself an error.
func opcodeUnallocatedNop(pop *parsedOpcode, vm *Engine) error {
	if vm.flags.HasFlag(ScriptDiscourageUpgradableNops) {
		return scriptError(ErrDiscourageUpgradableNOPs, fmt.Sprintf(
			"%s reserved for soft-fork upgrades", pop.opcode.name))
	}
	return nil
}

// opcodeVerify pops the top stack item and fails the script if it is not
// truthy.
func opcodeVerify(pop *parsedOpcode, vm *Engine) error {
	ok, err := vm.dstack.PopBool()
	if err != nil {
		return err
	}
	if !ok {
		return scriptError(ErrVerify, "VERIFY failed")
	}
	return nil
}

// opcodeReturn unconditionally fails the script.
func opcodeReturn(pop *parsedOpcode, vm *Engine) error {
	return scriptError(ErrOpReturn, "OP_RETURN executed")
}
