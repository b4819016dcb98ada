// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

func opcodeToAltStack(pop *parsedOpcode, vm *Engine) error {
	so, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	vm.astack.PushByteArray(so)
	return nil
}

func opcodeFromAltStack(pop *parsedOpcode, vm *Engine) error {
	so, err := vm.astack.PopByteArray()
	if err != nil {
		return scriptError(ErrInvalidAltStackOperation, err.Error())
	}
	vm.dstack.PushByteArray(so)
	return nil
}

func opcode2Drop(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.DropN(2)
}

func opcode2Dup(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.DupN(2)
}

func opcode3Dup(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.DupN(3)
}

func opcode2Over(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.OverN(2)
}

func opcode2Rot(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.RotN(2)
}

func opcode2Swap(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.SwapN(2)
}

// opcodeIfDup duplicates the top item only if it is truthy.
func opcodeIfDup(pop *parsedOpcode, vm *Engine) error {
	so, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	if castToBool(so) {
		vm.dstack.PushByteArray(so)
	}
	return nil
}

func opcodeDepth(pop *parsedOpcode, vm *Engine) error {
	vm.dstack.PushScriptNum(scriptNumFromInt(int64(vm.dstack.Depth())))
	return nil
}

func opcodeDrop(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.DropN(1)
}

func opcodeDup(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.DupN(1)
}

func opcodeNip(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.NipN(1)
}

func opcodeOver(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.OverN(1)
}

// popStackIndex pops the top item, interprets it as a script number, and
// validates it as an in-range index for OP_PICK/OP_ROLL.
func popStackIndex(vm *Engine) (int, error) {
	n, err := vm.dstack.PopScriptNum()
	if err != nil {
		return 0, err
	}
	idx := n.Int32()
	if idx < 0 || int(idx) >= vm.dstack.Depth() {
		return 0, scriptError(ErrInvalidStackOperation,
			"pick/roll index out of range")
	}
	return int(idx), nil
}

func opcodePick(pop *parsedOpcode, vm *Engine) error {
	idx, err := popStackIndex(vm)
	if err != nil {
		return err
	}
	return vm.dstack.PickN(idx)
}

func opcodeRoll(pop *parsedOpcode, vm *Engine) error {
	idx, err := popStackIndex(vm)
	if err != nil {
		return err
	}
	return vm.dstack.RollN(idx)
}

func opcodeRot(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.RotN(1)
}

func opcodeSwap(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.SwapN(1)
}

func opcodeTuck(pop *parsedOpcode, vm *Engine) error {
	return vm.dstack.Tuck()
}
