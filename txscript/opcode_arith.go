// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

func opcode1Add(pop *parsedOpcode, vm *Engine) error {
	n, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(n.Add(scriptNumFromInt(1)))
	return nil
}

func opcode1Sub(pop *parsedOpcode, vm *Engine) error {
	n, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(n.Sub(scriptNumFromInt(1)))
	return nil
}

func opcodeNegate(pop *parsedOpcode, vm *Engine) error {
	n, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(n.Neg())
	return nil
}

func opcodeAbs(pop *parsedOpcode, vm *Engine) error {
	n, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(n.Abs())
	return nil
}

func opcodeNot(pop *parsedOpcode, vm *Engine) error {
	n, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(!n.Bool())))
	return nil
}

func opcode0NotEqual(pop *parsedOpcode, vm *Engine) error {
	n, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(n.Bool())))
	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// popTwoNums pops the top two items as script numbers, returning them in
// (second-from-top, top) order, matching the operand order a opcode b
// expects.
func popTwoNums(vm *Engine) (a, b scriptNum, err error) {
	b, err = vm.dstack.PopScriptNum()
	if err != nil {
		return
	}
	a, err = vm.dstack.PopScriptNum()
	return
}

func opcodeAdd(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(a.Add(b))
	return nil
}

func opcodeSub(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(a.Sub(b))
	return nil
}

// opcodeDiv implements truncated-toward-zero integer division; a zero
// divisor is a script failure rather than undefined behavior.
func opcodeDiv(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	if b.IsZero() {
		return scriptError(ErrDivByZero, "division by zero")
	}
	quo, _ := a.quoRem(b)
	vm.dstack.PushScriptNum(quo)
	return nil
}

// opcodeMod implements truncated-toward-zero remainder natively on
// arbitrary-precision integers (the chosen resolution to the original's
// 64-bit-only OP_MOD limitation).
func opcodeMod(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	if b.IsZero() {
		return scriptError(ErrModByZero, "modulo by zero")
	}
	_, rem := a.quoRem(b)
	vm.dstack.PushScriptNum(rem)
	return nil
}

func opcodeBoolAnd(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(a.Bool() && b.Bool())))
	return nil
}

func opcodeBoolOr(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(a.Bool() || b.Bool())))
	return nil
}

func opcodeNumEqual(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(a.Cmp(b) == 0)))
	return nil
}

func opcodeNumEqualVerify(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	if a.Cmp(b) != 0 {
		return scriptError(ErrNumEqualVerify, "NUMEQUALVERIFY failed")
	}
	return nil
}

func opcodeNumNotEqual(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(a.Cmp(b) != 0)))
	return nil
}

func opcodeLessThan(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(a.Cmp(b) < 0)))
	return nil
}

func opcodeGreaterThan(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(a.Cmp(b) > 0)))
	return nil
}

func opcodeLessThanOrEqual(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(a.Cmp(b) <= 0)))
	return nil
}

func opcodeGreaterThanOrEqual(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(a.Cmp(b) >= 0)))
	return nil
}

func opcodeMin(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	if a.Cmp(b) < 0 {
		vm.dstack.PushScriptNum(a)
	} else {
		vm.dstack.PushScriptNum(b)
	}
	return nil
}

func opcodeMax(pop *parsedOpcode, vm *Engine) error {
	a, b, err := popTwoNums(vm)
	if err != nil {
		return err
	}
	if a.Cmp(b) > 0 {
		vm.dstack.PushScriptNum(a)
	} else {
		vm.dstack.PushScriptNum(b)
	}
	return nil
}

// opcodeWithin pushes true if the value is in [min, max).
func opcodeWithin(pop *parsedOpcode, vm *Engine) error {
	max, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	min, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	x, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(boolToInt(x.Cmp(min) >= 0 && x.Cmp(max) < 0)))
	return nil
}
