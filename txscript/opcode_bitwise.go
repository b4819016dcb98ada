// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"fmt"
)

// opcodeCat concatenates the top two byte strings, rejecting a result that
// exceeds the maximum element size.
func opcodeCat(pop *parsedOpcode, vm *Engine) error {
	b, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	a, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	if len(a)+len(b) > MaxScriptElementSize {
		return scriptError(ErrPushSize, fmt.Sprintf(
			"concatenated size %d exceeds max allowed size %d",
			len(a)+len(b), MaxScriptElementSize))
	}

	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	vm.dstack.PushByteArray(out)
	return nil
}

// opcodeSplit splits the byte string second-from-top at the index given by
// the top item, pushing the two halves back in order.
func opcodeSplit(pop *parsedOpcode, vm *Engine) error {
	n, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	idx := n.Int64()
	if idx < 0 || idx > int64(len(data)) {
		return scriptError(ErrInvalidSplitRange, fmt.Sprintf(
			"split index %d out of range for %d-byte string", idx, len(data)))
	}

	front := make([]byte, idx)
	copy(front, data[:idx])
	back := make([]byte, int64(len(data))-idx)
	copy(back, data[idx:])

	vm.dstack.PushByteArray(front)
	vm.dstack.PushByteArray(back)
	return nil
}

// bitwiseOp applies f byte-by-byte to two equal-length operands.
func bitwiseOp(vm *Engine, f func(a, b byte) byte) error {
	b, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	a, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	if len(a) != len(b) {
		return scriptError(ErrInvalidOperandSize,
			"operands to bitwise op must be the same length")
	}

	out := make([]byte, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	vm.dstack.PushByteArray(out)
	return nil
}

func opcodeAnd(pop *parsedOpcode, vm *Engine) error {
	return bitwiseOp(vm, func(a, b byte) byte { return a & b })
}

func opcodeOr(pop *parsedOpcode, vm *Engine) error {
	return bitwiseOp(vm, func(a, b byte) byte { return a | b })
}

func opcodeXor(pop *parsedOpcode, vm *Engine) error {
	return bitwiseOp(vm, func(a, b byte) byte { return a ^ b })
}

// opcodeSize pushes the byte length of the top item, leaving the item
// itself in place.
func opcodeSize(pop *parsedOpcode, vm *Engine) error {
	so, err := vm.dstack.PeekByteArray(0)
	if err != nil {
		return err
	}
	vm.dstack.PushScriptNum(scriptNumFromInt(int64(len(so))))
	return nil
}

func opcodeEqual(pop *parsedOpcode, vm *Engine) error {
	b, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	a, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	vm.dstack.PushBool(bytes.Equal(a, b))
	return nil
}

func opcodeEqualVerify(pop *parsedOpcode, vm *Engine) error {
	if err := opcodeEqual(pop, vm); err != nil {
		return err
	}
	ok, err := vm.dstack.PopBool()
	if err != nil {
		return err
	}
	if !ok {
		return scriptError(ErrEqualVerify, "EQUALVERIFY failed")
	}
	return nil
}

// opcodeNum2Bin resizes the byte string second-from-top into exactly the
// number of bytes given by the top item, preserving its value and sign.
func opcodeNum2Bin(pop *parsedOpcode, vm *Engine) error {
	sizeNum, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	size := sizeNum.Int64()
	if size < 0 || size > MaxScriptElementSize {
		return scriptError(ErrPushSize, "NUM2BIN size out of range")
	}

	n, err := makeScriptNum(data, false, len(data))
	if err != nil {
		return err
	}

	raw := n.Bytes()
	negative := len(raw) > 0 && raw[len(raw)-1]&0x80 != 0
	if negative {
		raw[len(raw)-1] &^= 0x80
	}
	// trim the sign-disambiguation zero byte, if any, before resizing
	for len(raw) > 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}

	// A magnitude that fills every byte must leave the top bit free for
	// the sign, or the result would read back as a different value.
	if int64(len(raw)) > size ||
		(len(raw) > 0 && int64(len(raw)) == size && raw[len(raw)-1]&0x80 != 0) {
		return scriptError(ErrInvalidNumberRange,
			"NUM2BIN cannot fit value into requested size")
	}

	out := make([]byte, size)
	copy(out, raw)
	if negative && size > 0 {
		out[size-1] |= 0x80
	}

	vm.dstack.PushByteArray(out)
	return nil
}

// opcodeBin2Num reduces the top item to its minimal script-number encoding,
// rejecting values wider than 4 bytes once minimized.
func opcodeBin2Num(pop *parsedOpcode, vm *Engine) error {
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	n, err := makeScriptNum(data, false, len(data))
	if err != nil {
		return err
	}

	minimal := n.Bytes()
	if len(minimal) > defaultScriptNumLen {
		return scriptError(ErrInvalidNumberRange,
			"BIN2NUM result exceeds 4 bytes")
	}

	vm.dstack.PushByteArray(minimal)
	return nil
}
