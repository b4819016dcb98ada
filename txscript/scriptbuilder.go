// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// ScriptBuilder provides a facility for building custom scripts. It allows
// the usual pattern of easily pushing opcodes and data while respecting
// canonical encoding rules, primarily so that tests can build scripts
// without hand-assembling byte slices. It performs no consensus validation
// of its own beyond the element-size limit.
type ScriptBuilder struct {
	script []byte
	err    error
}

// NewScriptBuilder returns a new empty script builder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{script: make([]byte, 0, 500)}
}

// AddOp appends the given opcode to the script being built.
func (b *ScriptBuilder) AddOp(op byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	b.script = append(b.script, op)
	return b
}

// AddInt64 pushes the canonical script-number encoding of n.
func (b *ScriptBuilder) AddInt64(n int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	switch {
	case n == 0:
		return b.AddOp(OP_0)
	case n == -1 || (n >= 1 && n <= 16):
		return b.AddOp(byte(OP_1 - 1 + n))
	}

	return b.AddData(scriptNumFromInt(n).Bytes())
}

// AddData pushes data using the canonical, minimal push opcode for its
// length.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	if len(data) > MaxScriptElementSize {
		b.err = fmt.Errorf("adding %d bytes of data exceeds the max "+
			"allowed size of %d", len(data), MaxScriptElementSize)
		return b
	}

	switch {
	case len(data) == 0:
		b.script = append(b.script, OP_0)
	case len(data) == 1 && data[0] >= 1 && data[0] <= 16:
		b.script = append(b.script, OP_1-1+data[0])
	case len(data) == 1 && data[0] == 0x81:
		b.script = append(b.script, OP_1NEGATE)
	case len(data) <= 75:
		b.script = append(b.script, byte(OP_DATA_1-1+len(data)))
		b.script = append(b.script, data...)
	case len(data) <= 255:
		b.script = append(b.script, OP_PUSHDATA1, byte(len(data)))
		b.script = append(b.script, data...)
	case len(data) <= 65535:
		b.script = append(b.script, OP_PUSHDATA2,
			byte(len(data)), byte(len(data)>>8))
		b.script = append(b.script, data...)
	default:
		b.script = append(b.script,
			OP_PUSHDATA4,
			byte(len(data)), byte(len(data)>>8),
			byte(len(data)>>16), byte(len(data)>>24))
		b.script = append(b.script, data...)
	}

	return b
}

// Script returns the script as currently built, or an error if any add
// call failed.
func (b *ScriptBuilder) Script() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	script := make([]byte, len(b.script))
	copy(script, b.script)
	return script, nil
}
