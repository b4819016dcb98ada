// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// parsedOpcode represents a single chunk of a parsed script: either a
// non-push opcode, or a push opcode together with the data it pushes.
type parsedOpcode struct {
	opcode *opcode
	data   []byte
}

// isPush reports whether the chunk pushes data (including OP_0 and the
// small-integer/1NEGATE opcodes, which push a numeric value rather than
// literal data, but still occupy the "push" range of opcode space for the
// purposes of the P2SH push-only check).
func (po *parsedOpcode) isPush() bool {
	return po.opcode.value <= OP_16
}

// isDisabled reports whether the opcode is one of the always- or
// conditionally-disabled opcodes.
func (po *parsedOpcode) isDisabled() bool {
	switch po.opcode.value {
	case OP_CAT, OP_SPLIT, OP_AND, OP_OR, OP_XOR, OP_DIV, OP_MOD,
		OP_NUM2BIN, OP_BIN2NUM:
		return true
	case OP_INVERT, OP_LSHIFT, OP_RSHIFT, OP_2MUL, OP_2DIV, OP_MUL:
		return true
	}
	return false
}

// alwaysIllegal reports whether the opcode is unconditionally disabled, as
// opposed to conditionally disabled pending ScriptMonolithOpcodes.
func (po *parsedOpcode) alwaysIllegal() bool {
	switch po.opcode.value {
	case OP_INVERT, OP_LSHIFT, OP_RSHIFT, OP_2MUL, OP_2DIV, OP_MUL:
		return true
	}
	return false
}

// bytes returns the serialized form of the chunk: the opcode byte (plus
// any length header for pushdata opcodes) followed by the pushed data, if
// any.
func (po *parsedOpcode) bytes() ([]byte, error) {
	var retbytes []byte
	if po.opcode.length > 0 {
		retbytes = make([]byte, 1, po.opcode.length)
	} else {
		retbytes = make([]byte, 1, 1+len(po.data)+
			-po.opcode.length)
	}

	retbytes[0] = po.opcode.value
	if po.opcode.length == 1 {
		if len(po.data) != 0 {
			return nil, scriptError(ErrInternal, fmt.Sprintf(
				"internal consistency error - opcode %s has "+
					"no data expected", po.opcode.name))
		}
		return retbytes, nil
	}

	nbytes := po.opcode.length
	if po.opcode.length < 0 {
		l := len(po.data)
		switch po.opcode.length {
		case -1:
			retbytes = append(retbytes, byte(l))
			nbytes = int(retbytes[1]) + len(retbytes)
		case -2:
			retbytes = append(retbytes, byte(l), byte(l>>8))
			nbytes = int(retbytes[1]) | int(retbytes[2])<<8 + len(retbytes)
		case -4:
			retbytes = append(retbytes, byte(l), byte(l>>8), byte(l>>16), byte(l>>24))
			nbytes = int(retbytes[1]) | int(retbytes[2])<<8 |
				int(retbytes[3])<<16 | int(retbytes[4])<<24 + len(retbytes)
		}
	}

	retbytes = append(retbytes, po.data...)

	if len(retbytes) != nbytes {
		return nil, scriptError(ErrInternal, fmt.Sprintf(
			"internal consistency error - serialized length %d "+
				"does not match computed length %d", len(retbytes), nbytes))
	}

	return retbytes, nil
}

// isShortestPossiblePush reports whether the chunk's encoding is the
// shortest possible way to push its data payload, as required by
// ScriptMinimalData.
func (po *parsedOpcode) isShortestPossiblePush() bool {
	if po.opcode.value > OP_16 {
		return true
	}

	data := po.data
	switch po.opcode.value {
	case OP_0:
		return len(data) == 0
	case OP_1NEGATE:
		return len(data) == 0
	}

	// OP_1..OP_16 carry their value in the opcode itself, so a parsed
	// chunk has no data and is always the shortest form of that value.
	if po.opcode.value >= OP_1 && po.opcode.value <= OP_16 {
		return len(data) == 0
	}

	switch {
	case len(data) == 0:
		return po.opcode.value == OP_0
	case len(data) == 1 && data[0] >= 1 && data[0] <= 16:
		return false // should have used OP_1..OP_16
	case len(data) == 1 && data[0] == 0x81:
		return false // should have used OP_1NEGATE
	case len(data) <= 75:
		return int(po.opcode.value) == len(data)
	case len(data) <= 255:
		return po.opcode.value == OP_PUSHDATA1
	case len(data) <= 65535:
		return po.opcode.value == OP_PUSHDATA2
	}
	return po.opcode.value == OP_PUSHDATA4
}

// parseScript preparses the raw bytes of a script into a list of
// parsedOpcodes, resolving push-opcode length headers and validating that
// the script doesn't claim more data than remains. It does not enforce any
// consensus limits itself; limit checking happens opcode-by-opcode during
// execution, including for disabled opcodes reached inside dead branches.
func parseScript(script []byte) ([]parsedOpcode, error) {
	var retScript []parsedOpcode
	for i := 0; i < len(script); {
		instr := script[i]
		op := &opcodeArray[instr]

		var data []byte
		switch {
		case op.length == 1:
			i++
		case op.length > 1:
			if len(script[i:]) < op.length {
				str := fmt.Sprintf("opcode %s requires %d bytes, "+
					"but script only has %d remaining",
					op.name, op.length, len(script[i:]))
				return nil, scriptError(ErrMalformedPush, str)
			}
			data = script[i+1 : i+op.length]
			i += op.length
		case op.length < 0:
			var l int
			off := i + 1
			switch op.length {
			case -1:
				if len(script[off:]) < 1 {
					return nil, scriptError(ErrMalformedPush,
						"OP_PUSHDATA1 missing length byte")
				}
				l = int(script[off])
				off++
			case -2:
				if len(script[off:]) < 2 {
					return nil, scriptError(ErrMalformedPush,
						"OP_PUSHDATA2 missing length bytes")
				}
				l = int(script[off]) | int(script[off+1])<<8
				off += 2
			case -4:
				if len(script[off:]) < 4 {
					return nil, scriptError(ErrMalformedPush,
						"OP_PUSHDATA4 missing length bytes")
				}
				l = int(script[off]) | int(script[off+1])<<8 |
					int(script[off+2])<<16 | int(script[off+3])<<24
				off += 4
			}
			if l < 0 || len(script[off:]) < l {
				str := fmt.Sprintf("opcode %s pushes %d bytes, "+
					"but script only has %d remaining",
					op.name, l, len(script[off:]))
				return nil, scriptError(ErrMalformedPush, str)
			}
			data = script[off : off+l]
			i = off + l
		}

		retScript = append(retScript, parsedOpcode{opcode: op, data: data})
	}

	return retScript, nil
}

// unparseScript reassembles a script from a list of parsedOpcodes.
func unparseScript(pops []parsedOpcode) ([]byte, error) {
	script := make([]byte, 0, len(pops))
	for _, pop := range pops {
		b, err := pop.bytes()
		if err != nil {
			return nil, err
		}
		script = append(script, b...)
	}
	return script, nil
}

// IsPushOnlyScript reports whether the raw script consists entirely of
// push opcodes (opcode value <= OP_16), as required of scriptSig when
// spending a P2SH output.
func IsPushOnlyScript(script []byte) bool {
	pops, err := parseScript(script)
	if err != nil {
		return false
	}
	for i := range pops {
		if !pops[i].isPush() {
			return false
		}
	}
	return true
}

// isScriptHash reports whether pops matches the P2SH template exactly:
// OP_HASH160 <20-byte push> OP_EQUAL.
func isScriptHash(pops []parsedOpcode) bool {
	return len(pops) == 3 &&
		pops[0].opcode.value == OP_HASH160 &&
		pops[1].opcode.value == OP_DATA_20 &&
		pops[2].opcode.value == OP_EQUAL
}

// IsPayToScriptHash reports whether script matches the P2SH template:
// OP_HASH160 <20-byte hash> OP_EQUAL.
func IsPayToScriptHash(script []byte) bool {
	pops, err := parseScript(script)
	if err != nil {
		return false
	}
	return isScriptHash(pops)
}
