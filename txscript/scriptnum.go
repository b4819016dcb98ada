// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
	"math/big"
)

// scriptNum represents a numeric value used by the script interpreter,
// backed by an arbitrary-precision integer. Script numbers are encoded on
// the stack as little-endian sign-magnitude byte strings (see
// makeScriptNum and Bytes), with the empty string representing zero.
type scriptNum struct {
	val *big.Int
}

// scriptNumFromInt wraps a native int in a scriptNum, primarily for use by
// opcode handlers that push small constants.
func scriptNumFromInt(n int64) scriptNum {
	return scriptNum{val: big.NewInt(n)}
}

// makeScriptNum decodes a byte slice, interpreted as a script number, into
// a scriptNum. maxLen bounds the accepted input length (4 for general
// operands, 5 for OP_CHECKLOCKTIMEVERIFY). When requireMinimal is
// true, the decoding additionally enforces that v is the shortest possible
// encoding of its value, rejecting padded zero bytes and the redundant
// negative-zero encoding.
func makeScriptNum(v []byte, requireMinimal bool, maxLen int) (scriptNum, error) {
	if len(v) > maxLen {
		str := fmt.Sprintf("numeric value encoded as %d bytes, which "+
			"exceeds the maximum of %d bytes", len(v), maxLen)
		return scriptNum{}, scriptError(ErrScriptNumOverflow, str)
	}

	if requireMinimal && len(v) > 0 {
		// If the most-significant-byte - excluding the sign bit - is
		// zero then this is not minimal. This also rejects the
		// redundant negative-zero encoding, 0x80.
		if v[len(v)-1]&0x7f == 0 {
			// Exception: more than one byte and the second-most
			// significant byte has the sign bit set, disambiguating
			// it from the sign byte of v[len(v)-1].
			if len(v) == 1 || v[len(v)-2]&0x80 == 0 {
				str := "non-minimally encoded script number"
				return scriptNum{}, scriptError(ErrScriptNumMinEncode, str)
			}
		}
	}

	return scriptNum{val: decodeMinimalInt(v)}, nil
}

// decodeMinimalInt converts a little-endian sign-magnitude byte string into
// a big.Int without any minimality checking. The empty slice decodes to 0.
func decodeMinimalInt(v []byte) *big.Int {
	if len(v) == 0 {
		return big.NewInt(0)
	}

	negative := v[len(v)-1]&0x80 != 0

	be := make([]byte, len(v))
	for i, b := range v {
		be[len(v)-1-i] = b
	}
	be[0] &^= 0x80

	n := new(big.Int).SetBytes(be)
	if negative {
		n.Neg(n)
	}
	return n
}

// Bytes returns the minimal little-endian sign-magnitude encoding of the
// scriptNum's value. Zero encodes to the empty slice.
func (s scriptNum) Bytes() []byte {
	if s.val.Sign() == 0 {
		return nil
	}

	negative := s.val.Sign() < 0
	be := new(big.Int).Abs(s.val).Bytes()

	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}

	// If the high bit of the most significant byte is already set, an
	// extra zero byte is needed to keep the sign bit unambiguous.
	if le[len(le)-1]&0x80 != 0 {
		le = append(le, 0)
	}
	if negative {
		le[len(le)-1] |= 0x80
	}
	return le
}

// Int32 returns the scriptNum truncated/clamped to the range of int32. It
// is used only by opcodes (OP_PICK/OP_ROLL indices, OP_CHECKMULTISIG counts)
// that already bound their operand to a small number of bytes, so no
// truncation actually occurs in practice for well-formed scripts.
func (s scriptNum) Int32() int32 {
	if !s.val.IsInt64() {
		if s.val.Sign() < 0 {
			return -1 << 31
		}
		return 1<<31 - 1
	}
	v := s.val.Int64()
	if v > 1<<31-1 {
		return 1<<31 - 1
	}
	if v < -1<<31 {
		return -1 << 31
	}
	return int32(v)
}

// Int64 returns the underlying value truncated to int64 (the value is
// always representable, since operands are bounded to at most 5 bytes by
// the caller's maxLen).
func (s scriptNum) Int64() int64 {
	return s.val.Int64()
}

func (s scriptNum) Sign() int { return s.val.Sign() }

func (s scriptNum) Add(o scriptNum) scriptNum {
	return scriptNum{val: new(big.Int).Add(s.val, o.val)}
}

func (s scriptNum) Sub(o scriptNum) scriptNum {
	return scriptNum{val: new(big.Int).Sub(s.val, o.val)}
}

func (s scriptNum) Neg() scriptNum {
	return scriptNum{val: new(big.Int).Neg(s.val)}
}

func (s scriptNum) Abs() scriptNum {
	return scriptNum{val: new(big.Int).Abs(s.val)}
}

func (s scriptNum) Cmp(o scriptNum) int {
	return s.val.Cmp(o.val)
}

func (s scriptNum) IsZero() bool { return s.val.Sign() == 0 }

// Bool mirrors castToBool's truthiness rule for the numeric value itself
// (used by OP_0NOTEQUAL/OP_NOT).
func (s scriptNum) Bool() bool { return s.val.Sign() != 0 }

// quoRem implements OP_DIV/OP_MOD's truncated-toward-zero division and
// remainder directly on arbitrary-precision integers: big.Int.Quo/Rem
// already implement Go's (and C's) truncated semantics, so no range
// restriction to int64 is needed.
func (s scriptNum) quoRem(o scriptNum) (quo, rem scriptNum) {
	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(s.val, o.val, r)
	return scriptNum{val: q}, scriptNum{val: r}
}

// castToBool reports the truthiness of a raw stack byte vector: true
// unless the vector is empty, is the single byte 0x80 (negative zero), or
// every byte is zero.
func castToBool(v []byte) bool {
	for i, b := range v {
		if b != 0 {
			// The only negative value that casts to false is
			// negative zero, represented as a lone 0x80 sign byte.
			if len(v) == 1 && b == 0x80 {
				return false
			}
			return true
		}
	}
	return false
}
