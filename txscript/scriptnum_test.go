// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptNumRoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, 127, 128, -128, 255, 256, -256, 65535,
		1 << 20, -(1 << 20), 1<<31 - 1, -(1 << 31)}

	for _, n := range tests {
		encoded := scriptNumFromInt(n).Bytes()
		decoded, err := makeScriptNum(encoded, true, 5)
		require.NoError(t, err)
		require.Equal(t, n, decoded.Int64())
	}
}

func TestScriptNumMinimalEncoding(t *testing.T) {
	tests := []struct {
		name    string
		encoded []byte
		wantErr bool
	}{
		{"empty is zero", nil, false},
		{"padded zero byte", []byte{0x01, 0x00}, true},
		{"negative zero", []byte{0x80}, true},
		{"255 needs disambiguating zero", []byte{0xff, 0x00}, false},
		{"minus 255 needs disambiguating zero", []byte{0xff, 0x80}, false},
		{"minimal positive", []byte{0x01}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := makeScriptNum(tt.encoded, true, 5)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestScriptNumTooLong(t *testing.T) {
	_, err := makeScriptNum([]byte{1, 2, 3, 4, 5}, false, 4)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrScriptNumOverflow))
}

func TestCastToBool(t *testing.T) {
	tests := []struct {
		v    []byte
		want bool
	}{
		{nil, false},
		{[]byte{0x00}, false},
		{[]byte{0x00, 0x00}, false},
		{[]byte{0x80}, false}, // negative zero
		{[]byte{0x01}, true},
		{[]byte{0x00, 0x80}, true}, // not the lone sign byte case
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, castToBool(tt.v))
	}
}

func TestScriptNumQuoRemTruncatesTowardZero(t *testing.T) {
	// -7 / 2 = -3 remainder -1 under truncated-toward-zero semantics,
	// distinct from floored division which would give -4 remainder 1.
	a := scriptNumFromInt(-7)
	b := scriptNumFromInt(2)

	quo, rem := a.quoRem(b)
	require.Equal(t, int64(-3), quo.Int64())
	require.Equal(t, int64(-1), rem.Int64())
}
