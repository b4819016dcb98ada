// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptBuilderRoundTrip(t *testing.T) {
	script, err := NewScriptBuilder().
		AddOp(OP_DUP).
		AddOp(OP_HASH160).
		AddData(make([]byte, 20)).
		AddOp(OP_EQUALVERIFY).
		AddOp(OP_CHECKSIG).
		Script()
	require.NoError(t, err)

	pops, err := parseScript(script)
	require.NoError(t, err)
	require.Len(t, pops, 5)
	require.Equal(t, byte(OP_DUP), pops[0].opcode.value)
	require.Equal(t, byte(OP_HASH160), pops[1].opcode.value)
	require.Equal(t, byte(OP_DATA_20), pops[2].opcode.value)
	require.Len(t, pops[2].data, 20)
}

func TestScriptBuilderMinimalInts(t *testing.T) {
	tests := []struct {
		n    int64
		want byte
	}{
		{0, OP_0},
		{1, OP_1},
		{16, OP_16},
		{-1, OP_1NEGATE},
	}
	for _, tt := range tests {
		script, err := NewScriptBuilder().AddInt64(tt.n).Script()
		require.NoError(t, err)
		require.Len(t, script, 1)
		require.Equal(t, tt.want, script[0])
	}

	script, err := NewScriptBuilder().AddInt64(17).Script()
	require.NoError(t, err)
	require.Equal(t, []byte{OP_DATA_1, 17}, script)
}

func TestIsPushOnlyScript(t *testing.T) {
	pushOnly, err := NewScriptBuilder().AddData([]byte("sig")).AddData([]byte("pubkey")).Script()
	require.NoError(t, err)
	require.True(t, IsPushOnlyScript(pushOnly))

	notPushOnly, err := NewScriptBuilder().AddData([]byte("sig")).AddOp(OP_CHECKSIG).Script()
	require.NoError(t, err)
	require.False(t, IsPushOnlyScript(notPushOnly))
}

func TestIsPayToScriptHash(t *testing.T) {
	p2sh, err := NewScriptBuilder().
		AddOp(OP_HASH160).
		AddData(make([]byte, 20)).
		AddOp(OP_EQUAL).
		Script()
	require.NoError(t, err)
	require.True(t, IsPayToScriptHash(p2sh))

	p2pkh, err := NewScriptBuilder().
		AddOp(OP_DUP).
		AddOp(OP_HASH160).
		AddData(make([]byte, 20)).
		AddOp(OP_EQUALVERIFY).
		AddOp(OP_CHECKSIG).
		Script()
	require.NoError(t, err)
	require.False(t, IsPayToScriptHash(p2pkh))
}

func TestParseScriptMalformedPush(t *testing.T) {
	// OP_PUSHDATA1 claiming 10 bytes but supplying none.
	_, err := parseScript([]byte{OP_PUSHDATA1, 10})
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrMalformedPush))
}

func TestIsShortestPossiblePush(t *testing.T) {
	minimal, err := parseScript([]byte{OP_1})
	require.NoError(t, err)
	require.True(t, minimal[0].isShortestPossiblePush())

	nonMinimal, err := parseScript([]byte{OP_DATA_1, 0x01})
	require.NoError(t, err)
	require.False(t, nonMinimal[0].isShortestPossiblePush())
}
