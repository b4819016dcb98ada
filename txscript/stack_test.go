// Copyright (c) 2013-2015 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	var s stack

	s.PushByteArray([]byte{1, 2, 3})
	s.PushBool(true)
	s.PushScriptNum(scriptNumFromInt(42))

	require.Equal(t, 3, s.Depth())

	n, err := s.PopScriptNum()
	require.NoError(t, err)
	require.Equal(t, int64(42), n.Int64())

	b, err := s.PopBool()
	require.NoError(t, err)
	require.True(t, b)

	data, err := s.PopByteArray()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, data)

	require.Equal(t, 0, s.Depth())
}

func TestStackUnderflow(t *testing.T) {
	var s stack

	_, err := s.PopByteArray()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrInvalidStackOperation))

	_, err = s.PeekByteArray(0)
	require.Error(t, err)
}

func TestStackRotSwapOver(t *testing.T) {
	var s stack
	s.PushByteArray([]byte{1})
	s.PushByteArray([]byte{2})
	s.PushByteArray([]byte{3})

	require.NoError(t, s.RotN(1))
	require.Equalf(t, [][]byte{{2}, {3}, {1}}, s.stk, "stack after RotN: %s", spew.Sdump(s.stk))

	var s2 stack
	s2.PushByteArray([]byte{1})
	s2.PushByteArray([]byte{2})
	require.NoError(t, s2.SwapN(1))
	require.Equal(t, [][]byte{{2}, {1}}, s2.stk)

	var s3 stack
	s3.PushByteArray([]byte{1})
	s3.PushByteArray([]byte{2})
	s3.PushByteArray([]byte{3})
	require.NoError(t, s3.OverN(1))
	require.Equal(t, [][]byte{{1}, {2}, {3}, {2}}, s3.stk)
}

func TestStackPickRoll(t *testing.T) {
	var s stack
	s.PushByteArray([]byte{1})
	s.PushByteArray([]byte{2})
	s.PushByteArray([]byte{3})

	require.NoError(t, s.PickN(2))
	require.Equal(t, [][]byte{{1}, {2}, {3}, {1}}, s.stk)

	var s2 stack
	s2.PushByteArray([]byte{1})
	s2.PushByteArray([]byte{2})
	s2.PushByteArray([]byte{3})

	require.NoError(t, s2.RollN(2))
	require.Equal(t, [][]byte{{2}, {3}, {1}}, s2.stk)
}

func TestStackTuck(t *testing.T) {
	var s stack
	s.PushByteArray([]byte{1})
	s.PushByteArray([]byte{2})

	require.NoError(t, s.Tuck())
	require.Equal(t, [][]byte{{2}, {1}, {2}}, s.stk)
}

func TestStackPeekScriptNumNAllowsFiveBytes(t *testing.T) {
	var s stack
	// A 5-byte script number, valid only under the CLTV exception.
	s.PushByteArray([]byte{0x00, 0x00, 0x00, 0x00, 0x01})

	_, err := s.PeekScriptNum(0)
	require.Error(t, err)

	n, err := s.PeekScriptNumN(0, cltvMaxScriptNumLen)
	require.NoError(t, err)
	require.True(t, n.Sign() > 0)
}
