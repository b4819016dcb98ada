// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTxSerializeRoundTrip(t *testing.T) {
	tx := NewTx()
	tx.AddTxIn(&TxIn{
		PreviousOutPoint: OutPoint{Hash: [32]byte{1, 2, 3}, Index: 4},
		SignatureScript:  []byte{0x51, 0x52},
		Sequence:         MaxTxInSequenceNum,
	})
	tx.AddTxOut(&TxOut{Value: 5000, PkScript: []byte{0x76, 0xa9}})
	tx.TxLockTime = 12345

	raw, err := tx.Serialize()
	require.NoError(t, err)

	clone := &Tx{}
	require.NoError(t, clone.Deserialize(bytes.NewReader(raw)))

	require.Equal(t, tx.Version(), clone.Version())
	require.Equal(t, tx.LockTime(), clone.LockTime())
	require.Equal(t, tx.InputCount(), clone.InputCount())
	require.Equal(t, tx.OutputCount(), clone.OutputCount())
	require.Equal(t, tx.TxIn[0].SignatureScript, clone.TxIn[0].SignatureScript)
	require.Equal(t, tx.TxOut[0].Value, clone.TxOut[0].Value)
}

func TestTxDeserializeNewIsIndependentCopy(t *testing.T) {
	tx := NewTx()
	tx.AddTxIn(&TxIn{SignatureScript: []byte{0x01}})
	tx.AddTxOut(&TxOut{Value: 1, PkScript: []byte{0x02}})

	raw, err := tx.Serialize()
	require.NoError(t, err)

	view, err := tx.DeserializeNew(raw)
	require.NoError(t, err)

	tx.TxIn[0].SignatureScript[0] = 0xff

	clone := view.(*Tx)
	require.Equal(t, byte(0x01), clone.TxIn[0].SignatureScript[0])
}

func TestTxHashDeterministic(t *testing.T) {
	tx := NewTx()
	tx.AddTxIn(&TxIn{SignatureScript: []byte{0x01}})
	tx.AddTxOut(&TxOut{Value: 1, PkScript: []byte{0x02}})

	h1, err := tx.TxHash()
	require.NoError(t, err)
	h2, err := tx.TxHash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestReadVarBytesRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVarInt(&buf, 1<<30))

	_, err := readVarBytes(&buf, maxScriptSize, "test field")
	require.Error(t, err)
}
