// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/btcsuite/btcd/chainhash/v2"

	"github.com/nickabourisk/bsvscript/txscript"
)

const (
	// TxVersion is the transaction version this package encodes and
	// decodes.
	TxVersion int32 = 1

	// MaxTxInSequenceNum is the maximum sequence number a transaction
	// input's sequence field can hold; it marks a final, non-locktime-gated
	// input.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// maxTxInPerTx and maxTxOutPerTx bound the number of inputs/outputs
	// Deserialize will accept, guarding against a hostile varint count
	// driving an oversized allocation.
	maxTxInPerTx  = 1 << 20
	maxTxOutPerTx = 1 << 20

	// maxScriptSize bounds an individual script's length when reading it
	// off the wire; scripts larger than this are never valid under the
	// consensus rules anyway.
	maxScriptSize = 10000
)

// OutPoint identifies a transaction output being spent: the hash of the
// previous transaction and the index of the output within it.
type OutPoint struct {
	Hash  [32]byte
	Index uint32
}

// TxIn is a single input of a transaction: the outpoint it spends, the
// unlocking script authorizing the spend, and the sequence number.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// TxOut is a single output of a transaction: the amount in satoshis and
// the locking script that must be satisfied to spend it.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// Tx is a plain Bitcoin-family transaction: the legacy wire format, with
// no segregated-witness extension, sufficient to drive script evaluation.
//
// TxVer and TxLockTime hold the version and locktime fields; they are
// named to leave Version() and LockTime() free as the txscript.TxView
// accessor methods below.
type Tx struct {
	TxVer      int32
	TxIn       []*TxIn
	TxOut      []*TxOut
	TxLockTime uint32
}

// NewTx returns a new, empty transaction with the default version.
func NewTx() *Tx {
	return &Tx{TxVer: TxVersion}
}

// AddTxIn appends an input to the transaction.
func (tx *Tx) AddTxIn(ti *TxIn) {
	tx.TxIn = append(tx.TxIn, ti)
}

// AddTxOut appends an output to the transaction.
func (tx *Tx) AddTxOut(to *TxOut) {
	tx.TxOut = append(tx.TxOut, to)
}

// InputCount implements txscript.TxView.
func (tx *Tx) InputCount() int { return len(tx.TxIn) }

// OutputCount implements txscript.TxView.
func (tx *Tx) OutputCount() int { return len(tx.TxOut) }

// LockTime implements txscript.TxView.
func (tx *Tx) LockTime() uint32 { return tx.TxLockTime }

// Version implements txscript.TxView.
func (tx *Tx) Version() int32 { return tx.TxVer }

// Input implements txscript.TxView.
func (tx *Tx) Input(i int) txscript.TxViewInput {
	return txInView{tx.TxIn[i]}
}

// Output implements txscript.TxView.
func (tx *Tx) Output(i int) txscript.TxViewOutput {
	return txOutView{tx.TxOut[i]}
}

type txInView struct{ in *TxIn }

func (v txInView) PrevTxHash() [32]byte    { return v.in.PreviousOutPoint.Hash }
func (v txInView) PrevTxIndex() uint32     { return v.in.PreviousOutPoint.Index }
func (v txInView) SignatureScript() []byte { return v.in.SignatureScript }
func (v txInView) Sequence() uint32        { return v.in.Sequence }

type txOutView struct{ out *TxOut }

func (v txOutView) Value() int64     { return v.out.Value }
func (v txOutView) PkScript() []byte { return v.out.PkScript }

// TxHash returns the double-SHA256 of the transaction's legacy
// serialization, the identifier used to reference it as a previous
// outpoint.
func (tx *Tx) TxHash() ([32]byte, error) {
	raw, err := tx.Serialize()
	if err != nil {
		return [32]byte{}, err
	}
	return [32]byte(chainhash.DoubleHashH(raw)), nil
}

// Serialize implements txscript.TxView, returning the legacy wire encoding
// of the transaction.
func (tx *Tx) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := tx.BtcEncode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BtcEncode writes the legacy wire encoding of the transaction to w.
func (tx *Tx) BtcEncode(w io.Writer) error {
	if err := writeUint32(w, uint32(tx.TxVer)); err != nil {
		return err
	}

	if err := WriteVarInt(w, uint64(len(tx.TxIn))); err != nil {
		return err
	}
	for _, ti := range tx.TxIn {
		if err := writeTxIn(w, ti); err != nil {
			return err
		}
	}

	if err := WriteVarInt(w, uint64(len(tx.TxOut))); err != nil {
		return err
	}
	for _, to := range tx.TxOut {
		if err := writeTxOut(w, to); err != nil {
			return err
		}
	}

	return writeUint32(w, tx.TxLockTime)
}

func writeTxIn(w io.Writer, ti *TxIn) error {
	if _, err := w.Write(ti.PreviousOutPoint.Hash[:]); err != nil {
		return err
	}
	if err := writeUint32(w, ti.PreviousOutPoint.Index); err != nil {
		return err
	}
	if err := writeVarBytes(w, ti.SignatureScript); err != nil {
		return err
	}
	return writeUint32(w, ti.Sequence)
}

func writeTxOut(w io.Writer, to *TxOut) error {
	if err := writeUint64(w, uint64(to.Value)); err != nil {
		return err
	}
	return writeVarBytes(w, to.PkScript)
}

// Deserialize reads the legacy wire encoding of a transaction from r into
// tx, replacing its contents.
func (tx *Tx) Deserialize(r io.Reader) error {
	version, err := readUint32(r)
	if err != nil {
		return err
	}
	tx.TxVer = int32(version)

	inCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if inCount > maxTxInPerTx {
		return errTooManyTxIn
	}
	tx.TxIn = make([]*TxIn, inCount)
	for i := range tx.TxIn {
		ti, err := readTxIn(r)
		if err != nil {
			return err
		}
		tx.TxIn[i] = ti
	}

	outCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if outCount > maxTxOutPerTx {
		return errTooManyTxOut
	}
	tx.TxOut = make([]*TxOut, outCount)
	for i := range tx.TxOut {
		to, err := readTxOut(r)
		if err != nil {
			return err
		}
		tx.TxOut[i] = to
	}

	lockTime, err := readUint32(r)
	if err != nil {
		return err
	}
	tx.TxLockTime = lockTime

	return nil
}

func readTxIn(r io.Reader) (*TxIn, error) {
	ti := &TxIn{}
	if _, err := io.ReadFull(r, ti.PreviousOutPoint.Hash[:]); err != nil {
		return nil, err
	}
	idx, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	ti.PreviousOutPoint.Index = idx

	script, err := readVarBytes(r, maxScriptSize, "signature script")
	if err != nil {
		return nil, err
	}
	ti.SignatureScript = script

	seq, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	ti.Sequence = seq

	return ti, nil
}

func readTxOut(r io.Reader) (*TxOut, error) {
	value, err := readUint64(r)
	if err != nil {
		return nil, err
	}

	script, err := readVarBytes(r, maxScriptSize, "public key script")
	if err != nil {
		return nil, err
	}

	return &TxOut{Value: int64(value), PkScript: script}, nil
}

// DeserializeNew implements txscript's txDeserializer interface, producing
// an independent Tx from raw wire bytes for use in the package's defensive
// clone before signature hashing.
func (tx *Tx) DeserializeNew(raw []byte) (txscript.TxView, error) {
	clone := &Tx{}
	if err := clone.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return clone, nil
}

var (
	errTooManyTxIn  = txTooManyError("transaction input")
	errTooManyTxOut = txTooManyError("transaction output")
)

func txTooManyError(what string) error {
	return &tooManyError{what}
}

type tooManyError struct{ what string }

func (e *tooManyError) Error() string {
	return "too many " + e.what + " entries to deserialize"
}
