// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// TxViewInput is the narrow view of a transaction input the interpreter
// needs: its previous outpoint, the raw scriptSig bytes, and its sequence
// number.
type TxViewInput interface {
	PrevTxHash() [32]byte
	PrevTxIndex() uint32
	SignatureScript() []byte
	Sequence() uint32
}

// TxViewOutput is the narrow view of a transaction output the interpreter
// needs: its value in satoshis and its locking script.
type TxViewOutput interface {
	Value() int64
	PkScript() []byte
}

// TxView is the contract the verifier and SIGHASH digest builder require of
// a spending transaction. Implementations must be effectively immutable
// for the lifetime of a call into the package; when the implementation
// also provides DeserializeNew, the verifier evaluates against its own
// defensive copy (via Serialize/DeserializeNew).
type TxView interface {
	InputCount() int
	Input(i int) TxViewInput
	OutputCount() int
	Output(i int) TxViewOutput
	LockTime() uint32
	Version() int32

	// Serialize returns the legacy wire encoding of the transaction, used
	// for the defensive clone. The SIGHASH digests are built from the
	// accessor methods above, not from this encoding.
	Serialize() ([]byte, error)
}
