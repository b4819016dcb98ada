// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/chainhash/v2"
)

// sigHashSentinel is returned by calcSignatureHash for the degenerate
// SIGHASH_SINGLE case where the input index has no corresponding output;
// legacy Bitcoin returns this fixed 32-byte value rather than failing.
var sigHashSentinel = [32]byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

func doubleSHA256(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}

func putUint32LE(w *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.Write(b[:])
}

func putUint64LE(w *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.Write(b[:])
}

// writeVarInt writes n using Bitcoin's compact variable-length integer
// encoding.
func writeVarInt(w *bytes.Buffer, n uint64) {
	switch {
	case n < 0xfd:
		w.WriteByte(byte(n))
	case n <= 0xffff:
		w.WriteByte(0xfd)
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(n))
		w.Write(b[:])
	case n <= 0xffffffff:
		w.WriteByte(0xfe)
		putUint32LE(w, uint32(n))
	default:
		w.WriteByte(0xff)
		putUint64LE(w, n)
	}
}

func writeVarBytes(w *bytes.Buffer, b []byte) {
	writeVarInt(w, uint64(len(b)))
	w.Write(b)
}

// calcSignatureHash computes the 32-byte message digest committed to by a
// signature over input idx of tx, given the connected script (the
// scriptPubKey, or the redeem script under P2SH, already stripped of any
// embedded signature pushes and cut from the last OP_CODESEPARATOR) and the
// raw sighash byte from the end of the signature. When hashType carries the
// FORKID bit, the BIP143-style preimage digest is used and inputAmount must
// be the satoshi value of the output being spent; otherwise inputAmount is
// ignored and the legacy serialization-based digest is used.
func calcSignatureHash(tx TxView, idx int, connectedScript []byte, hashType SigHashType, inputAmount int64) ([]byte, error) {
	if tx == nil {
		panic("txscript: signature check without a transaction context")
	}
	if hashType.hasForkID() {
		return calcForkIDDigest(tx, idx, connectedScript, hashType, inputAmount)
	}
	return calcLegacyDigest(tx, idx, connectedScript, hashType)
}

// calcLegacyDigest implements the pre-BIP143 serialization-based SIGHASH
// algorithm: build a modified copy of the transaction (every input script
// blanked except idx's, which becomes connectedScript; outputs and
// sequence numbers adjusted per the NONE/SINGLE/ANYONECANPAY rules),
// serialize it, append the 4-byte sighash type, and double-SHA256.
func calcLegacyDigest(tx TxView, idx int, connectedScript []byte, hashType SigHashType) ([]byte, error) {
	if idx >= tx.InputCount() {
		return sigHashSentinel[:], nil
	}

	base := hashType.baseType()
	if base == SigHashSingle && idx >= tx.OutputCount() {
		return sigHashSentinel[:], nil
	}

	var buf bytes.Buffer
	putUint32LE(&buf, uint32(tx.Version()))

	anyoneCanPay := hashType.hasAnyOneCanPay()
	inputCount := tx.InputCount()
	if anyoneCanPay {
		inputCount = 1
	}
	writeVarInt(&buf, uint64(inputCount))

	if anyoneCanPay {
		in := tx.Input(idx)
		writeInputForSigHash(&buf, in, connectedScript, true)
	} else {
		for i := 0; i < tx.InputCount(); i++ {
			in := tx.Input(i)
			script := []byte{}
			if i == idx {
				script = connectedScript
			}
			includeSequence := i == idx || (base != SigHashNone && base != SigHashSingle)
			writeInputForSigHash(&buf, in, script, includeSequence)
		}
	}

	switch base {
	case SigHashNone:
		writeVarInt(&buf, 0)
	case SigHashSingle:
		// Keep outputs[0..=idx], blanking every entry before idx (value -1,
		// empty script) rather than dropping them, so idx's position in the
		// output list survives in the serialization.
		writeVarInt(&buf, uint64(idx+1))
		for i := 0; i < idx; i++ {
			writeOutputForSigHash(&buf, blankedOutput{})
		}
		writeOutputForSigHash(&buf, tx.Output(idx))
	default: // SigHashAll
		writeVarInt(&buf, uint64(tx.OutputCount()))
		for i := 0; i < tx.OutputCount(); i++ {
			writeOutputForSigHash(&buf, tx.Output(i))
		}
	}

	putUint32LE(&buf, tx.LockTime())
	putUint32LE(&buf, uint32(hashType))

	return doubleSHA256(buf.Bytes()), nil
}

// writeInputForSigHash serializes one input for the legacy digest.
// includeSequence false zeroes the sequence number, per the NONE/SINGLE
// malleability-prevention rules; script is already blanked or substituted
// by the caller.
func writeInputForSigHash(w *bytes.Buffer, in TxViewInput, script []byte, includeSequence bool) {
	hash := in.PrevTxHash()
	w.Write(hash[:])
	putUint32LE(w, in.PrevTxIndex())
	writeVarBytes(w, script)
	seq := in.Sequence()
	if !includeSequence {
		seq = 0
	}
	putUint32LE(w, seq)
}

func writeOutputForSigHash(w *bytes.Buffer, out TxViewOutput) {
	putUint64LE(w, uint64(out.Value()))
	writeVarBytes(w, out.PkScript())
}

// blankedOutput stands in for an output preceding idx under SIGHASH_SINGLE:
// value -1, empty script, matching the legacy blanking convention.
type blankedOutput struct{}

func (blankedOutput) Value() int64     { return -1 }
func (blankedOutput) PkScript() []byte { return nil }

// calcForkIDDigest implements the BIP143-style preimage digest used when
// the FORKID bit is set: double-SHA256 of
// nVersion‖hashPrevouts‖hashSequence‖outpoint‖scriptCode‖amount‖sequence‖hashOutputs‖nLockTime‖sighashType.
func calcForkIDDigest(tx TxView, idx int, connectedScript []byte, hashType SigHashType, inputAmount int64) ([]byte, error) {
	base := hashType.baseType()
	anyoneCanPay := hashType.hasAnyOneCanPay()

	hashPrevouts := calcHashPrevouts(tx, anyoneCanPay)
	hashSequence := calcHashSequence(tx, base, anyoneCanPay)
	hashOutputs := calcHashOutputs(tx, idx, base)

	var buf bytes.Buffer
	putUint32LE(&buf, uint32(tx.Version()))
	buf.Write(hashPrevouts)
	buf.Write(hashSequence)

	in := tx.Input(idx)
	hash := in.PrevTxHash()
	buf.Write(hash[:])
	putUint32LE(&buf, in.PrevTxIndex())

	writeVarBytes(&buf, connectedScript)
	putUint64LE(&buf, uint64(inputAmount))
	putUint32LE(&buf, in.Sequence())

	buf.Write(hashOutputs)
	putUint32LE(&buf, tx.LockTime())
	putUint32LE(&buf, uint32(hashType))

	return doubleSHA256(buf.Bytes()), nil
}

// calcHashPrevouts returns the double-SHA256 of every input's outpoint, or
// 32 zero bytes when ANYONECANPAY is set (since the signer commits to none
// of the other inputs' outpoints in that case).
func calcHashPrevouts(tx TxView, anyoneCanPay bool) []byte {
	if anyoneCanPay {
		return make([]byte, 32)
	}
	var buf bytes.Buffer
	for i := 0; i < tx.InputCount(); i++ {
		in := tx.Input(i)
		hash := in.PrevTxHash()
		buf.Write(hash[:])
		putUint32LE(&buf, in.PrevTxIndex())
	}
	return doubleSHA256(buf.Bytes())
}

// calcHashSequence returns the double-SHA256 of every input's sequence
// number, or 32 zero bytes when the signer does not commit to other
// inputs' sequence numbers (ANYONECANPAY, or base type NONE/SINGLE, both of
// which permit other inputs to be modified after signing).
func calcHashSequence(tx TxView, base SigHashType, anyoneCanPay bool) []byte {
	if anyoneCanPay || base == SigHashNone || base == SigHashSingle {
		return make([]byte, 32)
	}
	var buf bytes.Buffer
	for i := 0; i < tx.InputCount(); i++ {
		putUint32LE(&buf, tx.Input(i).Sequence())
	}
	return doubleSHA256(buf.Bytes())
}

// calcHashOutputs returns the double-SHA256 of the committed outputs: all
// of them for SigHashAll, none for SigHashNone, and only output idx for
// SigHashSingle (or 32 zero bytes if idx has no corresponding output).
func calcHashOutputs(tx TxView, idx int, base SigHashType) []byte {
	switch base {
	case SigHashNone:
		return make([]byte, 32)
	case SigHashSingle:
		if idx >= tx.OutputCount() {
			return make([]byte, 32)
		}
		var buf bytes.Buffer
		writeOutputForSigHash(&buf, tx.Output(idx))
		return doubleSHA256(buf.Bytes())
	default:
		var buf bytes.Buffer
		for i := 0; i < tx.OutputCount(); i++ {
			writeOutputForSigHash(&buf, tx.Output(i))
		}
		return doubleSHA256(buf.Bytes())
	}
}
