// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	ecdsa_ "github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// SigHashType represents the trailing byte appended to a DER-encoded
// signature that selects which parts of the spending transaction the
// signature commits to.
type SigHashType uint32

const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashForkID       SigHashType = 0x40
	SigHashAnyOneCanPay SigHashType = 0x80

	sigHashMask = 0x1f
)

// baseType strips the ANYONECANPAY and FORKID bits, leaving one of
// SigHashAll, SigHashNone or SigHashSingle.
func (t SigHashType) baseType() SigHashType {
	return t & sigHashMask
}

func (t SigHashType) hasForkID() bool {
	return t&SigHashForkID != 0
}

func (t SigHashType) hasAnyOneCanPay() bool {
	return t&SigHashAnyOneCanPay != 0
}

// halfOrder is secp256k1's group order divided by two, the canonical
// threshold enforced by ScriptLowS.
var halfOrder = new(big.Int).Rsh(btcec.S256().N, 1)

// Signature holds a decoded ECDSA signature together with the sighash type
// byte that followed its DER encoding on the stack. It intentionally does
// not attempt to model any curve other than secp256k1.
type Signature struct {
	sig      *ecdsa_.Signature
	HashType SigHashType
}

// parseSignature decodes a raw signature chunk pulled off the stack by
// OP_CHECKSIG/OP_CHECKMULTISIG: the last byte is the sighash type, and
// everything before it is expected to be a DER-encoded (r, s) pair. An empty
// input decodes to an empty signature with zero hash type, matching the
// convention used for "dummy" invalid-signature placeholders during
// OP_CHECKMULTISIG's greedy matching.
func parseSignature(raw []byte) (*Signature, error) {
	if len(raw) == 0 {
		return &Signature{}, nil
	}

	hashType := SigHashType(raw[len(raw)-1])
	der := raw[:len(raw)-1]

	sig, err := ecdsa_.ParseDERSignature(der)
	if err != nil {
		return nil, scriptError(ErrSigDER, err.Error())
	}

	return &Signature{sig: sig, HashType: hashType}, nil
}

// checkHashTypeEncoding verifies the sighash byte of a signature is one of
// the base types, optionally combined with ANYONECANPAY and/or FORKID, as
// required by ScriptStrictEnc.
func checkHashTypeEncoding(hashType SigHashType, flags VerifyFlags) error {
	if !flags.HasFlag(ScriptStrictEnc) {
		return nil
	}

	base := hashType.baseType()
	if base < SigHashAll || base > SigHashSingle {
		str := fmt.Sprintf("invalid hash type 0x%x", hashType)
		return scriptError(ErrSigHashType, str)
	}
	return nil
}

// checkPubKeyEncoding verifies pubKey is a compressed or uncompressed
// secp256k1 point encoding, as required by ScriptStrictEnc.
func checkPubKeyEncoding(pubKey []byte, flags VerifyFlags) error {
	if !flags.HasFlag(ScriptStrictEnc) {
		return nil
	}

	if len(pubKey) == 33 && (pubKey[0] == 0x02 || pubKey[0] == 0x03) {
		return nil
	}
	if len(pubKey) == 65 && pubKey[0] == 0x04 {
		return nil
	}
	return scriptError(ErrPubKeyType, "unsupported public key type")
}

// checkSignatureEncoding enforces strict DER shape on raw (sighash byte
// excluded) signature bytes, plus the low-S rule when requested. It walks
// the DER structure by hand rather than relying on library parsing to
// reject malformed encodings, mirroring upstream Bitcoin Core's own
// IsValidSignatureEncoding, since the two need not agree on what they will
// tolerate.
func checkSignatureEncoding(sig []byte, flags VerifyFlags) error {
	if !flags.HasFlag(ScriptDerSig) && !flags.HasFlag(ScriptLowS) &&
		!flags.HasFlag(ScriptStrictEnc) {
		return nil
	}

	if len(sig) < 8 {
		return scriptError(ErrSigDER, fmt.Sprintf(
			"malformed signature: too short: %d < 8", len(sig)))
	}
	if len(sig) > 72 {
		return scriptError(ErrSigDER, fmt.Sprintf(
			"malformed signature: too long: %d > 72", len(sig)))
	}
	if sig[0] != 0x30 {
		return scriptError(ErrSigDER, fmt.Sprintf(
			"malformed signature: format has wrong type: 0x%x", sig[0]))
	}
	if int(sig[1]) != len(sig)-2 {
		return scriptError(ErrSigDER, fmt.Sprintf(
			"malformed signature: bad length: %d != %d", sig[1], len(sig)-2))
	}

	rLen := int(sig[3])
	if rLen+5 >= len(sig) {
		return scriptError(ErrSigDER, "malformed signature: S out of bounds")
	}

	sLen := int(sig[rLen+5])
	if rLen+sLen+6 != len(sig) {
		return scriptError(ErrSigDER, "malformed signature: invalid R length")
	}

	if sig[2] != 0x02 {
		return scriptError(ErrSigDER, "malformed signature: missing first integer marker")
	}
	if rLen == 0 {
		return scriptError(ErrSigDER, "malformed signature: R length is zero")
	}
	if sig[4]&0x80 != 0 {
		return scriptError(ErrSigDER, "malformed signature: R value is negative")
	}
	if rLen > 1 && sig[4] == 0x00 && sig[5]&0x80 == 0 {
		return scriptError(ErrSigDER, "malformed signature: invalid R value")
	}

	if sig[rLen+4] != 0x02 {
		return scriptError(ErrSigDER, "malformed signature: missing second integer marker")
	}
	if sLen == 0 {
		return scriptError(ErrSigDER, "malformed signature: S length is zero")
	}
	if sig[rLen+6]&0x80 != 0 {
		return scriptError(ErrSigDER, "malformed signature: S value is negative")
	}
	if sLen > 1 && sig[rLen+6] == 0x00 && sig[rLen+7]&0x80 == 0 {
		return scriptError(ErrSigDER, "malformed signature: invalid S value")
	}

	if flags.HasFlag(ScriptLowS) {
		sValue := new(big.Int).SetBytes(sig[rLen+6 : rLen+6+sLen])
		if sValue.Cmp(halfOrder) > 0 {
			return scriptError(ErrSigHighS, "signature S value is unnecessarily high")
		}
	}

	return nil
}

// verifySignature checks sig against digest and pubKey using secp256k1
// ECDSA. A malformed public key simply fails verification rather than
// propagating an error, matching OP_CHECKSIG's behavior of collapsing any
// verification failure into pushing false.
func verifySignature(digest []byte, sig *Signature, pubKey []byte) (bool, error) {
	key, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return false, nil
	}
	if sig == nil || sig.sig == nil {
		return false, nil
	}
	return sig.sig.Verify(digest, key), nil
}
