// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/ripemd160"
)

func opcodeRipemd160(pop *parsedOpcode, vm *Engine) error {
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	h := ripemd160.New()
	h.Write(data)
	vm.dstack.PushByteArray(h.Sum(nil))
	return nil
}

func opcodeSha1(pop *parsedOpcode, vm *Engine) error {
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	sum := sha1.Sum(data)
	vm.dstack.PushByteArray(sum[:])
	return nil
}

func opcodeSha256(pop *parsedOpcode, vm *Engine) error {
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	sum := sha256.Sum256(data)
	vm.dstack.PushByteArray(sum[:])
	return nil
}

// opcodeHash160 computes RIPEMD160(SHA256(x)), the digest used to derive
// P2PKH and P2SH addresses.
func opcodeHash160(pop *parsedOpcode, vm *Engine) error {
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	shaSum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(shaSum[:])
	vm.dstack.PushByteArray(h.Sum(nil))
	return nil
}

func opcodeHash256(pop *parsedOpcode, vm *Engine) error {
	data, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	vm.dstack.PushByteArray(doubleSHA256(data))
	return nil
}

// opcodeCodeSeparator records the chunk immediately after this one as the
// start of the connected script for subsequent signature checks.
func opcodeCodeSeparator(pop *parsedOpcode, vm *Engine) error {
	vm.lastCodeSep = vm.pc
	return nil
}

// checkTxSig validates a (signature, pubkey) pair against the current
// input's digest, returning (valid, err): err is non-nil only for encoding
// failures that ScriptStrictEnc/ScriptDerSig/ScriptLowS make fatal;
// anything else that goes wrong during decode (malformed DER with no
// strict-encoding flags set, an unparseable pubkey) is swallowed into a
// false verification result.
func (vm *Engine) checkTxSig(sigBytes, pubKeyBytes []byte) (bool, error) {
	if len(sigBytes) == 0 {
		return false, nil
	}

	hashType := SigHashType(sigBytes[len(sigBytes)-1])
	rawDER := sigBytes[:len(sigBytes)-1]

	if err := checkHashTypeEncoding(hashType, vm.flags); err != nil {
		return false, err
	}
	if err := checkSignatureEncoding(rawDER, vm.flags); err != nil {
		return false, err
	}
	if err := checkPubKeyEncoding(pubKeyBytes, vm.flags); err != nil {
		return false, err
	}

	connScript, err := vm.connectedScript(sigBytes)
	if err != nil {
		return false, err
	}

	sig, err := parseSignature(sigBytes)
	if err != nil {
		return false, nil
	}

	digest, err := calcSignatureHash(vm.tx, vm.txIdx, connScript, hashType, vm.inputAmount)
	if err != nil {
		return false, err
	}

	valid, err := verifySignature(digest, sig, pubKeyBytes)
	if err != nil {
		return false, nil
	}
	return valid, nil
}

func opcodeCheckSig(pop *parsedOpcode, vm *Engine) error {
	pubKeyBytes, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	sigBytes, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}

	valid, err := vm.checkTxSig(sigBytes, pubKeyBytes)
	if err != nil {
		return err
	}
	vm.dstack.PushBool(valid)
	return nil
}

func opcodeCheckSigVerify(pop *parsedOpcode, vm *Engine) error {
	if err := opcodeCheckSig(pop, vm); err != nil {
		return err
	}
	ok, err := vm.dstack.PopBool()
	if err != nil {
		return err
	}
	if !ok {
		return scriptError(ErrCheckSigVerify, "CHECKSIGVERIFY failed")
	}
	return nil
}

// opcodeCheckMultiSig implements greedy signature/pubkey matching,
// including the unconditional "dummy" element pop inherited from a
// historical implementation quirk that upstream Bitcoin Core (and this
// package's ancestors) must continue to honor for consensus compatibility.
func opcodeCheckMultiSig(pop *parsedOpcode, vm *Engine) error {
	pubKeyCountNum, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	pubKeyCount := int(pubKeyCountNum.Int32())
	if pubKeyCount < 0 || pubKeyCount > MaxPubKeysPerMultiSig {
		return scriptError(ErrPubKeyCount, fmt.Sprintf(
			"invalid pubkey count %d", pubKeyCount))
	}

	vm.numOps += pubKeyCount
	if vm.numOps > MaxOpsPerScript {
		return scriptError(ErrOpCount, fmt.Sprintf(
			"exceeded max operation limit of %d", MaxOpsPerScript))
	}

	pubKeys := make([][]byte, pubKeyCount)
	for i := pubKeyCount - 1; i >= 0; i-- {
		pk, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		pubKeys[i] = pk
	}

	sigCountNum, err := vm.dstack.PopScriptNum()
	if err != nil {
		return err
	}
	sigCount := int(sigCountNum.Int32())
	if sigCount < 0 || sigCount > pubKeyCount {
		return scriptError(ErrSigCount, fmt.Sprintf(
			"invalid signature count %d", sigCount))
	}

	sigs := make([][]byte, sigCount)
	for i := sigCount - 1; i >= 0; i-- {
		s, err := vm.dstack.PopByteArray()
		if err != nil {
			return err
		}
		sigs[i] = s
	}

	dummy, err := vm.dstack.PopByteArray()
	if err != nil {
		return err
	}
	if vm.flags.HasFlag(ScriptNullDummy) && len(dummy) != 0 {
		return scriptError(ErrSigNullDummy,
			"multisig dummy element was not empty")
	}

	connScript, err := vm.connectedScript(sigs...)
	if err != nil {
		return err
	}

	success := true
	sigIdx, pkIdx := 0, 0
	for remainingSigs := sigCount; remainingSigs > 0; {
		if remainingSigs > pubKeyCount-pkIdx {
			success = false
			break
		}

		sig := sigs[sigIdx]
		pubKey := pubKeys[pkIdx]

		valid, err := vm.verifyMultiSigPair(connScript, sig, pubKey)
		if err != nil {
			return err
		}

		if valid {
			sigIdx++
			remainingSigs--
		}
		pkIdx++
	}

	vm.dstack.PushBool(success)
	return nil
}

// verifyMultiSigPair is like checkTxSig, including its encoding checks,
// but reuses connScript computed once for the whole multisig rather than
// recomputing it per pair.
func (vm *Engine) verifyMultiSigPair(connScript, sigBytes, pubKeyBytes []byte) (bool, error) {
	if len(sigBytes) == 0 {
		return false, nil
	}

	hashType := SigHashType(sigBytes[len(sigBytes)-1])
	rawDER := sigBytes[:len(sigBytes)-1]

	if err := checkHashTypeEncoding(hashType, vm.flags); err != nil {
		return false, err
	}
	if err := checkSignatureEncoding(rawDER, vm.flags); err != nil {
		return false, err
	}
	if err := checkPubKeyEncoding(pubKeyBytes, vm.flags); err != nil {
		return false, err
	}

	sig, err := parseSignature(sigBytes)
	if err != nil {
		return false, nil
	}

	digest, err := calcSignatureHash(vm.tx, vm.txIdx, connScript, hashType, vm.inputAmount)
	if err != nil {
		return false, err
	}

	valid, err := verifySignature(digest, sig, pubKeyBytes)
	if err != nil {
		return false, nil
	}
	return valid, nil
}

func opcodeCheckMultiSigVerify(pop *parsedOpcode, vm *Engine) error {
	if err := opcodeCheckMultiSig(pop, vm); err != nil {
		return err
	}
	ok, err := vm.dstack.PopBool()
	if err != nil {
		return err
	}
	if !ok {
		return scriptError(ErrCheckMultiSigVerify, "CHECKMULTISIGVERIFY failed")
	}
	return nil
}

// opcodeCheckLockTimeVerify implements OP_CHECKLOCKTIMEVERIFY: with the
// flag disabled, it is a plain NOP.
func opcodeCheckLockTimeVerify(pop *parsedOpcode, vm *Engine) error {
	if !vm.flags.HasFlag(ScriptCheckLockTimeVerify) {
		return opcodeUnallocatedNop(pop, vm)
	}

	n, err := vm.dstack.PeekScriptNumN(0, cltvMaxScriptNumLen)
	if err != nil {
		return err
	}

	if n.Sign() < 0 {
		return scriptError(ErrNegativeLockTime,
			"negative locktime operand")
	}

	locktime := n.Int64()
	txLockTime := int64(vm.tx.LockTime())

	if !((locktime < lockTimeThreshold && txLockTime < lockTimeThreshold) ||
		(locktime >= lockTimeThreshold && txLockTime >= lockTimeThreshold)) {
		return scriptError(ErrUnsatisfiedLockTime,
			"locktime operand and tx locktime are not on the same side of the threshold")
	}

	if locktime > txLockTime {
		return scriptError(ErrUnsatisfiedLockTime,
			"locktime requirement not satisfied")
	}

	if vm.tx.Input(vm.txIdx).Sequence() == sequenceLockTimeDisabled {
		return scriptError(ErrUnsatisfiedLockTime,
			"transaction input is finalized")
	}

	return nil
}
