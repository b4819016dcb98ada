// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// CorrectlySpends reports whether scriptSig, when evaluated together with
// scriptPubKey, correctly authorizes spending input inputIdx of tx. This is
// the package's single public entry point, driving the two-phase
// scriptSig/scriptPubKey evaluation, the optional P2SH redeem-script
// re-evaluation, and the final stack check.
func CorrectlySpends(scriptSig, scriptPubKey []byte, tx TxView, inputIdx int, inputAmount int64, flags VerifyFlags) error {
	clone, err := cloneTxView(tx)
	if err != nil {
		return err
	}
	tx = clone

	if len(scriptSig) > MaxScriptSize {
		return scriptError(ErrScriptSize, "scriptSig exceeds max script size")
	}
	if len(scriptPubKey) > MaxScriptSize {
		return scriptError(ErrScriptSize, "scriptPubKey exceeds max script size")
	}

	dstack := &stack{verifyMinimalData: flags.HasFlag(ScriptMinimalData)}
	astack := &stack{verifyMinimalData: flags.HasFlag(ScriptMinimalData)}

	sigVM, err := newEngine(scriptSig, dstack, astack, tx, inputIdx, inputAmount, flags)
	if err != nil {
		return err
	}
	if err := sigVM.Execute(); err != nil {
		return err
	}
	*dstack = sigVM.dstack
	*astack = sigVM.astack

	var p2shStack stack
	usesP2SH := flags.HasFlag(ScriptP2SH) && IsPayToScriptHash(scriptPubKey)
	if usesP2SH {
		p2shStack.stk = make([][]byte, len(dstack.stk))
		copy(p2shStack.stk, dstack.stk)
	}

	pubKeyVM, err := newEngine(scriptPubKey, dstack, astack, tx, inputIdx, inputAmount, flags)
	if err != nil {
		return err
	}
	if err := pubKeyVM.Execute(); err != nil {
		return err
	}
	*dstack = pubKeyVM.dstack
	*astack = pubKeyVM.astack

	if dstack.Depth() == 0 {
		return scriptError(ErrEvalFalse, "scriptPubKey left an empty stack")
	}
	top, err := dstack.PopBool()
	if err != nil {
		return err
	}
	if !top {
		return scriptError(ErrEvalFalse, "scriptPubKey evaluated to false")
	}

	if usesP2SH {
		if !IsPushOnlyScript(scriptSig) {
			return scriptError(ErrSigPushOnly,
				"scriptSig is not push-only for a P2SH input")
		}
		if p2shStack.Depth() == 0 {
			return scriptError(ErrEvalFalse,
				"P2SH scriptSig left no redeem script on the stack")
		}

		redeemScript, err := p2shStack.PopByteArray()
		if err != nil {
			return err
		}

		redeemVM, err := newEngine(redeemScript, &p2shStack, &stack{}, tx, inputIdx, inputAmount, flags)
		if err != nil {
			return err
		}
		if err := redeemVM.Execute(); err != nil {
			return err
		}

		if redeemVM.dstack.Depth() == 0 {
			return scriptError(ErrEvalFalse,
				"redeem script left an empty stack")
		}
		redeemTop, err := redeemVM.dstack.PopBool()
		if err != nil {
			return err
		}
		if !redeemTop {
			return scriptError(ErrEvalFalse,
				"redeem script evaluated to false")
		}
	}

	return nil
}

// cloneTxView makes a defensive copy of tx by round-tripping it through its
// wire serialization, so that any representation the caller continues to
// hold cannot be mutated out from under an in-flight evaluation. The copy
// is made only when the concrete implementation also supports
// deserialization via the txDeserializer interface; any other TxView is
// returned unchanged.
func cloneTxView(tx TxView) (TxView, error) {
	d, ok := tx.(txDeserializer)
	if !ok {
		// A TxView that can't round-trip itself is used as-is; this is a
		// deliberate relaxation for lightweight test doubles that are
		// already immutable by construction.
		return tx, nil
	}

	raw, err := tx.Serialize()
	if err != nil {
		return nil, scriptError(ErrUnknownError, fmt.Sprintf(
			"failed to serialize transaction for defensive clone: %v", err))
	}

	clone, err := d.DeserializeNew(raw)
	if err != nil {
		return nil, scriptError(ErrUnknownError, fmt.Sprintf(
			"failed to deserialize transaction for defensive clone: %v", err))
	}
	return clone, nil
}

// txDeserializer is implemented by TxView types that can produce a fresh,
// independent copy of themselves from their own serialized form.
type txDeserializer interface {
	DeserializeNew(raw []byte) (TxView, error)
}
