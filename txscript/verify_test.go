// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"testing"

	ecdsa_ "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/require"
)

func p2shScriptPubKey(scriptHash []byte) []byte {
	script, err := NewScriptBuilder().
		AddOp(OP_HASH160).
		AddData(scriptHash).
		AddOp(OP_EQUAL).
		Script()
	if err != nil {
		panic(err)
	}
	return script
}

func TestCorrectlySpendsP2SH(t *testing.T) {
	priv, redeemScript, tx := newP2PKHFixture(t)

	scriptHash := hash160(redeemScript)
	scriptPubKey := p2shScriptPubKey(scriptHash)

	digest, err := calcSignatureHash(tx, 0, redeemScript, SigHashAll, 5000)
	require.NoError(t, err)
	sig := ecdsa_.Sign(priv, digest)
	sigBytes := append(sig.Serialize(), byte(SigHashAll))

	scriptSig, err := NewScriptBuilder().
		AddData(sigBytes).
		AddData(priv.PubKey().SerializeCompressed()).
		AddData(redeemScript).
		Script()
	require.NoError(t, err)

	err = CorrectlySpends(scriptSig, scriptPubKey, tx, 0, 5000, ScriptP2SH|ScriptStrictEnc|ScriptDerSig|ScriptLowS)
	require.NoError(t, err)
}

func TestCorrectlySpendsP2SHRejectsNonPushScriptSig(t *testing.T) {
	priv, redeemScript, tx := newP2PKHFixture(t)

	scriptHash := hash160(redeemScript)
	scriptPubKey := p2shScriptPubKey(scriptHash)

	// A scriptSig that includes a non-push opcode (OP_NOP here, chosen so
	// the scriptSig phase itself still executes cleanly) is rejected
	// under P2SH before the redeem script is ever evaluated.
	scriptSig, err := NewScriptBuilder().
		AddData(redeemScript).
		AddOp(OP_NOP).
		Script()
	require.NoError(t, err)

	err = CorrectlySpends(scriptSig, scriptPubKey, tx, 0, 5000, ScriptP2SH)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrSigPushOnly))
	_ = priv
}

func TestCorrectlySpendsP2SHFailsOnWrongRedeemScript(t *testing.T) {
	priv, redeemScript, tx := newP2PKHFixture(t)

	scriptHash := hash160(redeemScript)
	scriptPubKey := p2shScriptPubKey(scriptHash)

	digest, err := calcSignatureHash(tx, 0, redeemScript, SigHashAll, 5000)
	require.NoError(t, err)
	sig := ecdsa_.Sign(priv, digest)
	sigBytes := append(sig.Serialize(), byte(SigHashAll))

	wrongRedeemScript, err := NewScriptBuilder().AddOp(OP_0).Script()
	require.NoError(t, err)

	scriptSig, err := NewScriptBuilder().
		AddData(sigBytes).
		AddData(priv.PubKey().SerializeCompressed()).
		AddData(wrongRedeemScript).
		Script()
	require.NoError(t, err)

	err = CorrectlySpends(scriptSig, scriptPubKey, tx, 0, 5000, ScriptP2SH)
	require.Error(t, err)
}

func TestCorrectlySpendsP2SHWithoutFlagSkipsRedeemCheck(t *testing.T) {
	_, redeemScript, tx := newP2PKHFixture(t)

	scriptHash := hash160(redeemScript)
	scriptPubKey := p2shScriptPubKey(scriptHash)

	// Without ScriptP2SH the locking script is evaluated literally:
	// pushing the redeem script's hash on the stack satisfies
	// OP_HASH160 <hash> OP_EQUAL without ever running the redeem script.
	scriptSig, err := NewScriptBuilder().AddData(redeemScript).Script()
	require.NoError(t, err)

	err = CorrectlySpends(scriptSig, scriptPubKey, tx, 0, 5000, 0)
	require.NoError(t, err)
}
