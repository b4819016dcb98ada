// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	ecdsa_ "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ripemd160"
)

func hash160(b []byte) []byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

func p2pkhScriptPubKey(pubKeyHash []byte) []byte {
	script, err := NewScriptBuilder().
		AddOp(OP_DUP).
		AddOp(OP_HASH160).
		AddData(pubKeyHash).
		AddOp(OP_EQUALVERIFY).
		AddOp(OP_CHECKSIG).
		Script()
	if err != nil {
		panic(err)
	}
	return script
}

// signP2PKH builds a scriptSig that spends a P2PKH output with tx's input
// idx, signing with hashType over scriptPubKey.
func signP2PKH(t *testing.T, priv *btcec.PrivateKey, tx TxView, idx int, scriptPubKey []byte, hashType SigHashType, inputAmount int64) []byte {
	digest, err := calcSignatureHash(tx, idx, scriptPubKey, hashType, inputAmount)
	require.NoError(t, err)

	sig := ecdsa_.Sign(priv, digest)
	sigBytes := append(sig.Serialize(), byte(hashType))

	scriptSig, err := NewScriptBuilder().
		AddData(sigBytes).
		AddData(priv.PubKey().SerializeCompressed()).
		Script()
	require.NoError(t, err)
	return scriptSig
}

func newP2PKHFixture(t *testing.T) (priv *btcec.PrivateKey, scriptPubKey []byte, tx *fakeTx) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	pubKeyHash := hash160(priv.PubKey().SerializeCompressed())
	scriptPubKey = p2pkhScriptPubKey(pubKeyHash)

	tx = &fakeTx{
		version: 1,
		inputs: []fakeInput{
			{prevHash: [32]byte{9, 9, 9}, prevIndex: 0, sequence: 0xffffffff},
		},
		outputs: []fakeOutput{
			{value: 4000, pkScript: []byte{OP_TRUE}},
		},
	}
	return priv, scriptPubKey, tx
}

func TestCorrectlySpendsP2PKH(t *testing.T) {
	priv, scriptPubKey, tx := newP2PKHFixture(t)
	scriptSig := signP2PKH(t, priv, tx, 0, scriptPubKey, SigHashAll, 5000)

	err := CorrectlySpends(scriptSig, scriptPubKey, tx, 0, 5000, ScriptStrictEnc|ScriptDerSig|ScriptLowS)
	require.NoError(t, err)
}

func TestCorrectlySpendsRejectsWrongPubKey(t *testing.T) {
	priv, scriptPubKey, tx := newP2PKHFixture(t)
	digest, err := calcSignatureHash(tx, 0, scriptPubKey, SigHashAll, 5000)
	require.NoError(t, err)
	sig := ecdsa_.Sign(priv, digest)
	sigBytes := append(sig.Serialize(), byte(SigHashAll))

	// Sign with priv, but present a different pubkey: the hash check in
	// scriptPubKey (OP_EQUALVERIFY) fails first since it doesn't hash to
	// the same pubKeyHash the scriptPubKey was built with.
	other, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	badScriptSig, err := NewScriptBuilder().
		AddData(sigBytes).
		AddData(other.PubKey().SerializeCompressed()).
		Script()
	require.NoError(t, err)

	err = CorrectlySpends(badScriptSig, scriptPubKey, tx, 0, 5000, ScriptStrictEnc)
	require.Error(t, err)
}

func TestCorrectlySpendsOpReturnFails(t *testing.T) {
	scriptPubKey := []byte{OP_RETURN}
	tx := &fakeTx{
		inputs:  []fakeInput{{}},
		outputs: []fakeOutput{{value: 1, pkScript: []byte{OP_TRUE}}},
	}

	err := CorrectlySpends(nil, scriptPubKey, tx, 0, 0, 0)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrOpReturn))
}

func TestEngineUnbalancedConditional(t *testing.T) {
	script := []byte{OP_1, OP_IF, OP_1}
	vm, err := newEngine(script, &stack{}, &stack{}, &fakeTx{}, 0, 0, 0)
	require.NoError(t, err)
	err = vm.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrUnbalancedConditional))
}

func TestEngineDisabledOpcodeInDeadBranchStillFails(t *testing.T) {
	// OP_0 OP_IF <dead: OP_INVERT> OP_ENDIF OP_1
	script := []byte{OP_0, OP_IF, OP_INVERT, OP_ENDIF, OP_1}
	vm, err := newEngine(script, &stack{}, &stack{}, &fakeTx{}, 0, 0, 0)
	require.NoError(t, err)
	err = vm.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrDisabledOpcode))
}

func TestEngineMonolithOpcodeGatedByFlag(t *testing.T) {
	// OP_1 OP_2 OP_CAT would concatenate, but OP_CAT is disabled without
	// ScriptMonolithOpcodes.
	script := []byte{OP_1, OP_2, OP_CAT}

	vm, err := newEngine(script, &stack{}, &stack{}, &fakeTx{}, 0, 0, 0)
	require.NoError(t, err)
	err = vm.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrDisabledOpcode))

	vm2, err := newEngine(script, &stack{}, &stack{}, &fakeTx{}, 0, 0, ScriptMonolithOpcodes)
	require.NoError(t, err)
	require.NoError(t, vm2.Execute())
}

func TestCheckLockTimeVerifyUnsatisfied(t *testing.T) {
	// Require locktime 500 (block height) but the spending tx has
	// locktime 400: unsatisfied.
	script, err := NewScriptBuilder().
		AddInt64(500).
		AddOp(OP_CHECKLOCKTIMEVERIFY).
		Script()
	require.NoError(t, err)

	tx := &fakeTx{
		inputs:   []fakeInput{{sequence: 0}},
		lockTime: 400,
	}

	vm, err := newEngine(script, &stack{}, &stack{}, tx, 0, 0, ScriptCheckLockTimeVerify)
	require.NoError(t, err)
	err = vm.Execute()
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrUnsatisfiedLockTime))
}

func TestCheckLockTimeVerifySatisfied(t *testing.T) {
	script, err := NewScriptBuilder().
		AddInt64(400).
		AddOp(OP_CHECKLOCKTIMEVERIFY).
		AddOp(OP_1).
		Script()
	require.NoError(t, err)

	tx := &fakeTx{
		inputs:   []fakeInput{{sequence: 0}},
		lockTime: 500,
	}

	vm, err := newEngine(script, &stack{}, &stack{}, tx, 0, 0, ScriptCheckLockTimeVerify)
	require.NoError(t, err)
	require.NoError(t, vm.Execute())
}

func TestCheckLockTimeVerifyDisabledIsPlainNop(t *testing.T) {
	script, err := NewScriptBuilder().
		AddInt64(500).
		AddOp(OP_CHECKLOCKTIMEVERIFY).
		AddOp(OP_DROP).
		AddOp(OP_1).
		Script()
	require.NoError(t, err)

	tx := &fakeTx{inputs: []fakeInput{{}}}

	vm, err := newEngine(script, &stack{}, &stack{}, tx, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, vm.Execute())
}

func TestSignatureHashDeterministicWithoutCodeSeparator(t *testing.T) {
	priv, scriptPubKey, tx := newP2PKHFixture(t)
	d1, err := calcSignatureHash(tx, 0, scriptPubKey, SigHashAll, 5000)
	require.NoError(t, err)
	d2, err := calcSignatureHash(tx, 0, scriptPubKey, SigHashAll, 5000)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
	_ = priv
}

// threeKeyMultiSigFixture builds a 2-of-3 OP_CHECKMULTISIG scriptPubKey
// (OP_2 <pub1> <pub2> <pub3> OP_3 OP_CHECKMULTISIG) and a tx spending it.
func threeKeyMultiSigFixture(t *testing.T) (privs []*btcec.PrivateKey, scriptPubKey []byte, tx *fakeTx) {
	privs = make([]*btcec.PrivateKey, 3)
	for i := range privs {
		p, err := btcec.NewPrivateKey()
		require.NoError(t, err)
		privs[i] = p
	}

	b := NewScriptBuilder().AddOp(OP_2)
	for _, p := range privs {
		b = b.AddData(p.PubKey().SerializeCompressed())
	}
	b = b.AddOp(OP_3).AddOp(OP_CHECKMULTISIG)
	scriptPubKey, err := b.Script()
	require.NoError(t, err)

	tx = &fakeTx{
		inputs: []fakeInput{
			{prevHash: [32]byte{7, 7, 7}, sequence: 0xffffffff},
		},
		outputs: []fakeOutput{
			{value: 4000, pkScript: []byte{OP_TRUE}},
		},
	}
	return privs, scriptPubKey, tx
}

func signMultiSig(t *testing.T, priv *btcec.PrivateKey, tx TxView, scriptPubKey []byte) []byte {
	digest, err := calcSignatureHash(tx, 0, scriptPubKey, SigHashAll, 5000)
	require.NoError(t, err)
	sig := ecdsa_.Sign(priv, digest)
	return append(sig.Serialize(), byte(SigHashAll))
}

func TestCorrectlySpendsMultiSigTwoOfThree(t *testing.T) {
	privs, scriptPubKey, tx := threeKeyMultiSigFixture(t)

	sig1 := signMultiSig(t, privs[0], tx, scriptPubKey)
	sig2 := signMultiSig(t, privs[1], tx, scriptPubKey)

	scriptSig, err := NewScriptBuilder().
		AddOp(OP_0).
		AddData(sig1).
		AddData(sig2).
		Script()
	require.NoError(t, err)

	err = CorrectlySpends(scriptSig, scriptPubKey, tx, 0, 5000, ScriptStrictEnc|ScriptDerSig|ScriptLowS)
	require.NoError(t, err)
}

func TestCorrectlySpendsMultiSigFailsOnOutOfOrderSignatures(t *testing.T) {
	privs, scriptPubKey, tx := threeKeyMultiSigFixture(t)

	// Sign with the third and first keys, but present the signatures in
	// that (non-greedy) order: sig-for-pub3 is checked against pub1 and
	// pub2 first (both fail), after which two signatures remain but only
	// pub3 is left, so the match fails without trying pub3.
	sig3 := signMultiSig(t, privs[2], tx, scriptPubKey)
	sig1 := signMultiSig(t, privs[0], tx, scriptPubKey)

	scriptSig, err := NewScriptBuilder().
		AddOp(OP_0).
		AddData(sig3).
		AddData(sig1).
		Script()
	require.NoError(t, err)

	err = CorrectlySpends(scriptSig, scriptPubKey, tx, 0, 5000, ScriptStrictEnc|ScriptDerSig|ScriptLowS)
	require.Error(t, err)
}

func TestCorrectlySpendsMultiSigNullDummyRejectsNonEmptyDummy(t *testing.T) {
	privs, scriptPubKey, tx := threeKeyMultiSigFixture(t)

	sig1 := signMultiSig(t, privs[0], tx, scriptPubKey)
	sig2 := signMultiSig(t, privs[1], tx, scriptPubKey)

	// A non-empty dummy element (OP_1 instead of OP_0) is otherwise
	// harmless but must be rejected once ScriptNullDummy is set.
	scriptSig, err := NewScriptBuilder().
		AddOp(OP_1).
		AddData(sig1).
		AddData(sig2).
		Script()
	require.NoError(t, err)

	err = CorrectlySpends(scriptSig, scriptPubKey, tx, 0, 5000,
		ScriptStrictEnc|ScriptDerSig|ScriptLowS|ScriptNullDummy)
	require.Error(t, err)
	require.True(t, IsErrorCode(err, ErrSigNullDummy))
}
