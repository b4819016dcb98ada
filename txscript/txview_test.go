// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// fakeInput and fakeOutput are minimal TxViewInput/TxViewOutput
// implementations for exercising the interpreter without pulling in a real
// wire encoding.
type fakeInput struct {
	prevHash  [32]byte
	prevIndex uint32
	sigScript []byte
	sequence  uint32
}

func (f fakeInput) PrevTxHash() [32]byte    { return f.prevHash }
func (f fakeInput) PrevTxIndex() uint32     { return f.prevIndex }
func (f fakeInput) SignatureScript() []byte { return f.sigScript }
func (f fakeInput) Sequence() uint32        { return f.sequence }

type fakeOutput struct {
	value    int64
	pkScript []byte
}

func (f fakeOutput) Value() int64     { return f.value }
func (f fakeOutput) PkScript() []byte { return f.pkScript }

// fakeTx is a TxView test double. It doesn't implement txDeserializer, so
// CorrectlySpends' defensive clone uses it unchanged; that's the documented
// relaxation for lightweight test doubles that are already immutable by
// construction.
type fakeTx struct {
	version  int32
	inputs   []fakeInput
	outputs  []fakeOutput
	lockTime uint32
}

func (t *fakeTx) InputCount() int           { return len(t.inputs) }
func (t *fakeTx) Input(i int) TxViewInput   { return t.inputs[i] }
func (t *fakeTx) OutputCount() int          { return len(t.outputs) }
func (t *fakeTx) Output(i int) TxViewOutput { return t.outputs[i] }
func (t *fakeTx) LockTime() uint32          { return t.lockTime }
func (t *fakeTx) Version() int32            { return t.version }

func (t *fakeTx) Serialize() ([]byte, error) {
	return []byte{}, nil
}
