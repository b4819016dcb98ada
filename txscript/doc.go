// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements a Bitcoin (BSV-family) transaction script
validation engine.

The package provides a stack-based bytecode interpreter that evaluates an
unlocking script (scriptSig) together with a locking script (scriptPubKey),
optionally performing the Pay-to-Script-Hash re-evaluation, and decides
whether a transaction input correctly authorizes spending. It includes the
ECDSA signature-check opcodes, DER/SIGHASH decoding with canonicality
rules, and minimally-encoded numeric conversion between bytes and
arbitrary-precision integers.

The interpreter is a pure function of its inputs (scripts, transaction
view, input index, input value, verify flags): it performs no I/O and
holds no mutable process-wide state. A package logger can be installed
with UseLogger; the interpreter emits no trace output through it, and it
never affects evaluation outcome.
*/
package txscript
