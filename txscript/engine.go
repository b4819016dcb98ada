// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"fmt"
)

// Engine is a single evaluation of one script (scriptSig, scriptPubKey, or
// a P2SH redeem script) against a shared pair of stacks. The top-level
// verifier drives one or more Engine evaluations; Engine itself only ever
// executes the chunks it was constructed with.
type Engine struct {
	script   []parsedOpcode
	scriptOf []byte

	dstack stack
	astack stack

	condStack []bool

	numOps int
	flags  VerifyFlags

	tx          TxView
	txIdx       int
	inputAmount int64

	lastCodeSep int

	pc int
}

// newEngine constructs an Engine ready to execute script against the given
// stacks, which are shared across the scriptSig/scriptPubKey/redeem-script
// phases of a single input's verification.
func newEngine(rawScript []byte, dstack, astack *stack, tx TxView, txIdx int, inputAmount int64, flags VerifyFlags) (*Engine, error) {
	if len(rawScript) > MaxScriptSize {
		return nil, scriptError(ErrScriptSize, fmt.Sprintf(
			"script size %d exceeds maximum allowed size %d",
			len(rawScript), MaxScriptSize))
	}

	pops, err := parseScript(rawScript)
	if err != nil {
		return nil, err
	}

	vm := &Engine{
		script:      pops,
		scriptOf:    rawScript,
		tx:          tx,
		txIdx:       txIdx,
		inputAmount: inputAmount,
		flags:       flags,
	}
	vm.dstack = *dstack
	vm.astack = *astack
	vm.dstack.verifyMinimalData = flags.HasFlag(ScriptMinimalData)
	vm.astack.verifyMinimalData = flags.HasFlag(ScriptMinimalData)

	return vm, nil
}

// shouldExec reports whether the chunk currently being stepped is in an
// actively-executing branch: every entry on the conditional stack must be
// true.
func (vm *Engine) shouldExec() bool {
	for _, b := range vm.condStack {
		if !b {
			return false
		}
	}
	return true
}

// Execute runs every chunk of the script to completion, returning the
// first error encountered, if any.
func (vm *Engine) Execute() error {
	for vm.pc < len(vm.script) {
		if err := vm.step(); err != nil {
			return err
		}
	}

	if len(vm.condStack) != 0 {
		return scriptError(ErrUnbalancedConditional,
			"unbalanced conditional at end of script")
	}

	return nil
}

// step executes a single chunk and advances the program counter.
func (vm *Engine) step() error {
	pop := &vm.script[vm.pc]
	vm.pc++

	// Disabled opcodes abort immediately, even inside a dead branch.
	if pop.isDisabled() {
		if pop.alwaysIllegal() || !vm.flags.HasFlag(ScriptMonolithOpcodes) {
			str := fmt.Sprintf("attempt to execute disabled opcode %s",
				pop.opcode.name)
			return scriptError(ErrDisabledOpcode, str)
		}
	}

	executing := vm.shouldExec()

	// Opcodes above OP_16 that aren't pushes count toward the opcount
	// limit, regardless of whether the branch executes.
	if pop.opcode.value > OP_16 {
		vm.numOps++
		if vm.numOps > MaxOpsPerScript {
			return scriptError(ErrOpCount, fmt.Sprintf(
				"exceeded max operation limit of %d", MaxOpsPerScript))
		}
	}

	if len(pop.data) > MaxScriptElementSize {
		return scriptError(ErrPushSize, fmt.Sprintf(
			"element size %d exceeds max allowed size %d",
			len(pop.data), MaxScriptElementSize))
	}

	// Conditional control-flow opcodes must be evaluated even when the
	// surrounding branch is inactive, so they can track nesting.
	switch pop.opcode.value {
	case OP_IF, OP_NOTIF:
		return vm.execIf(pop, executing)
	case OP_ELSE:
		return vm.execElse()
	case OP_ENDIF:
		return vm.execEndif()
	}

	if !executing {
		return nil
	}

	if pop.isPush() && vm.flags.HasFlag(ScriptMinimalData) && !pop.isShortestPossiblePush() {
		return scriptError(ErrMinimalData,
			"push did not use minimal data encoding")
	}

	if pop.opcode.exec == nil {
		return scriptError(ErrBadOpcode, fmt.Sprintf(
			"unknown opcode 0x%02x", pop.opcode.value))
	}

	if err := pop.opcode.exec(pop, vm); err != nil {
		return err
	}

	return vm.checkStackDepth()
}

func (vm *Engine) execIf(pop *parsedOpcode, executing bool) error {
	cond := false
	if executing {
		ok, err := vm.dstack.PopBool()
		if err != nil {
			return err
		}
		cond = ok
		if pop.opcode.value == OP_NOTIF {
			cond = !cond
		}
	}
	vm.condStack = append(vm.condStack, cond)
	return nil
}

func (vm *Engine) execElse() error {
	if len(vm.condStack) == 0 {
		return scriptError(ErrUnbalancedConditional, "OP_ELSE without OP_IF")
	}
	top := len(vm.condStack) - 1
	vm.condStack[top] = !vm.condStack[top]
	return nil
}

func (vm *Engine) execEndif() error {
	if len(vm.condStack) == 0 {
		return scriptError(ErrUnbalancedConditional, "OP_ENDIF without OP_IF")
	}
	vm.condStack = vm.condStack[:len(vm.condStack)-1]
	return nil
}

// connectedScript returns the portion of the raw script from the most
// recent OP_CODESEPARATOR (or the start of the script) to the end, with
// every push-encoded occurrence of sigBytes removed, as required before
// hashing for OP_CHECKSIG/OP_CHECKMULTISIG.
func (vm *Engine) connectedScript(sigBytes ...[]byte) ([]byte, error) {
	pops := vm.script[vm.lastCodeSep:]

	filtered := make([]parsedOpcode, 0, len(pops))
	for _, pop := range pops {
		drop := false
		if pop.isPush() {
			for _, sig := range sigBytes {
				if bytes.Equal(pop.data, sig) {
					drop = true
					break
				}
			}
		}
		if !drop {
			filtered = append(filtered, pop)
		}
	}

	return unparseScript(filtered)
}

// checkStackDepth enforces the combined main+alt stack depth invariant
// after every opcode.
func (vm *Engine) checkStackDepth() error {
	if vm.dstack.Depth()+vm.astack.Depth() > MaxStackSize {
		return scriptError(ErrStackSize, fmt.Sprintf(
			"combined stack size exceeds max of %d elements", MaxStackSize))
	}
	return nil
}
