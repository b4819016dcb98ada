// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// ScriptErrorCode identifies a kind of script validation failure. Callers
// classify failures by code; the accompanying message is informational
// only and must not be matched against.
type ScriptErrorCode int

const (
	// ErrUnknownError is a catch-all for failures that don't have a more
	// specific code, mirroring upstream's SCRIPT_ERR_UNKNOWN_ERROR.
	ErrUnknownError ScriptErrorCode = iota

	ErrScriptSize
	ErrPushSize
	ErrOpCount
	ErrStackSize
	ErrSigCount
	ErrPubKeyCount
	ErrDisabledOpcode
	ErrMinimalData
	ErrBadOpcode
	ErrUnbalancedConditional
	ErrInvalidStackOperation
	ErrInvalidAltStackOperation
	ErrVerify
	ErrEqualVerify
	ErrNumEqualVerify
	ErrCheckSigVerify
	ErrCheckMultiSigVerify
	ErrCleanStack
	ErrEvalFalse
	ErrOpReturn
	ErrNegativeLockTime
	ErrUnsatisfiedLockTime
	ErrDiscourageUpgradableNOPs
	ErrSigHashType
	ErrSigDER
	ErrSigHighS
	ErrSigNullDummy
	ErrSigNullFail
	ErrSigPushOnly
	ErrPubKeyType
	ErrNonCompressedPubKey
	ErrMinimalIf
	ErrInvalidOperandSize
	ErrInvalidNumberRange
	ErrInvalidSplitRange
	ErrScriptNumOverflow
	ErrScriptNumMinEncode
	ErrDivByZero
	ErrModByZero
	ErrIllegalForkID
	ErrMustUseForkID
	ErrMissingForkID
	ErrMalformedPush
	ErrInternal
)

// errorCodeStrings maps script error codes to human-readable names used by
// ScriptErrorCode.String and Error.Error. Names follow the upstream
// SCRIPT_ERR_* convention so callers and test vectors can match on stable
// names via %v/%s.
var errorCodeStrings = map[ScriptErrorCode]string{
	ErrUnknownError:             "SCRIPT_ERR_UNKNOWN_ERROR",
	ErrScriptSize:               "SCRIPT_ERR_SCRIPT_SIZE",
	ErrPushSize:                 "SCRIPT_ERR_PUSH_SIZE",
	ErrOpCount:                  "SCRIPT_ERR_OP_COUNT",
	ErrStackSize:                "SCRIPT_ERR_STACK_SIZE",
	ErrDisabledOpcode:           "SCRIPT_ERR_DISABLED_OPCODE",
	ErrMinimalData:              "SCRIPT_ERR_MINIMALDATA",
	ErrBadOpcode:                "SCRIPT_ERR_BAD_OPCODE",
	ErrUnbalancedConditional:    "SCRIPT_ERR_UNBALANCED_CONDITIONAL",
	ErrInvalidStackOperation:    "SCRIPT_ERR_INVALID_STACK_OPERATION",
	ErrInvalidAltStackOperation: "SCRIPT_ERR_INVALID_ALTSTACK_OPERATION",
	ErrVerify:                   "SCRIPT_ERR_VERIFY",
	ErrEqualVerify:              "SCRIPT_ERR_EQUALVERIFY",
	ErrNumEqualVerify:           "SCRIPT_ERR_NUMEQUALVERIFY",
	ErrCheckSigVerify:           "SCRIPT_ERR_CHECKSIGVERIFY",
	ErrCheckMultiSigVerify:      "SCRIPT_ERR_CHECKMULTISIGVERIFY",
	ErrCleanStack:               "SCRIPT_ERR_CLEANSTACK",
	ErrEvalFalse:                "SCRIPT_ERR_EVAL_FALSE",
	ErrOpReturn:                 "SCRIPT_ERR_OP_RETURN",
	ErrNegativeLockTime:         "SCRIPT_ERR_NEGATIVE_LOCKTIME",
	ErrUnsatisfiedLockTime:      "SCRIPT_ERR_UNSATISFIED_LOCKTIME",
	ErrDiscourageUpgradableNOPs: "SCRIPT_ERR_DISCOURAGE_UPGRADABLE_NOPS",
	ErrSigCount:                 "SCRIPT_ERR_SIG_COUNT",
	ErrPubKeyCount:              "SCRIPT_ERR_PUBKEY_COUNT",
	ErrSigHashType:              "SCRIPT_ERR_SIG_HASHTYPE",
	ErrSigDER:                   "SCRIPT_ERR_SIG_DER",
	ErrSigHighS:                 "SCRIPT_ERR_SIG_HIGH_S",
	ErrSigNullDummy:             "SCRIPT_ERR_SIG_NULLDUMMY",
	ErrSigNullFail:              "SCRIPT_ERR_SIG_NULLFAIL",
	ErrSigPushOnly:              "SCRIPT_ERR_SIG_PUSHONLY",
	ErrPubKeyType:               "SCRIPT_ERR_PUBKEYTYPE",
	ErrNonCompressedPubKey:      "SCRIPT_ERR_NONCOMPRESSED_PUBKEY",
	ErrMinimalIf:                "SCRIPT_ERR_MINIMALIF",
	ErrInvalidOperandSize:       "SCRIPT_ERR_INVALID_OPERAND_SIZE",
	ErrInvalidNumberRange:       "SCRIPT_ERR_INVALID_NUMBER_RANGE",
	ErrInvalidSplitRange:        "SCRIPT_ERR_INVALID_SPLIT_RANGE",
	ErrScriptNumOverflow:        "SCRIPT_ERR_SCRIPTNUM_OVERFLOW",
	ErrScriptNumMinEncode:       "SCRIPT_ERR_SCRIPTNUM_MINENCODE",
	ErrDivByZero:                "SCRIPT_ERR_DIV_BY_ZERO",
	ErrModByZero:                "SCRIPT_ERR_MOD_BY_ZERO",
	ErrIllegalForkID:            "SCRIPT_ERR_ILLEGAL_FORKID",
	ErrMustUseForkID:            "SCRIPT_ERR_MUST_USE_FORKID",
	ErrMissingForkID:            "SCRIPT_ERR_MISSING_FORKID",
	ErrMalformedPush:            "SCRIPT_ERR_BAD_OPCODE",
	ErrInternal:                 "SCRIPT_ERR_UNKNOWN_ERROR",
}

// String returns the stable SCRIPT_ERR_* name for the error code.
func (e ScriptErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("ScriptErrorCode(%d)", int(e))
}

// Error identifies a script validation failure. It satisfies the error
// interface and additionally exposes the specific ScriptErrorCode so
// callers can classify failures (e.g. test-vector harnesses asserting a
// particular code).
type Error struct {
	Code        ScriptErrorCode
	Description string
}

// Error returns a human-readable description of the failure, including the
// stable error code name.
func (e Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Code, e.Description)
}

// scriptError creates an Error from the given code and description.
func scriptError(c ScriptErrorCode, desc string) Error {
	return Error{Code: c, Description: desc}
}

// IsErrorCode returns whether err is a script Error carrying the given
// code.
func IsErrorCode(err error, c ScriptErrorCode) bool {
	serr, ok := err.(Error)
	return ok && serr.Code == c
}
