// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// scriptverify is a small command line tool that evaluates a scriptSig
// against a scriptPubKey for one input of a given transaction, reporting
// whether the spend is authorized. It exists to exercise the txscript
// package outside of a full node, the way btcd's other cmd/ tools exercise
// a single subsystem in isolation.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nickabourisk/bsvscript/internal/log"
	"github.com/nickabourisk/bsvscript/txscript"
	"github.com/nickabourisk/bsvscript/wire"
)

func verifyFlagsFromConfig(cfg *config) txscript.VerifyFlags {
	var flags txscript.VerifyFlags
	if cfg.P2SH {
		flags |= txscript.ScriptP2SH
	}
	if cfg.StrictEnc {
		flags |= txscript.ScriptStrictEnc
	}
	if cfg.DerSig {
		flags |= txscript.ScriptDerSig
	}
	if cfg.LowS {
		flags |= txscript.ScriptLowS
	}
	if cfg.MinimalData {
		flags |= txscript.ScriptMinimalData
	}
	if cfg.DiscourageNops {
		flags |= txscript.ScriptDiscourageUpgradableNops
	}
	if cfg.CheckLockTime {
		flags |= txscript.ScriptCheckLockTimeVerify
	}
	if cfg.NullDummy {
		flags |= txscript.ScriptNullDummy
	}
	if cfg.MonolithOpcodes {
		flags |= txscript.ScriptMonolithOpcodes
	}
	return flags
}

func realMain() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log.InitLogRotator(filepath.Join(cfg.LogDir, "scriptverify.log"))
	defer log.LogRotator.Close()
	log.SetLogLevels(cfg.DebugLevel)

	scriptSig, err := hex.DecodeString(cfg.ScriptSig)
	if err != nil {
		return fmt.Errorf("invalid --sigscript: %w", err)
	}
	scriptPubKey, err := hex.DecodeString(cfg.ScriptPubKey)
	if err != nil {
		return fmt.Errorf("invalid --pkscript: %w", err)
	}
	txBytes, err := hex.DecodeString(cfg.TxHex)
	if err != nil {
		return fmt.Errorf("invalid --tx: %w", err)
	}

	spendingTx := &wire.Tx{}
	if err := spendingTx.Deserialize(bytes.NewReader(txBytes)); err != nil {
		return fmt.Errorf("failed to parse transaction: %w", err)
	}

	flags := verifyFlagsFromConfig(cfg)

	err = txscript.CorrectlySpends(scriptSig, scriptPubKey, spendingTx,
		cfg.InputIndex, cfg.InputAmount, flags)
	if err != nil {
		log.VerifyLog().Errorf("script verification failed: %v", err)
		fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
		return err
	}

	log.VerifyLog().Info("script verification succeeded")
	fmt.Println("valid")
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
