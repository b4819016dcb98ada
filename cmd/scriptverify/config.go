// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogFilename = "scriptverify.log"
	defaultLogLevel    = "info"
)

var (
	defaultHomeDir = filepath.Join(os.Getenv("HOME"), ".scriptverify")
	defaultLogFile = filepath.Join(defaultHomeDir, "logs", defaultLogFilename)
)

// config defines the command line options accepted by scriptverify.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ScriptSig    string `long:"sigscript" description:"Hex-encoded scriptSig" required:"true"`
	ScriptPubKey string `long:"pkscript" description:"Hex-encoded scriptPubKey" required:"true"`
	TxHex        string `long:"tx" description:"Hex-encoded spending transaction" required:"true"`
	InputIndex   int    `long:"input" description:"Index of the input being verified"`
	InputAmount  int64  `long:"amount" description:"Value, in satoshis, of the output being spent"`

	P2SH            bool `long:"p2sh" description:"Enable P2SH evaluation"`
	StrictEnc       bool `long:"strictenc" description:"Require strict DER/pubkey/hashtype encoding"`
	DerSig          bool `long:"dersig" description:"Require strict DER signatures"`
	LowS            bool `long:"lows" description:"Require low-S signatures"`
	MinimalData     bool `long:"minimaldata" description:"Require minimally encoded pushes and numbers"`
	DiscourageNops  bool `long:"discouragenops" description:"Reject the unallocated NOP opcodes"`
	CheckLockTime   bool `long:"cltv" description:"Enable OP_CHECKLOCKTIMEVERIFY"`
	NullDummy       bool `long:"nulldummy" description:"Require an empty multisig dummy element"`
	MonolithOpcodes bool `long:"monolith" description:"Enable the CAT/SPLIT/AND/OR/XOR/DIV/MOD/NUM2BIN/BIN2NUM opcodes"`

	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`
}

// loadConfig parses the command line flags into a config, applying
// defaults for any flag the caller omitted.
func loadConfig() (*config, error) {
	cfg := config{
		LogDir:     filepath.Dir(defaultLogFile),
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}

	if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &cfg, nil
}
