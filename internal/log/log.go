// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package log wires up the subsystem loggers used by the scriptverify CLI,
// following the same logrotate-backed btclog.Backend pattern used
// throughout the rest of the stack.
package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/nickabourisk/bsvscript/txscript"
)

type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if LogRotator != nil {
		LogRotator.Write(p)
	}
	return len(p), nil
}

var (
	backendLog = btclog.NewBackend(logWriter{})

	// LogRotator rotates the on-disk log file. It must be initialized via
	// InitLogRotator before any subsystem logger is used.
	LogRotator *rotator.Rotator

	scrpLog = backendLog.Logger("SCRP")
	vrfyLog = backendLog.Logger("VRFY")
)

// SubsystemLoggers maps each subsystem identifier to its associated
// logger, for use by -debuglevel.
var SubsystemLoggers = map[string]btclog.Logger{
	"SCRP": scrpLog,
	"VRFY": vrfyLog,
}

func init() {
	txscript.UseLogger(scrpLog)
}

// InitLogRotator initializes the log rotator to write to logFile, creating
// the containing directory if needed.
func InitLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create file rotator: %v\n", err)
		os.Exit(1)
	}

	LogRotator = r
}

// SetLogLevel sets the logging level for the given subsystem; unknown
// subsystem identifiers are ignored.
func SetLogLevel(subsystemID, logLevel string) {
	logger, ok := SubsystemLoggers[subsystemID]
	if !ok {
		return
	}

	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets every subsystem logger to logLevel.
func SetLogLevels(logLevel string) {
	for subsystemID := range SubsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}

// VerifyLog returns the logger used by the CLI's own verification-result
// reporting, as distinct from the txscript package's own SCRP logger.
func VerifyLog() btclog.Logger {
	return vrfyLog
}
