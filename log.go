// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"

	"code.cryptopower.dev/group/ethcompose/libwallet/addressbook"
	"code.cryptopower.dev/group/ethcompose/libwallet/assets/eth"
	"code.cryptopower.dev/group/ethcompose/libwallet/txstate"
	libutils "code.cryptopower.dev/group/ethcompose/libwallet/utils"
	"code.cryptopower.dev/group/ethcompose/logger"
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator. Standard output is kept
// for the report.
type logWriter struct{}

// Write writes the data in p to standard error and the log rotator.
func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator == nil {
		return len(p), nil
	}
	return logRotator.Write(p)
}

// Loggers per subsystem.  A single backend logger is created and all subsytem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
//
// Loggers can not be used before the log rotator has been initialized with a
// log file.  This must be performed early during application startup by calling
// initLogRotator.
var (
	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	log     = backendLog.Logger("ECMP")
	txstLog = backendLog.Logger("TXST")
	abokLog = backendLog.Logger("ABOK")
	ethLog  = backendLog.Logger("ETH")
)

// Initialize package-global logger variables.
func init() {
	txstate.UseLogger(txstLog)
	addressbook.UseLogger(abokLog)
	eth.UseLogger(ethLog)

	logger.New(subsystemLoggers)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"ECMP": log,
	"TXST": txstLog,
	"ABOK": abokLog,
	"ETH":  ethLog,
}

// initLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotater variables are used.
func initLogRotator(logDir string, maxRolls int) error {
	err := os.MkdirAll(logDir, libutils.UserFilePerm)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}

	r, err := rotator.New(filepath.Join(logDir, libutils.LogFileName), 32*1024, false, maxRolls)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %v", err)
	}

	logRotator = r
	return nil
}
