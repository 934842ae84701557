// Copyright (c) 2016, 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/dcrd/dcrutil/v4"
	"github.com/jessevdk/go-flags"

	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
	"code.cryptopower.dev/group/ethcompose/logger"
)

const (
	defaultLogDirname = "logs"
	defaultMaxLogZips = 8
	defaultNetwork    = "mainnet"
)

var defaultAppDataDir = dcrutil.AppDataDir("ethcompose", false)

// formConfig holds the send form fields. To and Value apply to the token
// fields when Unit is a token.
type formConfig struct {
	Unit             string `long:"unit" description:"Unit to send, the network unit or a registered token symbol"`
	To               string `long:"to" description:"Recipient address"`
	Value            string `long:"value" description:"Amount to send in the selected unit"`
	Data             string `long:"data" description:"Hex encoded transaction data"`
	GasPrice         string `long:"gasprice" description:"Gas price in gwei"`
	GasLimit         string `long:"gaslimit" description:"Gas limit"`
	Nonce            string `long:"nonce" description:"Account nonce"`
	Schedule         bool   `long:"schedule" description:"Schedule the transaction for later execution"`
	ScheduleGasPrice string `long:"schedulegasprice" description:"Gas price of the scheduled execution in gwei"`
	ScheduleGasLimit string `long:"schedulegaslimit" description:"Gas limit of the scheduled execution"`
	ScheduleDeposit  string `long:"scheduledeposit" description:"Deposit of the scheduled transaction in ether"`
}

type config struct {
	AppDataDir    string   `short:"A" long:"appdata" description:"Path to application data directory"`
	LogDir        string   `long:"logdir" description:"Directory to log output"`
	DebugLevel    string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	MaxLogZips    int      `long:"maxlogzips" description:"The number of zipped log files created by the log rotator to be retained. Setting to 0 will keep all."`
	Network       string   `long:"network" description:"Network the transaction is composed for {mainnet, goerli, sepolia}"`
	Tokens        []string `long:"token" description:"Register a token as SYMBOL:ADDRESS:DECIMALS, may be repeated"`
	AddressBook   string   `long:"addressbook" description:"Path to the address book database"`
	NoAddressBook bool     `long:"noaddressbook" description:"Only use the built-in address messages"`
	Labels        []string `long:"label" description:"Save ADDRESS=LABEL to the address book, may be repeated"`

	Form formConfig `group:"Transaction form"`
}

// loadConfig parses the command line and fills in the defaults that depend
// on other options.
func loadConfig() (*config, error) {
	cfg := config{
		AppDataDir: defaultAppDataDir,
		MaxLogZips: defaultMaxLogZips,
		Network:    defaultNetwork,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	cfg.AppDataDir = cleanAndExpandPath(cfg.AppDataDir)
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.AppDataDir, defaultLogDirname)
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	if utils.ToNetworkType(cfg.Network) == utils.Unknown {
		return nil, fmt.Errorf("%v: %q", utils.ErrInvalidNet, cfg.Network)
	}
	if cfg.AddressBook == "" {
		cfg.AddressBook = filepath.Join(cfg.AppDataDir, utils.ToNetworkType(cfg.Network).Display(), "addressbook.db")
	}
	cfg.AddressBook = cleanAndExpandPath(cfg.AddressBook)

	return &cfg, nil
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly. An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		return logger.SetLogLevels(debugLevel)
	}

	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return fmt.Errorf("the specified debug level contains an invalid subsystem/level pair [%v]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]
		if !validSubsystem(subsysID) {
			return fmt.Errorf("the specified subsystem [%v] is invalid -- supported subsytems %v",
				subsysID, logger.SupportedSubsystems())
		}
		logger.SetLogLevel(subsysID, logLevel)
	}
	return nil
}

func validSubsystem(subsysID string) bool {
	for _, id := range logger.SupportedSubsystems() {
		if id == subsysID {
			return true
		}
	}
	return false
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultAppDataDir)
		if home, err := os.UserHomeDir(); err == nil {
			homeDir = home
		}
		path = strings.Replace(path, "~", homeDir, 1)
	}

	return filepath.Clean(os.ExpandEnv(path))
}
