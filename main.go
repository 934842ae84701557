package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.cryptopower.dev/group/ethcompose/libwallet/addressbook"
	"code.cryptopower.dev/group/ethcompose/libwallet/txhelper"
	"code.cryptopower.dev/group/ethcompose/libwallet/txstate"
	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

// Version is the application version. It is set using the -ldflags
var Version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if logRotator != nil {
			logRotator.Close()
		}
		os.Exit(1)
	}
	if logRotator != nil {
		logRotator.Close()
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	netType := utils.ToNetworkType(cfg.Network)
	if err := initLogRotator(filepath.Join(cfg.LogDir, string(netType)), cfg.MaxLogZips); err != nil {
		return err
	}
	debugLevel := cfg.DebugLevel
	if debugLevel == "" {
		debugLevel = utils.DefaultLogLevel
	}
	if err := parseAndSetDebugLevels(debugLevel); err != nil {
		return err
	}

	log.Infof("ethcompose version %s, composing %s transactions on %s", Version, utils.ETHWalletAsset.ToFull(), netType.Display())

	network, err := utils.NewNetworkConfig(netType)
	if err != nil {
		return err
	}
	for _, spec := range cfg.Tokens {
		token, err := utils.ParseTokenSpec(spec)
		if err != nil {
			return err
		}
		if err := network.AddToken(token); err != nil {
			return err
		}
		log.Debugf("Registered token %s at %s", token.Symbol, token.Address.Hex())
	}

	var resolver addressbook.Resolver = addressbook.DefaultMessages
	if !cfg.NoAddressBook {
		if err := os.MkdirAll(filepath.Dir(cfg.AddressBook), utils.UserFilePerm); err != nil {
			return err
		}
		book, err := addressbook.Open(cfg.AddressBook, addressbook.DefaultMessages)
		if err != nil {
			return err
		}
		defer book.Close()

		if err := saveLabels(book, cfg.Labels); err != nil {
			return err
		}
		resolver = book
	}

	state := fillState(txstate.NewState(network), &cfg.Form)
	view := txstate.NewView(txhelper.DefaultValidators(), resolver)

	report := view.Report(state)
	printReport(state, report)
	if !report.Complete() || report.SchedulingEnabled {
		return nil
	}

	tx, err := view.Transaction(state)
	if err != nil {
		return err
	}
	encoded, err := txhelper.EncodeTx(tx)
	if err != nil {
		return err
	}
	fmt.Printf("unsigned tx:         %s\n", encoded)
	return nil
}

func saveLabels(book *addressbook.Book, labels []string) error {
	for _, label := range labels {
		parts := strings.SplitN(label, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("%s: label %q is not ADDRESS=LABEL", utils.ErrInvalid, label)
		}
		entry := &addressbook.Entry{Address: parts[0], Label: parts[1]}
		if err := book.Save(entry); err != nil {
			return utils.TranslateError(err)
		}
		log.Infof("Saved address book label for %s", entry.Address)
	}
	return nil
}

// fillState applies the form options to the state. The unit is set first so
// the recipient and amount land in the representation it selects.
func fillState(state *txstate.State, form *formConfig) *txstate.State {
	if form.Unit != "" {
		state.SetUnit(form.Unit)
	}

	if txstate.IsEtherTransaction(state) {
		state.SetTo(form.To)
		state.SetValue(form.Value)
	} else {
		state.SetTokenTo(form.To)
		state.SetTokenValue(form.Value)
	}
	state.SetData(form.Data)
	if form.GasPrice != "" {
		state.SetGasPrice(form.GasPrice)
	}
	if form.GasLimit != "" {
		state.SetGasLimit(form.GasLimit)
	}
	state.SetNonce(form.Nonce)

	state.EnableScheduling(form.Schedule)
	state.SetScheduleGasPrice(form.ScheduleGasPrice)
	state.SetScheduleGasLimit(form.ScheduleGasLimit)
	state.SetScheduleDeposit(form.ScheduleDeposit)
	return state
}

func printReport(state *txstate.State, report txstate.Report) {
	fmt.Printf("network:             %s\n", state.Network().Type.Display())
	fmt.Printf("unit:                %s (%s transaction)\n", state.Unit(), report.Kind)
	fmt.Printf("to:                  %q valid=%t\n", report.To.Raw, report.ValidTo)
	if report.Value.IsSet() {
		fmt.Printf("value:               %s %s valid=%t\n", report.Value.Value, state.Unit(), report.ValidValue)
	} else {
		fmt.Printf("value:               %q valid=%t\n", report.Value.Raw, report.ValidValue)
	}
	fmt.Printf("gas price (gwei):    %q valid=%t\n", state.GasPrice().Raw, report.ValidGasPrice)
	fmt.Printf("gas limit:           %q valid=%t\n", state.GasLimit().Raw, report.ValidGasLimit)
	if report.SchedulingEnabled {
		fmt.Printf("schedule gas price:  %q valid=%t\n", state.ScheduleGasPrice().Raw, report.ValidScheduleGasPrice)
		fmt.Printf("schedule gas limit:  %q valid=%t\n", state.ScheduleGasLimit().Raw, report.ValidScheduleGasLimit)
		fmt.Printf("schedule deposit:    %q valid=%t\n", state.ScheduleDeposit().Raw, report.ValidScheduleDeposit)
	}
	if report.AddressMessage != nil {
		fmt.Printf("address message:     [%s] %s\n", report.AddressMessage.Severity, report.AddressMessage.Msg)
	}
	if problems := report.Problems(); len(problems) > 0 {
		fmt.Printf("invalid:             %s\n", strings.Join(problems, ", "))
	}
}
