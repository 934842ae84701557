package txstate

import (
	"fmt"
	"strings"

	"decred.org/dcrwallet/v2/errors"
	"github.com/ethereum/go-ethereum/core/types"

	"code.cryptopower.dev/group/ethcompose/libwallet/addressbook"
	"code.cryptopower.dev/group/ethcompose/libwallet/txhelper"
	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

// Report is a snapshot of every selector evaluated against one state.
type Report struct {
	Kind  TxKind
	To    AddressField
	Value AmountField

	ValidTo       bool
	ValidValue    bool
	ValidGasPrice bool
	ValidGasLimit bool

	SchedulingEnabled     bool
	ValidScheduleGasPrice bool
	ValidScheduleGasLimit bool
	ValidScheduleDeposit  bool

	AddressMessage *addressbook.AddressMessage
}

// Report evaluates all selectors against r.
func (v *View) Report(r Reader) Report {
	kind, to, value := current(r)
	rep := Report{
		Kind:  kind,
		To:    to,
		Value: value,

		ValidTo:       IsValidCurrentTo(r),
		ValidValue:    IsValidCurrentValue(r),
		ValidGasPrice: v.IsValidGasPrice(r),
		ValidGasLimit: v.IsValidGasLimit(r),

		SchedulingEnabled:     r.SchedulingEnabled(),
		ValidScheduleGasPrice: v.IsValidScheduleGasPrice(r),
		ValidScheduleGasLimit: v.IsValidScheduleGasLimit(r),
		ValidScheduleDeposit:  IsValidScheduleDeposit(r),
	}
	if msg, ok := v.CurrentToAddressMessage(r); ok {
		rep.AddressMessage = msg
	}
	return rep
}

// Problems lists the failed checks by name. Schedule checks only count when
// scheduling is enabled.
func (rep Report) Problems() []string {
	var problems []string
	check := func(ok bool, name string) {
		if !ok {
			problems = append(problems, name)
		}
	}
	check(rep.ValidTo, "to")
	check(rep.ValidValue, "value")
	check(rep.ValidGasPrice, "gas price")
	check(rep.ValidGasLimit, "gas limit")
	if rep.SchedulingEnabled {
		check(rep.ValidScheduleGasPrice, "schedule gas price")
		check(rep.ValidScheduleGasLimit, "schedule gas limit")
		check(rep.ValidScheduleDeposit, "schedule deposit")
	}
	return problems
}

// Complete reports whether every applicable check passed.
func (rep Report) Complete() bool {
	return len(rep.Problems()) == 0
}

// Transaction assembles the unsigned transaction of the current view. A
// token transfer calls the token contract with ERC-20 transfer data and
// moves no ether.
func (v *View) Transaction(r Reader) (*types.Transaction, error) {
	const op errors.Op = "txstate.Transaction"

	rep := v.Report(r)
	if problems := rep.Problems(); len(problems) > 0 {
		return nil, errors.E(op, errors.Invalid, fmt.Sprintf("invalid %s", strings.Join(problems, ", ")))
	}
	if rep.SchedulingEnabled {
		return nil, errors.E(op, errors.Invalid, "scheduled transactions are not assembled locally")
	}

	params := txhelper.TxParams{
		GasPrice: r.GasPrice().Value,
	}
	if limit := r.GasLimit().Value; limit != nil && limit.IsUint64() {
		params.GasLimit = limit.Uint64()
	}
	if nonce := r.Nonce(); nonce.IsSet() {
		if !nonce.Value.IsUint64() {
			return nil, errors.E(op, errors.Invalid, fmt.Sprintf("nonce %v out of range", nonce.Value))
		}
		params.Nonce = nonce.Value.Uint64()
	}

	switch rep.Kind {
	case NativeTx:
		params.To = rep.To.Value
		params.Value = rep.Value.Value.BaseUnits()
		params.Data = r.Data().Value

	case TokenTx:
		token, ok := r.Network().Token(r.Unit())
		if !ok {
			return nil, errors.E(op, errors.NotExist, fmt.Sprintf("%s: %s", utils.ErrUnknownToken, r.Unit()))
		}
		data, err := txhelper.ERC20TransferData(*rep.To.Value, rep.Value.Value.BaseUnits())
		if err != nil {
			return nil, errors.E(op, errors.Invalid, err)
		}
		contract := token.Address
		params.To = &contract
		params.Data = data
	}

	tx, err := txhelper.BuildTx(params)
	if err != nil {
		return nil, errors.E(op, errors.Invalid, err)
	}
	log.Debugf("Assembled %s transaction to %v with nonce %d", rep.Kind, tx.To(), tx.Nonce())
	return tx, nil
}
