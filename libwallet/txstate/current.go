package txstate

import (
	"math/big"

	"code.cryptopower.dev/group/ethcompose/libwallet/addressbook"
	"code.cryptopower.dev/group/ethcompose/libwallet/txhelper"
)

// TxKind tells which representation of the form is authoritative.
type TxKind uint8

const (
	// NativeTx sends the network's own coin; the native fields apply.
	NativeTx TxKind = iota
	// TokenTx sends a token; the token fields apply.
	TokenTx
)

func (k TxKind) String() string {
	switch k {
	case NativeTx:
		return "native"
	case TokenTx:
		return "token"
	default:
		return "unknown"
	}
}

// Kind resolves the kind of transaction from the active unit.
func Kind(r Reader) TxKind {
	if r.IsNetworkUnit(r.Unit()) {
		return NativeTx
	}
	return TokenTx
}

// IsEtherTransaction reports whether the active unit is the network's native
// unit.
func IsEtherTransaction(r Reader) bool {
	return Kind(r) == NativeTx
}

// current is the only place that picks between the two representations.
func current(r Reader) (TxKind, AddressField, AmountField) {
	kind := Kind(r)
	if kind == TokenTx {
		return kind, r.TokenTo(), r.TokenValue()
	}
	return kind, r.To(), r.Value()
}

// CurrentTo returns the recipient of the active representation.
func CurrentTo(r Reader) AddressField {
	_, to, _ := current(r)
	return to
}

// CurrentValue returns the amount of the active representation.
func CurrentValue(r Reader) AmountField {
	_, _, value := current(r)
	return value
}

// IsValidCurrentTo reports whether the current recipient is acceptable. A
// native transaction carrying data may omit the recipient, e.g. to create a
// contract; a token transfer always needs one.
func IsValidCurrentTo(r Reader) bool {
	kind, to, _ := current(r)
	if kind == NativeTx {
		return to.IsSet() || r.DataExists()
	}
	return to.IsSet()
}

// IsValidCurrentValue reports whether the current amount parsed to a
// non-negative value.
func IsValidCurrentValue(r Reader) bool {
	_, _, value := current(r)
	return value.IsSet() && value.Value.Sign() >= 0
}

// IsValidScheduleDeposit reports whether the schedule deposit is acceptable.
// The deposit is optional, so an unset deposit is valid.
func IsValidScheduleDeposit(r Reader) bool {
	deposit := r.ScheduleDeposit()
	if !deposit.IsSet() {
		return true
	}
	return deposit.Value.Cmp(new(big.Int)) >= 0
}

// View evaluates the selectors that depend on external collaborators: the
// gas validators and the address book.
type View struct {
	validators txhelper.Validators
	book       addressbook.Resolver
}

// NewView returns a View using the provided collaborators. Missing validators
// fall back to txhelper.DefaultValidators and a nil book to the built-in
// address messages.
func NewView(validators txhelper.Validators, book addressbook.Resolver) *View {
	defaults := txhelper.DefaultValidators()
	if validators.GasPrice == nil {
		validators.GasPrice = defaults.GasPrice
	}
	if validators.GasLimit == nil {
		validators.GasLimit = defaults.GasLimit
	}
	if book == nil {
		book = addressbook.DefaultMessages
	}
	return &View{validators: validators, book: book}
}

func (v *View) IsValidGasPrice(r Reader) bool {
	return v.validators.GasPrice(r.GasPrice().Raw)
}

func (v *View) IsValidGasLimit(r Reader) bool {
	return v.validators.GasLimit(r.GasLimit().Raw)
}

func (v *View) IsValidScheduleGasPrice(r Reader) bool {
	return v.validators.GasPrice(r.ScheduleGasPrice().Raw)
}

func (v *View) IsValidScheduleGasLimit(r Reader) bool {
	return v.validators.GasLimit(r.ScheduleGasLimit().Raw)
}

// CurrentToAddressMessage looks up the advisory message of the raw current
// recipient.
func (v *View) CurrentToAddressMessage(r Reader) (*addressbook.AddressMessage, bool) {
	return v.book.AddressMessage(CurrentTo(r).Raw)
}
