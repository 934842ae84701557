package txstate

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"code.cryptopower.dev/group/ethcompose/libwallet/assets/eth"
)

// AddressField is a recipient as typed (Raw) and as parsed (Value). Value is
// nil when Raw is not a valid address.
type AddressField struct {
	Raw   string
	Value *common.Address
}

// IsSet reports whether the raw text parsed to an address.
func (f AddressField) IsSet() bool {
	return f.Value != nil
}

// AmountField is an amount as typed in its display unit (Raw) and as parsed
// into base units (Value). Value is nil when Raw is empty or unparseable.
type AmountField struct {
	Raw   string
	Value *eth.Amount
}

// IsSet reports whether the raw text parsed to an amount.
func (f AmountField) IsSet() bool {
	return f.Value != nil
}

// NumberField is an integer quantity (wei, gas or nonce) as typed and as
// parsed. Value is nil when Raw is empty or unparseable.
type NumberField struct {
	Raw   string
	Value *big.Int
}

// IsSet reports whether the raw text parsed to a number.
func (f NumberField) IsSet() bool {
	return f.Value != nil
}

// DataField is the hex payload of a transaction.
type DataField struct {
	Raw   string
	Value []byte
}
