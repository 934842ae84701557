package utils

import (
	"decred.org/dcrwallet/v2/errors"
	"github.com/asdine/storm"
)

const (
	// Error Codes
	ErrInvalid             = "invalid"
	ErrInvalidAddress      = "invalid_address"
	ErrInvalidAmount       = "invalid_amount"
	ErrInvalidGasPrice     = "invalid_gas_price"
	ErrInvalidGasLimit     = "invalid_gas_limit"
	ErrNotExist            = "not_exists"
	ErrExist               = "exists"
	ErrUnknownToken        = "unknown_token"
	ErrAddressBookInUse    = "address_book_in_use"
)

var ErrInvalidNet = errors.New("invalid network type found")

// TranslateError maps errors returned by the wallet error package and the
// storm database onto the error codes above.
func TranslateError(err error) error {
	if err == storm.ErrNotFound {
		return errors.New(ErrNotExist)
	}
	if err == storm.ErrAlreadyExists {
		return errors.New(ErrExist)
	}
	if err, ok := err.(*errors.Error); ok {
		switch err.Kind {
		case errors.Invalid:
			return errors.New(ErrInvalid)
		case errors.NotExist:
			return errors.New(ErrNotExist)
		case errors.Exist:
			return errors.New(ErrExist)
		}
	}
	return err
}
