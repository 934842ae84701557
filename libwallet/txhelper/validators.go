package txhelper

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"code.cryptopower.dev/group/ethcompose/libwallet/assets/eth"
)

// Validators groups the raw-text validators used by the send form. They are
// fields so callers can swap them, e.g. to relax the gas price bounds on a
// test network.
type Validators struct {
	GasPrice func(raw string) bool
	GasLimit func(raw string) bool
}

// DefaultValidators returns the mainnet validators.
func DefaultValidators() Validators {
	return Validators{
		GasPrice: GasPriceValidator,
		GasLimit: GasLimitValidator,
	}
}

// IsValidNumber reports whether raw is a finite non-negative number.
func IsValidNumber(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && f >= 0
}

// GasPriceValidator reports whether raw is a gwei amount within
// [GasPriceLowerBound, GasPriceUpperBound].
func GasPriceValidator(raw string) bool {
	if !IsValidNumber(raw) {
		return false
	}
	wei, err := eth.ParseGwei(raw)
	if err != nil {
		return false
	}
	return inRange(wei, GasPriceLowerBound, GasPriceUpperBound)
}

// GasLimitValidator reports whether raw is an integer gas amount within
// [GasLimitLowerBound, GasLimitUpperBound].
func GasLimitValidator(raw string) bool {
	gas, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return false
	}
	return gas >= GasLimitLowerBound && gas <= GasLimitUpperBound
}

func inRange(v, lower, upper *big.Int) bool {
	return v.Cmp(lower) >= 0 && v.Cmp(upper) <= 0
}
