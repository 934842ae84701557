package eth

import (
	"math/big"
	"strings"

	"decred.org/dcrwallet/v2/errors"
	"github.com/ethereum/go-ethereum/params"

	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

const (
	// EtherDecimals is the number of decimal places between ether and wei.
	// 1 ether = 1,000,000,000,000,000,000 wei (1e18).
	EtherDecimals = 18
	// GweiDecimals is the number of decimal places between gwei and wei.
	// 1 gwei = 1,000,000,000 wei (1e9).
	GweiDecimals = 9
)

var (
	ethToWei  = new(big.Int).SetUint64(params.Ether)
	gweiToWei = new(big.Int).SetUint64(params.GWei)
)

// Amount is a value held in base units: wei for ether, the smallest
// indivisible unit for tokens. Decimals records how many places separate the
// base unit from the display unit.
type Amount struct {
	value    *big.Int
	decimals int
}

// NewWei returns an ether amount of wei base units.
func NewWei(wei *big.Int) *Amount {
	return &Amount{value: new(big.Int).Set(wei), decimals: EtherDecimals}
}

// NewTokenAmount returns a token amount of base units with the provided
// number of decimals.
func NewTokenAmount(base *big.Int, decimals int) *Amount {
	return &Amount{value: new(big.Int).Set(base), decimals: decimals}
}

// BaseUnits returns a copy of the amount in base units.
func (a *Amount) BaseUnits() *big.Int {
	return new(big.Int).Set(a.value)
}

// Decimals returns the number of decimals of the amount's display unit.
func (a *Amount) Decimals() int {
	return a.decimals
}

// Sign returns -1, 0 or +1 depending on the sign of the amount.
func (a *Amount) Sign() int {
	return a.value.Sign()
}

// Cmp compares the amount's base units with y.
func (a *Amount) Cmp(y *big.Int) int {
	return a.value.Cmp(y)
}

// Equal reports whether both amounts hold the same base units and decimals.
func (a *Amount) Equal(b *Amount) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.decimals == b.decimals && a.value.Cmp(b.value) == 0
}

// String returns the amount formatted in its display unit without trailing
// zeros, e.g. "1.5" for 1500000000000000000 wei.
func (a *Amount) String() string {
	return FormatUnits(a.value, a.decimals)
}

// ToGwei returns the wei amount expressed in gwei as a decimal string.
func ToGwei(wei *big.Int) string {
	return FormatUnits(wei, GweiDecimals)
}

// ToEther returns the wei amount expressed in ether as a decimal string.
func ToEther(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}

// FormatUnits formats base units as a decimal string with the provided
// number of decimals.
func FormatUnits(base *big.Int, decimals int) string {
	abs := new(big.Int).Abs(base)
	divisor := pow10(decimals)
	whole, frac := new(big.Int).QuoRem(abs, divisor, new(big.Int))

	str := whole.String()
	if frac.Sign() != 0 {
		fracStr := frac.String()
		fracStr = strings.Repeat("0", decimals-len(fracStr)) + fracStr
		str += "." + strings.TrimRight(fracStr, "0")
	}
	if base.Sign() < 0 {
		str = "-" + str
	}
	return str
}

// ParseAmount converts a decimal string expressed in the display unit into an
// Amount of base units. A leading sign is accepted; more fractional digits
// than decimals is an error since the amount would not be representable.
func ParseAmount(raw string, decimals int) (*Amount, error) {
	const op errors.Op = "eth.ParseAmount"

	base, err := parseUnits(raw, decimals)
	if err != nil {
		log.Tracef("rejecting amount %q with %d decimals: %v", raw, decimals, err)
		return nil, errors.E(op, errors.Invalid, err)
	}
	return &Amount{value: base, decimals: decimals}, nil
}

// ParseEther converts an ether decimal string into wei.
func ParseEther(raw string) (*big.Int, error) {
	amount, err := ParseAmount(raw, EtherDecimals)
	if err != nil {
		return nil, err
	}
	return amount.value, nil
}

// ParseGwei converts a gwei decimal string into wei.
func ParseGwei(raw string) (*big.Int, error) {
	amount, err := ParseAmount(raw, GweiDecimals)
	if err != nil {
		return nil, err
	}
	return amount.value, nil
}

func parseUnits(raw string, decimals int) (*big.Int, error) {
	str := strings.TrimSpace(raw)
	if decimals < 0 {
		return nil, errors.New(utils.ErrInvalid)
	}

	negative := false
	switch {
	case strings.HasPrefix(str, "-"):
		negative = true
		str = str[1:]
	case strings.HasPrefix(str, "+"):
		str = str[1:]
	}

	whole, frac := str, ""
	if i := strings.IndexByte(str, '.'); i >= 0 {
		whole, frac = str[:i], str[i+1:]
	}
	if whole == "" && frac == "" {
		return nil, errors.Errorf("%s: %q", utils.ErrInvalidAmount, raw)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, errors.Errorf("%s: %q", utils.ErrInvalidAmount, raw)
	}
	frac = strings.TrimRight(frac, "0")
	if len(frac) > decimals {
		return nil, errors.Errorf("%s: %q has more than %d decimal places",
			utils.ErrInvalidAmount, raw, decimals)
	}

	digits := whole + frac + strings.Repeat("0", decimals-len(frac))
	base, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.Errorf("%s: %q", utils.ErrInvalidAmount, raw)
	}
	if negative {
		base.Neg(base)
	}
	return base, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func pow10(n int) *big.Int {
	switch n {
	case EtherDecimals:
		return ethToWei
	case GweiDecimals:
		return gweiToWei
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
