package txstate

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/params"

	"code.cryptopower.dev/group/ethcompose/libwallet/addresshelper"
	"code.cryptopower.dev/group/ethcompose/libwallet/assets/eth"
	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

// DefaultGasPriceGwei is the gas price a new form starts with.
const DefaultGasPriceGwei = "20"

// Reader is the read surface the selectors need from a send form state.
type Reader interface {
	Network() *utils.NetworkConfig
	Unit() string
	IsNetworkUnit(unit string) bool

	To() AddressField
	Value() AmountField
	Data() DataField
	DataExists() bool
	GasPrice() NumberField
	GasLimit() NumberField
	Nonce() NumberField

	TokenTo() AddressField
	TokenValue() AmountField

	SchedulingEnabled() bool
	ScheduleGasPrice() NumberField
	ScheduleGasLimit() NumberField
	ScheduleDeposit() NumberField
}

// Fields are the native ether fields of the form. When a token is the
// active unit, To holds the token contract and Value stays empty.
type Fields struct {
	To       AddressField
	Value    AmountField
	Data     DataField
	GasPrice NumberField
	GasLimit NumberField
	Nonce    NumberField
}

// Meta holds the token side of the form.
type Meta struct {
	Unit       string
	Decimals   int
	TokenTo    AddressField
	TokenValue AmountField
}

// Schedule holds the parameters of a transaction executed at a later time.
type Schedule struct {
	Enabled  bool
	GasPrice NumberField
	GasLimit NumberField
	Deposit  NumberField
}

// State is the send form state. Setters record the raw text exactly as typed
// and store the parsed value, or nil when the text does not parse. State is
// not safe for concurrent mutation; readers may share it while no setter runs.
type State struct {
	network  *utils.NetworkConfig
	fields   Fields
	meta     Meta
	schedule Schedule
}

// Confirm that State implements Reader.
var _ Reader = (*State)(nil)

// NewState returns an empty form for the network with ether selected and the
// default gas price and limit set.
func NewState(network *utils.NetworkConfig) *State {
	s := &State{
		network: network,
		meta: Meta{
			Unit:     network.Unit,
			Decimals: eth.EtherDecimals,
		},
	}
	s.SetGasPrice(DefaultGasPriceGwei)
	s.SetGasLimit(new(big.Int).SetUint64(params.TxGas).String())
	return s
}

func (s *State) Network() *utils.NetworkConfig { return s.network }

func (s *State) Unit() string { return s.meta.Unit }

// IsNetworkUnit reports whether unit is the native unit of the form's network.
func (s *State) IsNetworkUnit(unit string) bool {
	return s.network.IsNetworkUnit(unit)
}

func (s *State) To() AddressField        { return s.fields.To }
func (s *State) Value() AmountField      { return s.fields.Value }
func (s *State) Data() DataField         { return s.fields.Data }
func (s *State) GasPrice() NumberField   { return s.fields.GasPrice }
func (s *State) GasLimit() NumberField   { return s.fields.GasLimit }
func (s *State) Nonce() NumberField      { return s.fields.Nonce }
func (s *State) TokenTo() AddressField   { return s.meta.TokenTo }
func (s *State) TokenValue() AmountField { return s.meta.TokenValue }

// DataExists reports whether the form carries a non-empty payload.
func (s *State) DataExists() bool {
	return len(s.fields.Data.Value) > 0
}

func (s *State) SchedulingEnabled() bool       { return s.schedule.Enabled }
func (s *State) ScheduleGasPrice() NumberField { return s.schedule.GasPrice }
func (s *State) ScheduleGasLimit() NumberField { return s.schedule.GasLimit }
func (s *State) ScheduleDeposit() NumberField  { return s.schedule.Deposit }

// Decimals returns the decimals of the active unit.
func (s *State) Decimals() int { return s.meta.Decimals }

// SetUnit switches the active unit. Switching between ether and a token
// carries the typed recipient and amount over to the other representation;
// switching between tokens re-parses the amount with the new decimals.
// Tokens missing from the network registry use DefaultTokenDecimals.
func (s *State) SetUnit(unit string) {
	if unit == s.meta.Unit {
		return
	}

	wasNative := s.IsNetworkUnit(s.meta.Unit)
	isNative := s.IsNetworkUnit(unit)
	s.meta.Unit = unit

	switch {
	case isNative:
		s.meta.Decimals = eth.EtherDecimals
		if !wasNative {
			to, value := s.meta.TokenTo.Raw, s.meta.TokenValue.Raw
			s.meta.TokenTo = AddressField{}
			s.meta.TokenValue = AmountField{}
			s.SetTo(to)
			s.SetValue(value)
		}

	default:
		s.meta.Decimals = utils.DefaultTokenDecimals
		token, known := s.network.Token(unit)
		if known {
			s.meta.Decimals = token.Decimals
		} else {
			log.Debugf("Unit %s is not a registered token, assuming %d decimals", unit, s.meta.Decimals)
		}

		to, value := s.meta.TokenTo.Raw, s.meta.TokenValue.Raw
		if wasNative {
			to, value = s.fields.To.Raw, s.fields.Value.Raw
			s.fields.Value = AmountField{}
		}
		s.fields.To = AddressField{}
		if known {
			contract := token.Address
			s.fields.To = AddressField{Raw: contract.Hex(), Value: &contract}
		}
		s.SetTokenTo(to)
		s.SetTokenValue(value)
	}
}

// SetTo sets the native recipient.
func (s *State) SetTo(raw string) {
	s.fields.To = parseAddressField(raw)
}

// SetValue sets the ether amount, typed in ether.
func (s *State) SetValue(raw string) {
	s.fields.Value = parseAmountField(raw, eth.EtherDecimals)
}

// SetTokenTo sets the token recipient.
func (s *State) SetTokenTo(raw string) {
	s.meta.TokenTo = parseAddressField(raw)
}

// SetTokenValue sets the token amount, typed in the active token's unit.
func (s *State) SetTokenValue(raw string) {
	s.meta.TokenValue = parseAmountField(raw, s.meta.Decimals)
}

// SetData sets the hex payload. The 0x prefix is optional.
func (s *State) SetData(raw string) {
	field := DataField{Raw: raw}
	hex := strings.TrimSpace(raw)
	if hex != "" {
		if !strings.HasPrefix(hex, "0x") && !strings.HasPrefix(hex, "0X") {
			hex = "0x" + hex
		}
		data, err := hexutil.Decode(hex)
		if err != nil {
			log.Debugf("Ignoring invalid data %q: %v", raw, err)
		} else {
			field.Value = data
		}
	}
	s.fields.Data = field
}

// SetGasPrice sets the gas price, typed in gwei.
func (s *State) SetGasPrice(raw string) {
	s.fields.GasPrice = parseGweiField(raw)
}

// SetGasLimit sets the gas limit.
func (s *State) SetGasLimit(raw string) {
	s.fields.GasLimit = parseIntField(raw)
}

// SetNonce sets the nonce.
func (s *State) SetNonce(raw string) {
	s.fields.Nonce = parseIntField(raw)
}

// EnableScheduling turns the scheduled transaction parameters on or off.
func (s *State) EnableScheduling(enabled bool) {
	s.schedule.Enabled = enabled
}

// SetScheduleGasPrice sets the gas price of the scheduled execution, typed
// in gwei.
func (s *State) SetScheduleGasPrice(raw string) {
	s.schedule.GasPrice = parseGweiField(raw)
}

// SetScheduleGasLimit sets the gas limit of the scheduled execution.
func (s *State) SetScheduleGasLimit(raw string) {
	s.schedule.GasLimit = parseIntField(raw)
}

// SetScheduleDeposit sets the deposit, typed in ether. The sign is kept so
// that a negative deposit reaches validation instead of being dropped.
func (s *State) SetScheduleDeposit(raw string) {
	field := NumberField{Raw: raw}
	if strings.TrimSpace(raw) != "" {
		wei, err := eth.ParseEther(raw)
		if err != nil {
			log.Debugf("Ignoring invalid deposit %q: %v", raw, err)
		} else {
			field.Value = wei
		}
	}
	s.schedule.Deposit = field
}

func parseAddressField(raw string) AddressField {
	field := AddressField{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return field
	}
	addr, err := addresshelper.ParseAddress(raw)
	if err != nil {
		log.Debugf("Ignoring invalid address %q: %v", raw, err)
		return field
	}
	field.Value = &addr
	return field
}

func parseAmountField(raw string, decimals int) AmountField {
	field := AmountField{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return field
	}
	amount, err := eth.ParseAmount(raw, decimals)
	if err != nil {
		log.Debugf("Ignoring invalid amount %q: %v", raw, err)
		return field
	}
	if amount.Sign() < 0 {
		log.Debugf("Ignoring negative amount %q", raw)
		return field
	}
	field.Value = amount
	return field
}

func parseGweiField(raw string) NumberField {
	field := NumberField{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return field
	}
	wei, err := eth.ParseGwei(raw)
	if err != nil {
		log.Debugf("Ignoring invalid gas price %q: %v", raw, err)
		return field
	}
	field.Value = wei
	return field
}

func parseIntField(raw string) NumberField {
	field := NumberField{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		return field
	}
	n, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		log.Debugf("Ignoring invalid integer %q", raw)
		return field
	}
	field.Value = n
	return field
}
