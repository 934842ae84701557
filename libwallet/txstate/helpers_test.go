package txstate_test

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/gomega"

	"code.cryptopower.dev/group/ethcompose/libwallet/assets/eth"
	"code.cryptopower.dev/group/ethcompose/libwallet/txstate"
	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

const (
	nativeTo = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	tokenTo  = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
	daiAddr  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	usdcAddr = "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB"
)

func testNetwork() *utils.NetworkConfig {
	network, err := utils.NewNetworkConfig(utils.Mainnet)
	Expect(err).To(BeNil())
	Expect(network.AddToken(utils.Token{Symbol: "DAI", Address: common.HexToAddress(daiAddr), Decimals: 18})).To(Succeed())
	Expect(network.AddToken(utils.Token{Symbol: "USDC", Address: common.HexToAddress(usdcAddr), Decimals: 6})).To(Succeed())
	return network
}

func addressField(raw string) txstate.AddressField {
	addr := common.HexToAddress(raw)
	return txstate.AddressField{Raw: raw, Value: &addr}
}

func weiField(raw string, wei int64) txstate.AmountField {
	return txstate.AmountField{Raw: raw, Value: eth.NewWei(big.NewInt(wei))}
}

func numberField(raw string) txstate.NumberField {
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return txstate.NumberField{Raw: raw}
	}
	return txstate.NumberField{Raw: raw, Value: n}
}

// fakeState is a Reader whose native and token fields can both be populated,
// which the setters of State never allow.
type fakeState struct {
	network *utils.NetworkConfig
	unit    string

	to       txstate.AddressField
	value    txstate.AmountField
	data     txstate.DataField
	gasPrice txstate.NumberField
	gasLimit txstate.NumberField
	nonce    txstate.NumberField

	tokenTo    txstate.AddressField
	tokenValue txstate.AmountField

	scheduling       bool
	scheduleGasPrice txstate.NumberField
	scheduleGasLimit txstate.NumberField
	scheduleDeposit  txstate.NumberField
}

var _ txstate.Reader = (*fakeState)(nil)

func newFakeState(unit string) *fakeState {
	return &fakeState{
		network:    testNetwork(),
		unit:       unit,
		to:         addressField(nativeTo),
		value:      weiField("1", 1000000000000000000),
		gasPrice:   txstate.NumberField{Raw: "20", Value: big.NewInt(20000000000)},
		gasLimit:   numberField("21000"),
		tokenTo:    addressField(tokenTo),
		tokenValue: txstate.AmountField{Raw: "2.5", Value: eth.NewTokenAmount(big.NewInt(2500000), 6)},
	}
}

func (f *fakeState) Network() *utils.NetworkConfig         { return f.network }
func (f *fakeState) Unit() string                          { return f.unit }
func (f *fakeState) IsNetworkUnit(unit string) bool        { return f.network.IsNetworkUnit(unit) }
func (f *fakeState) To() txstate.AddressField              { return f.to }
func (f *fakeState) Value() txstate.AmountField            { return f.value }
func (f *fakeState) Data() txstate.DataField               { return f.data }
func (f *fakeState) DataExists() bool                      { return len(f.data.Value) > 0 }
func (f *fakeState) GasPrice() txstate.NumberField         { return f.gasPrice }
func (f *fakeState) GasLimit() txstate.NumberField         { return f.gasLimit }
func (f *fakeState) Nonce() txstate.NumberField            { return f.nonce }
func (f *fakeState) TokenTo() txstate.AddressField         { return f.tokenTo }
func (f *fakeState) TokenValue() txstate.AmountField       { return f.tokenValue }
func (f *fakeState) SchedulingEnabled() bool               { return f.scheduling }
func (f *fakeState) ScheduleGasPrice() txstate.NumberField { return f.scheduleGasPrice }
func (f *fakeState) ScheduleGasLimit() txstate.NumberField { return f.scheduleGasLimit }
func (f *fakeState) ScheduleDeposit() txstate.NumberField  { return f.scheduleDeposit }
