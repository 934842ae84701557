package txhelper

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

const (
	// GasLimitLowerBound is the intrinsic gas of a plain value transfer.
	GasLimitLowerBound = params.TxGas
	// GasLimitUpperBound caps the gas limit a send form accepts.
	GasLimitUpperBound uint64 = 8000000

	// ERC20TransferDataLen is the length of transfer(address,uint256) call
	// data: a 4 byte selector followed by two 32 byte words.
	ERC20TransferDataLen = 4 + 2*common.HashLength
)

var (
	// GasPriceLowerBound is 0.01 gwei expressed in wei.
	GasPriceLowerBound = big.NewInt(params.GWei / 100)
	// GasPriceUpperBound is 10000 gwei expressed in wei.
	GasPriceUpperBound = new(big.Int).Mul(big.NewInt(10000), big.NewInt(params.GWei))
)

// TxParams holds the fields of an unsigned legacy transaction.
type TxParams struct {
	Nonce    uint64
	To       *common.Address
	Value    *big.Int
	GasPrice *big.Int
	GasLimit uint64
	Data     []byte
}
