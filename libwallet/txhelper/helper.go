package txhelper

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

// transferSelector is the method id of transfer(address,uint256).
var transferSelector = crypto.Keccak256([]byte("transfer(address,uint256)"))[:4]

// ERC20TransferData encodes the call data of an ERC-20 transfer of amount
// base units to the provided address.
func ERC20TransferData(to common.Address, amount *big.Int) ([]byte, error) {
	if amount.Sign() < 0 || amount.BitLen() > 256 {
		return nil, fmt.Errorf("%s: token amount %v out of range", utils.ErrInvalidAmount, amount)
	}

	data := make([]byte, 0, ERC20TransferDataLen)
	data = append(data, transferSelector...)
	data = append(data, common.LeftPadBytes(to.Bytes(), common.HashLength)...)
	data = append(data, common.LeftPadBytes(amount.Bytes(), common.HashLength)...)
	return data, nil
}

// BuildTx assembles the unsigned legacy transaction described by params.
func BuildTx(params TxParams) (*types.Transaction, error) {
	if params.GasPrice == nil || params.GasPrice.Sign() < 0 {
		return nil, fmt.Errorf("%s: gas price %v", utils.ErrInvalidGasPrice, params.GasPrice)
	}
	if params.GasLimit == 0 {
		return nil, fmt.Errorf("%s: gas limit is zero", utils.ErrInvalidGasLimit)
	}

	value := params.Value
	if value == nil {
		value = new(big.Int)
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%s: value %v is negative", utils.ErrInvalidAmount, value)
	}

	return types.NewTx(&types.LegacyTx{
		Nonce:    params.Nonce,
		To:       params.To,
		Value:    new(big.Int).Set(value),
		Gas:      params.GasLimit,
		GasPrice: new(big.Int).Set(params.GasPrice),
		Data:     common.CopyBytes(params.Data),
	}), nil
}

// EncodeTx returns the 0x-prefixed hex encoding of the transaction.
func EncodeTx(tx *types.Transaction) (string, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hexutil.Encode(raw), nil
}
