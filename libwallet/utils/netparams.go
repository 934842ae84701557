package utils

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/params"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Goerli  NetworkType = "goerli"
	Sepolia NetworkType = "sepolia"
	Unknown NetworkType = "unknown"
)

// Display returns the title case network name to be displayed on the app UI.
func (n NetworkType) Display() string {
	caser := cases.Title(language.Und)
	return caser.String(string(n))
}

// ToNetworkType maps the provided network string identifier to the available
// network type constants.
func ToNetworkType(str string) NetworkType {
	switch strings.ToLower(str) {
	case "mainnet", "main", "homestead":
		return Mainnet
	case "goerli", "gor":
		return Goerli
	case "sepolia", "sep":
		return Sepolia
	default:
		return Unknown
	}
}

var (
	ETHMainnetParams = params.MainnetChainConfig
	ETHGoerliParams  = params.GoerliChainConfig
	ETHSepoliaParams = params.SepoliaChainConfig
)

// ETHChainParams returns the chain config of the provided network.
func ETHChainParams(netType NetworkType) (*params.ChainConfig, error) {
	switch netType {
	case Mainnet:
		return ETHMainnetParams, nil
	case Goerli:
		return ETHGoerliParams, nil
	case Sepolia:
		return ETHSepoliaParams, nil
	default:
		return nil, fmt.Errorf("%v: (%v)", ErrInvalidNet, netType)
	}
}
