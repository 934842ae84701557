package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

// Token describes an ERC-20 token known to a network.
type Token struct {
	Symbol   string
	Address  common.Address
	Decimals int
}

// NetworkConfig is the network-level read surface used by the send form: the
// native unit of the chain, its chain config and the tokens it knows about.
type NetworkConfig struct {
	Type        NetworkType
	Unit        string
	ChainParams *params.ChainConfig

	tokens map[string]Token
}

// NewNetworkConfig returns the config of the provided network with its native
// unit set and an empty token registry.
func NewNetworkConfig(netType NetworkType) (*NetworkConfig, error) {
	chainParams, err := ETHChainParams(netType)
	if err != nil {
		return nil, err
	}

	return &NetworkConfig{
		Type:        netType,
		Unit:        string(ETHWalletAsset),
		ChainParams: chainParams,
		tokens:      make(map[string]Token),
	}, nil
}

// IsNetworkUnit reports whether unit is the native unit of the network.
func (cfg *NetworkConfig) IsNetworkUnit(unit string) bool {
	return unit == cfg.Unit
}

// AddToken registers a token. Symbols are matched case-sensitively since
// distinct tokens may only differ by case.
func (cfg *NetworkConfig) AddToken(token Token) error {
	if token.Symbol == "" || cfg.IsNetworkUnit(token.Symbol) {
		return fmt.Errorf("%s: %q", ErrUnknownToken, token.Symbol)
	}
	if token.Decimals < 0 || token.Decimals > 78 {
		return fmt.Errorf("%s: %q has %d decimals", ErrUnknownToken, token.Symbol, token.Decimals)
	}
	if cfg.tokens == nil {
		cfg.tokens = make(map[string]Token)
	}
	cfg.tokens[token.Symbol] = token
	return nil
}

// Token returns the registered token with the provided symbol.
func (cfg *NetworkConfig) Token(symbol string) (Token, bool) {
	token, ok := cfg.tokens[symbol]
	return token, ok
}

// ParseTokenSpec parses a "SYMBOL:0xcontract:decimals" token definition.
func ParseTokenSpec(spec string) (Token, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return Token{}, fmt.Errorf("%s: expected SYMBOL:ADDRESS:DECIMALS, got %q", ErrInvalid, spec)
	}
	if !common.IsHexAddress(parts[1]) {
		return Token{}, fmt.Errorf("%s: %q", ErrInvalidAddress, parts[1])
	}
	decimals, err := strconv.Atoi(parts[2])
	if err != nil {
		return Token{}, fmt.Errorf("%s: token decimals %q", ErrInvalid, parts[2])
	}

	return Token{
		Symbol:   parts[0],
		Address:  common.HexToAddress(parts[1]),
		Decimals: decimals,
	}, nil
}
