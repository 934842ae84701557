package addresshelper

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

// ParseAddress decodes a 0x-prefixed hex address. All-lowercase and
// all-uppercase hex is accepted as is; mixed case must match the EIP-55
// checksum. The zero address is rejected since funds sent there are lost.
func ParseAddress(address string) (common.Address, error) {
	address = strings.TrimSpace(address)

	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("%s: error decoding address '%s'", utils.ErrInvalidAddress, address)
	}

	addr := common.HexToAddress(address)
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%s: '%s' is the zero address", utils.ErrInvalidAddress, address)
	}

	body := address[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && addr.Hex() != address {
		return common.Address{}, fmt.Errorf("%s: bad checksum for address '%s'", utils.ErrInvalidAddress, address)
	}

	return addr, nil
}

// IsValidAddress reports whether ParseAddress would accept the address.
func IsValidAddress(address string) bool {
	_, err := ParseAddress(address)
	return err == nil
}

// NormalizeAddress returns the lowercase form of a hex address, used as the
// lookup key for address-keyed data. Input that is not an address is only
// trimmed and lowercased.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
