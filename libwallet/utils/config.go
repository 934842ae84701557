package utils

import "os"

type AssetType string

const (
	LogFileName = "ethcompose.log"

	ETHWalletAsset AssetType = "ETH"

	// DefaultLogLevel is used when no debug level is provided on the command line.
	DefaultLogLevel = "info"

	// UserFilePerm is the permission used for the app data and log directories.
	UserFilePerm os.FileMode = 0700

	// DefaultTokenDecimals is assumed for token units missing from the registry.
	DefaultTokenDecimals = 18
)

// ToFull returns the full network name of the provided asset.
func (str AssetType) ToFull() string {
	switch str {
	case ETHWalletAsset:
		return "Ethereum"
	default:
		return "Unknown"
	}
}
