package utils_test

import (
	"github.com/asdine/storm"
	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"code.cryptopower.dev/group/ethcompose/libwallet/utils"
)

var _ = Describe("NetworkConfig", func() {
	table.DescribeTable("ToNetworkType",
		func(name string, expected utils.NetworkType) {
			Expect(utils.ToNetworkType(name)).To(Equal(expected))
		},
		table.Entry("mainnet", "mainnet", utils.Mainnet),
		table.Entry("mixed case", "MainNet", utils.Mainnet),
		table.Entry("goerli", "goerli", utils.Goerli),
		table.Entry("sepolia short", "sep", utils.Sepolia),
		table.Entry("unknown", "ropsten", utils.Unknown),
	)

	It("maps networks to chain configs", func() {
		params, err := utils.ETHChainParams(utils.Sepolia)
		Expect(err).To(BeNil())
		Expect(params).To(Equal(utils.ETHSepoliaParams))

		_, err = utils.ETHChainParams(utils.Unknown)
		Expect(err).To(HaveOccurred())
		_, err = utils.NewNetworkConfig(utils.Unknown)
		Expect(err).To(HaveOccurred())

		Expect(utils.Goerli.Display()).To(Equal("Goerli"))
	})

	It("recognizes only the native unit as the network unit", func() {
		cfg, err := utils.NewNetworkConfig(utils.Mainnet)
		Expect(err).To(BeNil())
		Expect(cfg.IsNetworkUnit("ETH")).To(BeTrue())
		Expect(cfg.IsNetworkUnit("DAI")).To(BeFalse())
		Expect(cfg.ChainParams.ChainID.Int64()).To(Equal(int64(1)))
	})

	It("registers tokens", func() {
		cfg, err := utils.NewNetworkConfig(utils.Mainnet)
		Expect(err).To(BeNil())

		token, err := utils.ParseTokenSpec("USDC:0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB:6")
		Expect(err).To(BeNil())
		Expect(token.Address).To(Equal(common.HexToAddress("0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB")))
		Expect(cfg.AddToken(token)).To(Succeed())

		found, ok := cfg.Token("USDC")
		Expect(ok).To(BeTrue())
		Expect(found.Decimals).To(Equal(6))
		_, ok = cfg.Token("usdc")
		Expect(ok).To(BeFalse())

		Expect(cfg.AddToken(utils.Token{Symbol: "ETH"})).NotTo(Succeed())
		Expect(cfg.AddToken(utils.Token{Symbol: "BIG", Decimals: 99})).NotTo(Succeed())
	})

	table.DescribeTable("ParseTokenSpec rejects malformed specs",
		func(spec string) {
			_, err := utils.ParseTokenSpec(spec)
			Expect(err).To(HaveOccurred())
		},
		table.Entry("missing decimals", "USDC:0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB"),
		table.Entry("bad address", "USDC:0x1234:6"),
		table.Entry("bad decimals", "USDC:0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB:6x"),
	)

	It("translates storage errors into error codes", func() {
		Expect(utils.TranslateError(storm.ErrNotFound).Error()).To(ContainSubstring(utils.ErrNotExist))
		Expect(utils.TranslateError(nil)).To(BeNil())
	})
})
