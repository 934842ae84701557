package eth_test

import (
	"math/big"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"code.cryptopower.dev/group/ethcompose/libwallet/assets/eth"
)

func bigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	Expect(ok).To(BeTrue())
	return n
}

var _ = Describe("Amount", func() {
	table.DescribeTable("ParseAmount accepts decimal text",
		func(raw string, decimals int, base string) {
			amount, err := eth.ParseAmount(raw, decimals)
			Expect(err).To(BeNil())
			Expect(amount.BaseUnits()).To(Equal(bigInt(base)))
			Expect(amount.Decimals()).To(Equal(decimals))
		},
		table.Entry("whole ether", "1", 18, "1000000000000000000"),
		table.Entry("fractional ether", "1.5", 18, "1500000000000000000"),
		table.Entry("leading dot", ".5", 18, "500000000000000000"),
		table.Entry("trailing dot", "2.", 18, "2000000000000000000"),
		table.Entry("surrounding spaces", " 3 ", 6, "3000000"),
		table.Entry("six decimal token", "1.25", 6, "1250000"),
		table.Entry("trailing zeros beyond decimals", "1.500000000", 6, "1500000"),
		table.Entry("zero decimals", "42", 0, "42"),
		table.Entry("negative", "-1", 18, "-1000000000000000000"),
		table.Entry("explicit plus", "+0.1", 1, "1"),
		table.Entry("beyond 64 bits", "123456789012345678901234567890", 18,
			"123456789012345678901234567890000000000000000000"),
	)

	table.DescribeTable("ParseAmount rejects malformed text",
		func(raw string, decimals int) {
			amount, err := eth.ParseAmount(raw, decimals)
			Expect(err).To(HaveOccurred())
			Expect(amount).To(BeNil())
		},
		table.Entry("empty", "", 18),
		table.Entry("sign only", "-", 18),
		table.Entry("dot only", ".", 18),
		table.Entry("letters", "abc", 18),
		table.Entry("hex", "0x10", 18),
		table.Entry("two dots", "1.2.3", 18),
		table.Entry("exponent", "1e18", 18),
		table.Entry("too many decimals", "0.1234567", 6),
	)

	It("formats base units in the display unit", func() {
		Expect(eth.NewWei(bigInt("1500000000000000000")).String()).To(Equal("1.5"))
		Expect(eth.NewWei(big.NewInt(1)).String()).To(Equal("0.000000000000000001"))
		Expect(eth.NewTokenAmount(big.NewInt(-2500000), 6).String()).To(Equal("-2.5"))
		Expect(eth.NewTokenAmount(big.NewInt(0), 6).String()).To(Equal("0"))
		Expect(eth.ToGwei(bigInt("20000000000"))).To(Equal("20"))
		Expect(eth.ToEther(bigInt("1000000000000000000"))).To(Equal("1"))
	})

	It("parses gwei and ether into wei", func() {
		wei, err := eth.ParseGwei("0.01")
		Expect(err).To(BeNil())
		Expect(wei).To(Equal(big.NewInt(10000000)))

		wei, err = eth.ParseEther("-0.5")
		Expect(err).To(BeNil())
		Expect(wei).To(Equal(bigInt("-500000000000000000")))
	})

	It("does not share base units with callers", func() {
		base := big.NewInt(7)
		amount := eth.NewWei(base)
		base.SetInt64(8)
		Expect(amount.BaseUnits()).To(Equal(big.NewInt(7)))

		amount.BaseUnits().SetInt64(9)
		Expect(amount.Cmp(big.NewInt(7))).To(Equal(0))
	})

	It("compares amounts by base units and decimals", func() {
		Expect(eth.NewWei(big.NewInt(1)).Equal(eth.NewWei(big.NewInt(1)))).To(BeTrue())
		Expect(eth.NewWei(big.NewInt(1)).Equal(eth.NewTokenAmount(big.NewInt(1), 6))).To(BeFalse())
		Expect(eth.NewWei(big.NewInt(-1)).Sign()).To(Equal(-1))
	})
})
