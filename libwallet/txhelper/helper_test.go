package txhelper_test

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"code.cryptopower.dev/group/ethcompose/libwallet/txhelper"
)

var _ = Describe("Helper", func() {
	recipient := common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")

	Describe("ERC20TransferData", func() {
		It("encodes the selector, recipient and amount", func() {
			data, err := txhelper.ERC20TransferData(recipient, big.NewInt(1000))
			Expect(err).To(BeNil())
			Expect(data).To(HaveLen(txhelper.ERC20TransferDataLen))
			Expect(hexutil.Encode(data[:4])).To(Equal("0xa9059cbb"))
			Expect(common.BytesToAddress(data[4:36])).To(Equal(recipient))
			Expect(data[4:16]).To(Equal(make([]byte, 12)))
			Expect(new(big.Int).SetBytes(data[36:])).To(Equal(big.NewInt(1000)))
		})

		It("rejects amounts that do not fit a uint256", func() {
			_, err := txhelper.ERC20TransferData(recipient, big.NewInt(-1))
			Expect(err).To(HaveOccurred())

			tooLarge := new(big.Int).Lsh(big.NewInt(1), 256)
			_, err = txhelper.ERC20TransferData(recipient, tooLarge)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("BuildTx", func() {
		It("assembles a legacy transaction", func() {
			tx, err := txhelper.BuildTx(txhelper.TxParams{
				Nonce:    3,
				To:       &recipient,
				Value:    big.NewInt(5),
				GasPrice: big.NewInt(20000000000),
				GasLimit: 21000,
			})
			Expect(err).To(BeNil())
			Expect(tx.Type()).To(Equal(uint8(types.LegacyTxType)))
			Expect(*tx.To()).To(Equal(recipient))
			Expect(tx.Nonce()).To(Equal(uint64(3)))
			Expect(tx.Value()).To(Equal(big.NewInt(5)))
			Expect(tx.GasPrice()).To(Equal(big.NewInt(20000000000)))
			Expect(tx.Gas()).To(Equal(uint64(21000)))
			Expect(tx.Data()).To(BeEmpty())
		})

		It("leaves the recipient empty for contract creation", func() {
			tx, err := txhelper.BuildTx(txhelper.TxParams{
				GasPrice: big.NewInt(1),
				GasLimit: 100000,
				Data:     []byte{0x60, 0x01},
			})
			Expect(err).To(BeNil())
			Expect(tx.To()).To(BeNil())
			Expect(tx.Value().Sign()).To(Equal(0))
			Expect(tx.Data()).To(Equal([]byte{0x60, 0x01}))
		})

		It("rejects missing gas parameters and negative values", func() {
			_, err := txhelper.BuildTx(txhelper.TxParams{GasLimit: 21000})
			Expect(err).To(HaveOccurred())

			_, err = txhelper.BuildTx(txhelper.TxParams{GasPrice: big.NewInt(1)})
			Expect(err).To(HaveOccurred())

			_, err = txhelper.BuildTx(txhelper.TxParams{
				GasPrice: big.NewInt(1),
				GasLimit: 21000,
				Value:    big.NewInt(-1),
			})
			Expect(err).To(HaveOccurred())
		})

		It("encodes the transaction as rlp hex", func() {
			tx, err := txhelper.BuildTx(txhelper.TxParams{
				To:       &recipient,
				GasPrice: big.NewInt(1),
				GasLimit: 21000,
			})
			Expect(err).To(BeNil())

			encoded, err := txhelper.EncodeTx(tx)
			Expect(err).To(BeNil())

			raw, err := hexutil.Decode(encoded)
			Expect(err).To(BeNil())
			decoded := new(types.Transaction)
			Expect(decoded.UnmarshalBinary(raw)).To(Succeed())
			Expect(decoded.Hash()).To(Equal(tx.Hash()))
		})
	})
})
