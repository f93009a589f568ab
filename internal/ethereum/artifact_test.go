package ethereum_test

import (
	"os"
	"path/filepath"

	"transether/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Artifact", func() {
	var (
		data     []byte
		artifact *ethereum.Artifact
		err      error
	)

	JustBeforeEach(func() {
		artifact, err = ethereum.ParseArtifact(data)
	})

	When("the artifact carries an abi and deployments", func() {
		BeforeEach(func() {
			data = []byte(`{
				"contractName": "Wallet",
				"abi": ` + ethereum.WalletABI + `,
				"networks": {
					"5777": {"address": "0x5FbDB2315678afecb367f032d93F642f64180aa3"}
				}
			}`)
		})

		It("should resolve the deployment for a known network", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(artifact.ContractName).To(Equal("Wallet"))

			deployment, ok := artifact.Lookup("5777")
			Expect(ok).To(BeTrue())
			Expect(deployment.Address).To(Equal(common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")))
		})

		It("should report unknown networks", func() {
			_, ok := artifact.Lookup("1")
			Expect(ok).To(BeFalse())
		})
	})

	When("the artifact has deployments only", func() {
		BeforeEach(func() {
			data = []byte(`{"networks": {"1337": {"address": "0x0000000000000000000000000000000000000001"}}}`)
		})

		It("should fall back to the wallet abi", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(artifact.ABI.Methods).To(HaveKey("sendEther"))
			Expect(artifact.ABI.Events).To(HaveKey("EtherSent"))
		})
	})

	When("a deployment has an empty address", func() {
		BeforeEach(func() {
			data = []byte(`{"networks": {"5": {}}}`)
		})

		It("should treat the network as undeployed", func() {
			Expect(err).NotTo(HaveOccurred())
			_, ok := artifact.Lookup("5")
			Expect(ok).To(BeFalse())
		})
	})

	When("the abi is for another contract", func() {
		BeforeEach(func() {
			data = []byte(`{"abi": [{"inputs":[],"name":"ping","outputs":[],"stateMutability":"view","type":"function"}]}`)
		})

		It("should reject it", func() {
			Expect(err).To(MatchError(ethereum.ErrIncompatibleABI))
		})
	})

	When("the artifact is not json", func() {
		BeforeEach(func() {
			data = []byte(`not json`)
		})

		It("should return a decode error", func() {
			Expect(err).To(MatchError(ContainSubstring("decode artifact")))
		})
	})

	Describe("LoadArtifact", func() {
		It("should read the artifact from disk", func() {
			path := filepath.Join(GinkgoT().TempDir(), "Wallet.json")
			Expect(os.WriteFile(path, []byte(`{"networks": {}}`), 0o600)).To(Succeed())

			loaded, err := ethereum.LoadArtifact(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Networks).To(BeEmpty())
		})

		It("should fail for a missing file", func() {
			_, err := ethereum.LoadArtifact(filepath.Join(GinkgoT().TempDir(), "missing.json"))
			Expect(err).To(MatchError(os.ErrNotExist))
		})
	})
})
