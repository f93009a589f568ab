package wallet_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"transether/internal/ethereum"
	ethfake "transether/internal/ethereum/fake"
	"transether/internal/wallet"
	"transether/internal/wallet/fake"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Manager", func() {
	var (
		manager      *wallet.Manager
		fakeProvider *fake.Provider
		fakeContract *fake.Contract
		artifact     *ethereum.Artifact
		accountsFeed *event.Feed
		boundTo      []common.Address
		ctx          context.Context
		fakeErr      error
		contractAddr common.Address
		alice        common.Address
		bob          common.Address
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		contractAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
		alice = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		bob = common.HexToAddress("0x00000000000000000000000000000000000000b0")

		walletABI, err := abi.JSON(strings.NewReader(ethereum.WalletABI))
		Expect(err).NotTo(HaveOccurred())
		artifact = &ethereum.Artifact{
			ABI: walletABI,
			Networks: map[string]ethereum.Deployment{
				"5777": {Address: contractAddr},
			},
		}

		accountsFeed = new(event.Feed)
		fakeProvider = new(fake.Provider)
		fakeProvider.AccountsReturns([]common.Address{alice}, nil)
		fakeProvider.NetworkIDReturns("5777", nil)
		fakeProvider.SubscribeAccountsStub = func(ch chan<- []common.Address) event.Subscription {
			return accountsFeed.Subscribe(ch)
		}

		fakeContract = new(fake.Contract)
		fakeContract.AddressReturns(contractAddr)

		boundTo = nil
		binder := func(address common.Address, _ abi.ABI) wallet.Contract {
			boundTo = append(boundTo, address)
			return fakeContract
		}

		manager = wallet.NewManager(zap.NewNop().Sugar(), fakeProvider, artifact, binder)
	})

	AfterEach(func() {
		manager.Close()
	})

	Describe("Initialize", func() {
		var err error

		JustBeforeEach(func() {
			err = manager.Initialize(ctx)
		})

		When("the network has a deployment", func() {
			It("should connect the session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(boundTo).To(Equal([]common.Address{contractAddr}))

				state := manager.State()
				Expect(state.Connected).To(BeTrue())
				Expect(state.NetworkID).To(Equal("5777"))
				Expect(state.Accounts).To(Equal([]common.Address{alice}))
				Expect(*state.Active).To(Equal(alice))
				Expect(*state.Contract).To(Equal(contractAddr))

				sender, err := manager.Sender()
				Expect(err).NotTo(HaveOccurred())
				Expect(sender).To(Equal(alice))

				contract, err := manager.Contract()
				Expect(err).NotTo(HaveOccurred())
				Expect(contract).To(Equal(fakeContract))
			})

			It("should subscribe to account changes once", func() {
				Expect(manager.Initialize(ctx)).To(Succeed())
				Expect(fakeProvider.SubscribeAccountsCallCount()).To(Equal(1))
				Eventually(fakeProvider.WatchAccountsCallCount).Should(Equal(1))
				_, interval := fakeProvider.WatchAccountsArgsForCall(0)
				Expect(interval).To(Equal(2 * time.Second))
			})
		})

		When("the network has no deployment", func() {
			BeforeEach(func() {
				fakeProvider.NetworkIDReturns("1", nil)
			})

			It("should stay disconnected", func() {
				Expect(err).To(MatchError(wallet.ErrContractNotDeployed))
				Expect(boundTo).To(BeEmpty())
				Expect(manager.State().Connected).To(BeFalse())
				Expect(manager.State().Contract).To(BeNil())

				_, err := manager.Contract()
				Expect(err).To(MatchError(wallet.ErrNotConnected))
				Expect(fakeProvider.SubscribeAccountsCallCount()).To(Equal(0))
			})
		})

		When("the provider is unreachable", func() {
			BeforeEach(func() {
				fakeProvider.AccountsReturns(nil, fakeErr)
			})

			It("should stay disconnected", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(manager.State().Connected).To(BeFalse())

				_, err := manager.Sender()
				Expect(err).To(MatchError(wallet.ErrNotConnected))
			})
		})

		When("the network id cannot be read", func() {
			BeforeEach(func() {
				fakeProvider.NetworkIDReturns("", fakeErr)
			})

			It("should stay disconnected", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(manager.State().Connected).To(BeFalse())
			})
		})

		When("the provider exposes no accounts", func() {
			BeforeEach(func() {
				fakeProvider.AccountsReturns(nil, nil)
			})

			It("should connect without a sender", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(manager.State().Accounts).To(BeEmpty())
				Expect(manager.State().Active).To(BeNil())

				_, err := manager.Sender()
				Expect(err).To(MatchError(wallet.ErrNoAccount))
			})
		})
	})

	Describe("RequestConnection", func() {
		var err error

		JustBeforeEach(func() {
			err = manager.RequestConnection(ctx)
		})

		When("the session was never initialized", func() {
			It("should not contact the provider", func() {
				Expect(err).To(MatchError(wallet.ErrNotConnected))
				Expect(fakeProvider.RequestCallCount()).To(Equal(0))
			})
		})

		When("the session is initialized", func() {
			BeforeEach(func() {
				Expect(manager.Initialize(ctx)).To(Succeed())
				fakeProvider.AccountsReturns([]common.Address{bob, alice}, nil)
			})

			It("should request access and refresh accounts", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeProvider.RequestCallCount()).To(Equal(1))
				_, result, method, params := fakeProvider.RequestArgsForCall(0)
				Expect(result).To(BeNil())
				Expect(method).To(Equal("eth_requestAccounts"))
				Expect(params).To(BeEmpty())

				sender, err := manager.Sender()
				Expect(err).NotTo(HaveOccurred())
				Expect(sender).To(Equal(bob))
			})

			When("the user declines", func() {
				BeforeEach(func() {
					fakeProvider.RequestReturns(fakeErr)
				})

				It("should return the error and keep the accounts", func() {
					Expect(err).To(MatchError(fakeErr))

					sender, err := manager.Sender()
					Expect(err).NotTo(HaveOccurred())
					Expect(sender).To(Equal(alice))
				})
			})
		})
	})

	Describe("Refresh", func() {
		It("should fail while disconnected", func() {
			Expect(manager.Refresh(ctx)).To(MatchError(wallet.ErrNotConnected))
			Expect(fakeProvider.AccountsCallCount()).To(Equal(0))
		})

		When("the session is initialized", func() {
			BeforeEach(func() {
				Expect(manager.Initialize(ctx)).To(Succeed())
			})

			It("should pick up the provider's current accounts", func() {
				fakeProvider.AccountsReturns([]common.Address{bob}, nil)

				Expect(manager.Refresh(ctx)).To(Succeed())
				sender, err := manager.Sender()
				Expect(err).NotTo(HaveOccurred())
				Expect(sender).To(Equal(bob))
			})

			It("should keep the accounts when the provider fails", func() {
				fakeProvider.AccountsReturns(nil, fakeErr)

				Expect(manager.Refresh(ctx)).To(MatchError(fakeErr))
				Expect(manager.State().Accounts).To(Equal([]common.Address{alice}))
			})
		})
	})

	Describe("account changes", func() {
		BeforeEach(func() {
			Expect(manager.Initialize(ctx)).To(Succeed())
		})

		It("should apply pushed account sets", func() {
			accountsFeed.Send([]common.Address{bob})

			Eventually(func() common.Address {
				sender, _ := manager.Sender()
				return sender
			}).Should(Equal(bob))
		})

		It("should stop listening after Close", func() {
			manager.Close()

			Expect(accountsFeed.Send([]common.Address{bob})).To(Equal(0))
			sender, err := manager.Sender()
			Expect(err).NotTo(HaveOccurred())
			Expect(sender).To(Equal(alice))
		})
	})

	Describe("Owner", func() {
		It("should fail while disconnected", func() {
			_, err := manager.Owner(ctx)
			Expect(err).To(MatchError(wallet.ErrNotConnected))
		})

		It("should read the contract owner", func() {
			Expect(manager.Initialize(ctx)).To(Succeed())
			fakeContract.OwnerReturns(alice, nil)

			owner, err := manager.Owner(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(owner).To(Equal(alice))
		})
	})
})

var _ = Describe("Manager with an RPC provider", func() {
	var (
		manager  *wallet.Manager
		fakeRPC  *ethfake.RPCClient
		mu       sync.Mutex
		accounts []common.Address
		alice    common.Address
		bob      common.Address
	)

	nodeAccounts := func(next []common.Address) {
		mu.Lock()
		defer mu.Unlock()
		accounts = next
	}

	BeforeEach(func() {
		alice = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		bob = common.HexToAddress("0x00000000000000000000000000000000000000b0")
		contractAddr := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
		nodeAccounts([]common.Address{alice})

		fakeRPC = new(ethfake.RPCClient)
		fakeRPC.CallContextStub = func(_ context.Context, result interface{}, method string, _ ...interface{}) error {
			switch method {
			case "eth_accounts":
				mu.Lock()
				*(result.(*[]common.Address)) = append([]common.Address(nil), accounts...)
				mu.Unlock()
			case "net_version":
				*(result.(*string)) = "5777"
			}
			return nil
		}

		walletABI, err := abi.JSON(strings.NewReader(ethereum.WalletABI))
		Expect(err).NotTo(HaveOccurred())
		artifact := &ethereum.Artifact{
			ABI:      walletABI,
			Networks: map[string]ethereum.Deployment{"5777": {Address: contractAddr}},
		}
		binder := func(address common.Address, _ abi.ABI) wallet.Contract {
			contract := new(fake.Contract)
			contract.AddressReturns(address)
			return contract
		}

		provider := ethereum.NewRPCProvider(zap.NewNop().Sugar(), fakeRPC)
		manager = wallet.NewManager(zap.NewNop().Sugar(), provider, artifact, binder,
			wallet.WithAccountsPollInterval(5*time.Millisecond))
		Expect(manager.Initialize(context.Background())).To(Succeed())
	})

	AfterEach(func() {
		manager.Close()
	})

	It("should follow an account switch made in the node's wallet", func() {
		nodeAccounts([]common.Address{bob})

		Eventually(func() common.Address {
			sender, _ := manager.Sender()
			return sender
		}).Should(Equal(bob))
		Expect(*manager.State().Active).To(Equal(bob))
	})

	It("should see the switch immediately on refresh", func() {
		nodeAccounts([]common.Address{bob, alice})

		Expect(manager.Refresh(context.Background())).To(Succeed())
		Expect(manager.State().Accounts).To(Equal([]common.Address{bob, alice}))
	})

	It("should stop polling after Close", func() {
		manager.Close()
		calls := fakeRPC.CallContextCallCount()

		Consistently(fakeRPC.CallContextCallCount, 50*time.Millisecond).Should(Equal(calls))
	})
})
