package ethereum_test

import (
	"context"
	"errors"
	"time"

	"transether/internal/ethereum"
	"transether/internal/ethereum/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RPCProvider", func() {
	var (
		provider *ethereum.RPCProvider
		fakeRPC  *fake.RPCClient
		ctx      context.Context
		fakeErr  error
		alice    common.Address
		bob      common.Address
		returned [][]common.Address
	)

	BeforeEach(func() {
		fakeRPC = new(fake.RPCClient)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		alice = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		bob = common.HexToAddress("0x00000000000000000000000000000000000000b0")
		returned = [][]common.Address{{alice}, {bob}}

		fakeRPC.CallContextStub = func(ctx context.Context, result interface{}, method string, args ...interface{}) error {
			switch method {
			case "eth_accounts":
				next := returned[0]
				if len(returned) > 1 {
					returned = returned[1:]
				}
				*(result.(*[]common.Address)) = next
			case "net_version":
				*(result.(*string)) = "5777"
			}
			return nil
		}

		provider = ethereum.NewRPCProvider(zap.NewNop().Sugar(), fakeRPC)
	})

	Describe("Accounts", func() {
		It("should query eth_accounts", func() {
			accounts, err := provider.Accounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(Equal([]common.Address{alice}))

			_, _, method, _ := fakeRPC.CallContextArgsForCall(0)
			Expect(method).To(Equal("eth_accounts"))
		})

		It("should wrap provider errors", func() {
			fakeRPC.CallContextReturns(fakeErr)

			_, err := provider.Accounts(ctx)
			Expect(err).To(MatchError(fakeErr))
			Expect(err).To(MatchError(ContainSubstring("eth_accounts")))
		})
	})

	Describe("NetworkID", func() {
		It("should query net_version", func() {
			id, err := provider.NetworkID(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal("5777"))
		})
	})

	Describe("Request", func() {
		It("should pass the method and params through", func() {
			Expect(provider.Request(ctx, nil, "eth_requestAccounts")).To(Succeed())

			_, result, method, params := fakeRPC.CallContextArgsForCall(0)
			Expect(result).To(BeNil())
			Expect(method).To(Equal("eth_requestAccounts"))
			Expect(params).To(BeEmpty())
		})

		It("should name the failed method", func() {
			fakeRPC.CallContextReturns(fakeErr)

			err := provider.Request(ctx, nil, "eth_requestAccounts")
			Expect(err).To(MatchError(fakeErr))
			Expect(err).To(MatchError(ContainSubstring("eth_requestAccounts")))
		})
	})

	Describe("SubscribeAccounts", func() {
		var (
			ch  chan []common.Address
			sub interface{ Unsubscribe() }
		)

		BeforeEach(func() {
			ch = make(chan []common.Address, 1)
			sub = provider.SubscribeAccounts(ch)
		})

		AfterEach(func() {
			sub.Unsubscribe()
		})

		It("should not publish the first observation", func() {
			_, err := provider.Accounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			Consistently(ch, 50*time.Millisecond).ShouldNot(Receive())
		})

		It("should publish a changed account set", func() {
			_, err := provider.Accounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = provider.Accounts(ctx)
			Expect(err).NotTo(HaveOccurred())

			Eventually(ch).Should(Receive(Equal([]common.Address{bob})))
		})

		It("should stay quiet when nothing changed", func() {
			returned = [][]common.Address{{alice}}

			_, err := provider.Accounts(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, err = provider.Accounts(ctx)
			Expect(err).NotTo(HaveOccurred())

			Consistently(ch, 50*time.Millisecond).ShouldNot(Receive())
		})
	})

	Describe("WatchAccounts", func() {
		var (
			ch     chan []common.Address
			cancel context.CancelFunc
			done   chan struct{}
		)

		BeforeEach(func() {
			ch = make(chan []common.Address, 1)
			sub := provider.SubscribeAccounts(ch)
			DeferCleanup(sub.Unsubscribe)

			_, err := provider.Accounts(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		JustBeforeEach(func() {
			var watchCtx context.Context
			watchCtx, cancel = context.WithCancel(ctx)
			done = make(chan struct{})
			go func() {
				defer close(done)
				provider.WatchAccounts(watchCtx, time.Millisecond)
			}()
		})

		AfterEach(func() {
			cancel()
			Eventually(done).Should(BeClosed())
		})

		It("should publish an account switch made in the node", func() {
			Eventually(ch).Should(Receive(Equal([]common.Address{bob})))
		})

		When("a poll fails", func() {
			BeforeEach(func() {
				answer := fakeRPC.CallContextStub
				failed := false
				fakeRPC.CallContextStub = func(ctx context.Context, result interface{}, method string, args ...interface{}) error {
					if !failed {
						failed = true
						return fakeErr
					}
					return answer(ctx, result, method, args...)
				}
			})

			It("should keep polling", func() {
				Eventually(ch).Should(Receive(Equal([]common.Address{bob})))
				Expect(fakeRPC.CallContextCallCount()).To(BeNumerically(">=", 3))
			})
		})

		It("should stop when the context is done", func() {
			cancel()
			Eventually(done).Should(BeClosed())
		})
	})
})
