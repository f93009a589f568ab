package wallet

import (
	"context"
	"time"

	"transether/internal/ethereum"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Provider . Provider
type Provider interface {
	Accounts(ctx context.Context) ([]common.Address, error)
	NetworkID(ctx context.Context) (string, error)
	Request(ctx context.Context, result any, method string, params ...any) error
	SubscribeAccounts(ch chan<- []common.Address) event.Subscription
	WatchAccounts(ctx context.Context, interval time.Duration)
}

//counterfeiter:generate -o fake -fake-name Contract . Contract
type Contract interface {
	Address() common.Address
	Owner(ctx context.Context) (common.Address, error)
	EstimateSendEther(ctx context.Context, call ethereum.TransferCall) (uint64, error)
	SendEther(ctx context.Context, call ethereum.TransferCall) (*ethereum.Transfer, error)
}

// Binder attaches to a deployed contract at address.
type Binder func(address common.Address, contractABI abi.ABI) Contract
