package ethereum

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

// RPCProvider is a wallet provider reached over JSON-RPC. The node behind it
// owns the accounts and signs eth_sendTransaction requests.
type RPCProvider struct {
	logs *zap.SugaredLogger
	rpc  RPCClient

	accountsFeed event.Feed

	mu       sync.Mutex
	observed bool
	accounts []common.Address
}

func NewRPCProvider(logger *zap.SugaredLogger, rpcClient RPCClient) *RPCProvider {
	return &RPCProvider{
		logs: logger,
		rpc:  rpcClient,
	}
}

// Accounts returns the accounts the provider currently exposes. A result that
// differs from the previous one is published to account subscribers.
func (p *RPCProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.rpc.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, fmt.Errorf("eth_accounts: %w", err)
	}

	p.observe(accounts)
	return accounts, nil
}

func (p *RPCProvider) NetworkID(ctx context.Context) (string, error) {
	var id string
	if err := p.rpc.CallContext(ctx, &id, "net_version"); err != nil {
		return "", fmt.Errorf("net_version: %w", err)
	}

	return id, nil
}

// Request sends an arbitrary JSON-RPC request to the provider.
func (p *RPCProvider) Request(ctx context.Context, result any, method string, params ...any) error {
	if err := p.rpc.CallContext(ctx, result, method, params...); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// SubscribeAccounts delivers every changed account set to ch until the
// subscription is cancelled.
func (p *RPCProvider) SubscribeAccounts(ch chan<- []common.Address) event.Subscription {
	return p.accountsFeed.Subscribe(ch)
}

// WatchAccounts polls eth_accounts every interval until ctx is done. Nodes
// have no subscription for account switches, so this is what feeds
// SubscribeAccounts when the wallet behind the node changes its accounts.
func (p *RPCProvider) WatchAccounts(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if _, err := p.Accounts(ctx); err != nil && ctx.Err() == nil {
			p.logs.Warnw("failed to poll accounts", "error", err)
		}
	}
}

func (p *RPCProvider) observe(accounts []common.Address) {
	p.mu.Lock()
	changed := p.observed && !slices.Equal(p.accounts, accounts)
	p.accounts = slices.Clone(accounts)
	p.observed = true
	p.mu.Unlock()

	if changed {
		p.accountsFeed.Send(slices.Clone(accounts))
	}
}
