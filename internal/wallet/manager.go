package wallet

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"transether/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

var (
	ErrNotConnected        = errors.New("wallet is not connected")
	ErrContractNotDeployed = errors.New("contract not deployed on the current network")
	ErrNoAccount           = errors.New("no account connected")
)

const defaultAccountsPollInterval = 2 * time.Second

// Manager owns the wallet session: the provider, the accounts it exposes and
// the contract deployed on its network.
type Manager struct {
	logs     *zap.SugaredLogger
	provider Provider
	artifact *ethereum.Artifact
	bind     Binder

	mu        sync.RWMutex
	connected bool
	networkID string
	accounts  []common.Address
	contract  Contract

	pollInterval time.Duration
	subOnce      sync.Once
	sub          event.Subscription
	accountsCh   chan []common.Address
	done         chan struct{}
	stopWatch    context.CancelFunc
	watchDone    chan struct{}
}

type ManagerOption func(*Manager)

// WithAccountsPollInterval sets how often the provider is asked for its
// accounts while the session is open.
func WithAccountsPollInterval(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.pollInterval = d
	}
}

func NewManager(logger *zap.SugaredLogger, provider Provider, artifact *ethereum.Artifact, bind Binder, opts ...ManagerOption) *Manager {
	m := &Manager{
		logs:         logger,
		provider:     provider,
		artifact:     artifact,
		bind:         bind,
		pollInterval: defaultAccountsPollInterval,
		accountsCh:   make(chan []common.Address, 1),
		done:         make(chan struct{}),
		watchDone:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize connects the session to the provider's current network. When the
// network has no deployment the session stays disconnected.
func (m *Manager) Initialize(ctx context.Context) error {
	accounts, err := m.provider.Accounts(ctx)
	if err != nil {
		m.logs.Errorw("could not connect to provider", "error", err)
		return fmt.Errorf("get accounts: %w", err)
	}

	networkID, err := m.provider.NetworkID(ctx)
	if err != nil {
		m.logs.Errorw("could not connect to provider", "error", err)
		return fmt.Errorf("get network id: %w", err)
	}

	deployment, ok := m.artifact.Lookup(networkID)
	if !ok {
		m.logs.Errorw("contract not deployed on the current network", "network_id", networkID)
		return fmt.Errorf("network %s: %w", networkID, ErrContractNotDeployed)
	}

	contract := m.bind(deployment.Address, m.artifact.ABI)

	m.mu.Lock()
	m.connected = true
	m.networkID = networkID
	m.accounts = slices.Clone(accounts)
	m.contract = contract
	m.mu.Unlock()

	m.subOnce.Do(func() {
		m.sub = m.provider.SubscribeAccounts(m.accountsCh)
		go m.watchAccounts()

		var watchCtx context.Context
		watchCtx, m.stopWatch = context.WithCancel(context.Background())
		go func() {
			defer close(m.watchDone)
			m.provider.WatchAccounts(watchCtx, m.pollInterval)
		}()
	})

	m.logs.Infow("wallet session initialized",
		"network_id", networkID,
		"contract", deployment.Address.Hex(),
		"accounts", len(accounts))

	return nil
}

// RequestConnection asks the provider to authorize account access and then
// refreshes the account set.
func (m *Manager) RequestConnection(ctx context.Context) error {
	if !m.isConnected() {
		return ErrNotConnected
	}

	if err := m.provider.Request(ctx, nil, "eth_requestAccounts"); err != nil {
		m.logs.Errorw("failed to connect to wallet", "error", err)
		return fmt.Errorf("request accounts: %w", err)
	}

	if err := m.Refresh(ctx); err != nil {
		m.logs.Errorw("failed to connect to wallet", "error", err)
		return err
	}

	return nil
}

// Refresh re-reads the provider's accounts into the session.
func (m *Manager) Refresh(ctx context.Context) error {
	if !m.isConnected() {
		return ErrNotConnected
	}

	accounts, err := m.provider.Accounts(ctx)
	if err != nil {
		return fmt.Errorf("get accounts: %w", err)
	}

	m.setAccounts(accounts)
	return nil
}

func (m *Manager) isConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.connected
}

// Sender returns the active account, the first one the provider exposes.
func (m *Manager) Sender() (common.Address, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return common.Address{}, ErrNotConnected
	}
	if len(m.accounts) == 0 {
		return common.Address{}, ErrNoAccount
	}
	return m.accounts[0], nil
}

func (m *Manager) Contract() (Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected || m.contract == nil {
		return nil, ErrNotConnected
	}
	return m.contract, nil
}

// Owner reads the contract owner for the connected network.
func (m *Manager) Owner(ctx context.Context) (common.Address, error) {
	contract, err := m.Contract()
	if err != nil {
		return common.Address{}, err
	}

	return contract.Owner(ctx)
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state := State{
		Connected: m.connected,
		NetworkID: m.networkID,
		Accounts:  slices.Clone(m.accounts),
	}
	if state.Accounts == nil {
		state.Accounts = []common.Address{}
	}
	if len(m.accounts) > 0 {
		active := m.accounts[0]
		state.Active = &active
	}
	if m.contract != nil {
		addr := m.contract.Address()
		state.Contract = &addr
	}
	return state
}

// Close stops polling the provider and the account subscription.
func (m *Manager) Close() {
	if m.sub == nil {
		return
	}
	m.stopWatch()
	<-m.watchDone
	m.sub.Unsubscribe()
	<-m.done
}

func (m *Manager) watchAccounts() {
	defer close(m.done)

	for {
		select {
		case accounts := <-m.accountsCh:
			m.logs.Infow("wallet accounts changed", "accounts", len(accounts))
			m.setAccounts(accounts)
		case err, ok := <-m.sub.Err():
			if ok && err != nil {
				m.logs.Errorw("account subscription failed", "error", err)
			}
			return
		}
	}
}

func (m *Manager) setAccounts(accounts []common.Address) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.accounts = slices.Clone(accounts)
}
