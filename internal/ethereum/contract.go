package ethereum

import (
	"context"
	"errors"
	"fmt"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var (
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrReceiptPending      = errors.New("transaction submitted but receipt not available")
)

const (
	defaultReceiptInterval = time.Second
	defaultReceiptTimeout  = 2 * time.Minute
)

type WalletContract struct {
	logs            *zap.SugaredLogger
	address         common.Address
	abi             abi.ABI
	bound           *bind.BoundContract
	client          EthClient
	rpc             RPCClient
	receiptInterval time.Duration
	receiptTimeout  time.Duration
}

type ContractOption func(*WalletContract)

// WithReceiptInterval sets how often the receipt of a submitted transaction
// is queried.
func WithReceiptInterval(d time.Duration) ContractOption {
	return func(c *WalletContract) {
		c.receiptInterval = d
	}
}

// WithReceiptTimeout bounds how long SendEther waits for a receipt once the
// transaction has been submitted.
func WithReceiptTimeout(d time.Duration) ContractOption {
	return func(c *WalletContract) {
		c.receiptTimeout = d
	}
}

func NewWalletContract(logger *zap.SugaredLogger, address common.Address, contractABI abi.ABI, client EthClient, rpcClient RPCClient, opts ...ContractOption) *WalletContract {
	c := &WalletContract{
		logs:            logger,
		address:         address,
		abi:             contractABI,
		bound:           bind.NewBoundContract(address, contractABI, client, nil, nil),
		client:          client,
		rpc:             rpcClient,
		receiptInterval: defaultReceiptInterval,
		receiptTimeout:  defaultReceiptTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *WalletContract) Address() common.Address {
	return c.address
}

// Owner reads the address that deployed the contract.
func (c *WalletContract) Owner(ctx context.Context) (common.Address, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, ownerMethod)
	if err != nil {
		return common.Address{}, fmt.Errorf("call owner: %w", err)
	}

	owner := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	return owner, nil
}

func (c *WalletContract) EstimateSendEther(ctx context.Context, call TransferCall) (uint64, error) {
	data, err := c.abi.Pack(sendEtherMethod, call.To)
	if err != nil {
		return 0, fmt.Errorf("pack sendEther: %w", err)
	}

	gas, err := c.client.EstimateGas(ctx, goethereum.CallMsg{
		From:  call.From,
		To:    &c.address,
		Value: call.Value,
		Data:  data,
	})
	if err != nil {
		return 0, fmt.Errorf("estimate gas: %w", err)
	}

	return gas, nil
}

// SendEther submits sendEther through the provider and blocks until the
// transaction is mined. Once the provider has accepted the transaction the
// wait no longer follows ctx; if no receipt arrives within the receipt
// timeout the transfer is returned with ErrReceiptPending.
func (c *WalletContract) SendEther(ctx context.Context, call TransferCall) (*Transfer, error) {
	data, err := c.abi.Pack(sendEtherMethod, call.To)
	if err != nil {
		return nil, fmt.Errorf("pack sendEther: %w", err)
	}

	args := sendTxArgs{
		From:  call.From,
		To:    &c.address,
		Gas:   hexutil.Uint64(call.Gas),
		Value: (*hexutil.Big)(call.Value),
		Data:  data,
	}

	var hash common.Hash
	if err := c.rpc.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.receiptTimeout)
	defer cancel()

	receipt, err := c.waitMined(waitCtx, hash)
	if err != nil {
		return &Transfer{TxHash: hash}, fmt.Errorf("%w: %s: %w", ErrReceiptPending, hash.Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrTransactionReverted, hash.Hex())
	}

	transfer := &Transfer{
		TxHash:  hash,
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		transfer.BlockNumber = receipt.BlockNumber.Uint64()
	}

	transfer.Event, err = c.etherSent(receipt)
	if err != nil {
		c.logs.Warnw("failed to decode EtherSent event",
			"error", err,
			"tx_hash", hash.Hex())
	}

	return transfer, nil
}

func (c *WalletContract) etherSent(receipt *types.Receipt) (*EtherSent, error) {
	eventID := c.abi.Events[etherSentEvent].ID
	for _, lg := range receipt.Logs {
		if lg == nil || lg.Address != c.address || len(lg.Topics) == 0 || lg.Topics[0] != eventID {
			continue
		}

		ev := new(EtherSent)
		if err := c.bound.UnpackLog(ev, etherSentEvent, *lg); err != nil {
			return nil, err
		}
		return ev, nil
	}

	return nil, nil
}

func (c *WalletContract) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(c.receiptInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, goethereum.NotFound) {
			return nil, fmt.Errorf("get receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
