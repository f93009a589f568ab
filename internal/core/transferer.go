package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"transether/internal/ethereum"
	"transether/internal/txlog"
	"transether/pkg/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TimestampLayout is how record timestamps are rendered.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

var TimeNow = time.Now

const (
	statusSuccess  = "success"
	statusPending  = "pending"
	statusRejected = "rejected"
	statusFailed   = "failed"
)

// Transferer sends ether through the wallet contract and keeps the local
// transaction log in step with what was submitted.
type Transferer struct {
	logs     *zap.SugaredLogger
	session  Session
	txLog    TransactionLog
	metrics  MetricsRecorder
	inFlight atomic.Bool
}

func NewTransferer(logger *zap.SugaredLogger, session Session, txLog TransactionLog, metrics MetricsRecorder) *Transferer {
	return &Transferer{
		logs:    logger,
		session: session,
		txLog:   txLog,
		metrics: metrics,
	}
}

// SendEther validates the request, estimates gas, submits the transfer and
// prepends it to the log. The log changes only when submission succeeded.
func (t *Transferer) SendEther(ctx context.Context, req TransferRequest) (txlog.Record, error) {
	start := TimeNow()

	wei, err := t.validate(req)
	if err != nil {
		t.metrics.RecordTransfer(statusRejected, TimeNow().Sub(start))
		return txlog.Record{}, err
	}

	if !t.inFlight.CompareAndSwap(false, true) {
		t.metrics.RecordTransfer(statusRejected, TimeNow().Sub(start))
		return txlog.Record{}, ErrTransferInFlight
	}
	defer t.inFlight.Store(false)

	record, err := t.send(ctx, req, wei)
	if err != nil {
		status := statusFailed
		switch {
		case errors.Is(err, ErrLogNotSaved):
			status = statusSuccess
		case errors.Is(err, ethereum.ErrReceiptPending):
			status = statusPending
		}
		t.metrics.RecordTransfer(status, TimeNow().Sub(start))
		return record, err
	}

	t.metrics.RecordTransfer(statusSuccess, TimeNow().Sub(start))
	return record, nil
}

// Transactions returns the log, newest first.
func (t *Transferer) Transactions() []txlog.Record {
	return t.txLog.All()
}

func (t *Transferer) validate(req TransferRequest) (*big.Int, error) {
	wei, err := units.ParseEther(req.Amount)
	if err != nil {
		if errors.Is(err, units.ErrTooManyDecimals) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
		}
		return nil, ErrNonPositiveAmount
	}
	if wei.Sign() <= 0 {
		return nil, ErrNonPositiveAmount
	}

	if !common.IsHexAddress(req.To) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRecipient, req.To)
	}

	return wei, nil
}

// send records the transfer whenever the provider accepted it, including
// when its receipt is still pending.
func (t *Transferer) send(ctx context.Context, req TransferRequest, wei *big.Int) (txlog.Record, error) {
	if err := t.session.Refresh(ctx); err != nil {
		return txlog.Record{}, fmt.Errorf("refresh accounts: %w", err)
	}

	from, err := t.session.Sender()
	if err != nil {
		return txlog.Record{}, fmt.Errorf("resolve sender: %w", err)
	}

	contract, err := t.session.Contract()
	if err != nil {
		return txlog.Record{}, fmt.Errorf("resolve contract: %w", err)
	}

	call := ethereum.TransferCall{
		From:  from,
		To:    common.HexToAddress(req.To),
		Value: wei,
	}

	t.logs.Infow("sending ether", "from", from.Hex(), "to", req.To, "amount", req.Amount)

	gas, err := contract.EstimateSendEther(ctx, call)
	if err != nil {
		t.logs.Errorw("gas estimation failed", "error", err, "from", from.Hex(), "to", req.To)
		return txlog.Record{}, err
	}

	t.metrics.ObserveEstimatedGas(gas)
	t.logs.Infow("estimated gas", "gas", gas)

	call.Gas = gas
	transfer, sendErr := contract.SendEther(ctx, call)
	if sendErr != nil {
		if transfer == nil || !errors.Is(sendErr, ethereum.ErrReceiptPending) {
			t.logs.Errorw("transaction failed", "error", sendErr, "from", from.Hex(), "to", req.To)
			return txlog.Record{}, sendErr
		}
		t.logs.Warnw("transaction submitted without receipt", "error", sendErr, "tx_hash", transfer.TxHash.Hex())
	}

	if ev := transfer.Event; ev != nil && (ev.From != from || ev.To != call.To || ev.Value.Cmp(wei) != 0) {
		t.logs.Warnw("EtherSent event does not match the request",
			"tx_hash", transfer.TxHash.Hex(),
			"event_from", ev.From.Hex(),
			"event_to", ev.To.Hex(),
			"event_value", units.FormatEther(ev.Value))
	}

	record := txlog.Record{
		ID:        uuid.NewString(),
		From:      from.Hex(),
		To:        req.To,
		Amount:    req.Amount,
		Timestamp: TimeNow().Format(TimestampLayout),
		TxHash:    transfer.TxHash.Hex(),
	}

	if err := t.txLog.Append(record); err != nil {
		t.logs.Errorw("failed to log transaction", "error", err, "tx_hash", record.TxHash)
		return record, fmt.Errorf("%w: %w", ErrLogNotSaved, err)
	}

	if sendErr != nil {
		return record, sendErr
	}

	t.logs.Infow("transaction successful",
		"tx_hash", record.TxHash,
		"block", transfer.BlockNumber,
		"gas_used", transfer.GasUsed,
		"ether", units.FormatEther(wei))
	return record, nil
}
