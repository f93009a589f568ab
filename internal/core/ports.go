package core

import (
	"context"
	"time"

	"transether/internal/txlog"
	"transether/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Session . Session
type Session interface {
	Refresh(ctx context.Context) error
	Sender() (common.Address, error)
	Contract() (wallet.Contract, error)
}

//counterfeiter:generate -o fake -fake-name TransactionLog . TransactionLog
type TransactionLog interface {
	Append(record txlog.Record) error
	All() []txlog.Record
}

//counterfeiter:generate -o fake -fake-name MetricsRecorder . MetricsRecorder
type MetricsRecorder interface {
	RecordTransfer(status string, duration time.Duration)
	ObserveEstimatedGas(gas uint64)
}
