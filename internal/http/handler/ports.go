package handler

import (
	"context"
	"net/http"

	"transether/internal/core"
	"transether/internal/txlog"
	"transether/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransferService . TransferService
type TransferService interface {
	SendEther(ctx context.Context, req core.TransferRequest) (txlog.Record, error)
	Transactions() []txlog.Record
}

//counterfeiter:generate -o fake -fake-name SessionService . SessionService
type SessionService interface {
	RequestConnection(ctx context.Context) error
	Refresh(ctx context.Context) error
	State() wallet.State
	Owner(ctx context.Context) (common.Address, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
