package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"transether/internal/core"
	"transether/internal/ethereum"
	"transether/internal/http/handler/middleware"
	"transether/internal/http/payload"
	"transether/internal/txlog"
	"transether/internal/wallet"

	"go.uber.org/zap"
)

var (
	Connect         = "POST /transether/connect"
	GetSession      = "GET /transether/session"
	SendEther       = "POST /transether/send"
	GetTransactions = "GET /transether/transactions"
	GetOwner        = "GET /transether/owner"
)

type TransferHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	transferer       TransferService
	session          SessionService
}

func NewTransferHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, transferService TransferService, sessionService SessionService) *TransferHandler {
	return &TransferHandler{
		logs:             logger,
		requestValidator: requestValidator,
		transferer:       transferService,
		session:          sessionService,
	}
}

func (h *TransferHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	if err := h.session.RequestConnection(r.Context()); err != nil {
		h.respond(w, Response{
			Message: "Could not connect wallet",
			Error:   fmt.Errorf("request accounts: %w", err).Error(),
		}, sessionStatus(err),
			requestId)
		h.logs.Errorw("failed to request accounts",
			"error", err,
			"handler", Connect,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Wallet connected",
		Data:    h.session.State(),
	}, http.StatusOK, requestId)
}

func (h *TransferHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	// a stale state is still worth returning
	if err := h.session.Refresh(r.Context()); err != nil && !errors.Is(err, wallet.ErrNotConnected) {
		h.logs.Warnw("failed to refresh session accounts",
			"error", err,
			"handler", GetSession,
			"request_id", requestId)
	}

	h.respond(w, Response{
		Data: h.session.State(),
	}, http.StatusOK, requestId)
}

func (h *TransferHandler) HandleSendEther(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var transfer payload.TransferRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &transfer); err != nil {
		h.respond(w, Response{
			Message: core.UserMessage(err),
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SendEther,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transfer request received",
		"to", transfer.To,
		"amount", transfer.Amount,
		"handler", SendEther,
		"request_id", requestId)

	record, err := h.transferer.SendEther(r.Context(), transfer.ToCoreRequest())
	if err != nil {
		resp := Response{
			Message: core.UserMessage(err),
			Error:   err.Error(),
		}
		if errors.Is(err, core.ErrLogNotSaved) || errors.Is(err, ethereum.ErrReceiptPending) {
			resp.Data = record
		}

		h.respond(w, resp, transferStatus(err), requestId)
		h.logs.Errorw("transfer failed",
			"error", err,
			"handler", SendEther,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: core.UserMessage(nil),
		Data:    record,
	}, http.StatusOK, requestId)
}

func (h *TransferHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	resp := map[string][]txlog.Record{
		"transactions": h.transferer.Transactions(),
	}

	h.respond(w, Response{
		Data: resp,
	}, http.StatusOK, requestId)
}

func (h *TransferHandler) HandleGetOwner(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	owner, err := h.session.Owner(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not read contract owner",
			Error:   fmt.Errorf("get owner: %w", err).Error(),
		}, sessionStatus(err),
			requestId)
		h.logs.Errorw("failed to read contract owner",
			"error", err,
			"handler", GetOwner,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"owner": owner.Hex(),
	}
	h.respond(w, Response{
		Data: resp,
	}, http.StatusOK, requestId)
}

func (h *TransferHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func sessionStatus(err error) int {
	switch {
	case errors.Is(err, wallet.ErrNotConnected),
		errors.Is(err, wallet.ErrContractNotDeployed),
		errors.Is(err, wallet.ErrNoAccount):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func transferStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrNonPositiveAmount),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidRecipient):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrTransferInFlight):
		return http.StatusConflict
	case errors.Is(err, core.ErrLogNotSaved):
		return http.StatusInternalServerError
	case errors.Is(err, ethereum.ErrReceiptPending):
		return http.StatusAccepted
	case errors.Is(err, ethereum.ErrTransactionReverted):
		return http.StatusUnprocessableEntity
	default:
		return sessionStatus(err)
	}
}
