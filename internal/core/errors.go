package core

import (
	"errors"
	"fmt"

	"transether/internal/ethereum"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidRecipient  = errors.New("invalid recipient address")
	ErrTransferInFlight  = errors.New("a transfer is already in progress")
	ErrLogNotSaved       = errors.New("transaction log not saved")
)

const (
	successMessage        = "Transaction successful!"
	nonPositiveMessage    = "Are You Kidding?!, Put some Ethereum to transfer"
	failedMessagePrefix   = "Transaction failed: "
	notSavedMessagePrefix = "Transaction successful, but it could not be logged: "
	pendingMessagePrefix  = "Transaction submitted, but it is not confirmed yet: "
)

// UserMessage renders the outcome of SendEther for display.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return successMessage
	case errors.Is(err, ErrNonPositiveAmount):
		return nonPositiveMessage
	case errors.Is(err, ErrLogNotSaved):
		return fmt.Sprint(notSavedMessagePrefix, err)
	case errors.Is(err, ethereum.ErrReceiptPending):
		return fmt.Sprint(pendingMessagePrefix, err)
	default:
		return fmt.Sprint(failedMessagePrefix, err)
	}
}
