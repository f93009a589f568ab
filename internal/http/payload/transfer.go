package payload

import (
	"regexp"

	"transether/internal/core"
	"transether/pkg/units"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// TransferRequest is the body of a send request. Amount is validated by the
// transferer so that a zero or empty amount gets its own message, which is
// why the recipient is only checked once the amount is a positive number.
type TransferRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

func (t TransferRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.To,
			validation.When(isPositiveAmount(t.Amount),
				validation.Required.Error("recipient is required"),
				validation.Match(addressRegex).Error("recipient must be a 0x-prefixed 20 byte hex address"))),
	)
}

func isPositiveAmount(amount string) bool {
	wei, err := units.ParseEther(amount)
	return err == nil && wei.Sign() > 0
}

func (t TransferRequest) ToCoreRequest() core.TransferRequest {
	return core.TransferRequest{
		To:     t.To,
		Amount: t.Amount,
	}
}
