package core

// TransferRequest is a user's request to send Amount ether to To.
type TransferRequest struct {
	To     string
	Amount string
}
