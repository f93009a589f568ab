package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // transfer outcome or connection status shown to the user
	Data    interface{} `json:"data,omitempty"`    // transaction record, session state, owner or transaction list
	Error   string      `json:"error,omitempty"`   // wrapped cause when the request failed or is still pending
}
