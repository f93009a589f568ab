package txlog

// StorageKey is the single key the whole log is persisted under.
const StorageKey = "transactions"

// Record is one completed transfer. Amount is the human ether amount as the
// user entered it.
type Record struct {
	ID        string `json:"id,omitempty"`
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    string `json:"amount"`
	Timestamp string `json:"timestamp"`
	TxHash    string `json:"txHash,omitempty"`
}
