package wallet

import "github.com/ethereum/go-ethereum/common"

// State is a point-in-time view of the session.
type State struct {
	Connected bool             `json:"connected"`
	NetworkID string           `json:"networkId,omitempty"`
	Accounts  []common.Address `json:"accounts"`
	Active    *common.Address  `json:"activeAccount,omitempty"`
	Contract  *common.Address  `json:"contract,omitempty"`
}
