package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// TransferCall describes one sendEther invocation. Gas is zero while
// estimating.
type TransferCall struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Gas   uint64
}

type Transfer struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	Event       *EtherSent
}

// EtherSent mirrors the contract event of the same name.
type EtherSent struct {
	From  common.Address
	To    common.Address
	Value *big.Int
}

type Deployment struct {
	Address         common.Address `json:"address"`
	TransactionHash common.Hash    `json:"transactionHash"`
}

// sendTxArgs is the eth_sendTransaction parameter object. The provider fills
// in nonce and fee fields and signs.
type sendTxArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to"`
	Gas   hexutil.Uint64  `json:"gas"`
	Value *hexutil.Big    `json:"value"`
	Data  hexutil.Bytes   `json:"data"`
}
