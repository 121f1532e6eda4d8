package withdraw

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
	"github.com/rollbridge/rollbridge/op-withdraw/token"
)

type Options struct {
	// EasyMode routes through the deployment's proxy bridge when one is configured.
	EasyMode bool `json:"easyMode"`
	// ForceViaL1 wraps the withdrawal in an L1 deposit transaction.
	ForceViaL1 bool `json:"forceViaL1"`
}

// Request is everything needed to build a withdrawal from Deployment.L2 to Deployment.L1.
type Request struct {
	Deployment *deployment.Deployment `json:"deployment"`
	// Tokens must hold entries for both chains of the deployment.
	Tokens    token.Pair     `json:"tokens"`
	Recipient common.Address `json:"recipient"`
	// Amount is in base units of the L2 token.
	Amount        *big.Int        `json:"amount"`
	L2TokenBridge token.BridgeABI `json:"l2TokenBridge"`
	Options
}

type Tx struct {
	To      common.Address `json:"to"`
	Data    hexutil.Bytes  `json:"data"`
	Value   eth.ETH        `json:"value"`
	ChainID uint64         `json:"chainId"`
	// Gas is only set when the call needs a fixed limit instead of an estimate.
	Gas *uint64 `json:"gas,omitempty"`
}

// CallMsg converts the tx for estimation or simulation by the caller.
func (tx Tx) CallMsg(from common.Address) ethereum.CallMsg {
	to := tx.To
	msg := ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: tx.Value.ToBig(),
		Data:  bytes.Clone(tx.Data),
	}
	if tx.Gas != nil {
		msg.Gas = *tx.Gas
	}
	return msg
}

// TransactionArgs is a ready-to-sign withdrawal call.
type TransactionArgs struct {
	// ApprovalAddress is the spender that needs an ERC-20 allowance first, nil if none.
	ApprovalAddress *common.Address `json:"approvalAddress,omitempty"`
	Tx              Tx              `json:"tx"`
}

// Clone returns a deep copy.
func (a *TransactionArgs) Clone() *TransactionArgs {
	if a == nil {
		return nil
	}
	out := &TransactionArgs{Tx: a.Tx}
	out.Tx.Data = bytes.Clone(a.Tx.Data)
	if a.ApprovalAddress != nil {
		out.ApprovalAddress = addrPtr(*a.ApprovalAddress)
	}
	if a.Tx.Gas != nil {
		gas := *a.Tx.Gas
		out.Tx.Gas = &gas
	}
	return out
}

func addrPtr(a common.Address) *common.Address {
	return &a
}
