package withdraw

import (
	"fmt"

	"github.com/rollbridge/rollbridge/op-bindings/bindings"
	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/token"
)

// ApprovalTx builds the ERC-20 approve call that must land before args.
// It returns nil when args needs no allowance. The approval always executes
// on the token's chain, also for withdrawals forced through L1.
func ApprovalTx(args *TransactionArgs, l2Token *token.Token, amount eth.ETH) (*Tx, error) {
	if args == nil || args.ApprovalAddress == nil {
		return nil, nil
	}
	if l2Token == nil || l2Token.IsNative() {
		return nil, fmt.Errorf("%w: approval requested for a native token", ErrInvalidToken)
	}
	call := bindings.NewBindings[bindings.ERC20](l2Token.Address).Approve(*args.ApprovalAddress, amount)
	data, err := call.EncodeInput()
	if err != nil {
		return nil, fmt.Errorf("failed to encode approve: %w", err)
	}
	return &Tx{
		To:      l2Token.Address,
		Data:    data,
		Value:   eth.ZeroWei,
		ChainID: l2Token.ChainID,
	}, nil
}
