package withdraw

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/token"
)

// Validate checks the parts of the request that no resolver may decline on:
// they mean the caller is broken, not that the route is unsupported.
// It returns the amount as a checked uint256.
func (r *Request) Validate() (eth.ETH, error) {
	if r == nil || r.Deployment == nil {
		return eth.ZeroWei, fmt.Errorf("%w: missing deployment", ErrInvalidRequest)
	}
	d := r.Deployment
	if d.L1.ID == 0 || d.L2.ID == 0 || d.L1.ID == d.L2.ID {
		return eth.ZeroWei, fmt.Errorf("%w: deployment %q has l1 %d and l2 %d", ErrChainMismatch, d.Name, d.L1.ID, d.L2.ID)
	}
	if r.Recipient == (common.Address{}) {
		return eth.ZeroWei, fmt.Errorf("%w: zero address", ErrInvalidRecipient)
	}
	amount, err := eth.ParseWeiBig(r.Amount)
	if err != nil {
		return eth.ZeroWei, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if err := r.Tokens.Check(); err != nil {
		return eth.ZeroWei, err
	}
	for _, id := range []uint64{d.L1.ID, d.L2.ID} {
		t, ok := r.Tokens.Get(id)
		if ok && t.Kind == token.KindUnknown {
			return eth.ZeroWei, fmt.Errorf("%w: %s on chain %d has no kind", ErrInvalidToken, t.Symbol, id)
		}
		if ok && !t.IsNative() && t.Address == (common.Address{}) {
			return eth.ZeroWei, fmt.Errorf("%w: %s on chain %d has no address", ErrInvalidToken, t.Symbol, id)
		}
	}
	return amount, nil
}
