package withdraw

import (
	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/token"
)

// WithdrawValue is the call value of a withdrawal of amount of l2Token.
// Native withdrawals attach the amount, on proxy and standard routes alike.
// ERC-20 withdrawals pass the amount as an argument and attach nothing.
func WithdrawValue(amount eth.ETH, l2Token *token.Token) eth.ETH {
	if l2Token.IsNative() {
		return amount
	}
	return eth.ZeroWei
}
