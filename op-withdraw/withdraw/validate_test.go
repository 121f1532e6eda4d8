package withdraw

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/token"
)

func TestValidate(t *testing.T) {
	tooLarge := new(big.Int).Lsh(big.NewInt(1), 256)
	base := func() *Request {
		return &Request{
			Deployment:    opDeployment(false),
			Tokens:        usdcPair(token.KindStandard),
			Recipient:     recipient,
			Amount:        big.NewInt(500),
			L2TokenBridge: token.BridgeABICurrent,
		}
	}
	tests := []struct {
		name   string
		mutate func(req *Request)
		err    error
	}{
		{name: "no deployment", mutate: func(req *Request) { req.Deployment = nil }, err: ErrInvalidRequest},
		{name: "same chains", mutate: func(req *Request) { req.Deployment.L1.ID = 10 }, err: ErrChainMismatch},
		{name: "zero l1", mutate: func(req *Request) { req.Deployment.L1.ID = 0 }, err: ErrChainMismatch},
		{name: "zero recipient", mutate: func(req *Request) { req.Recipient = common.Address{} }, err: ErrInvalidRecipient},
		{name: "nil amount", mutate: func(req *Request) { req.Amount = nil }, err: ErrInvalidAmount},
		{name: "negative amount", mutate: func(req *Request) { req.Amount = big.NewInt(-1) }, err: ErrInvalidAmount},
		{name: "amount overflow", mutate: func(req *Request) { req.Amount = tooLarge }, err: ErrInvalidAmount},
		{name: "token filed under wrong chain", mutate: func(req *Request) { req.Tokens[10].ChainID = 8453 }, err: ErrChainMismatch},
		{name: "l2 token without kind", mutate: func(req *Request) { req.Tokens[10].Kind = token.KindUnknown }, err: ErrInvalidToken},
		{name: "l1 token without kind", mutate: func(req *Request) { req.Tokens[1].Kind = token.KindUnknown }, err: ErrInvalidToken},
		{name: "erc20 without address", mutate: func(req *Request) { req.Tokens[10].Address = common.Address{} }, err: ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			_, err := req.Validate()
			require.ErrorIs(t, err, tt.err)
			require.NotErrorIs(t, err, ErrDeclined)

			for _, r := range []Resolver{NewOptimismResolver(DefaultOptimismParams), NewArbitrumResolver(DefaultArbitrumParams), NewDefaultDispatcher()} {
				_, err := r.Resolve(req)
				require.ErrorIs(t, err, tt.err)
			}
		})
	}

	t.Run("nil request", func(t *testing.T) {
		var req *Request
		_, err := req.Validate()
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("valid", func(t *testing.T) {
		amount, err := base().Validate()
		require.NoError(t, err)
		require.Equal(t, eth.WeiU64(500), amount)
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		req := base()
		req.Amount = new(big.Int)
		amount, err := req.Validate()
		require.NoError(t, err)
		require.True(t, amount.IsZero())
	})
}
