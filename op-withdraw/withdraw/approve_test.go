package withdraw

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/token"
)

func TestApprovalTx(t *testing.T) {
	r := NewOptimismResolver(DefaultOptimismParams)
	pair := usdcPair(token.KindStandard)
	req := &Request{
		Deployment:    opDeployment(true),
		Tokens:        pair,
		Recipient:     recipient,
		Amount:        big.NewInt(500),
		L2TokenBridge: token.BridgeABICurrent,
		Options:       Options{EasyMode: true, ForceViaL1: true},
	}
	args, err := r.Resolve(req)
	require.NoError(t, err)

	tx, err := ApprovalTx(args, pair[10], eth.WeiU64(500))
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.Equal(t, l2USDC, tx.To)
	require.Equal(t, uint64(10), tx.ChainID, "approvals land on the token's chain even when forced through l1")
	require.True(t, tx.Value.IsZero())
	require.Nil(t, tx.Gas)
	require.Equal(t, calldata(t, "approve(address,uint256)", proxyBridge, big.NewInt(500)), []byte(tx.Data))
}

func TestApprovalTxNotNeeded(t *testing.T) {
	r := NewOptimismResolver(DefaultOptimismParams)
	eth10 := ethPair(10)
	args, err := r.Resolve(&Request{
		Deployment:    opDeployment(false),
		Tokens:        eth10,
		Recipient:     recipient,
		Amount:        oneEther(),
		L2TokenBridge: token.BridgeABICurrent,
	})
	require.NoError(t, err)

	tx, err := ApprovalTx(args, eth10[10], eth.OneEther)
	require.NoError(t, err)
	require.Nil(t, tx)

	tx, err = ApprovalTx(nil, nil, eth.OneEther)
	require.NoError(t, err)
	require.Nil(t, tx)
}

func TestApprovalTxNativeToken(t *testing.T) {
	args := &TransactionArgs{ApprovalAddress: addrPtr(proxyBridge)}
	_, err := ApprovalTx(args, ethPair(10)[10], eth.OneEther)
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = ApprovalTx(args, nil, eth.OneEther)
	require.ErrorIs(t, err, ErrInvalidToken)
}
