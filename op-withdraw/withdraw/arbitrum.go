package withdraw

import (
	"bytes"
	"fmt"

	"github.com/lmittmann/w3"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
)

var (
	funcWithdrawEth      = w3.MustNewFunc("withdrawEth(address destination)", "uint256")
	funcOutboundTransfer = w3.MustNewFunc("outboundTransfer(address _l1Token, address _to, uint256 _amount, bytes _data)", "bytes")
)

// ArbitrumResolver builds withdrawals for Arbitrum deployments: ether through
// the ArbSys precompile, ERC-20s through the L2 gateway router.
type ArbitrumResolver struct {
	params ArbitrumParams
}

var _ Resolver = (*ArbitrumResolver)(nil)

func NewArbitrumResolver(params ArbitrumParams) *ArbitrumResolver {
	params.OutboundData = bytes.Clone(params.OutboundData)
	if params.OutboundData == nil {
		params.OutboundData = []byte{}
	}
	return &ArbitrumResolver{params: params}
}

func (r *ArbitrumResolver) Family() deployment.Family {
	return deployment.FamilyArbitrum
}

func (r *ArbitrumResolver) Resolve(req *Request) (*TransactionArgs, error) {
	amount, err := req.Validate()
	if err != nil {
		return nil, err
	}
	dep := req.Deployment
	if !dep.IsArbitrum() {
		return nil, declined("%s is not an arbitrum deployment", dep.Name)
	}
	if req.ForceViaL1 {
		return nil, declined("forced withdrawals are not supported on %s", dep.Name)
	}
	l1Token, ok := req.Tokens.Get(dep.L1.ID)
	if !ok || !l1Token.Supports(deployment.FamilyArbitrum) {
		return nil, declined("no arbitrum token on l1 chain %d", dep.L1.ID)
	}
	l2Token, ok := req.Tokens.Get(dep.L2.ID)
	if !ok || !l2Token.Supports(deployment.FamilyArbitrum) {
		return nil, declined("no arbitrum token on l2 chain %d", dep.L2.ID)
	}

	if l2Token.IsNative() {
		data, err := funcWithdrawEth.EncodeArgs(req.Recipient)
		if err != nil {
			return nil, fmt.Errorf("failed to encode withdrawEth: %w", err)
		}
		return &TransactionArgs{Tx: Tx{
			To:      dep.Arbitrum.ArbSysAddress(),
			Data:    data,
			Value:   amount,
			ChainID: dep.L2.ID,
		}}, nil
	}

	router := dep.Arbitrum.L2GatewayRouter
	if router == (common.Address{}) {
		return nil, declined("%s has no l2 gateway router", dep.Name)
	}
	if _, ok := l2Token.ArbitrumGateway(dep.L1.ID); !ok {
		return nil, declined("%s has no gateway towards chain %d", l2Token, dep.L1.ID)
	}
	data, err := funcOutboundTransfer.EncodeArgs(l1Token.Address, req.Recipient, amount.ToBig(), r.params.OutboundData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode outboundTransfer: %w", err)
	}
	return &TransactionArgs{Tx: Tx{
		To:      router,
		Data:    data,
		Value:   eth.ZeroWei,
		ChainID: dep.L2.ID,
	}}, nil
}
