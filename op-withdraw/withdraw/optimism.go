package withdraw

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-bindings/bindings"
	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
	"github.com/rollbridge/rollbridge/op-withdraw/token"
)

// OptimismResolver builds withdrawals for OP Stack deployments.
type OptimismResolver struct {
	params OptimismParams
}

var _ Resolver = (*OptimismResolver)(nil)

func NewOptimismResolver(params OptimismParams) *OptimismResolver {
	return &OptimismResolver{params: params.clone()}
}

func (r *OptimismResolver) Family() deployment.Family {
	return deployment.FamilyOptimism
}

func (r *OptimismResolver) Resolve(req *Request) (*TransactionArgs, error) {
	amount, err := req.Validate()
	if err != nil {
		return nil, err
	}
	dep := req.Deployment
	if !dep.IsOptimism() {
		return nil, declined("%s is not an optimism deployment", dep.Name)
	}
	l1Token, ok := req.Tokens.Get(dep.L1.ID)
	if !ok || !l1Token.Supports(deployment.FamilyOptimism) {
		return nil, declined("no optimism token on l1 chain %d", dep.L1.ID)
	}
	l2Token, ok := req.Tokens.Get(dep.L2.ID)
	if !ok || !l2Token.Supports(deployment.FamilyOptimism) {
		return nil, declined("no optimism token on l2 chain %d", dep.L2.ID)
	}
	if !req.L2TokenBridge.Known() {
		return nil, declined("bridge ABI of %s is unknown", l2Token)
	}

	var args *TransactionArgs
	if proxy, ok := dep.Optimism.Proxy(); req.EasyMode && ok {
		args, err = r.viaProxy(req, proxy, amount, l1Token, l2Token)
	} else {
		args, err = r.viaStandardBridge(req, amount, l1Token, l2Token)
	}
	if err != nil || !req.ForceViaL1 {
		return args, err
	}
	return EscalateViaL1(dep, args, r.params)
}

func (r *OptimismResolver) viaProxy(req *Request, proxy common.Address, amount eth.ETH, l1Token, l2Token *token.Token) (*TransactionArgs, error) {
	dep := req.Deployment
	b := bindings.NewBindings[bindings.L2Bridge](proxy)
	value := WithdrawValue(amount, l2Token)
	if l2Token.IsNative() {
		standard := dep.Optimism.L2StandardBridge
		if standard == (common.Address{}) {
			return nil, declined("%s has no l2 standard bridge", dep.Name)
		}
		return newArgs(nil, b.InitiateEtherWithdrawal(standard, req.Recipient, amount), value, dep.L2.ID)
	}
	tokenBridge, ok := l2Token.StandardBridge(dep.L1.ID)
	if !ok {
		return nil, declined("%s has no bridge towards chain %d", l2Token, dep.L1.ID)
	}
	call := b.InitiateERC20Withdrawal
	if req.L2TokenBridge == token.BridgeABILegacy {
		call = b.LegacyInitiateERC20Withdrawal
	}
	return newArgs(&proxy, call(tokenBridge, l2Token.Address, l1Token.Address, req.Recipient, amount), value, dep.L2.ID)
}

func (r *OptimismResolver) viaStandardBridge(req *Request, amount eth.ETH, l1Token, l2Token *token.Token) (*TransactionArgs, error) {
	dep := req.Deployment
	p := r.params
	if l2Token.IsNative() {
		standard := dep.Optimism.L2StandardBridge
		if standard == (common.Address{}) {
			return nil, declined("%s has no l2 standard bridge", dep.Name)
		}
		b := bindings.NewBindings[bindings.L2StandardBridge](standard)
		return newArgs(nil, b.BridgeETHTo(req.Recipient, p.MinGasLimit, p.ExtraData), amount, dep.L2.ID)
	}
	tokenBridge, ok := l2Token.StandardBridge(dep.L1.ID)
	if !ok {
		return nil, declined("%s has no bridge towards chain %d", l2Token, dep.L1.ID)
	}
	b := bindings.NewBindings[bindings.L2StandardBridge](tokenBridge)
	var call bindings.Call
	if req.L2TokenBridge == token.BridgeABILegacy {
		call = b.WithdrawTo(l2Token.Address, req.Recipient, amount, p.MinGasLimit, p.ExtraData)
	} else {
		call = b.BridgeERC20To(l2Token.Address, l1Token.Address, req.Recipient, amount, p.MinGasLimit, p.ExtraData)
	}
	return newArgs(&tokenBridge, call, WithdrawValue(amount, l2Token), dep.L2.ID)
}

func newArgs(approval *common.Address, call bindings.Call, value eth.ETH, chainID uint64) (*TransactionArgs, error) {
	data, err := call.EncodeInput()
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", call.MethodName, err)
	}
	args := &TransactionArgs{
		Tx: Tx{
			To:      call.To(),
			Data:    data,
			Value:   value,
			ChainID: chainID,
		},
	}
	if approval != nil {
		args.ApprovalAddress = addrPtr(*approval)
	}
	return args, nil
}
