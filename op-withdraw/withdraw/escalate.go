package withdraw

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-bindings/bindings"
	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
)

// EscalateViaL1 wraps an L2 withdrawal call in a deposit transaction on the
// deployment's OptimismPortal. The L2 call then executes from the same sender
// without the L2 sequencer. The approval target of the inner call is kept:
// allowances are spent by the L2 contract, not by the portal.
func EscalateViaL1(dep *deployment.Deployment, inner *TransactionArgs, params OptimismParams) (*TransactionArgs, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: nothing to escalate", ErrInvalidRequest)
	}
	if !dep.IsOptimism() {
		return nil, declined("%s has no optimism portal", dep.Name)
	}
	if inner.Tx.ChainID != dep.L2.ID {
		return nil, fmt.Errorf("%w: escalating a chain %d call through %s", ErrChainMismatch, inner.Tx.ChainID, dep)
	}
	portal := dep.Optimism.OptimismPortal
	if portal == (common.Address{}) {
		return nil, declined("%s has no optimism portal", dep.Name)
	}
	b := bindings.NewBindings[bindings.OptimismPortal](portal)
	call := b.DepositTransaction(inner.Tx.To, inner.Tx.Value, params.DepositGasLimit, false, inner.Tx.Data)
	args, err := newArgs(inner.ApprovalAddress, call, eth.ZeroWei, dep.L1.ID)
	if err != nil {
		return nil, err
	}
	gas := params.ForcedTxGas
	args.Tx.Gas = &gas
	return args, nil
}
