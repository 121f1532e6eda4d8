package submit

import (
	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
)

const (
	DepositGasEstimate  = 150_000
	WithdrawGasEstimate = 200_000
)

// RequiredChain is the chain the bridge transaction is sent on. Forced
// withdrawals are deposits into the L1 portal.
func RequiredChain(dep *deployment.Deployment, withdrawing, forceViaL1 bool) deployment.Chain {
	if withdrawing && !forceViaL1 {
		return dep.L2
	}
	return dep.L1
}

// TrackingAction tags a submitted transfer for analytics.
func TrackingAction(withdrawing, forceViaL1 bool) string {
	switch {
	case !withdrawing:
		return "deposit"
	case forceViaL1:
		return "force-withdraw"
	default:
		return "withdraw"
	}
}

// NetworkFee estimates the fee of the bridge transaction at gasPrice.
func NetworkFee(gasPrice eth.ETH, withdrawing bool) eth.ETH {
	if withdrawing {
		return gasPrice.Mul(WithdrawGasEstimate)
	}
	return gasPrice.Mul(DepositGasEstimate)
}
