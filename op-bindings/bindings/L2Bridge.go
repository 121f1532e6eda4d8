package bindings

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-service/eth"
)

// L2Bridge is the proxy bridge that forwards withdrawals into an underlying
// standard bridge. It pulls ERC-20s from the caller, so approvals target it.
type L2Bridge struct {
	InitiateEtherWithdrawal       func(l2StandardBridge common.Address, to common.Address, amount eth.ETH) Call                                              `sol:"initiateEtherWithdrawal"`
	LegacyInitiateERC20Withdrawal func(bridge common.Address, localToken common.Address, remoteToken common.Address, to common.Address, amount eth.ETH) Call `sol:"legacy_initiateERC20Withdrawal"`
	InitiateERC20Withdrawal       func(bridge common.Address, localToken common.Address, remoteToken common.Address, to common.Address, amount eth.ETH) Call `sol:"initiateERC20Withdrawal"`
}
