package bindings

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-service/eth"
)

// L2StandardBridge covers the withdrawal entry points of the canonical L2 bridge
// and of the per-token legacy bridges, which share the same ABI.
type L2StandardBridge struct {
	BridgeETHTo   func(to common.Address, minGasLimit uint32, extraData []byte) Call                                                                        `sol:"bridgeETHTo"`
	WithdrawTo    func(l2Token common.Address, to common.Address, amount eth.ETH, minGasLimit uint32, extraData []byte) Call                                `sol:"withdrawTo"`
	BridgeERC20To func(localToken common.Address, remoteToken common.Address, to common.Address, amount eth.ETH, minGasLimit uint32, extraData []byte) Call `sol:"bridgeERC20To"`
}
