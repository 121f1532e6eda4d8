package bindings

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-service/eth"
)

type ERC20 struct {
	Approve  func(spender common.Address, amount eth.ETH) Call `sol:"approve"`
	Transfer func(to common.Address, amount eth.ETH) Call      `sol:"transfer"`
}
