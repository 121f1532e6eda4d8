package bindings

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-service/eth"
)

type OptimismPortal struct {
	DepositTransaction func(to common.Address, value eth.ETH, gasLimit uint64, isCreation bool, data []byte) Call `sol:"depositTransaction"`
}
