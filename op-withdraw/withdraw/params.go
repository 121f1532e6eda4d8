package withdraw

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Graffiti is the extra-data tag attached to standard bridge withdrawals.
var Graffiti = hexutil.MustDecode("0x7375706572627269646765")

type OptimismParams struct {
	// MinGasLimit is the gas the L1 side of the bridge relays the message with.
	MinGasLimit uint32
	// ExtraData is passed through the bridge untouched.
	ExtraData []byte
	// DepositGasLimit is the L2 gas limit of a forced withdrawal's deposit.
	DepositGasLimit uint64
	// ForcedTxGas is the gas limit of the L1 transaction for forced withdrawals.
	ForcedTxGas uint64
}

var DefaultOptimismParams = OptimismParams{
	MinGasLimit:     200_000,
	ExtraData:       Graffiti,
	DepositGasLimit: 200_000,
	ForcedTxGas:     300_000,
}

func (p OptimismParams) clone() OptimismParams {
	p.ExtraData = bytes.Clone(p.ExtraData)
	return p
}

type ArbitrumParams struct {
	// OutboundData is the gateway payload of ERC-20 withdrawals.
	OutboundData []byte
}

var DefaultArbitrumParams = ArbitrumParams{
	OutboundData: []byte{},
}
