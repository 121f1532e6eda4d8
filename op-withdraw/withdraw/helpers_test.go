package withdraw

import (
	"math/big"
	"testing"

	"github.com/lmittmann/w3"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
	"github.com/rollbridge/rollbridge/op-withdraw/token"
)

var (
	l2StandardBridge = common.HexToAddress("0x4200000000000000000000000000000000000010")
	optimismPortal   = common.HexToAddress("0xbEb5Fc579115071764c7423A4f12eDde41f106Ed")
	proxyBridge      = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	tokenBridge      = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	recipient        = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	l1USDC           = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	l2USDC           = common.HexToAddress("0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85")
	gatewayRouter    = common.HexToAddress("0x5288c571Fd7aD117beA99bF60FE0846C4E84F933")
)

func opDeployment(withProxy bool) *deployment.Deployment {
	d := &deployment.Deployment{
		Name:   "op-mainnet",
		Family: deployment.FamilyOptimism,
		L1:     deployment.Chain{ID: 1, Name: "Ethereum"},
		L2:     deployment.Chain{ID: 10, Name: "OP Mainnet"},
		Optimism: &deployment.OptimismContracts{
			L2StandardBridge: l2StandardBridge,
			OptimismPortal:   optimismPortal,
		},
	}
	if withProxy {
		proxy := proxyBridge
		d.Optimism.ProxyBridge = &proxy
	}
	return d
}

func arbDeployment() *deployment.Deployment {
	return &deployment.Deployment{
		Name:   "arbitrum-one",
		Family: deployment.FamilyArbitrum,
		L1:     deployment.Chain{ID: 1, Name: "Ethereum"},
		L2:     deployment.Chain{ID: 42161, Name: "Arbitrum One"},
		Arbitrum: &deployment.ArbitrumContracts{
			L2GatewayRouter: gatewayRouter,
		},
	}
}

func ethPair(l2 uint64) token.Pair {
	return token.Pair{
		1:  {ChainID: 1, Symbol: "ETH", Decimals: 18, Kind: token.KindNative, Optimism: &token.OptimismBridge{}, Arbitrum: &token.ArbitrumBridge{}},
		l2: {ChainID: l2, Symbol: "ETH", Decimals: 18, Kind: token.KindNative, Optimism: &token.OptimismBridge{}, Arbitrum: &token.ArbitrumBridge{}},
	}
}

func usdcPair(kind token.Kind) token.Pair {
	return token.Pair{
		1: {ChainID: 1, Address: l1USDC, Symbol: "USDC", Decimals: 6, Kind: token.KindStandard, Optimism: &token.OptimismBridge{}},
		10: {
			ChainID:  10,
			Address:  l2USDC,
			Symbol:   "USDC",
			Decimals: 6,
			Kind:     kind,
			Optimism: &token.OptimismBridge{StandardBridgeAddresses: map[uint64]common.Address{1: tokenBridge}},
		},
	}
}

func arbUSDCPair() token.Pair {
	gw := map[uint64]token.ArbitrumGateway{1: {
		L1Gateway: common.HexToAddress("0xa3A7B6F88361F48403514059F1F16C8E78d60EeC"),
		L2Gateway: common.HexToAddress("0x09e9222E96E7B4AE2a407B98d48e330053351EEe"),
	}}
	return token.Pair{
		1:     {ChainID: 1, Address: l1USDC, Symbol: "USDC", Decimals: 6, Kind: token.KindStandard, Arbitrum: &token.ArbitrumBridge{Gateways: gw}},
		42161: {ChainID: 42161, Address: l2USDC, Symbol: "USDC", Decimals: 6, Kind: token.KindStandard, Arbitrum: &token.ArbitrumBridge{Gateways: gw}},
	}
}

func calldata(t *testing.T, sig string, args ...any) []byte {
	t.Helper()
	data, err := w3.MustNewFunc(sig, "").EncodeArgs(args...)
	require.NoError(t, err)
	return data
}

func oneEther() *big.Int {
	return w3.I("1 ether")
}
