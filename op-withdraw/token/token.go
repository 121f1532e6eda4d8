package token

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
)

// Kind classifies how a token moves across the bridge.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindNative is the chain's gas currency. It has no contract address.
	KindNative
	// KindStandard is an ERC-20 on the current bridge ABI.
	KindStandard
	// KindLegacy is an ERC-20 minted by a pre-Bedrock token bridge.
	KindLegacy
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindNative:   "native",
	KindStandard: "standard",
	KindLegacy:   "legacy",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for v, name := range kindNames {
		if v != KindUnknown && name == string(text) {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("unknown token kind %q", text)
}

// OptimismBridge marks a token as bridgeable on OP Stack deployments.
type OptimismBridge struct {
	// StandardBridgeAddresses holds the bridge that burns this token, keyed by
	// the chain id of the other side. For L2 tokens that is the L1 chain id.
	StandardBridgeAddresses map[uint64]common.Address `json:"standardBridgeAddresses,omitempty"`
}

type ArbitrumGateway struct {
	L1Gateway common.Address `json:"l1Gateway"`
	L2Gateway common.Address `json:"l2Gateway"`
}

// ArbitrumBridge marks a token as bridgeable on Arbitrum deployments.
type ArbitrumBridge struct {
	// Gateways is keyed by the L1 chain id.
	Gateways map[uint64]ArbitrumGateway `json:"gateways,omitempty"`
}

// Token is one chain's representation of an asset. A token shared by
// several rollup stacks, like ether on L1, carries one block per family.
type Token struct {
	ChainID  uint64         `json:"chainId"`
	Address  common.Address `json:"address"`
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
	Decimals uint8          `json:"decimals"`
	Kind     Kind           `json:"kind"`

	Optimism *OptimismBridge `json:"optimism,omitempty"`
	Arbitrum *ArbitrumBridge `json:"arbitrum,omitempty"`
}

func (t *Token) IsNative() bool {
	return t.Kind == KindNative
}

// Supports reports whether the token carries the bridge block of the family.
func (t *Token) Supports(f deployment.Family) bool {
	if t == nil {
		return false
	}
	switch f {
	case deployment.FamilyOptimism:
		return t.Optimism != nil
	case deployment.FamilyArbitrum:
		return t.Arbitrum != nil
	default:
		return false
	}
}

// StandardBridge returns the OP Stack bridge for this token towards the given chain.
func (t *Token) StandardBridge(remoteChainID uint64) (common.Address, bool) {
	if t.Optimism == nil {
		return common.Address{}, false
	}
	addr, ok := t.Optimism.StandardBridgeAddresses[remoteChainID]
	if !ok || addr == (common.Address{}) {
		return common.Address{}, false
	}
	return addr, true
}

func (t *Token) ArbitrumGateway(l1ChainID uint64) (ArbitrumGateway, bool) {
	if t.Arbitrum == nil {
		return ArbitrumGateway{}, false
	}
	gw, ok := t.Arbitrum.Gateways[l1ChainID]
	return gw, ok
}

// DefaultBridgeABI derives the ABI generation from the token classification.
func (t *Token) DefaultBridgeABI() BridgeABI {
	switch t.Kind {
	case KindLegacy:
		return BridgeABILegacy
	case KindStandard, KindNative:
		return BridgeABICurrent
	default:
		return BridgeABIUnknown
	}
}

func (t *Token) String() string {
	if t.IsNative() {
		return fmt.Sprintf("%s@%d", t.Symbol, t.ChainID)
	}
	return fmt.Sprintf("%s@%d(%s)", t.Symbol, t.ChainID, t.Address)
}
