package deployment

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Family identifies the rollup stack a deployment or token belongs to.
// It is set once when the registry is loaded.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyOptimism
	FamilyArbitrum
)

func (f Family) String() string {
	switch f {
	case FamilyOptimism:
		return "optimism"
	case FamilyArbitrum:
		return "arbitrum"
	default:
		return "unknown"
	}
}

func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Family) UnmarshalText(text []byte) error {
	switch string(text) {
	case "optimism":
		*f = FamilyOptimism
	case "arbitrum":
		*f = FamilyArbitrum
	default:
		return fmt.Errorf("unknown family %q", text)
	}
	return nil
}

type Chain struct {
	ID   uint64 `yaml:"id" toml:"id" json:"id"`
	Name string `yaml:"name" toml:"name" json:"name"`
}

func (c Chain) String() string {
	if c.Name == "" {
		return fmt.Sprintf("chain %d", c.ID)
	}
	return fmt.Sprintf("%s (%d)", c.Name, c.ID)
}

// OptimismContracts holds the bridge addresses of an OP Stack deployment.
// A zero address means the contract is not deployed.
type OptimismContracts struct {
	// L2StandardBridge is the canonical bridge predeploy on L2.
	L2StandardBridge common.Address `yaml:"l2_standard_bridge" toml:"l2_standard_bridge" json:"l2StandardBridge"`
	// OptimismPortal is the L1 deposit entry point used for forced withdrawals.
	OptimismPortal   common.Address `yaml:"optimism_portal" toml:"optimism_portal" json:"optimismPortal"`
	L1StandardBridge common.Address `yaml:"l1_standard_bridge,omitempty" toml:"l1_standard_bridge,omitempty" json:"l1StandardBridge"`
	// ProxyBridge is the optional easy-mode bridge on L2.
	ProxyBridge *common.Address `yaml:"proxy_bridge,omitempty" toml:"proxy_bridge,omitempty" json:"proxyBridge,omitempty"`
}

// Proxy returns the easy-mode bridge, if one is deployed.
func (c *OptimismContracts) Proxy() (common.Address, bool) {
	if c == nil || c.ProxyBridge == nil || *c.ProxyBridge == (common.Address{}) {
		return common.Address{}, false
	}
	return *c.ProxyBridge, true
}

// ArbSysAddress is the L2 precompile handling native withdrawals on Arbitrum chains.
var ArbSysAddress = common.HexToAddress("0x0000000000000000000000000000000000000064")

type ArbitrumContracts struct {
	// ArbSys overrides the precompile address. Nil uses ArbSysAddress.
	ArbSys          *common.Address `yaml:"arb_sys,omitempty" toml:"arb_sys,omitempty" json:"arbSys,omitempty"`
	L2GatewayRouter common.Address  `yaml:"l2_gateway_router" toml:"l2_gateway_router" json:"l2GatewayRouter"`
	L1GatewayRouter common.Address  `yaml:"l1_gateway_router,omitempty" toml:"l1_gateway_router,omitempty" json:"l1GatewayRouter"`
	Inbox           common.Address  `yaml:"inbox,omitempty" toml:"inbox,omitempty" json:"inbox"`
}

func (c *ArbitrumContracts) ArbSysAddress() common.Address {
	if c.ArbSys != nil && *c.ArbSys != (common.Address{}) {
		return *c.ArbSys
	}
	return ArbSysAddress
}

// Deployment describes an L1/L2 pair and its bridge contracts. Exactly one of
// the family blocks is set, matching Family.
type Deployment struct {
	Name   string `yaml:"-" toml:"-" json:"name"`
	Family Family `yaml:"family" toml:"family" json:"family"`
	L1     Chain  `yaml:"l1" toml:"l1" json:"l1"`
	L2     Chain  `yaml:"l2" toml:"l2" json:"l2"`

	// Disabled deployments still allow withdrawals, but no new deposits.
	Disabled bool `yaml:"disabled,omitempty" toml:"disabled,omitempty" json:"disabled,omitempty"`

	Optimism *OptimismContracts `yaml:"optimism,omitempty" toml:"optimism,omitempty" json:"optimism,omitempty"`
	Arbitrum *ArbitrumContracts `yaml:"arbitrum,omitempty" toml:"arbitrum,omitempty" json:"arbitrum,omitempty"`
}

func (d *Deployment) IsOptimism() bool {
	return d != nil && d.Family == FamilyOptimism && d.Optimism != nil
}

func (d *Deployment) IsArbitrum() bool {
	return d != nil && d.Family == FamilyArbitrum && d.Arbitrum != nil
}

func (d *Deployment) String() string {
	return fmt.Sprintf("%s [%s: %s -> %s]", d.Name, d.Family, d.L2, d.L1)
}
