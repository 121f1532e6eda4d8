package deployment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"
)

func TestYamlLoader_Load(t *testing.T) {
	x := &YamlLoader{Path: filepath.Join(".", "testdata", "deployments.yaml")}
	reg, err := x.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"arbitrum-one", "base-mainnet", "op-mainnet", "orb3-mainnet"}, reg.Names())

	op, err := reg.Get("op-mainnet")
	require.NoError(t, err)
	require.Equal(t, "op-mainnet", op.Name)
	require.Equal(t, FamilyOptimism, op.Family)
	require.True(t, op.IsOptimism())
	require.False(t, op.IsArbitrum())
	require.Equal(t, uint64(1), op.L1.ID)
	require.Equal(t, uint64(10), op.L2.ID)
	require.Equal(t, common.HexToAddress("0x4200000000000000000000000000000000000010"), op.Optimism.L2StandardBridge)
	require.NotNil(t, op.Optimism.ProxyBridge)
	require.Equal(t, common.HexToAddress("0xbb"), *op.Optimism.ProxyBridge)

	base, err := reg.Get("base-mainnet")
	require.NoError(t, err)
	require.Nil(t, base.Optimism.ProxyBridge)

	orb, err := reg.Get("orb3-mainnet")
	require.NoError(t, err)
	require.True(t, orb.Disabled)

	arb, err := reg.Get("arbitrum-one")
	require.NoError(t, err)
	require.True(t, arb.IsArbitrum())
	require.Equal(t, ArbSysAddress, arb.Arbitrum.ArbSysAddress())
}

func TestYamlLoader_NotFound(t *testing.T) {
	x := &YamlLoader{Path: filepath.Join(t.TempDir(), "missing.yaml")}
	_, err := x.Load(context.Background())
	require.ErrorContains(t, err, "failed to read config")
}

func TestYamlLoader_Invalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(p, []byte("foobar: invalid"), 0o644))

	x := &YamlLoader{Path: p}
	_, err := x.Load(context.Background())
	require.ErrorContains(t, err, "field foobar not found")
}

func TestYamlLoader_MalformedAddress(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-address.yaml")
	data := `deployments:
  broken:
    family: optimism
    l1: { id: 1 }
    l2: { id: 10 }
    optimism:
      l2_standard_bridge: "0x4200"
`
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	_, err := (&YamlLoader{Path: p}).Load(context.Background())
	require.ErrorContains(t, err, "failed to parse config YAML")
}

func TestYamlLoader_ZeroAddresses(t *testing.T) {
	p := filepath.Join(t.TempDir(), "zero-proxy.yaml")
	data := `deployments:
  zero-proxy:
    family: optimism
    l1: { id: 1 }
    l2: { id: 10 }
    optimism:
      l2_standard_bridge: "0x4200000000000000000000000000000000000010"
      proxy_bridge: "0x0000000000000000000000000000000000000000"
  zero-arbsys:
    family: arbitrum
    l1: { id: 1 }
    l2: { id: 42161 }
    arbitrum:
      arb_sys: "0x0000000000000000000000000000000000000000"
      l2_gateway_router: "0x5288c571Fd7aD117beA99bF60FE0846C4E84F933"
`
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	_, err := (&YamlLoader{Path: p}).Load(context.Background())
	require.ErrorContains(t, err, "zero proxy_bridge address")
	require.ErrorContains(t, err, "zero arb_sys address")
}

func TestContractAccessors(t *testing.T) {
	var oc *OptimismContracts
	_, ok := oc.Proxy()
	require.False(t, ok)

	oc = &OptimismContracts{ProxyBridge: &common.Address{}}
	_, ok = oc.Proxy()
	require.False(t, ok, "zero proxy is not deployed")

	proxy := common.HexToAddress("0xbb")
	oc.ProxyBridge = &proxy
	got, ok := oc.Proxy()
	require.True(t, ok)
	require.Equal(t, proxy, got)

	ac := &ArbitrumContracts{ArbSys: &common.Address{}}
	require.Equal(t, ArbSysAddress, ac.ArbSysAddress())
}

func TestTomlLoader_Load(t *testing.T) {
	reg, err := (&TomlLoader{Path: filepath.Join("testdata", "deployments.toml")}).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"arbitrum-sepolia", "op-sepolia"}, reg.Names())

	d, err := reg.ByChains(11155111, 11155420)
	require.NoError(t, err)
	require.Equal(t, "op-sepolia", d.Name)
	require.Equal(t, common.HexToAddress("0x16Fc5058F25648194471939df75CF27A2fdC48BC"), d.Optimism.OptimismPortal)

	_, err = reg.ByChains(1, 10)
	require.ErrorIs(t, err, ErrUnknownDeployment)
}

func TestTomlLoader_UnknownField(t *testing.T) {
	p := filepath.Join(t.TempDir(), "extra.toml")
	data := `[deployments.x]
family = "optimism"
colour = "red"
l1 = { id = 1 }
l2 = { id = 10 }
[deployments.x.optimism]
`
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	_, err := (&TomlLoader{Path: p}).Load(context.Background())
	require.ErrorContains(t, err, "unknown fields")
}

func TestNewFileLoader(t *testing.T) {
	l, err := NewFileLoader("a/b.yml")
	require.NoError(t, err)
	require.IsType(t, &YamlLoader{}, l)

	l, err = NewFileLoader("a/b.TOML")
	require.NoError(t, err)
	require.IsType(t, &TomlLoader{}, l)

	_, err = NewFileLoader("a/b.json")
	require.ErrorContains(t, err, "unsupported registry file")
}

func TestRegistryCheck(t *testing.T) {
	reg := &Registry{Deployments: map[string]*Deployment{
		"same-chain": {
			Family:   FamilyOptimism,
			L1:       Chain{ID: 5},
			L2:       Chain{ID: 5},
			Optimism: &OptimismContracts{},
		},
		"no-family": {
			L1: Chain{ID: 1},
			L2: Chain{ID: 2},
		},
		"mixed": {
			Family:   FamilyArbitrum,
			L1:       Chain{ID: 1},
			L2:       Chain{ID: 3},
			Optimism: &OptimismContracts{},
		},
		"nil": nil,
	}}
	_, err := reg.Load(context.Background())
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, `deployment "same-chain": `)
	require.Contains(t, msg, "share chain id 5")
	require.Contains(t, msg, "missing family")
	require.Contains(t, msg, "arbitrum family without arbitrum contracts")
	require.Contains(t, msg, "arbitrum family with optimism contracts")
	require.Contains(t, msg, `deployment "nil": empty entry`)

	_, err = (&Registry{}).Load(context.Background())
	require.ErrorContains(t, err, "no deployments")
}

func TestRegistryLookup(t *testing.T) {
	reg, err := (&YamlLoader{Path: filepath.Join("testdata", "deployments.yaml")}).Load(context.Background())
	require.NoError(t, err)

	_, err = reg.Get("zora-mainnet")
	require.ErrorIs(t, err, ErrUnknownDeployment)

	arb := reg.Filter(FamilyArbitrum)
	require.Len(t, arb, 1)
	require.Equal(t, "arbitrum-one", arb[0].Name)
	require.Len(t, reg.Filter(FamilyOptimism), 3)
}

func TestFamilyText(t *testing.T) {
	var f Family
	require.NoError(t, f.UnmarshalText([]byte("arbitrum")))
	require.Equal(t, FamilyArbitrum, f)
	out, err := f.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "arbitrum", string(out))
	require.Error(t, f.UnmarshalText([]byte("zksync")))
	require.Equal(t, "unknown", FamilyUnknown.String())
}
