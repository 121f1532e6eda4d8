package config

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-service/cliutil"
	oplog "github.com/rollbridge/rollbridge/op-service/log"
	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
	"github.com/rollbridge/rollbridge/op-withdraw/flags"
	"github.com/rollbridge/rollbridge/op-withdraw/token"
	"github.com/rollbridge/rollbridge/op-withdraw/withdraw"
)

const (
	DefaultDeploymentsYaml = "deployments.yaml"
	DefaultTokensJSON      = "tokens.json"
)

var (
	ErrMissingDeployments = errors.New("missing deployment registry")
	ErrMissingTokens      = errors.New("missing token list")
	ErrMissingDeployment  = errors.New("missing deployment name")
	ErrMissingToken       = errors.New("missing token symbol")
	ErrMissingRecipient   = errors.New("missing recipient")
	ErrAmountFlags        = errors.New("exactly one of amount and wei must be set")
)

type Config struct {
	Version string

	LogConfig oplog.CLIConfig

	Deployments deployment.Loader
	Tokens      token.Loader

	DeploymentName string          `cli:"deployment"`
	TokenSymbol    string          `cli:"token"`
	Recipient      common.Address  `cli:"recipient"`
	Amount         string          `cli:"amount"`
	Wei            *big.Int        `cli:"wei"`
	TokenBridgeABI token.BridgeABI `cli:"token-bridge-abi"`
	EasyMode       bool            `cli:"easy-mode"`
	ForceViaL1     bool            `cli:"force-via-l1"`
	Approval       bool            `cli:"approval"`

	From          *common.Address `cli:"from"`
	WalletChainID uint64          `cli:"wallet-chain-id"`
	Balance       *big.Int        `cli:"balance"`
	NativeBalance *big.Int        `cli:"native-balance"`
	GasPrice      *big.Int        `cli:"gas-price"`
}

func (c *Config) Check() error {
	var result error
	result = errors.Join(result, c.LogConfig.Check())
	if c.Deployments == nil {
		result = errors.Join(result, ErrMissingDeployments)
	}
	if c.Tokens == nil {
		result = errors.Join(result, ErrMissingTokens)
	}
	if c.DeploymentName == "" {
		result = errors.Join(result, ErrMissingDeployment)
	}
	if c.TokenSymbol == "" {
		result = errors.Join(result, ErrMissingToken)
	}
	if c.Recipient == (common.Address{}) {
		result = errors.Join(result, ErrMissingRecipient)
	}
	if (c.Amount == "") == (c.Wei == nil) {
		result = errors.Join(result, ErrAmountFlags)
	}
	return result
}

func DefaultCLIConfig() *Config {
	return &Config{
		Version:     "dev",
		LogConfig:   oplog.DefaultCLIConfig(),
		Deployments: &deployment.YamlLoader{Path: DefaultDeploymentsYaml},
		Tokens:      &token.JSONLoader{Path: DefaultTokensJSON},
	}
}

// NewConfig reads the resolve command flags.
func NewConfig(ctx *cli.Context, version string) (*Config, error) {
	cfg := DefaultCLIConfig()
	cfg.Version = version
	cfg.LogConfig = oplog.ReadCLIConfig(ctx)
	if ctx.IsSet(flags.DeploymentsFlag.Name) {
		loader, err := deployment.NewFileLoader(ctx.String(flags.DeploymentsFlag.Name))
		if err != nil {
			return nil, err
		}
		cfg.Deployments = loader
	}
	if ctx.IsSet(flags.TokensFlag.Name) {
		cfg.Tokens = &token.JSONLoader{Path: ctx.String(flags.TokensFlag.Name)}
	}
	if err := cliutil.PopulateStruct(cfg, ctx); err != nil {
		return nil, fmt.Errorf("failed to read flags: %w", err)
	}
	return cfg, nil
}

// NewRequest loads the registries and builds the withdrawal request. The
// amount is scaled by the L2 token's decimals unless given in base units, and
// the bridge ABI falls back to the token list's classification.
func (c *Config) NewRequest(ctx context.Context) (*withdraw.Request, error) {
	var (
		reg  *deployment.Registry
		list token.List
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if reg, err = c.Deployments.Load(gctx); err != nil {
			return fmt.Errorf("failed to load deployments: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if list, err = c.Tokens.Load(gctx); err != nil {
			return fmt.Errorf("failed to load tokens: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	dep, err := reg.Get(c.DeploymentName)
	if err != nil {
		return nil, err
	}
	pair, err := list.Find(c.TokenSymbol, dep.L1.ID, dep.L2.ID)
	if err != nil {
		return nil, err
	}
	l2Token, _ := pair.Get(dep.L2.ID)

	amount := c.Wei
	if amount == nil {
		amount, err = cliutil.ParseAmount(c.Amount, l2Token.Decimals)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", withdraw.ErrInvalidAmount, err)
		}
	}
	abi := c.TokenBridgeABI
	if !abi.Known() {
		abi = l2Token.DefaultBridgeABI()
	}
	return &withdraw.Request{
		Deployment:    dep,
		Tokens:        pair,
		Recipient:     c.Recipient,
		Amount:        amount,
		L2TokenBridge: abi,
		Options: withdraw.Options{
			EasyMode:   c.EasyMode,
			ForceViaL1: c.ForceViaL1,
		},
	}, nil
}
