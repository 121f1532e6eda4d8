package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"

	opservice "github.com/rollbridge/rollbridge/op-service"
	oplog "github.com/rollbridge/rollbridge/op-service/log"
)

const EnvVarPrefix = "OP_WITHDRAW"

func prefixEnvVars(name string) []string {
	return opservice.PrefixEnvVar(EnvVarPrefix, name)
}

var (
	// Registry Flags
	DeploymentsFlag = &cli.StringFlag{
		Name:     "deployments",
		Usage:    "Path to the deployment registry, YAML or TOML",
		EnvVars:  prefixEnvVars("DEPLOYMENTS"),
		Required: true,
	}
	TokensFlag = &cli.StringFlag{
		Name:     "tokens",
		Usage:    "Path to the JSON token list",
		EnvVars:  prefixEnvVars("TOKENS"),
		Required: true,
	}

	// Required Flags
	DeploymentFlag = &cli.StringFlag{
		Name:     "deployment",
		Usage:    "Name of the deployment to withdraw from",
		EnvVars:  prefixEnvVars("DEPLOYMENT"),
		Required: true,
	}
	TokenFlag = &cli.StringFlag{
		Name:     "token",
		Usage:    "Symbol of the token to withdraw",
		EnvVars:  prefixEnvVars("TOKEN"),
		Required: true,
	}
	RecipientFlag = &cli.StringFlag{
		Name:     "recipient",
		Usage:    "Address receiving the funds on L1",
		EnvVars:  prefixEnvVars("RECIPIENT"),
		Required: true,
	}

	// Optional Flags
	AmountFlag = &cli.StringFlag{
		Name:    "amount",
		Usage:   "Amount in whole tokens, e.g. 1.5. Mutually exclusive with --wei",
		EnvVars: prefixEnvVars("AMOUNT"),
	}
	WeiFlag = &cli.StringFlag{
		Name:    "wei",
		Usage:   "Amount in base units, decimal or 0x hex. Mutually exclusive with --amount",
		EnvVars: prefixEnvVars("WEI"),
	}
	EasyModeFlag = &cli.BoolFlag{
		Name:    "easy-mode",
		Usage:   "Route through the deployment's proxy bridge when it has one",
		EnvVars: prefixEnvVars("EASY_MODE"),
	}
	ForceViaL1Flag = &cli.BoolFlag{
		Name:    "force-via-l1",
		Usage:   "Submit the withdrawal as an L1 deposit, bypassing the sequencer",
		EnvVars: prefixEnvVars("FORCE_VIA_L1"),
	}
	TokenBridgeABIFlag = &cli.StringFlag{
		Name:    "token-bridge-abi",
		Usage:   "Bridge ABI of the L2 token: 'legacy' or 'current'. Derived from the token list when unset",
		EnvVars: prefixEnvVars("TOKEN_BRIDGE_ABI"),
	}
	ApprovalFlag = &cli.BoolFlag{
		Name:    "approval",
		Usage:   "Also print the ERC-20 approval transaction, if one is needed",
		EnvVars: prefixEnvVars("APPROVAL"),
	}

	// Wallet Flags, for reporting the submit state
	FromFlag = &cli.StringFlag{
		Name:    "from",
		Usage:   "Connected wallet account. Without it the submit state asks to connect",
		EnvVars: prefixEnvVars("FROM"),
	}
	WalletChainIDFlag = &cli.Uint64Flag{
		Name:    "wallet-chain-id",
		Usage:   "Chain the wallet is currently connected to",
		EnvVars: prefixEnvVars("WALLET_CHAIN_ID"),
	}
	BalanceFlag = &cli.StringFlag{
		Name:    "balance",
		Usage:   "Token balance of the account in base units. Unchecked when unset",
		EnvVars: prefixEnvVars("BALANCE"),
	}
	NativeBalanceFlag = &cli.StringFlag{
		Name:    "native-balance",
		Usage:   "Gas currency balance of the account in wei",
		EnvVars: prefixEnvVars("NATIVE_BALANCE"),
	}
	GasPriceFlag = &cli.StringFlag{
		Name:    "gas-price",
		Usage:   "Gas price in wei used to estimate the network fee. Unchecked when unset",
		EnvVars: prefixEnvVars("GAS_PRICE"),
	}

	FamilyFlag = &cli.StringFlag{
		Name:    "family",
		Usage:   "Only list deployments of this rollup family: 'optimism' or 'arbitrum'",
		EnvVars: prefixEnvVars("FAMILY"),
	}
	OutputFlag = &cli.StringFlag{
		Name:    "output",
		Usage:   "Listing format: 'json' or 'markdown'",
		Value:   "json",
		EnvVars: prefixEnvVars("OUTPUT"),
	}
	ListDeploymentsFlag = &cli.StringFlag{
		Name:    DeploymentsFlag.Name,
		Usage:   "Path to the deployment registry, needed to filter by deployment",
		EnvVars: prefixEnvVars("DEPLOYMENTS"),
	}
	ListDeploymentFlag = &cli.StringFlag{
		Name:    "deployment",
		Usage:   "Only list tokens bridgeable on this deployment",
		EnvVars: prefixEnvVars("DEPLOYMENT"),
	}
)

var requiredFlags = []cli.Flag{
	DeploymentsFlag,
	TokensFlag,
	DeploymentFlag,
	TokenFlag,
	RecipientFlag,
}

var optionalFlags = []cli.Flag{
	AmountFlag,
	WeiFlag,
	EasyModeFlag,
	ForceViaL1Flag,
	TokenBridgeABIFlag,
	ApprovalFlag,
	FromFlag,
	WalletChainIDFlag,
	BalanceFlag,
	NativeBalanceFlag,
	GasPriceFlag,
}

func init() {
	optionalFlags = append(optionalFlags, oplog.CLIFlags(EnvVarPrefix)...)

	Flags = append(requiredFlags, optionalFlags...)
	DeploymentsCmdFlags = append([]cli.Flag{DeploymentsFlag, FamilyFlag, OutputFlag}, oplog.CLIFlags(EnvVarPrefix)...)
	TokensCmdFlags = append([]cli.Flag{TokensFlag, ListDeploymentsFlag, ListDeploymentFlag, OutputFlag}, oplog.CLIFlags(EnvVarPrefix)...)
}

// Flags are the flags of the resolve command.
var Flags []cli.Flag

var (
	DeploymentsCmdFlags []cli.Flag
	TokensCmdFlags      []cli.Flag
)

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	if ctx.IsSet(AmountFlag.Name) == ctx.IsSet(WeiFlag.Name) {
		return fmt.Errorf("exactly one of --%s and --%s is required", AmountFlag.Name, WeiFlag.Name)
	}
	return nil
}
