package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/log"

	opservice "github.com/rollbridge/rollbridge/op-service"
	"github.com/rollbridge/rollbridge/op-service/cliutil"
	"github.com/rollbridge/rollbridge/op-service/eth"
	oplog "github.com/rollbridge/rollbridge/op-service/log"
	"github.com/rollbridge/rollbridge/op-withdraw/config"
	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
	"github.com/rollbridge/rollbridge/op-withdraw/flags"
	"github.com/rollbridge/rollbridge/op-withdraw/submit"
	"github.com/rollbridge/rollbridge/op-withdraw/withdraw"
)

type resolveOutput struct {
	Deployment    string                    `json:"deployment"`
	Action        string                    `json:"action"`
	RequiredChain deployment.Chain          `json:"requiredChain"`
	Submit        submit.State              `json:"submit"`
	Approval      *withdraw.Tx              `json:"approval,omitempty"`
	Withdrawal    *withdraw.TransactionArgs `json:"withdrawal"`
}

// submitInputs describes the wallet given on the command line. Balances and
// gas price left unset are not checked.
func submitInputs(cfg *config.Config, req *withdraw.Request, amount eth.ETH) (submit.Inputs, error) {
	in := submit.Inputs{
		Deployment:    req.Deployment,
		Withdrawing:   true,
		ForceViaL1:    req.ForceViaL1,
		Account:       cfg.From,
		WalletChainID: cfg.WalletChainID,
		Recipient:     req.Recipient,
		Amount:        amount,
		TokenBalance:  amount,
	}
	var err error
	if cfg.Balance != nil {
		if in.TokenBalance, err = eth.ParseWeiBig(cfg.Balance); err != nil {
			return in, fmt.Errorf("invalid balance: %w", err)
		}
	}
	if cfg.NativeBalance != nil {
		if in.NativeBalance, err = eth.ParseWeiBig(cfg.NativeBalance); err != nil {
			return in, fmt.Errorf("invalid native balance: %w", err)
		}
	}
	if cfg.GasPrice != nil {
		if cfg.GasPrice.BitLen() > 128 {
			return in, fmt.Errorf("invalid gas price: %s", cfg.GasPrice)
		}
		price, err := eth.ParseWeiBig(cfg.GasPrice)
		if err != nil {
			return in, fmt.Errorf("invalid gas price: %w", err)
		}
		in.NetworkFee = submit.NetworkFee(price, true)
	}
	return in, nil
}

func setupLogging(ctx *cli.Context) (log.Logger, error) {
	logCfg := oplog.ReadCLIConfig(ctx)
	if err := logCfg.Check(); err != nil {
		return nil, err
	}
	logger := oplog.NewLogger(oplog.AppOut(ctx), logCfg)
	oplog.SetGlobalLogHandler(logger.Handler())
	return logger, nil
}

func Resolve(ctx *cli.Context) error {
	if err := flags.CheckRequired(ctx); err != nil {
		return err
	}
	cfg, err := config.NewConfig(ctx, ctx.App.Version)
	if err != nil {
		return err
	}
	if err := cfg.Check(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := oplog.NewLogger(oplog.AppOut(ctx), cfg.LogConfig)
	oplog.SetGlobalLogHandler(logger.Handler())
	opservice.ValidateEnvVars(flags.EnvVarPrefix, flags.Flags, logger.Warn)

	req, err := cfg.NewRequest(ctx.Context)
	if err != nil {
		return err
	}
	args, err := withdraw.NewDefaultDispatcher().Resolve(req)
	if err != nil {
		return fmt.Errorf("failed to resolve withdrawal: %w", err)
	}
	dep := req.Deployment
	l2Token, _ := req.Tokens.Get(dep.L2.ID)
	amount, err := req.Validate()
	if err != nil {
		return err
	}

	out := resolveOutput{
		Deployment:    dep.Name,
		Action:        submit.TrackingAction(true, req.ForceViaL1),
		RequiredChain: submit.RequiredChain(dep, true, req.ForceViaL1),
		Withdrawal:    args,
	}
	in, err := submitInputs(cfg, req, amount)
	if err != nil {
		return err
	}
	out.Submit = submit.Evaluate(submit.DefaultRules, in)
	if out.Submit.Action == submit.ActionSubmit && !submit.ShouldSubmit(amount, false) {
		logger.Warn("Zero amount, submitting does nothing")
		out.Submit.Action = submit.ActionNone
	}
	if cfg.Approval {
		out.Approval, err = withdraw.ApprovalTx(args, l2Token, amount)
		if err != nil {
			return err
		}
	}
	logger.Info("Resolved withdrawal",
		"deployment", dep.Name,
		"token", l2Token,
		"amount", cliutil.FormatAmount(req.Amount, l2Token.Decimals),
		"to", args.Tx.To,
		"chain", args.Tx.ChainID,
		"abi", req.L2TokenBridge,
		"submit", out.Submit.Rule,
		"approval", out.Approval != nil)
	return writeJSON(ctx.App.Writer, out)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
