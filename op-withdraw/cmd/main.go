package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/log"

	opservice "github.com/rollbridge/rollbridge/op-service"
	oplog "github.com/rollbridge/rollbridge/op-service/log"
	"github.com/rollbridge/rollbridge/op-withdraw/flags"
)

var (
	Version   = "v0.0.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	oplog.SetGlobalLogHandler(oplog.NewLogHandler(os.Stderr, oplog.DefaultCLIConfig()))

	app := newApp()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Crit("Application failed", "message", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = opservice.FormatVersion(Version, GitCommit, GitDate, "")
	app.Name = "op-withdraw"
	app.Usage = "Withdrawal transaction builder"
	app.Description = "Builds the L2 to L1 withdrawal call for OP Stack and Arbitrum deployments"
	app.Commands = []*cli.Command{
		{
			Name:   "resolve",
			Usage:  "Prints the transaction that withdraws a token from L2",
			Flags:  flags.Flags,
			Action: Resolve,
		},
		{
			Name:   "deployments",
			Usage:  "Lists the deployments of the registry",
			Flags:  flags.DeploymentsCmdFlags,
			Action: ListDeployments,
		},
		{
			Name:   "tokens",
			Usage:  "Lists the tokens of the token list",
			Flags:  flags.TokensCmdFlags,
			Action: ListTokens,
		},
	}
	app.Action = func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	}
	return app
}
