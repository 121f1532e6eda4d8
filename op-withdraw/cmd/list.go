package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
	"github.com/rollbridge/rollbridge/op-withdraw/flags"
	"github.com/rollbridge/rollbridge/op-withdraw/token"
)

type deploymentSummary struct {
	Name     string            `json:"name"`
	Family   deployment.Family `json:"family"`
	L1       deployment.Chain  `json:"l1"`
	L2       deployment.Chain  `json:"l2"`
	Disabled bool              `json:"disabled,omitempty"`
}

type tokenSummary struct {
	Symbol string   `json:"symbol"`
	Chains []uint64 `json:"chains"`
}

func loadRegistry(ctx *cli.Context) (*deployment.Registry, error) {
	loader, err := deployment.NewFileLoader(ctx.String(flags.DeploymentsFlag.Name))
	if err != nil {
		return nil, err
	}
	reg, err := loader.Load(ctx.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployments: %w", err)
	}
	return reg, nil
}

func ListDeployments(ctx *cli.Context) error {
	logger, err := setupLogging(ctx)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(ctx)
	if err != nil {
		return err
	}
	deps := lo.Map(reg.Names(), func(name string, _ int) *deployment.Deployment {
		return reg.Deployments[name]
	})
	if ctx.IsSet(flags.FamilyFlag.Name) {
		var family deployment.Family
		if err := family.UnmarshalText([]byte(ctx.String(flags.FamilyFlag.Name))); err != nil {
			return err
		}
		deps = reg.Filter(family)
	}
	logger.Debug("Listing deployments", "count", len(deps))
	summaries := lo.Map(deps, func(d *deployment.Deployment, _ int) deploymentSummary {
		return deploymentSummary{Name: d.Name, Family: d.Family, L1: d.L1, L2: d.L2, Disabled: d.Disabled}
	})
	return writeListing(ctx, summaries, []string{"Name", "Family", "L1", "L2", "Deposits"},
		lo.Map(summaries, func(d deploymentSummary, _ int) []string {
			deposits := "enabled"
			if d.Disabled {
				deposits = "disabled"
			}
			return []string{d.Name, d.Family.String(), d.L1.String(), d.L2.String(), deposits}
		}))
}

func ListTokens(ctx *cli.Context) error {
	logger, err := setupLogging(ctx)
	if err != nil {
		return err
	}
	loader := &token.JSONLoader{Path: ctx.String(flags.TokensFlag.Name)}
	list, err := loader.Load(ctx.Context)
	if err != nil {
		return fmt.Errorf("failed to load tokens: %w", err)
	}
	if name := ctx.String(flags.ListDeploymentFlag.Name); name != "" {
		reg, err := loadRegistry(ctx)
		if err != nil {
			return err
		}
		dep, err := reg.Get(name)
		if err != nil {
			return err
		}
		list = lo.Filter(list.Between(dep.L1.ID, dep.L2.ID), func(p token.Pair, _ int) bool {
			l2Token, _ := p.Get(dep.L2.ID)
			return l2Token.Supports(dep.Family)
		})
	}
	logger.Debug("Listing tokens", "count", len(list))
	summaries := lo.Map(list, func(p token.Pair, _ int) tokenSummary {
		return tokenSummary{Symbol: p.Symbol(), Chains: p.ChainIDs()}
	})
	return writeListing(ctx, summaries, []string{"Symbol", "Chains"},
		lo.Map(summaries, func(t tokenSummary, _ int) []string {
			ids := lo.Map(t.Chains, func(id uint64, _ int) string { return strconv.FormatUint(id, 10) })
			return []string{t.Symbol, strings.Join(ids, ", ")}
		}))
}

func writeListing(ctx *cli.Context, v any, header []string, rows [][]string) error {
	switch format := ctx.String(flags.OutputFlag.Name); format {
	case "", "json":
		return writeJSON(ctx.App.Writer, v)
	case "markdown":
		writeMarkdown(ctx.App.Writer, header, rows)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeMarkdown(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.AppendBulk(rows)
	table.Render()
}
