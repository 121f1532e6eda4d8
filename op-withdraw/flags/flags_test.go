package flags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	opservice "github.com/rollbridge/rollbridge/op-service"
)

func TestOptionalFlagsDontSetRequired(t *testing.T) {
	for _, flag := range optionalFlags {
		reqFlag, ok := flag.(cli.RequiredFlag)
		require.True(t, ok)
		require.False(t, reqFlag.IsRequired())
	}
}

func TestUniqueFlags(t *testing.T) {
	for _, set := range [][]cli.Flag{Flags, DeploymentsCmdFlags, TokensCmdFlags} {
		seen := make(map[string]struct{})
		for _, flag := range set {
			for _, name := range flag.Names() {
				_, ok := seen[name]
				require.Falsef(t, ok, "duplicate flag %s", name)
				seen[name] = struct{}{}
			}
		}
	}
}

func TestEnvVarFormat(t *testing.T) {
	for _, flag := range Flags {
		envFlag, ok := flag.(interface{ GetEnvVars() []string })
		require.True(t, ok)
		envs := envFlag.GetEnvVars()
		require.Len(t, envs, 1)
		name := flag.Names()[0]
		expected := opservice.PrefixEnvVar(EnvVarPrefix, strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(name)))
		require.Equal(t, expected, envs, "flag %s", name)
	}
}

func TestCheckRequired(t *testing.T) {
	run := func(args ...string) error {
		app := cli.NewApp()
		// Without the urfave required check, so that CheckRequired itself is tested.
		app.Flags = make([]cli.Flag, len(Flags))
		for i, f := range Flags {
			if sf, ok := f.(*cli.StringFlag); ok && sf.Required {
				cp := *sf
				cp.Required = false
				f = &cp
			}
			app.Flags[i] = f
		}
		app.Action = CheckRequired
		return app.Run(append([]string{"op-withdraw"}, args...))
	}
	all := []string{
		"--deployments", "d.yaml",
		"--tokens", "t.json",
		"--deployment", "op-mainnet",
		"--token", "ETH",
		"--recipient", "0x00000000000000000000000000000000000000aa",
	}
	require.NoError(t, run(append(all, "--amount", "1")...))
	require.NoError(t, run(append(all, "--wei", "1")...))
	require.ErrorContains(t, run(all...), "exactly one of --amount and --wei")
	require.ErrorContains(t, run(append(all, "--amount", "1", "--wei", "1")...), "exactly one of")
	require.EqualError(t, run("--tokens", "t.json", "--amount", "1"), "flag deployments is required")
}
