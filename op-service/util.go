package op_service

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// PrefixEnvVar returns the env var names a flag listens on.
func PrefixEnvVar(prefix, suffix string) []string {
	return []string{prefix + "_" + suffix}
}

// ValidateEnvVars logs a warning for every env var that starts with the prefix
// but is not bound to any of the given flags.
func ValidateEnvVars(prefix string, flags []cli.Flag, warn func(msg string, ctx ...any)) {
	for _, envVar := range unknownEnvVars(prefix, os.Environ(), flags) {
		warn("Unknown env var", "prefix", prefix, "env_var", envVar)
	}
}

func unknownEnvVars(prefix string, env []string, flags []cli.Flag) []string {
	known := make(map[string]struct{})
	for _, f := range flags {
		if ef, ok := f.(interface{ GetEnvVars() []string }); ok {
			for _, name := range ef.GetEnvVars() {
				known[name] = struct{}{}
			}
		}
	}
	var out []string
	for _, kv := range env {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, prefix+"_") {
			continue
		}
		if _, ok := known[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// FlagNameAndEnv renders a flag for error messages.
func FlagNameAndEnv(f cli.Flag) string {
	name := f.Names()[0]
	if ef, ok := f.(interface{ GetEnvVars() []string }); ok && len(ef.GetEnvVars()) > 0 {
		return fmt.Sprintf("--%s (env %s)", name, ef.GetEnvVars()[0])
	}
	return "--" + name
}
