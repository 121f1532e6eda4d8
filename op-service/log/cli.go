package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/log"

	opservice "github.com/rollbridge/rollbridge/op-service"
)

const (
	LevelFlagName  = "log.level"
	FormatFlagName = "log.format"
	ColorFlagName  = "log.color"
)

type FormatType string

const (
	FormatText     FormatType = "text"
	FormatTerminal FormatType = "terminal"
	FormatLogFmt   FormatType = "logfmt"
	FormatJSON     FormatType = "json"
)

var formatTypes = []FormatType{FormatText, FormatTerminal, FormatLogFmt, FormatJSON}

func (ft *FormatType) Set(value string) error {
	for _, t := range formatTypes {
		if string(t) == value {
			*ft = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized log format: %q", value)
}

func (ft FormatType) String() string {
	return string(ft)
}

// LevelFlagValue is a cli.Generic that parses level names, including trace and crit.
type LevelFlagValue slog.Level

func (fv *LevelFlagValue) Set(value string) error {
	level, err := LevelFromString(value)
	if err != nil {
		return err
	}
	*fv = LevelFlagValue(level)
	return nil
}

func (fv LevelFlagValue) String() string {
	return strings.ToLower(log.LevelString(slog.Level(fv)))
}

func LevelFromString(lvl string) (slog.Level, error) {
	switch strings.ToLower(lvl) {
	case "trace", "trce":
		return log.LevelTrace, nil
	case "debug", "dbug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn":
		return log.LevelWarn, nil
	case "error", "eror":
		return log.LevelError, nil
	case "crit":
		return log.LevelCrit, nil
	default:
		return 0, fmt.Errorf("unknown level: %v", lvl)
	}
}

func CLIFlags(envPrefix string) []cli.Flag {
	level := LevelFlagValue(log.LevelInfo)
	format := FormatText
	return []cli.Flag{
		&cli.GenericFlag{
			Name:    LevelFlagName,
			Usage:   "The lowest log level that will be output",
			Value:   &level,
			EnvVars: opservice.PrefixEnvVar(envPrefix, "LOG_LEVEL"),
		},
		&cli.GenericFlag{
			Name:    FormatFlagName,
			Usage:   "Format the log output. Supported formats: 'text', 'terminal', 'logfmt', 'json'",
			Value:   &format,
			EnvVars: opservice.PrefixEnvVar(envPrefix, "LOG_FORMAT"),
		},
		&cli.BoolFlag{
			Name:    ColorFlagName,
			Usage:   "Color the log output if in terminal mode",
			EnvVars: opservice.PrefixEnvVar(envPrefix, "LOG_COLOR"),
		},
	}
}

type CLIConfig struct {
	Level  slog.Level
	Color  bool
	Format FormatType
}

// DefaultCLIConfig enables color only when stdout is a terminal.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		Level:  log.LevelInfo,
		Format: FormatText,
		Color:  isatty.IsTerminal(os.Stdout.Fd()),
	}
}

func ReadCLIConfig(ctx *cli.Context) CLIConfig {
	cfg := DefaultCLIConfig()
	if lv, ok := ctx.Generic(LevelFlagName).(*LevelFlagValue); ok {
		cfg.Level = slog.Level(*lv)
	}
	if ft, ok := ctx.Generic(FormatFlagName).(*FormatType); ok {
		cfg.Format = *ft
	}
	if ctx.IsSet(ColorFlagName) {
		cfg.Color = ctx.Bool(ColorFlagName)
	}
	return cfg
}

func (cfg CLIConfig) Check() error {
	for _, t := range formatTypes {
		if t == cfg.Format {
			return nil
		}
	}
	return fmt.Errorf("unrecognized log format: %q", cfg.Format)
}

// NewLogHandler builds the handler for the configured format. Text picks the
// terminal handler when color is on, logfmt otherwise.
func NewLogHandler(wr io.Writer, cfg CLIConfig) slog.Handler {
	switch cfg.Format {
	case FormatJSON:
		return JSONMsHandlerWithLevel(wr, cfg.Level)
	case FormatLogFmt:
		return LogfmtMsHandlerWithLevel(wr, cfg.Level)
	case FormatTerminal:
		return log.NewTerminalHandlerWithLevel(wr, cfg.Level, cfg.Color)
	default:
		if cfg.Color {
			return log.NewTerminalHandlerWithLevel(wr, cfg.Level, true)
		}
		return LogfmtMsHandlerWithLevel(wr, cfg.Level)
	}
}

func NewLogger(wr io.Writer, cfg CLIConfig) log.Logger {
	return log.NewLogger(NewLogHandler(wr, cfg))
}

func SetGlobalLogHandler(h slog.Handler) {
	log.SetDefault(log.NewLogger(h))
}

// AppOut returns the writer the app logs to, stderr unless the app overrides ErrWriter.
func AppOut(ctx *cli.Context) io.Writer {
	if ctx == nil || ctx.App == nil || ctx.App.ErrWriter == nil {
		return os.Stderr
	}
	return ctx.App.ErrWriter
}
