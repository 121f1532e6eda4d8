package deployment

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// YamlLoader loads a registry from a YAML file path.
type YamlLoader struct {
	Path string
}

var _ Loader = (*YamlLoader)(nil)

func (l *YamlLoader) Load(ctx context.Context) (*Registry, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var out Registry
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return out.Load(ctx)
}

// TomlLoader loads a registry from a TOML file path.
type TomlLoader struct {
	Path string
}

var _ Loader = (*TomlLoader)(nil)

func (l *TomlLoader) Load(ctx context.Context) (*Registry, error) {
	var out Registry
	md, err := toml.DecodeFile(l.Path, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown fields in config TOML: %v", undecoded)
	}
	return out.Load(ctx)
}

// NewFileLoader picks the loader from the file extension.
func NewFileLoader(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return &YamlLoader{Path: path}, nil
	case ".toml":
		return &TomlLoader{Path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported registry file %q: expected .yaml, .yml or .toml", path)
	}
}
