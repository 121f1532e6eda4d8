package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/ethereum/go-ethereum/common"
)

// Loader specifies how to load a token list.
type Loader interface {
	Load(ctx context.Context) (List, error)
}

var _ Loader = (List)(nil)

// Load is implemented on List so that an in-memory list can be used directly.
func (l List) Load(ctx context.Context) (List, error) {
	if err := l.Check(); err != nil {
		return nil, err
	}
	return l, nil
}

// Check collects every structural problem of the list.
func (l List) Check() error {
	var result *multierror.Error
	for i, p := range l {
		if err := p.Check(); err != nil {
			result = multierror.Append(result, fmt.Errorf("entry %d: %w", i, err))
		}
		for _, id := range p.ChainIDs() {
			if err := checkToken(p[id]); err != nil {
				result = multierror.Append(result, fmt.Errorf("entry %d, chain %d: %w", i, id, err))
			}
		}
	}
	return result.ErrorOrNil()
}

func checkToken(t *Token) error {
	if t == nil {
		return errors.New("empty token")
	}
	var result *multierror.Error
	if t.Symbol == "" {
		result = multierror.Append(result, errors.New("missing symbol"))
	}
	switch t.Kind {
	case KindNative:
		if t.Address != (common.Address{}) {
			result = multierror.Append(result, fmt.Errorf("native token with address %s", t.Address))
		}
	case KindStandard, KindLegacy:
		if t.Address == (common.Address{}) {
			result = multierror.Append(result, errors.New("erc20 token without address"))
		}
	default:
		result = multierror.Append(result, errors.New("missing kind"))
	}
	if t.Optimism == nil && t.Arbitrum == nil {
		result = multierror.Append(result, errors.New("token not bridgeable by any family"))
	}
	return result.ErrorOrNil()
}

// JSONLoader reads a token list from a JSON file: an array of objects keyed
// by chain id.
type JSONLoader struct {
	Path string
}

var _ Loader = (*JSONLoader)(nil)

func (l *JSONLoader) Load(ctx context.Context) (List, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token list: %w", err)
	}
	var out List
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse token list JSON: %w", err)
	}
	return out.Load(ctx)
}
