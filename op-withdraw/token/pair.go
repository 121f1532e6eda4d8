package token

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrUnknownToken  = errors.New("unknown token")
	ErrChainMismatch = errors.New("chain id mismatch")
)

// Pair maps a chain id to that chain's representation of one asset.
type Pair map[uint64]*Token

// Get returns the entry for the chain, if any.
func (p Pair) Get(chainID uint64) (*Token, bool) {
	t, ok := p[chainID]
	return t, ok && t != nil
}

// Check fails when an entry is filed under a chain id other than its own.
func (p Pair) Check() error {
	for _, id := range p.ChainIDs() {
		t := p[id]
		if t == nil {
			continue
		}
		if t.ChainID != id {
			return fmt.Errorf("%w: %s token listed under chain %d reports chain %d", ErrChainMismatch, t.Symbol, id, t.ChainID)
		}
	}
	return nil
}

// ChainIDs returns the chains the asset is listed on, sorted.
func (p Pair) ChainIDs() []uint64 {
	ids := lo.Keys(p)
	slices.Sort(ids)
	return ids
}

// Symbol returns the symbol of the lowest chain id entry.
func (p Pair) Symbol() string {
	for _, id := range p.ChainIDs() {
		if t := p[id]; t != nil {
			return t.Symbol
		}
	}
	return ""
}

// List is a token list: one Pair per logical asset.
type List []Pair

// Find returns the asset with the given symbol listed on both chains.
func (l List) Find(symbol string, l1, l2 uint64) (Pair, error) {
	p, ok := lo.Find(l, func(p Pair) bool {
		t1, ok1 := p.Get(l1)
		t2, ok2 := p.Get(l2)
		return ok1 && ok2 && strings.EqualFold(t2.Symbol, symbol) && strings.EqualFold(t1.Symbol, symbol)
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s between chains %d and %d", ErrUnknownToken, symbol, l1, l2)
	}
	return p, nil
}

// Between lists the assets available on both chains, in list order.
func (l List) Between(l1, l2 uint64) List {
	return lo.Filter(l, func(p Pair, _ int) bool {
		_, ok1 := p.Get(l1)
		_, ok2 := p.Get(l2)
		return ok1 && ok2
	})
}
