package cliutil

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrFlagBlank      = errors.New("cannot parse blank flag")
	ErrInvalidAddress = errors.New("invalid address")
	ErrTooPrecise     = errors.New("amount has more decimals than the token")
)

// ParseBigInt accepts decimal or 0x prefixed hex.
func ParseBigInt(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrFlagBlank
	}
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") {
		base = 16
		digits = s[2:]
	}
	out, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("error parsing bigint flag '%s'", s)
	}
	return out, nil
}

func BigIntFlag(cliCtx *cli.Context, flagName string) (*big.Int, error) {
	return ParseBigInt(cliCtx.String(flagName))
}

// AddressFlag parses a hex address flag and rejects anything else.
func AddressFlag(cliCtx *cli.Context, flagName string) (common.Address, error) {
	s := cliCtx.String(flagName)
	if s == "" {
		return common.Address{}, ErrFlagBlank
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// ParseAmount converts a human readable amount ("1.5") into base units for a
// token with the given decimals. Fractions finer than the token allows are rejected.
func ParseAmount(s string, decimals uint8) (*big.Int, error) {
	if s == "" {
		return nil, ErrFlagBlank
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	scaled := d.Shift(int32(decimals))
	if !scaled.IsInteger() {
		return nil, fmt.Errorf("%w: %q with %d decimals", ErrTooPrecise, s, decimals)
	}
	return scaled.BigInt(), nil
}

// FormatAmount renders base units with the token's decimals, trimming trailing zeros.
func FormatAmount(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}
