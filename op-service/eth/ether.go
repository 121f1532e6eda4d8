package eth

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/ethereum/go-ethereum/params"
)

var (
	ErrMissingAmount  = errors.New("missing amount")
	ErrNegativeAmount = errors.New("negative amount")
	ErrAmountOverflow = errors.New("amount does not fit in uint256")
)

var (
	MaxU256Wei = ETH(uint256.Int{0: ^uint64(0), 1: ^uint64(0), 2: ^uint64(0), 3: ^uint64(0)})
	OneEther   = Ether(1)
	OneGWei    = GWei(1)
	OneWei     = WeiU64(1)
	ZeroWei    = WeiU64(0)
)

var (
	weiPerGWei = uint256.NewInt(params.GWei)
	weiPerEth  = uint256.NewInt(params.Ether)
)

// ETH is an amount in base units: wei for the native asset, the smallest
// denomination for an ERC-20. Methods take and return values, never mutating in place.
type ETH uint256.Int

// String prints the amount with thousands separators and the largest unit
// (ether, gwei or wei) that divides it exactly.
func (e ETH) String() string {
	vWei := (*uint256.Int)(&e)
	if vWei.Sign() == 0 {
		return "0 wei"
	}
	var q, r uint256.Int
	if q.DivMod(vWei, weiPerEth, &r); r.Sign() == 0 {
		return q.PrettyDec(',') + " ether"
	}
	if q.DivMod(vWei, weiPerGWei, &r); r.Sign() == 0 {
		return q.PrettyDec(',') + " gwei"
	}
	return vWei.PrettyDec(',') + " wei"
}

// Decimal returns the amount in base units, in decimal form.
func (e ETH) Decimal() string {
	return (*uint256.Int)(&e).Dec()
}

// Hex returns the amount in base units, 0x prefixed.
func (e ETH) Hex() string {
	return (*uint256.Int)(&e).Hex()
}

func (e ETH) ToBig() *big.Int {
	return (*uint256.Int)(&e).ToBig()
}

// ToU256 returns a copy, not the underlying value.
func (e ETH) ToU256() *uint256.Int {
	return (*uint256.Int)(&e).Clone()
}

// Add panics on overflow.
func (e ETH) Add(v ETH) (out ETH) {
	if _, overflow := (*uint256.Int)(&out).AddOverflow((*uint256.Int)(&e), (*uint256.Int)(&v)); overflow {
		panic(fmt.Errorf("add overflow: %s + %s", e, v))
	}
	return
}

// Mul panics on overflow.
func (e ETH) Mul(scalar uint64) (out ETH) {
	if _, overflow := (*uint256.Int)(&out).MulOverflow((*uint256.Int)(&e), uint256.NewInt(scalar)); overflow {
		panic(fmt.Errorf("mul overflow: %s * %d", e, scalar))
	}
	return
}

func (e ETH) Cmp(v ETH) int {
	return (*uint256.Int)(&e).Cmp((*uint256.Int)(&v))
}

func (e ETH) Lt(v ETH) bool {
	return (*uint256.Int)(&e).Lt((*uint256.Int)(&v))
}

func (e ETH) IsZero() bool {
	return (*uint256.Int)(&e).IsZero()
}

// UnmarshalText accepts hexadecimal (0x prefix) and decimal.
func (e *ETH) UnmarshalText(data []byte) error {
	return (*uint256.Int)(e).UnmarshalText(data)
}

// UnmarshalJSON accepts a quoted hex or decimal string, or a bare decimal number.
func (e *ETH) UnmarshalJSON(data []byte) error {
	return (*uint256.Int)(e).UnmarshalJSON(data)
}

// MarshalText encodes as a plain decimal number.
func (e ETH) MarshalText() ([]byte, error) {
	return (*uint256.Int)(&e).MarshalText()
}

// ParseWeiBig converts a big.Int amount, rejecting nil, negative and oversized input.
func ParseWeiBig(wei *big.Int) (out ETH, err error) {
	if wei == nil {
		return ZeroWei, ErrMissingAmount
	}
	if wei.Sign() < 0 {
		return ZeroWei, fmt.Errorf("%w: %s", ErrNegativeAmount, wei)
	}
	if (*uint256.Int)(&out).SetFromBig(wei) {
		return ZeroWei, fmt.Errorf("%w: %s", ErrAmountOverflow, wei)
	}
	return out, nil
}

// WeiBig is ParseWeiBig for trusted input. It panics where ParseWeiBig errors.
func WeiBig(wei *big.Int) ETH {
	out, err := ParseWeiBig(wei)
	if err != nil {
		panic(err)
	}
	return out
}

func WeiU64(wei uint64) (out ETH) {
	(*uint256.Int)(&out).SetUint64(wei)
	return
}

func GWei(gwei uint64) ETH {
	var x uint256.Int
	x.SetUint64(gwei)
	x.Mul(&x, weiPerGWei)
	return ETH(x)
}

func Ether(ether uint64) ETH {
	var x uint256.Int
	x.SetUint64(ether)
	x.Mul(&x, weiPerEth)
	return ETH(x)
}
