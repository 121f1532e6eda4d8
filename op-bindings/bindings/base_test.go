package bindings

import (
	"math/big"
	"testing"

	"github.com/lmittmann/w3"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rollbridge/rollbridge/op-service/eth"
)

var (
	target    = common.HexToAddress("0x4200000000000000000000000000000000000010")
	recipient = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	l2Token   = common.HexToAddress("0x7F5c764cBc14f9669B88837ca1490cCa17c31607")
	l1Token   = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	extraData = hexutil.MustDecode("0x7375706572627269646765")
)

func encode(t *testing.T, c Call) []byte {
	t.Helper()
	data, err := c.EncodeInput()
	require.NoError(t, err)
	return data
}

func expect(t *testing.T, sig string, args ...any) []byte {
	t.Helper()
	data, err := w3.MustNewFunc(sig, "").EncodeArgs(args...)
	require.NoError(t, err)
	return data
}

func TestL2StandardBridgeCalldata(t *testing.T) {
	b := NewBindings[L2StandardBridge](target)

	call := b.BridgeETHTo(recipient, 200_000, extraData)
	require.Equal(t, target, call.To())
	require.Equal(t, "bridgeETHTo", call.MethodName)
	require.Equal(t,
		expect(t, "bridgeETHTo(address,uint32,bytes)", recipient, uint32(200_000), extraData),
		encode(t, call))

	require.Equal(t,
		expect(t, "withdrawTo(address,address,uint256,uint32,bytes)", l2Token, recipient, big.NewInt(500), uint32(200_000), extraData),
		encode(t, b.WithdrawTo(l2Token, recipient, eth.WeiU64(500), 200_000, extraData)))

	require.Equal(t,
		expect(t, "bridgeERC20To(address,address,address,uint256,uint32,bytes)", l2Token, l1Token, recipient, big.NewInt(500), uint32(200_000), extraData),
		encode(t, b.BridgeERC20To(l2Token, l1Token, recipient, eth.WeiU64(500), 200_000, extraData)))
}

func TestL2BridgeCalldata(t *testing.T) {
	proxy := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	b := NewBindings[L2Bridge](proxy)
	amount := eth.OneEther

	require.Equal(t,
		expect(t, "initiateEtherWithdrawal(address,address,uint256)", target, recipient, amount.ToBig()),
		encode(t, b.InitiateEtherWithdrawal(target, recipient, amount)))
	require.Equal(t,
		expect(t, "legacy_initiateERC20Withdrawal(address,address,address,address,uint256)", target, l2Token, l1Token, recipient, amount.ToBig()),
		encode(t, b.LegacyInitiateERC20Withdrawal(target, l2Token, l1Token, recipient, amount)))
	require.Equal(t,
		expect(t, "initiateERC20Withdrawal(address,address,address,address,uint256)", target, l2Token, l1Token, recipient, amount.ToBig()),
		encode(t, b.InitiateERC20Withdrawal(target, l2Token, l1Token, recipient, amount)))
}

func TestOptimismPortalCalldata(t *testing.T) {
	portal := common.HexToAddress("0xbEb5Fc579115071764c7423A4f12eDde41f106Ed")
	b := NewBindings[OptimismPortal](portal)
	inner := []byte{0xde, 0xad, 0xbe, 0xef}
	call := b.DepositTransaction(target, eth.Ether(2), 200_000, false, inner)
	require.Equal(t, portal, call.To())
	require.Equal(t,
		expect(t, "depositTransaction(address,uint256,uint64,bool,bytes)", target, eth.Ether(2).ToBig(), uint64(200_000), false, inner),
		encode(t, call))
}

func TestERC20Calldata(t *testing.T) {
	b := NewBindings[ERC20](l2Token)
	data := encode(t, b.Approve(target, eth.WeiU64(500)))
	require.Equal(t, hexutil.MustDecode("0x095ea7b3"), data[:4])
	require.Equal(t, expect(t, "approve(address,uint256)", target, big.NewInt(500)), data)

	data = encode(t, b.Transfer(recipient, eth.WeiU64(1)))
	require.Equal(t, hexutil.MustDecode("0xa9059cbb"), data[:4])
}

func TestSignature(t *testing.T) {
	sig, err := Signature("bridgeETHTo", recipient, uint32(0), []byte{})
	require.NoError(t, err)
	require.Equal(t, "bridgeETHTo(address,uint32,bytes)", sig)

	sig, err = Signature("depositTransaction", target, eth.ZeroWei, uint64(0), false, []byte{})
	require.NoError(t, err)
	require.Equal(t, "depositTransaction(address,uint256,uint64,bool,bytes)", sig)
}

func TestABIEncoderErrors(t *testing.T) {
	_, err := ABIEncoder("f", 1)
	require.ErrorContains(t, err, "explicit size")

	_, err = ABIEncoder("f", struct{ A uint64 }{A: 1})
	require.ErrorContains(t, err, "tuple types are not supported")

	_, err = ABIEncoder("f", nil)
	require.ErrorContains(t, err, "argument 0 is nil")
}

func TestCheckImplPanics(t *testing.T) {
	type missingTag struct {
		Foo func() Call
	}
	type wrongReturn struct {
		Foo func() error `sol:"foo"`
	}
	require.Panics(t, func() { NewBindings[missingTag](target) })
	require.Panics(t, func() { NewBindings[wrongReturn](target) })
	require.Panics(t, func() { NewBindings[int](target) })
}
