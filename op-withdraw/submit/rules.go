// Package submit derives what submitting a bridge transfer does for a given
// wallet state. The resolve command reports it next to the withdrawal.
package submit

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollbridge/rollbridge/op-service/eth"
	"github.com/rollbridge/rollbridge/op-withdraw/deployment"
)

type Action string

const (
	ActionNone    Action = "none"
	ActionConnect Action = "connect"
	ActionSwitch  Action = "switch-chain"
	ActionSubmit  Action = "submit"
)

// Inputs is a snapshot of the wallet and form the submit state is derived from.
type Inputs struct {
	Deployment  *deployment.Deployment
	Withdrawing bool
	ForceViaL1  bool

	// Account is nil while no wallet is connected.
	Account       *common.Address
	WalletChainID uint64
	Recipient     common.Address

	Amount        eth.ETH
	TokenBalance  eth.ETH
	NativeBalance eth.ETH
	// NetworkFee is zero while unknown. An unknown fee never blocks.
	NetworkFee eth.ETH
	NFT        bool
}

// FromChain is the chain the bridge transfer leaves from.
func (in Inputs) FromChain() deployment.Chain {
	if in.Withdrawing {
		return in.Deployment.L2
	}
	return in.Deployment.L1
}

func (in Inputs) InsufficientBalance() bool {
	return in.TokenBalance.Lt(in.Amount)
}

func (in Inputs) InsufficientGas() bool {
	return !in.NetworkFee.IsZero() && in.NativeBalance.Lt(in.NetworkFee)
}

// State tells the caller what submitting does right now.
type State struct {
	Rule   string `json:"rule"`
	Action Action `json:"action"`
	// SwitchTo is the chain to move the wallet to, for ActionSwitch.
	SwitchTo uint64 `json:"switchTo,omitempty"`
	Disabled bool   `json:"disabled"`
	// Warning marks a state that may be submitted but will likely fail.
	Warning bool `json:"warning,omitempty"`
}

type Rule struct {
	Name    string
	Match   func(in Inputs) bool
	Outcome func(in Inputs) State
}

// Evaluate returns the outcome of the first matching rule, or the default
// submit state when none match.
func Evaluate(rules []Rule, in Inputs) State {
	for _, r := range rules {
		if r.Match(in) {
			st := r.Outcome(in)
			st.Rule = r.Name
			return st
		}
	}
	return Default(in)
}

// Default is the state of a request that passed every rule.
func Default(in Inputs) State {
	return State{Rule: TrackingAction(in.Withdrawing, false), Action: ActionSubmit}
}

// DefaultRules are the submit rules in priority order.
var DefaultRules = []Rule{
	{
		Name: "deposit-disabled",
		Match: func(in Inputs) bool {
			return in.Deployment.Disabled && !in.Withdrawing
		},
		Outcome: func(Inputs) State {
			return State{Action: ActionNone, Disabled: true}
		},
	},
	{
		Name: "connect-wallet",
		Match: func(in Inputs) bool {
			return in.Account == nil
		},
		Outcome: func(Inputs) State {
			return State{Action: ActionConnect}
		},
	},
	{
		Name: "missing-recipient",
		Match: func(in Inputs) bool {
			return in.Recipient == (common.Address{})
		},
		Outcome: func(Inputs) State {
			return State{Action: ActionNone, Disabled: true}
		},
	},
	{
		Name: "switch-to-from-chain",
		Match: func(in Inputs) bool {
			return !in.ForceViaL1 && in.WalletChainID != in.FromChain().ID
		},
		Outcome: func(in Inputs) State {
			return State{Action: ActionSwitch, SwitchTo: in.FromChain().ID}
		},
	},
	{
		Name: "switch-to-l1",
		Match: func(in Inputs) bool {
			return in.Withdrawing && in.ForceViaL1 && in.WalletChainID != in.Deployment.L1.ID
		},
		Outcome: func(in Inputs) State {
			return State{Action: ActionSwitch, SwitchTo: in.Deployment.L1.ID}
		},
	},
	{
		Name:  "insufficient-balance",
		Match: Inputs.InsufficientBalance,
		Outcome: func(Inputs) State {
			return State{Action: ActionNone, Disabled: true}
		},
	},
	{
		Name:  "insufficient-gas",
		Match: Inputs.InsufficientGas,
		Outcome: func(Inputs) State {
			return State{Action: ActionSubmit, Warning: true}
		},
	},
}

// ShouldSubmit reports whether a confirmed submit does anything. Only an NFT
// transfer may move a zero amount.
func ShouldSubmit(amount eth.ETH, nft bool) bool {
	return nft || !amount.IsZero()
}
