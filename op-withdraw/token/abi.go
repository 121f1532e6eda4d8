package token

import "fmt"

// BridgeABI is the token-bridge ABI generation of an L2 token. The zero value
// is BridgeABIUnknown, which is never treated as either generation.
type BridgeABI int8

const (
	BridgeABILegacy  BridgeABI = iota - 1 // -1
	BridgeABIUnknown                      // 0
	BridgeABICurrent                      // 1
)

func (b BridgeABI) String() string {
	switch b {
	case BridgeABILegacy:
		return "legacy"
	case BridgeABICurrent:
		return "current"
	default:
		return "unknown"
	}
}

// Known reports whether the generation has been determined.
func (b BridgeABI) Known() bool {
	return b == BridgeABILegacy || b == BridgeABICurrent
}

func (b BridgeABI) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BridgeABI) UnmarshalText(text []byte) error {
	switch string(text) {
	case "legacy":
		*b = BridgeABILegacy
	case "current":
		*b = BridgeABICurrent
	case "unknown", "":
		*b = BridgeABIUnknown
	default:
		return fmt.Errorf("unknown bridge ABI %q", text)
	}
	return nil
}

// BridgeABIFromLegacyFlag maps an optional "is legacy" flag, nil meaning not known.
func BridgeABIFromLegacyFlag(isLegacy *bool) BridgeABI {
	switch {
	case isLegacy == nil:
		return BridgeABIUnknown
	case *isLegacy:
		return BridgeABILegacy
	default:
		return BridgeABICurrent
	}
}
