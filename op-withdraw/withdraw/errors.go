package withdraw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rollbridge/rollbridge/op-withdraw/token"
)

var (
	// ErrDeclined is returned, wrapped with a reason, when a resolver does not
	// handle the request. It is not a failure: the next resolver may.
	ErrDeclined = errors.New("declined")
	// ErrUnsupported matches an *UnsupportedError.
	ErrUnsupported = errors.New("unsupported withdrawal configuration")

	ErrInvalidRequest   = errors.New("invalid withdrawal request")
	ErrInvalidRecipient = errors.New("invalid recipient")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidToken     = errors.New("invalid token")
	ErrChainMismatch    = token.ErrChainMismatch
)

func declined(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDeclined, fmt.Sprintf(format, args...))
}

// UnsupportedError reports that every resolver declined, with their reasons.
type UnsupportedError struct {
	Reasons []error
}

func (e *UnsupportedError) Error() string {
	if len(e.Reasons) == 0 {
		return ErrUnsupported.Error() + ": no resolvers"
	}
	reasons := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		reasons[i] = r.Error()
	}
	return ErrUnsupported.Error() + ": " + strings.Join(reasons, "; ")
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}
