package withdraw

import (
	"errors"
)

// Resolver builds the withdrawal call for a request. A resolver that does not
// handle the request returns an error wrapping ErrDeclined.
type Resolver interface {
	Resolve(req *Request) (*TransactionArgs, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(req *Request) (*TransactionArgs, error)

func (f ResolverFunc) Resolve(req *Request) (*TransactionArgs, error) {
	return f(req)
}

// Dispatcher tries resolvers in order and returns the first result.
type Dispatcher struct {
	resolvers []Resolver
}

var _ Resolver = (*Dispatcher)(nil)

func NewDispatcher(resolvers ...Resolver) *Dispatcher {
	return &Dispatcher{resolvers: append([]Resolver(nil), resolvers...)}
}

// NewDefaultDispatcher tries the OP Stack first, then Arbitrum.
func NewDefaultDispatcher() *Dispatcher {
	return NewDispatcher(
		NewOptimismResolver(DefaultOptimismParams),
		NewArbitrumResolver(DefaultArbitrumParams),
	)
}

// Resolve fails fast on invalid requests and on any resolver error other than
// a decline. If every resolver declines it returns an *UnsupportedError.
func (d *Dispatcher) Resolve(req *Request) (*TransactionArgs, error) {
	if _, err := req.Validate(); err != nil {
		return nil, err
	}
	var reasons []error
	for _, r := range d.resolvers {
		args, err := r.Resolve(req)
		if err == nil {
			return args, nil
		}
		if !errors.Is(err, ErrDeclined) {
			return nil, err
		}
		reasons = append(reasons, err)
	}
	return nil, &UnsupportedError{Reasons: reasons}
}
