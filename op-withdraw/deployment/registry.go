package deployment

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"github.com/ethereum/go-ethereum/common"
)

var ErrUnknownDeployment = errors.New("unknown deployment")

// Loader specifies how to load a deployment registry.
type Loader interface {
	Load(ctx context.Context) (*Registry, error)
}

// Registry lists deployments by name.
type Registry struct {
	Deployments map[string]*Deployment `yaml:"deployments" toml:"deployments" json:"deployments"`
}

var _ Loader = (*Registry)(nil)

// Load is implemented on the Registry itself, so that an in-memory registry can
// be used without going through a file.
func (r *Registry) Load(ctx context.Context) (*Registry, error) {
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

// init names every deployment after its key and validates the whole set.
func (r *Registry) init() error {
	for name, d := range r.Deployments {
		if d != nil {
			d.Name = name
		}
	}
	return r.Check()
}

// Check reports every structural problem at once.
func (r *Registry) Check() error {
	var result *multierror.Error
	if len(r.Deployments) == 0 {
		result = multierror.Append(result, errors.New("no deployments"))
	}
	for _, name := range r.Names() {
		if err := checkDeployment(r.Deployments[name]); err != nil {
			result = multierror.Append(result, fmt.Errorf("deployment %q: %w", name, err))
		}
	}
	return result.ErrorOrNil()
}

func checkDeployment(d *Deployment) error {
	if d == nil {
		return errors.New("empty entry")
	}
	var result *multierror.Error
	if d.L1.ID == 0 {
		result = multierror.Append(result, errors.New("missing l1 chain id"))
	}
	if d.L2.ID == 0 {
		result = multierror.Append(result, errors.New("missing l2 chain id"))
	}
	if d.L1.ID != 0 && d.L1.ID == d.L2.ID {
		result = multierror.Append(result, fmt.Errorf("l1 and l2 share chain id %d", d.L1.ID))
	}
	switch d.Family {
	case FamilyOptimism:
		if d.Optimism == nil {
			result = multierror.Append(result, errors.New("optimism family without optimism contracts"))
		}
		if d.Arbitrum != nil {
			result = multierror.Append(result, errors.New("optimism family with arbitrum contracts"))
		}
		if d.Optimism != nil && d.Optimism.ProxyBridge != nil && *d.Optimism.ProxyBridge == (common.Address{}) {
			result = multierror.Append(result, errors.New("zero proxy_bridge address, omit the field instead"))
		}
	case FamilyArbitrum:
		if d.Arbitrum == nil {
			result = multierror.Append(result, errors.New("arbitrum family without arbitrum contracts"))
		}
		if d.Optimism != nil {
			result = multierror.Append(result, errors.New("arbitrum family with optimism contracts"))
		}
		if d.Arbitrum != nil && d.Arbitrum.ArbSys != nil && *d.Arbitrum.ArbSys == (common.Address{}) {
			result = multierror.Append(result, errors.New("zero arb_sys address, omit the field instead"))
		}
	default:
		result = multierror.Append(result, errors.New("missing family"))
	}
	return result.ErrorOrNil()
}

// Names returns the deployment names in sorted order.
func (r *Registry) Names() []string {
	names := lo.Keys(r.Deployments)
	slices.Sort(names)
	return names
}

func (r *Registry) Get(name string) (*Deployment, error) {
	d, ok := r.Deployments[name]
	if !ok || d == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDeployment, name)
	}
	return d, nil
}

// ByChains finds the deployment bridging the given L2 into the given L1.
func (r *Registry) ByChains(l1, l2 uint64) (*Deployment, error) {
	for _, name := range r.Names() {
		d := r.Deployments[name]
		if d.L1.ID == l1 && d.L2.ID == l2 {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: l1 %d, l2 %d", ErrUnknownDeployment, l1, l2)
}

// Filter returns the deployments of the given family, sorted by name.
func (r *Registry) Filter(family Family) []*Deployment {
	return lo.Filter(lo.Map(r.Names(), func(name string, _ int) *Deployment {
		return r.Deployments[name]
	}), func(d *Deployment, _ int) bool {
		return d.Family == family
	})
}
