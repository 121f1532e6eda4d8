package withdraw

import (
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// CachingResolver memoizes successful resolutions. Resolvers are pure, so the
// request content alone keys the cache. Declines and errors are not cached.
type CachingResolver struct {
	inner Resolver
	cache *lru.Cache[common.Hash, *TransactionArgs]
}

var _ Resolver = (*CachingResolver)(nil)

func NewCachingResolver(inner Resolver, size int) (*CachingResolver, error) {
	cache, err := lru.New[common.Hash, *TransactionArgs](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolution cache: %w", err)
	}
	return &CachingResolver{inner: inner, cache: cache}, nil
}

// Resolve returns a copy of the cached result, so callers never share one.
func (c *CachingResolver) Resolve(req *Request) (*TransactionArgs, error) {
	key, err := requestKey(req)
	if err != nil {
		return nil, err
	}
	if args, ok := c.cache.Get(key); ok {
		return args.Clone(), nil
	}
	args, err := c.inner.Resolve(req)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, args.Clone())
	return args, nil
}

func (c *CachingResolver) Len() int {
	return c.cache.Len()
}

func requestKey(req *Request) (common.Hash, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return crypto.Keccak256Hash(data), nil
}
