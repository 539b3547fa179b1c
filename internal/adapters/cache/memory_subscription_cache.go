// Package cache holds the subscription list caches: an in-process one and a
// Redis one shared between replicas.
package cache

import (
	"context"
	"slices"
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	gocache "github.com/patrickmn/go-cache"
)

// MemorySubscriptionCache keeps subscription lists in process memory.
type MemorySubscriptionCache struct {
	cache *gocache.Cache
}

// NewMemorySubscriptionCache creates a cache whose entries default to ttl.
func NewMemorySubscriptionCache(ttl time.Duration) *MemorySubscriptionCache {
	return &MemorySubscriptionCache{cache: gocache.New(ttl, 2*ttl)}
}

var _ portsrepo.SubscriptionCache = (*MemorySubscriptionCache)(nil)

func (c *MemorySubscriptionCache) Get(_ context.Context, customerID string) ([]domain.Subscription, bool, error) {
	cached, found := c.cache.Get(customerID)
	if !found {
		return nil, false, nil
	}
	subs, ok := cached.([]domain.Subscription)
	if !ok {
		c.cache.Delete(customerID)
		return nil, false, nil
	}
	// Callers get their own copy, nested slices included.
	return cloneSubscriptions(subs), true, nil
}

func (c *MemorySubscriptionCache) Set(_ context.Context, customerID string, subscriptions []domain.Subscription, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(customerID, cloneSubscriptions(subscriptions), ttl)
	return nil
}

func (c *MemorySubscriptionCache) Invalidate(_ context.Context, customerID string) error {
	c.cache.Delete(customerID)
	return nil
}

func cloneSubscriptions(subs []domain.Subscription) []domain.Subscription {
	if subs == nil {
		return nil
	}
	out := make([]domain.Subscription, len(subs))
	for i, s := range subs {
		s.Products = slices.Clone(s.Products)
		s.Discounts = slices.Clone(s.Discounts)
		if s.NextBillingDate != nil {
			next := *s.NextBillingDate
			s.NextBillingDate = &next
		}
		out[i] = s
	}
	return out
}
