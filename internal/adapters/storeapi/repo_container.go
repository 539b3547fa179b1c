package storeapi

import (
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the store API backed repositories together
// with the locally owned activity log and subscription cache.
func NewRepositoryProvider(client *Client, activityRepo portsrepo.ActivityRepositoryFacade, cache portsrepo.SubscriptionCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ReviewRepo:        NewReviewsAPI(client),
		SubscriptionRepo:  NewSubscriptionAPI(client),
		VariantRepo:       NewProductsAPI(client),
		ActivityRepo:      activityRepo,
		SubscriptionCache: cache,
	}
}
