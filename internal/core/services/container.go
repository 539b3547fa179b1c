package services

import (
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
	"github.com/SscSPs/storefront/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Activity first: the subscription service records into it.
	container.Activity = NewActivityService(repos.ActivityRepo)

	container.Subscription = NewSubscriptionService(
		repos.SubscriptionRepo,
		WithSubscriptionCache(repos.SubscriptionCache, cfg.SubscriptionCacheTTL),
		WithActivityService(container.Activity),
	)
	container.Review = NewReviewService(repos.ReviewRepo)
	container.Variant = NewVariantService(repos.VariantRepo, cfg.LowStockThreshold, cfg.PlaceholderImageURL)

	return container
}
