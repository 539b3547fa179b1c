package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
)

// SubscriptionReader defines read operations for a customer's subscriptions
type SubscriptionReader interface {
	// ListSubscriptions retrieves every subscription of the customer.
	ListSubscriptions(ctx context.Context, customerID string) ([]domain.Subscription, error)

	// FindSubscriptionByID retrieves a single subscription.
	FindSubscriptionByID(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error)
}

// SubscriptionWriter defines CRUD write operations for subscriptions
type SubscriptionWriter interface {
	SaveSubscription(ctx context.Context, customerID string, input domain.CreateSubscriptionInput) (*domain.Subscription, error)
	UpdateSubscription(ctx context.Context, customerID, subscriptionID string, input domain.UpdateSubscriptionInput) (*domain.Subscription, error)
	DeleteSubscription(ctx context.Context, customerID, subscriptionID string) error
}

// SubscriptionLifecycle defines the status-changing calls. The backend decides
// whether a transition is allowed.
type SubscriptionLifecycle interface {
	PauseSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error)
	ResumeSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error)
	CancelSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error)
	ReactivateSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error)
	SetAutoRenew(ctx context.Context, customerID, subscriptionID string, enabled bool) (*domain.Subscription, error)
}

// SubscriptionProducts defines product membership operations
type SubscriptionProducts interface {
	AddProduct(ctx context.Context, customerID, subscriptionID, productID string, quantity int) (*domain.Subscription, error)
	RemoveProduct(ctx context.Context, customerID, subscriptionID, productID string) (*domain.Subscription, error)
}

// SubscriptionRepositoryFacade combines all subscription-related repository interfaces
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
	SubscriptionWriter
	SubscriptionLifecycle
	SubscriptionProducts
}

// SubscriptionCache keeps the last list fetched for each customer. Set
// replaces the cached list wholesale.
type SubscriptionCache interface {
	// Get returns the cached list and whether it was present.
	Get(ctx context.Context, customerID string) ([]domain.Subscription, bool, error)

	// Set stores the list for ttl.
	Set(ctx context.Context, customerID string, subscriptions []domain.Subscription, ttl time.Duration) error

	// Invalidate drops the customer's cached list.
	Invalidate(ctx context.Context, customerID string) error
}
