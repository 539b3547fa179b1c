package services

import (
	"context"

	"github.com/SscSPs/storefront/internal/core/domain"
)

// SubscriptionReaderSvc defines read operations for a customer's subscriptions
type SubscriptionReaderSvc interface {
	// ListSubscriptions returns the cached list, fetching it on a miss.
	ListSubscriptions(ctx context.Context, customerID string) ([]domain.Subscription, error)

	// RefreshSubscriptions refetches the list and replaces the cached copy.
	RefreshSubscriptions(ctx context.Context, customerID string) ([]domain.Subscription, error)

	// GetSubscriptionDetails fetches a subscription together with its recent activity.
	GetSubscriptionDetails(ctx context.Context, customerID, subscriptionID string) (*domain.SubscriptionDetails, error)
}

// SubscriptionWriterSvc defines the mutations offered on the subscriptions
// pages. Each call refreshes the cached list and records the outcome; on
// failure the returned error is accompanied by no result.
type SubscriptionWriterSvc interface {
	CreateSubscription(ctx context.Context, customerID string, input domain.CreateSubscriptionInput) (*domain.ActionResult, error)
	UpdateSubscription(ctx context.Context, customerID, subscriptionID string, input domain.UpdateSubscriptionInput) (*domain.ActionResult, error)
	DeleteSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error)
	PauseSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error)
	ResumeSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error)
	CancelSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error)
	ReactivateSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error)
	SetAutoRenew(ctx context.Context, customerID, subscriptionID string, enabled bool) (*domain.ActionResult, error)
	AddProduct(ctx context.Context, customerID, subscriptionID, productID string, quantity int) (*domain.ActionResult, error)
	RemoveProduct(ctx context.Context, customerID, subscriptionID, productID string) (*domain.ActionResult, error)
}

// SubscriptionSvcFacade combines all subscription-related service interfaces
type SubscriptionSvcFacade interface {
	SubscriptionReaderSvc
	SubscriptionWriterSvc
}
