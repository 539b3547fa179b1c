package services

import (
	"context"

	"github.com/SscSPs/storefront/internal/core/domain"
)

// ActivityReaderSvc defines read operations for the customer activity log
type ActivityReaderSvc interface {
	// ListActivity returns a newest-first page of the customer's notices.
	ListActivity(ctx context.Context, customerID string, limit int, nextToken *string) (*domain.ActivityPage, error)

	// RecentForSubscription returns the latest entries for one subscription.
	RecentForSubscription(ctx context.Context, customerID, subscriptionID string, limit int) ([]domain.ActivityEntry, error)
}

// ActivityWriterSvc defines write operations for the customer activity log
type ActivityWriterSvc interface {
	// Record stores the outcome of an action.
	Record(ctx context.Context, customerID, subscriptionID string, action domain.SubscriptionAction, notice domain.Notice) error
}

// ActivitySvcFacade combines all activity-related service interfaces
type ActivitySvcFacade interface {
	ActivityReaderSvc
	ActivityWriterSvc
}
