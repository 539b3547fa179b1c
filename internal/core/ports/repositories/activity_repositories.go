package repositories

import (
	"context"

	"github.com/SscSPs/storefront/internal/core/domain"
)

// ActivityReader defines read operations for the customer activity log
type ActivityReader interface {
	// ListActivity returns up to limit entries, newest first, starting after
	// the position encoded in nextToken. The returned token is nil on the
	// last page.
	ListActivity(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.ActivityEntry, *string, error)

	// ListActivityBySubscription returns the most recent entries for one subscription.
	ListActivityBySubscription(ctx context.Context, customerID, subscriptionID string, limit int) ([]domain.ActivityEntry, error)
}

// ActivityWriter defines write operations for the customer activity log
type ActivityWriter interface {
	// SaveActivity persists an entry.
	SaveActivity(ctx context.Context, entry domain.ActivityEntry) error
}

// ActivityRepositoryFacade combines all activity-related repository interfaces
type ActivityRepositoryFacade interface {
	ActivityReader
	ActivityWriter
}
