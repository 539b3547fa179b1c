package repositories

import (
	"context"
)

// HealthChecker is implemented by repositories backed by an external store.
type HealthChecker interface {
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
