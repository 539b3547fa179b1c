package repositories

import (
	"context"

	"github.com/SscSPs/storefront/internal/core/domain"
)

// VariantReader defines read operations for product variants
type VariantReader interface {
	// ListVariantsByProduct retrieves every variant of a product.
	ListVariantsByProduct(ctx context.Context, productID string) ([]domain.Variant, error)
}
