package services

import (
	"context"

	"github.com/SscSPs/storefront/internal/core/domain"
)

// VariantSvc builds the variant selector for a product
type VariantSvc interface {
	// GetVariantViews lists a product's variants with stock badges, discounts
	// and image fallback applied. selectedID marks the chosen variant.
	GetVariantViews(ctx context.Context, productID, selectedID string) ([]domain.VariantView, error)
}
