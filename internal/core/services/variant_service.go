package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
)

type variantService struct {
	BaseService
	variantRepo       portsrepo.VariantReader
	lowStockThreshold int
	placeholderImage  string
}

// NewVariantService creates the variant selector service. A non-positive
// threshold uses domain.DefaultLowStockThreshold.
func NewVariantService(repo portsrepo.VariantReader, lowStockThreshold int, placeholderImage string) portssvc.VariantSvc {
	if lowStockThreshold <= 0 {
		lowStockThreshold = domain.DefaultLowStockThreshold
	}
	return &variantService{
		variantRepo:       repo,
		lowStockThreshold: lowStockThreshold,
		placeholderImage:  placeholderImage,
	}
}

var _ portssvc.VariantSvc = (*variantService)(nil)

func (s *variantService) GetVariantViews(ctx context.Context, productID, selectedID string) ([]domain.VariantView, error) {
	if productID == "" {
		return nil, validationError("product id is required")
	}
	variants, err := s.variantRepo.ListVariantsByProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch variants", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to get variants for product %s: %w", productID, err)
	}

	views := make([]domain.VariantView, 0, len(variants))
	for _, v := range variants {
		views = append(views, domain.NewVariantView(v, s.lowStockThreshold, s.placeholderImage, selectedID))
	}
	return views, nil
}
