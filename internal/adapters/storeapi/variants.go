package storeapi

import (
	"context"
	"net/http"

	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
)

// ProductsAPI wraps the product catalogue endpoints the storefront needs.
type ProductsAPI struct {
	client *Client
}

// NewProductsAPI creates the products wrapper.
func NewProductsAPI(client *Client) *ProductsAPI {
	return &ProductsAPI{client: client}
}

var _ portsrepo.VariantReader = (*ProductsAPI)(nil)

// ListVariantsByProduct fetches a product's variants.
func (a *ProductsAPI) ListVariantsByProduct(ctx context.Context, productID string) ([]domain.Variant, error) {
	var variants []domain.Variant
	err := a.client.do(ctx, request{
		resource: resourceVariants,
		method:   http.MethodGet,
		path:     variantsPath(productID),
	}, &variants)
	if err != nil {
		return nil, err
	}
	if variants == nil {
		variants = []domain.Variant{}
	}
	return variants, nil
}
