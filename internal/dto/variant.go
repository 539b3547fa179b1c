package dto

import (
	"github.com/SscSPs/storefront/internal/core/domain"
	"github.com/SscSPs/storefront/internal/utils"
)

// VariantResponse is one option of the variant selector.
type VariantResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	SKU             string            `json:"sku,omitempty"`
	Price           string            `json:"price"`
	SalePrice       *string           `json:"salePrice,omitempty"`
	EffectivePrice  string            `json:"effectivePrice"`
	Currency        string            `json:"currency"`
	DiscountPercent int64             `json:"discountPercent"`
	Stock           int               `json:"stock"`
	StockStatus     string            `json:"stockStatus"`
	Purchasable     bool              `json:"purchasable"`
	ImageURL        string            `json:"imageURL"`
	Attributes      map[string]string `json:"attributes,omitempty"`
	Selected        bool              `json:"selected"`
}

func ToVariantResponse(v domain.VariantView) VariantResponse {
	currency := v.Variant.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	res := VariantResponse{
		ID:              v.Variant.ID,
		Name:            v.Variant.Name,
		SKU:             v.Variant.SKU,
		Price:           utils.FormatWithCurrencyPrecision(v.Variant.Price, currency),
		EffectivePrice:  utils.FormatWithCurrencyPrecision(v.EffectivePrice, currency),
		Currency:        currency,
		DiscountPercent: v.DiscountPercent,
		Stock:           v.Variant.Stock,
		StockStatus:     string(v.StockStatus),
		Purchasable:     v.Variant.Purchasable(),
		ImageURL:        v.ImageURL,
		Attributes:      v.Variant.Attributes,
		Selected:        v.Selected,
	}
	if v.Variant.OnSale() {
		sale := utils.FormatWithCurrencyPrecision(*v.Variant.SalePrice, currency)
		res.SalePrice = &sale
	}
	return res
}

// ListVariantsResponse wraps a product's variants.
type ListVariantsResponse struct {
	ProductID string            `json:"productID"`
	Variants  []VariantResponse `json:"variants"`
}

func ToListVariantsResponse(productID string, views []domain.VariantView) ListVariantsResponse {
	variants := make([]VariantResponse, len(views))
	for i, v := range views {
		variants[i] = ToVariantResponse(v)
	}
	return ListVariantsResponse{ProductID: productID, Variants: variants}
}
