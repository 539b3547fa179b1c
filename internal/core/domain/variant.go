package domain

import "github.com/shopspring/decimal"

// Variant is a purchasable version of a product (size, colour, pack).
type Variant struct {
	ID         string            `json:"id"`
	ProductID  string            `json:"product_id"`
	Name       string            `json:"name"`
	SKU        string            `json:"sku,omitempty"`
	Price      decimal.Decimal   `json:"price"`
	SalePrice  *decimal.Decimal  `json:"sale_price,omitempty"`
	Currency   string            `json:"currency,omitempty"`
	Stock      int               `json:"stock"`
	ImageURL   string            `json:"image_url,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// StockStatus is the badge shown next to a variant.
type StockStatus string

const (
	InStock    StockStatus = "in_stock"
	LowStock   StockStatus = "low_stock"
	OutOfStock StockStatus = "out_of_stock"
)

// DefaultLowStockThreshold applies when no threshold is configured.
const DefaultLowStockThreshold = 5

var hundred = decimal.NewFromInt(100)

// OnSale reports whether a sale price below the list price is set.
func (v Variant) OnSale() bool {
	return v.SalePrice != nil && v.Price.IsPositive() && v.SalePrice.LessThan(v.Price)
}

// EffectivePrice is the sale price while on sale, else the list price.
func (v Variant) EffectivePrice() decimal.Decimal {
	if v.OnSale() {
		return *v.SalePrice
	}
	return v.Price
}

// DiscountPercent is round((price - sale_price) / price * 100), or 0 when not on sale.
func (v Variant) DiscountPercent() int64 {
	if !v.OnSale() {
		return 0
	}
	return v.Price.Sub(*v.SalePrice).Div(v.Price).Mul(hundred).Round(0).IntPart()
}

// StockStatusFor classifies a stock level. Non-positive thresholds fall back
// to DefaultLowStockThreshold.
func StockStatusFor(stock, lowStockThreshold int) StockStatus {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	switch {
	case stock <= 0:
		return OutOfStock
	case stock <= lowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

// Purchasable reports whether the variant can be added to a cart.
func (v Variant) Purchasable() bool {
	return v.Stock > 0
}

// VariantView is a variant as rendered by the selector.
type VariantView struct {
	Variant         Variant
	EffectivePrice  decimal.Decimal
	DiscountPercent int64
	StockStatus     StockStatus
	ImageURL        string
	Selected        bool
}

// NewVariantView derives the selector fields for v. An empty image falls back
// to placeholderImage.
func NewVariantView(v Variant, lowStockThreshold int, placeholderImage, selectedID string) VariantView {
	image := v.ImageURL
	if image == "" {
		image = placeholderImage
	}
	return VariantView{
		Variant:         v,
		EffectivePrice:  v.EffectivePrice(),
		DiscountPercent: v.DiscountPercent(),
		StockStatus:     StockStatusFor(v.Stock, lowStockThreshold),
		ImageURL:        image,
		Selected:        selectedID != "" && v.ID == selectedID,
	}
}
