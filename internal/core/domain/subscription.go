package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus is owned by the store API; the storefront only reflects it.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusPaused    SubscriptionStatus = "paused"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
)

// BillingCycle is the cadence a subscription is charged at.
type BillingCycle string

const (
	BillingWeekly    BillingCycle = "weekly"
	BillingMonthly   BillingCycle = "monthly"
	BillingQuarterly BillingCycle = "quarterly"
	BillingYearly    BillingCycle = "yearly"
)

// SubscriptionProduct is a product line within a subscription.
type SubscriptionProduct struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id,omitempty"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url,omitempty"`
}

// Discount is an amount taken off a subscription's billing total.
type Discount struct {
	Code        string          `json:"code,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// Subscription is the store API's view of a customer subscription. Money
// fields absent from the payload decode as zero.
type Subscription struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Status          SubscriptionStatus    `json:"status"`
	BillingCycle    BillingCycle          `json:"billing_cycle"`
	Price           decimal.Decimal       `json:"price"`
	Currency        string                `json:"currency"`
	AutoRenew       bool                  `json:"auto_renew"`
	NextBillingDate *time.Time            `json:"next_billing_date,omitempty"`
	Products        []SubscriptionProduct `json:"products,omitempty"`
	Discounts       []Discount            `json:"discounts,omitempty"`
	TaxAmount       decimal.Decimal       `json:"tax_amount"`
	ShippingAmount  decimal.Decimal       `json:"shipping_amount"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// BillingSummary is the breakdown shown under an expanded subscription.
type BillingSummary struct {
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Shipping  decimal.Decimal
	Discounts decimal.Decimal
	Total     decimal.Decimal
	Currency  string
}

// DiscountTotal sums every discount amount.
func (s Subscription) DiscountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range s.Discounts {
		total = total.Add(d.Amount)
	}
	return total
}

// Summary computes price + tax + shipping - discounts. It is display-only;
// the store API remains the source of truth for what is charged.
func (s Subscription) Summary() BillingSummary {
	discounts := s.DiscountTotal()
	return BillingSummary{
		Subtotal:  s.Price,
		Tax:       s.TaxAmount,
		Shipping:  s.ShippingAmount,
		Discounts: discounts,
		Total:     s.Price.Add(s.TaxAmount).Add(s.ShippingAmount).Sub(discounts),
		Currency:  s.CurrencyOrDefault(),
	}
}

// CurrencyOrDefault returns the subscription currency, or USD when unset.
func (s Subscription) CurrencyOrDefault() string {
	if s.Currency == "" {
		return DefaultCurrency
	}
	return s.Currency
}

// ProductCount sums product quantities; a line without a quantity counts once.
func (s Subscription) ProductCount() int {
	n := 0
	for _, p := range s.Products {
		if p.Quantity > 0 {
			n += p.Quantity
		} else {
			n++
		}
	}
	return n
}

// HasProduct reports whether productID is already part of the subscription.
func (s Subscription) HasProduct(productID string) bool {
	for _, p := range s.Products {
		if p.ProductID == productID {
			return true
		}
	}
	return false
}

// StatusColor maps a status to the badge colour used by the storefront.
func StatusColor(status SubscriptionStatus) string {
	switch status {
	case StatusActive:
		return "green"
	case StatusPaused:
		return "yellow"
	case StatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

// StatusLabel is the human-readable form of a status.
func StatusLabel(status SubscriptionStatus) string {
	switch status {
	case StatusActive:
		return "Active"
	case StatusPaused:
		return "Paused"
	case StatusCancelled:
		return "Cancelled"
	case StatusExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// AvailableActions lists the card actions shown for a status. It does not
// validate transitions; the store API accepts or rejects each call.
func AvailableActions(status SubscriptionStatus) []SubscriptionAction {
	switch status {
	case StatusActive:
		return []SubscriptionAction{ActionPause, ActionCancel, ActionDelete}
	case StatusPaused:
		return []SubscriptionAction{ActionResume, ActionCancel, ActionDelete}
	case StatusCancelled, StatusExpired:
		return []SubscriptionAction{ActionReactivate, ActionDelete}
	default:
		return []SubscriptionAction{ActionDelete}
	}
}

// AutoRenewState backs the auto-renew toggle.
type AutoRenewState struct {
	Enabled         bool
	Label           string
	NextBillingText string
}

const billingDateLayout = "January 2, 2006"

// NewAutoRenewState builds the toggle state. The next billing line is only
// shown while auto-renew is on.
func NewAutoRenewState(enabled bool, nextBilling *time.Time) AutoRenewState {
	state := AutoRenewState{Enabled: enabled, Label: "Auto-renew disabled"}
	if enabled {
		state.Label = "Auto-renew enabled"
		if nextBilling != nil && !nextBilling.IsZero() {
			state.NextBillingText = "Next billing: " + FormatBillingDate(*nextBilling)
		}
	}
	return state
}

// ToggleTarget is the value sent when the toggle is flipped.
func (a AutoRenewState) ToggleTarget() bool {
	return !a.Enabled
}

// FormatBillingDate renders a date as "January 2, 2006".
func FormatBillingDate(t time.Time) string {
	return t.Format(billingDateLayout)
}

// CreateSubscriptionInput starts a new subscription for the customer.
type CreateSubscriptionInput struct {
	Name         string                  `json:"name" validate:"required,max=120"`
	BillingCycle BillingCycle            `json:"billing_cycle" validate:"required,oneof=weekly monthly quarterly yearly"`
	AutoRenew    bool                    `json:"auto_renew"`
	Products     []SubscriptionLineInput `json:"products" validate:"required,min=1,dive"`
}

// SubscriptionLineInput is a product requested on a new subscription.
type SubscriptionLineInput struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// UpdateSubscriptionInput patches editable subscription fields; nil fields
// are not sent.
type UpdateSubscriptionInput struct {
	Name         *string       `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	BillingCycle *BillingCycle `json:"billing_cycle,omitempty" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
}

// IsEmpty reports whether the update changes nothing.
func (u UpdateSubscriptionInput) IsEmpty() bool {
	return u.Name == nil && u.BillingCycle == nil
}

// SubscriptionDetails backs the subscription details page.
type SubscriptionDetails struct {
	Subscription   Subscription
	RecentActivity []ActivityEntry
}

// ActionResult is what a subscription mutation hands back to the page: the
// affected subscription (nil after delete), the refreshed list and the notice.
type ActionResult struct {
	Action        SubscriptionAction
	Subscription  *Subscription
	Subscriptions []Subscription
	Notice        Notice
}
