package dto

import (
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
	"github.com/SscSPs/storefront/internal/utils"
)

// CreateSubscriptionRequest defines the data needed to start a subscription.
type CreateSubscriptionRequest struct {
	Name         string                    `json:"name" binding:"required,max=120"`
	BillingCycle string                    `json:"billingCycle" binding:"required,oneof=weekly monthly quarterly yearly"`
	AutoRenew    bool                      `json:"autoRenew"`
	Products     []SubscriptionLineRequest `json:"products" binding:"required,min=1,dive"`
}

// SubscriptionLineRequest is one product requested on a new subscription.
type SubscriptionLineRequest struct {
	ProductID string `json:"productID" binding:"required"`
	VariantID string `json:"variantID,omitempty"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// ToInput converts the request into the service input. A missing quantity
// counts as one.
func (r CreateSubscriptionRequest) ToInput() domain.CreateSubscriptionInput {
	lines := make([]domain.SubscriptionLineInput, len(r.Products))
	for i, p := range r.Products {
		qty := p.Quantity
		if qty == 0 {
			qty = 1
		}
		lines[i] = domain.SubscriptionLineInput{ProductID: p.ProductID, VariantID: p.VariantID, Quantity: qty}
	}
	return domain.CreateSubscriptionInput{
		Name:         r.Name,
		BillingCycle: domain.BillingCycle(r.BillingCycle),
		AutoRenew:    r.AutoRenew,
		Products:     lines,
	}
}

// UpdateSubscriptionRequest defines the editable subscription fields.
type UpdateSubscriptionRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	BillingCycle *string `json:"billingCycle,omitempty" binding:"omitempty,oneof=weekly monthly quarterly yearly"`
}

func (r UpdateSubscriptionRequest) ToInput() domain.UpdateSubscriptionInput {
	input := domain.UpdateSubscriptionInput{Name: r.Name}
	if r.BillingCycle != nil {
		cycle := domain.BillingCycle(*r.BillingCycle)
		input.BillingCycle = &cycle
	}
	return input
}

// AutoRenewRequest sets the auto-renew flag.
type AutoRenewRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// AddProductRequest adds a product to an existing subscription.
type AddProductRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// NoticeResponse is the toast shown after an action.
type NoticeResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func ToNoticeResponse(n domain.Notice) NoticeResponse {
	return NoticeResponse{Kind: string(n.Kind), Message: n.Message}
}

// ErrorResponse is the body of every failed request. Notice is set for
// subscription mutations.
type ErrorResponse struct {
	Error  string          `json:"error"`
	Notice *NoticeResponse `json:"notice,omitempty"`
}

// AutoRenewResponse backs the auto-renew toggle.
type AutoRenewResponse struct {
	Enabled         bool   `json:"enabled"`
	Label           string `json:"label"`
	NextBillingText string `json:"nextBillingText,omitempty"`
	ToggleTarget    bool   `json:"toggleTarget"`
}

// BillingSummaryResponse carries amounts formatted with the currency's precision.
type BillingSummaryResponse struct {
	Subtotal  string `json:"subtotal"`
	Tax       string `json:"tax"`
	Shipping  string `json:"shipping"`
	Discounts string `json:"discounts"`
	Total     string `json:"total"`
	Currency  string `json:"currency"`
}

// SubscriptionProductResponse is a product line of a subscription.
type SubscriptionProductResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productID"`
	VariantID string `json:"variantID,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	ImageURL  string `json:"imageURL,omitempty"`
}

// SubscriptionResponse is a subscription card as rendered by the storefront.
type SubscriptionResponse struct {
	ID               string                        `json:"id"`
	Name             string                        `json:"name"`
	Status           string                        `json:"status"`
	StatusLabel      string                        `json:"statusLabel"`
	StatusColor      string                        `json:"statusColor"`
	BillingCycle     string                        `json:"billingCycle"`
	Price            string                        `json:"price"`
	Currency         string                        `json:"currency"`
	AutoRenew        AutoRenewResponse             `json:"autoRenew"`
	NextBillingDate  *time.Time                    `json:"nextBillingDate,omitempty"`
	ProductCount     int                           `json:"productCount"`
	Products         []SubscriptionProductResponse `json:"products"`
	BillingSummary   BillingSummaryResponse        `json:"billingSummary"`
	AvailableActions []string                      `json:"availableActions"`
	CreatedAt        time.Time                     `json:"createdAt"`
	UpdatedAt        time.Time                     `json:"updatedAt"`
}

// ToSubscriptionResponse derives the card fields from a subscription.
func ToSubscriptionResponse(s domain.Subscription) SubscriptionResponse {
	currency := s.CurrencyOrDefault()
	summary := s.Summary()
	autoRenew := domain.NewAutoRenewState(s.AutoRenew, s.NextBillingDate)

	products := make([]SubscriptionProductResponse, len(s.Products))
	for i, p := range s.Products {
		products[i] = SubscriptionProductResponse{
			ID:        p.ID,
			ProductID: p.ProductID,
			VariantID: p.VariantID,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Price:     utils.FormatWithCurrencyPrecision(p.Price, currency),
			ImageURL:  p.ImageURL,
		}
	}

	actions := domain.AvailableActions(s.Status)
	actionNames := make([]string, len(actions))
	for i, a := range actions {
		actionNames[i] = string(a)
	}

	return SubscriptionResponse{
		ID:           s.ID,
		Name:         s.Name,
		Status:       string(s.Status),
		StatusLabel:  domain.StatusLabel(s.Status),
		StatusColor:  domain.StatusColor(s.Status),
		BillingCycle: string(s.BillingCycle),
		Price:        utils.FormatWithCurrencyPrecision(s.Price, currency),
		Currency:     currency,
		AutoRenew: AutoRenewResponse{
			Enabled:         autoRenew.Enabled,
			Label:           autoRenew.Label,
			NextBillingText: autoRenew.NextBillingText,
			ToggleTarget:    autoRenew.ToggleTarget(),
		},
		NextBillingDate: s.NextBillingDate,
		ProductCount:    s.ProductCount(),
		Products:        products,
		BillingSummary: BillingSummaryResponse{
			Subtotal:  utils.FormatWithCurrencyPrecision(summary.Subtotal, currency),
			Tax:       utils.FormatWithCurrencyPrecision(summary.Tax, currency),
			Shipping:  utils.FormatWithCurrencyPrecision(summary.Shipping, currency),
			Discounts: utils.FormatWithCurrencyPrecision(summary.Discounts, currency),
			Total:     utils.FormatWithCurrencyPrecision(summary.Total, currency),
			Currency:  currency,
		},
		AvailableActions: actionNames,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// ToSubscriptionResponses converts a list, returning an empty slice for nil.
func ToSubscriptionResponses(subs []domain.Subscription) []SubscriptionResponse {
	res := make([]SubscriptionResponse, len(subs))
	for i, s := range subs {
		res[i] = ToSubscriptionResponse(s)
	}
	return res
}

// ListSubscriptionsResponse wraps the customer's subscriptions.
type ListSubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// SubscriptionDetailsResponse backs the details page.
type SubscriptionDetailsResponse struct {
	Subscription   SubscriptionResponse    `json:"subscription"`
	RecentActivity []ActivityEntryResponse `json:"recentActivity"`
}

func ToSubscriptionDetailsResponse(d *domain.SubscriptionDetails) SubscriptionDetailsResponse {
	return SubscriptionDetailsResponse{
		Subscription:   ToSubscriptionResponse(d.Subscription),
		RecentActivity: ToActivityEntryResponses(d.RecentActivity),
	}
}

// ActionResponse is returned by every subscription mutation. Subscriptions
// is omitted when the refresh after the action failed.
type ActionResponse struct {
	Action        string                 `json:"action"`
	Subscription  *SubscriptionResponse  `json:"subscription,omitempty"`
	Subscriptions []SubscriptionResponse `json:"subscriptions,omitempty"`
	Notice        NoticeResponse         `json:"notice"`
}

func ToActionResponse(r *domain.ActionResult) ActionResponse {
	res := ActionResponse{
		Action: string(r.Action),
		Notice: ToNoticeResponse(r.Notice),
	}
	if r.Subscription != nil {
		sub := ToSubscriptionResponse(*r.Subscription)
		res.Subscription = &sub
	}
	if r.Subscriptions != nil {
		res.Subscriptions = ToSubscriptionResponses(r.Subscriptions)
	}
	return res
}

// ConfirmationResponse is the content of a confirmation modal. Required is
// false for actions that run without one.
type ConfirmationResponse struct {
	Action       string `json:"action"`
	Required     bool   `json:"required"`
	Title        string `json:"title,omitempty"`
	Message      string `json:"message,omitempty"`
	ConfirmLabel string `json:"confirmLabel,omitempty"`
	Destructive  bool   `json:"destructive"`
}

func ToConfirmationResponse(action domain.SubscriptionAction, p domain.ConfirmationPrompt, required bool) ConfirmationResponse {
	return ConfirmationResponse{
		Action:       string(action),
		Required:     required,
		Title:        p.Title,
		Message:      p.Message,
		ConfirmLabel: p.ConfirmLabel,
		Destructive:  p.Destructive,
	}
}
