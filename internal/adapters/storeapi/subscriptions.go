package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
)

// SubscriptionAPI wraps the /v1/subscriptions/ endpoints. Every call is made
// on behalf of a customer.
type SubscriptionAPI struct {
	client *Client
}

// NewSubscriptionAPI creates the subscriptions wrapper.
func NewSubscriptionAPI(client *Client) *SubscriptionAPI {
	return &SubscriptionAPI{client: client}
}

var _ portsrepo.SubscriptionRepositoryFacade = (*SubscriptionAPI)(nil)

// subscriptionList accepts either a bare JSON array or a paginated
// {"results": [...]} envelope.
type subscriptionList []domain.Subscription

func (l *subscriptionList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		var items []domain.Subscription
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var page struct {
		Results []domain.Subscription `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return err
	}
	*l = page.Results
	return nil
}

// ListSubscriptions fetches every subscription of the customer.
func (a *SubscriptionAPI) ListSubscriptions(ctx context.Context, customerID string) ([]domain.Subscription, error) {
	var list subscriptionList
	err := a.client.do(ctx, request{
		resource:   resourceSubscriptions,
		method:     http.MethodGet,
		path:       subscriptionsPath(),
		customerID: customerID,
	}, &list)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return []domain.Subscription{}, nil
	}
	return list, nil
}

// FindSubscriptionByID fetches one subscription.
func (a *SubscriptionAPI) FindSubscriptionByID(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error) {
	return a.call(ctx, http.MethodGet, customerID, subscriptionPath(subscriptionID), nil)
}

// SaveSubscription creates a subscription.
func (a *SubscriptionAPI) SaveSubscription(ctx context.Context, customerID string, input domain.CreateSubscriptionInput) (*domain.Subscription, error) {
	return a.call(ctx, http.MethodPost, customerID, subscriptionsPath(), input)
}

// UpdateSubscription patches editable fields.
func (a *SubscriptionAPI) UpdateSubscription(ctx context.Context, customerID, subscriptionID string, input domain.UpdateSubscriptionInput) (*domain.Subscription, error) {
	return a.call(ctx, http.MethodPatch, customerID, subscriptionPath(subscriptionID), input)
}

// DeleteSubscription removes a subscription permanently.
func (a *SubscriptionAPI) DeleteSubscription(ctx context.Context, customerID, subscriptionID string) error {
	return a.client.do(ctx, request{
		resource:   resourceSubscriptions,
		method:     http.MethodDelete,
		path:       subscriptionPath(subscriptionID),
		customerID: customerID,
	}, nil)
}

func (a *SubscriptionAPI) PauseSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error) {
	return a.call(ctx, http.MethodPost, customerID, subscriptionPath(subscriptionID, "pause"), nil)
}

func (a *SubscriptionAPI) ResumeSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error) {
	return a.call(ctx, http.MethodPost, customerID, subscriptionPath(subscriptionID, "resume"), nil)
}

func (a *SubscriptionAPI) CancelSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error) {
	return a.call(ctx, http.MethodPost, customerID, subscriptionPath(subscriptionID, "cancel"), nil)
}

func (a *SubscriptionAPI) ReactivateSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error) {
	return a.call(ctx, http.MethodPost, customerID, subscriptionPath(subscriptionID, "reactivate"), nil)
}

type autoRenewBody struct {
	AutoRenew bool `json:"auto_renew"`
}

// SetAutoRenew turns automatic renewal on or off.
func (a *SubscriptionAPI) SetAutoRenew(ctx context.Context, customerID, subscriptionID string, enabled bool) (*domain.Subscription, error) {
	return a.call(ctx, http.MethodPatch, customerID, subscriptionPath(subscriptionID, "auto-renew"), autoRenewBody{AutoRenew: enabled})
}

type addProductBody struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddProduct adds a product line to the subscription.
func (a *SubscriptionAPI) AddProduct(ctx context.Context, customerID, subscriptionID, productID string, quantity int) (*domain.Subscription, error) {
	return a.call(ctx, http.MethodPost, customerID, subscriptionPath(subscriptionID, "products"), addProductBody{ProductID: productID, Quantity: quantity})
}

// RemoveProduct drops a product line from the subscription.
func (a *SubscriptionAPI) RemoveProduct(ctx context.Context, customerID, subscriptionID, productID string) (*domain.Subscription, error) {
	return a.call(ctx, http.MethodDelete, customerID, subscriptionPath(subscriptionID, "products", productID), nil)
}

// call performs a request answered with a subscription. An empty 2xx body
// yields a nil subscription.
func (a *SubscriptionAPI) call(ctx context.Context, method, customerID, path string, body any) (*domain.Subscription, error) {
	var sub *domain.Subscription
	err := a.client.do(ctx, request{
		resource:   resourceSubscriptions,
		method:     method,
		path:       path,
		customerID: customerID,
		body:       body,
	}, &sub)
	if err != nil {
		return nil, err
	}
	return sub, nil
}
