package handlers_test

import (
	"context"

	"github.com/SscSPs/storefront/internal/core/domain"
	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock SubscriptionService ---
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) actionResult(args mock.Arguments) (*domain.ActionResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActionResult), args.Error(1)
}

func (m *MockSubscriptionService) ListSubscriptions(ctx context.Context, customerID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) RefreshSubscriptions(ctx context.Context, customerID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) GetSubscriptionDetails(ctx context.Context, customerID, subscriptionID string) (*domain.SubscriptionDetails, error) {
	args := m.Called(ctx, customerID, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionDetails), args.Error(1)
}

func (m *MockSubscriptionService) CreateSubscription(ctx context.Context, customerID string, input domain.CreateSubscriptionInput) (*domain.ActionResult, error) {
	return m.actionResult(m.Called(ctx, customerID, input))
}

func (m *MockSubscriptionService) UpdateSubscription(ctx context.Context, customerID, subscriptionID string, input domain.UpdateSubscriptionInput) (*domain.ActionResult, error) {
	return m.actionResult(m.Called(ctx, customerID, subscriptionID, input))
}

func (m *MockSubscriptionService) DeleteSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error) {
	return m.actionResult(m.Called(ctx, customerID, subscriptionID))
}

func (m *MockSubscriptionService) PauseSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error) {
	return m.actionResult(m.Called(ctx, customerID, subscriptionID))
}

func (m *MockSubscriptionService) ResumeSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error) {
	return m.actionResult(m.Called(ctx, customerID, subscriptionID))
}

func (m *MockSubscriptionService) CancelSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error) {
	return m.actionResult(m.Called(ctx, customerID, subscriptionID))
}

func (m *MockSubscriptionService) ReactivateSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error) {
	return m.actionResult(m.Called(ctx, customerID, subscriptionID))
}

func (m *MockSubscriptionService) SetAutoRenew(ctx context.Context, customerID, subscriptionID string, enabled bool) (*domain.ActionResult, error) {
	return m.actionResult(m.Called(ctx, customerID, subscriptionID, enabled))
}

func (m *MockSubscriptionService) AddProduct(ctx context.Context, customerID, subscriptionID, productID string, quantity int) (*domain.ActionResult, error) {
	return m.actionResult(m.Called(ctx, customerID, subscriptionID, productID, quantity))
}

func (m *MockSubscriptionService) RemoveProduct(ctx context.Context, customerID, subscriptionID, productID string) (*domain.ActionResult, error) {
	return m.actionResult(m.Called(ctx, customerID, subscriptionID, productID))
}

// Ensure mock implements the interface
var _ portssvc.SubscriptionSvcFacade = (*MockSubscriptionService)(nil)

// --- Mock ReviewService ---
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) GetProductReviews(ctx context.Context, productID string, query domain.ReviewQuery) (*domain.ReviewPage, error) {
	args := m.Called(ctx, productID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewPage), args.Error(1)
}

func (m *MockReviewService) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) CreateReview(ctx context.Context, customerID string, input domain.CreateReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, customerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) UpdateReview(ctx context.Context, customerID, reviewID string, input domain.UpdateReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, customerID, reviewID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, customerID, reviewID string) error {
	args := m.Called(ctx, customerID, reviewID)
	return args.Error(0)
}

var _ portssvc.ReviewSvcFacade = (*MockReviewService)(nil)

// --- Mock VariantService ---
type MockVariantService struct {
	mock.Mock
}

func (m *MockVariantService) GetVariantViews(ctx context.Context, productID, selectedID string) ([]domain.VariantView, error) {
	args := m.Called(ctx, productID, selectedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VariantView), args.Error(1)
}

var _ portssvc.VariantSvc = (*MockVariantService)(nil)

// --- Mock ActivityService ---
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) ListActivity(ctx context.Context, customerID string, limit int, nextToken *string) (*domain.ActivityPage, error) {
	args := m.Called(ctx, customerID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityPage), args.Error(1)
}

func (m *MockActivityService) RecentForSubscription(ctx context.Context, customerID, subscriptionID string, limit int) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, customerID, subscriptionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

func (m *MockActivityService) Record(ctx context.Context, customerID, subscriptionID string, action domain.SubscriptionAction, notice domain.Notice) error {
	args := m.Called(ctx, customerID, subscriptionID, action, notice)
	return args.Error(0)
}

var _ portssvc.ActivitySvcFacade = (*MockActivityService)(nil)

// --- Mock HealthChecker ---
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
