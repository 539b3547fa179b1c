package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

var assertErr = errors.New("boom")

// --- Mock ReviewRepository ---
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindReviewsByProduct(ctx context.Context, productID string, query domain.ReviewQuery) (*domain.ReviewPage, error) {
	args := m.Called(ctx, productID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewPage), args.Error(1)
}

func (m *MockReviewRepository) FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) SaveReview(ctx context.Context, customerID string, input domain.CreateReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, customerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateReview(ctx context.Context, customerID, reviewID string, input domain.UpdateReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, customerID, reviewID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, customerID, reviewID string) error {
	args := m.Called(ctx, customerID, reviewID)
	return args.Error(0)
}

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) subscriptionResult(args mock.Arguments) (*domain.Subscription, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscriptions(ctx context.Context, customerID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) FindSubscriptionByID(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error) {
	return m.subscriptionResult(m.Called(ctx, customerID, subscriptionID))
}

func (m *MockSubscriptionRepository) SaveSubscription(ctx context.Context, customerID string, input domain.CreateSubscriptionInput) (*domain.Subscription, error) {
	return m.subscriptionResult(m.Called(ctx, customerID, input))
}

func (m *MockSubscriptionRepository) UpdateSubscription(ctx context.Context, customerID, subscriptionID string, input domain.UpdateSubscriptionInput) (*domain.Subscription, error) {
	return m.subscriptionResult(m.Called(ctx, customerID, subscriptionID, input))
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, customerID, subscriptionID string) error {
	args := m.Called(ctx, customerID, subscriptionID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) PauseSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error) {
	return m.subscriptionResult(m.Called(ctx, customerID, subscriptionID))
}

func (m *MockSubscriptionRepository) ResumeSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error) {
	return m.subscriptionResult(m.Called(ctx, customerID, subscriptionID))
}

func (m *MockSubscriptionRepository) CancelSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error) {
	return m.subscriptionResult(m.Called(ctx, customerID, subscriptionID))
}

func (m *MockSubscriptionRepository) ReactivateSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error) {
	return m.subscriptionResult(m.Called(ctx, customerID, subscriptionID))
}

func (m *MockSubscriptionRepository) SetAutoRenew(ctx context.Context, customerID, subscriptionID string, enabled bool) (*domain.Subscription, error) {
	return m.subscriptionResult(m.Called(ctx, customerID, subscriptionID, enabled))
}

func (m *MockSubscriptionRepository) AddProduct(ctx context.Context, customerID, subscriptionID, productID string, quantity int) (*domain.Subscription, error) {
	return m.subscriptionResult(m.Called(ctx, customerID, subscriptionID, productID, quantity))
}

func (m *MockSubscriptionRepository) RemoveProduct(ctx context.Context, customerID, subscriptionID, productID string) (*domain.Subscription, error) {
	return m.subscriptionResult(m.Called(ctx, customerID, subscriptionID, productID))
}

// --- Mock SubscriptionCache ---
type MockSubscriptionCache struct {
	mock.Mock
}

func (m *MockSubscriptionCache) Get(ctx context.Context, customerID string) ([]domain.Subscription, bool, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Subscription), args.Bool(1), args.Error(2)
}

func (m *MockSubscriptionCache) Set(ctx context.Context, customerID string, subscriptions []domain.Subscription, ttl time.Duration) error {
	args := m.Called(ctx, customerID, subscriptions, ttl)
	return args.Error(0)
}

func (m *MockSubscriptionCache) Invalidate(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Mock ActivityRepository ---
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) SaveActivity(ctx context.Context, entry domain.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) ListActivity(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.ActivityEntry, *string, error) {
	args := m.Called(ctx, customerID, limit, nextToken)
	var entries []domain.ActivityEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ActivityEntry)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}

func (m *MockActivityRepository) ListActivityBySubscription(ctx context.Context, customerID, subscriptionID string, limit int) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, customerID, subscriptionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

// --- Mock VariantRepository ---
type MockVariantRepository struct {
	mock.Mock
}

func (m *MockVariantRepository) ListVariantsByProduct(ctx context.Context, productID string) ([]domain.Variant, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Variant), args.Error(1)
}
