package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
	"github.com/SscSPs/storefront/internal/observability/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSubscriptionCacheTTL = 5 * time.Minute
	recentActivityLimit         = 10
)

// subscriptionService caches each customer's subscription list and refreshes
// it wholesale after every mutation. It never validates status transitions;
// the store API accepts or rejects each call.
type subscriptionService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
	cache            portsrepo.SubscriptionCache
	cacheTTL         time.Duration
	activity         portssvc.ActivitySvcFacade
}

// SubscriptionServiceOption is a functional option for configuring the subscription service
type SubscriptionServiceOption func(*subscriptionService)

// WithSubscriptionCache enables list caching. A non-positive ttl uses five minutes.
func WithSubscriptionCache(cache portsrepo.SubscriptionCache, ttl time.Duration) SubscriptionServiceOption {
	return func(s *subscriptionService) {
		s.cache = cache
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithActivityService records the notice of every mutation.
func WithActivityService(activity portssvc.ActivitySvcFacade) SubscriptionServiceOption {
	return func(s *subscriptionService) {
		s.activity = activity
	}
}

// NewSubscriptionService creates the subscription service with the provided options
func NewSubscriptionService(repo portsrepo.SubscriptionRepositoryFacade, options ...SubscriptionServiceOption) portssvc.SubscriptionSvcFacade {
	svc := &subscriptionService{
		subscriptionRepo: repo,
		cacheTTL:         defaultSubscriptionCacheTTL,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

func (s *subscriptionService) ListSubscriptions(ctx context.Context, customerID string) ([]domain.Subscription, error) {
	if s.cache != nil {
		subs, found, err := s.cache.Get(ctx, customerID)
		switch {
		case err != nil:
			s.LogError(ctx, err, "Subscription cache read failed, falling back to store API")
		case found:
			metrics.CacheHit()
			return subs, nil
		}
		metrics.CacheMiss()
	}
	return s.RefreshSubscriptions(ctx, customerID)
}

func (s *subscriptionService) RefreshSubscriptions(ctx context.Context, customerID string) ([]domain.Subscription, error) {
	subs, err := s.subscriptionRepo.ListSubscriptions(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch subscriptions")
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	if subs == nil {
		subs = []domain.Subscription{}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, customerID, subs, s.cacheTTL); err != nil {
			s.LogError(ctx, err, "Failed to cache subscriptions")
		}
	}
	return subs, nil
}

func (s *subscriptionService) GetSubscriptionDetails(ctx context.Context, customerID, subscriptionID string) (*domain.SubscriptionDetails, error) {
	if subscriptionID == "" {
		return nil, validationError("subscription id is required")
	}

	var (
		sub      *domain.Subscription
		activity []domain.ActivityEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.subscriptionRepo.FindSubscriptionByID(gctx, customerID, subscriptionID)
		if err != nil {
			return err
		}
		sub = found
		return nil
	})
	if s.activity != nil {
		g.Go(func() error {
			entries, err := s.activity.RecentForSubscription(gctx, customerID, subscriptionID, recentActivityLimit)
			if err != nil {
				// The page still renders without its activity panel.
				s.LogError(ctx, err, "Failed to load subscription activity", slog.String("subscription_id", subscriptionID))
				return nil
			}
			activity = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to fetch subscription", slog.String("subscription_id", subscriptionID))
		return nil, fmt.Errorf("failed to get subscription %s: %w", subscriptionID, err)
	}
	if sub == nil {
		return nil, fmt.Errorf("failed to get subscription %s: %w", subscriptionID, notFound("subscription"))
	}
	if activity == nil {
		activity = []domain.ActivityEntry{}
	}
	return &domain.SubscriptionDetails{Subscription: *sub, RecentActivity: activity}, nil
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, customerID string, input domain.CreateSubscriptionInput) (*domain.ActionResult, error) {
	if err := s.ValidateStruct(input); err != nil {
		return nil, err
	}
	return s.mutate(ctx, customerID, "", domain.ActionCreate, func(ctx context.Context) (*domain.Subscription, error) {
		return s.subscriptionRepo.SaveSubscription(ctx, customerID, input)
	})
}

func (s *subscriptionService) UpdateSubscription(ctx context.Context, customerID, subscriptionID string, input domain.UpdateSubscriptionInput) (*domain.ActionResult, error) {
	if subscriptionID == "" {
		return nil, validationError("subscription id is required")
	}
	if input.IsEmpty() {
		return nil, validationError("at least one of name or billing_cycle is required")
	}
	if err := s.ValidateStruct(input); err != nil {
		return nil, err
	}
	return s.mutate(ctx, customerID, subscriptionID, domain.ActionUpdate, func(ctx context.Context) (*domain.Subscription, error) {
		return s.subscriptionRepo.UpdateSubscription(ctx, customerID, subscriptionID, input)
	})
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error) {
	if subscriptionID == "" {
		return nil, validationError("subscription id is required")
	}
	return s.mutate(ctx, customerID, subscriptionID, domain.ActionDelete, func(ctx context.Context) (*domain.Subscription, error) {
		return nil, s.subscriptionRepo.DeleteSubscription(ctx, customerID, subscriptionID)
	})
}

func (s *subscriptionService) PauseSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error) {
	return s.lifecycle(ctx, customerID, subscriptionID, domain.ActionPause, s.subscriptionRepo.PauseSubscription)
}

func (s *subscriptionService) ResumeSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error) {
	return s.lifecycle(ctx, customerID, subscriptionID, domain.ActionResume, s.subscriptionRepo.ResumeSubscription)
}

func (s *subscriptionService) CancelSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error) {
	return s.lifecycle(ctx, customerID, subscriptionID, domain.ActionCancel, s.subscriptionRepo.CancelSubscription)
}

func (s *subscriptionService) ReactivateSubscription(ctx context.Context, customerID, subscriptionID string) (*domain.ActionResult, error) {
	return s.lifecycle(ctx, customerID, subscriptionID, domain.ActionReactivate, s.subscriptionRepo.ReactivateSubscription)
}

func (s *subscriptionService) SetAutoRenew(ctx context.Context, customerID, subscriptionID string, enabled bool) (*domain.ActionResult, error) {
	if subscriptionID == "" {
		return nil, validationError("subscription id is required")
	}
	return s.mutate(ctx, customerID, subscriptionID, domain.ActionAutoRenew, func(ctx context.Context) (*domain.Subscription, error) {
		return s.subscriptionRepo.SetAutoRenew(ctx, customerID, subscriptionID, enabled)
	})
}

func (s *subscriptionService) AddProduct(ctx context.Context, customerID, subscriptionID, productID string, quantity int) (*domain.ActionResult, error) {
	if subscriptionID == "" || productID == "" {
		return nil, validationError("subscription id and product id are required")
	}
	if quantity < 0 {
		return nil, validationError("quantity must be positive")
	}
	if quantity == 0 {
		quantity = 1
	}
	return s.mutate(ctx, customerID, subscriptionID, domain.ActionAddProduct, func(ctx context.Context) (*domain.Subscription, error) {
		return s.subscriptionRepo.AddProduct(ctx, customerID, subscriptionID, productID, quantity)
	})
}

func (s *subscriptionService) RemoveProduct(ctx context.Context, customerID, subscriptionID, productID string) (*domain.ActionResult, error) {
	if subscriptionID == "" || productID == "" {
		return nil, validationError("subscription id and product id are required")
	}
	return s.mutate(ctx, customerID, subscriptionID, domain.ActionRemoveProduct, func(ctx context.Context) (*domain.Subscription, error) {
		return s.subscriptionRepo.RemoveProduct(ctx, customerID, subscriptionID, productID)
	})
}

type lifecycleCall func(ctx context.Context, customerID, subscriptionID string) (*domain.Subscription, error)

func (s *subscriptionService) lifecycle(ctx context.Context, customerID, subscriptionID string, action domain.SubscriptionAction, call lifecycleCall) (*domain.ActionResult, error) {
	if subscriptionID == "" {
		return nil, validationError("subscription id is required")
	}
	return s.mutate(ctx, customerID, subscriptionID, action, func(ctx context.Context) (*domain.Subscription, error) {
		return call(ctx, customerID, subscriptionID)
	})
}

// mutate runs call, records the outcome and, on success, refreshes the
// cached list. Failures stop there: no refresh, no retry.
func (s *subscriptionService) mutate(ctx context.Context, customerID, subscriptionID string, action domain.SubscriptionAction, call func(ctx context.Context) (*domain.Subscription, error)) (*domain.ActionResult, error) {
	logger := s.GetLogger(ctx).With(slog.String("action", string(action)), slog.String("subscription_id", subscriptionID))

	sub, err := call(ctx)
	if err != nil {
		logger.Error("Subscription action failed", slog.String("error", err.Error()))
		metrics.ObserveSubscriptionAction(string(action), string(domain.OutcomeFailure))
		s.record(ctx, customerID, subscriptionID, action, domain.ErrorNotice(action))
		return nil, fmt.Errorf("failed to %s subscription: %w", action, err)
	}

	if subscriptionID == "" && sub != nil {
		subscriptionID = sub.ID
	}
	notice := domain.SuccessNotice(action)
	metrics.ObserveSubscriptionAction(string(action), string(domain.OutcomeSuccess))
	s.record(ctx, customerID, subscriptionID, action, notice)
	logger.Info("Subscription action succeeded")

	subs, err := s.RefreshSubscriptions(ctx, customerID)
	if err != nil {
		// The mutation went through; drop the stale list so the next read refetches.
		if s.cache != nil {
			if invErr := s.cache.Invalidate(ctx, customerID); invErr != nil {
				s.LogError(ctx, invErr, "Failed to invalidate subscription cache")
			}
		}
		subs = nil
	}

	if sub == nil && action != domain.ActionDelete {
		sub = findSubscription(subs, subscriptionID)
	}
	return &domain.ActionResult{
		Action:        action,
		Subscription:  sub,
		Subscriptions: subs,
		Notice:        notice,
	}, nil
}

func (s *subscriptionService) record(ctx context.Context, customerID, subscriptionID string, action domain.SubscriptionAction, notice domain.Notice) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, customerID, subscriptionID, action, notice); err != nil {
		s.LogError(ctx, err, "Failed to record subscription activity", slog.String("action", string(action)))
	}
}

func findSubscription(subs []domain.Subscription, id string) *domain.Subscription {
	for i := range subs {
		if subs[i].ID == id {
			found := subs[i]
			return &found
		}
	}
	return nil
}
