package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
	"github.com/SscSPs/storefront/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultActivityPageSize = 20
	maxActivityPageSize     = 100
)

type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepositoryFacade
}

// NewActivityService creates the service recording customer notices.
func NewActivityService(repo portsrepo.ActivityRepositoryFacade) portssvc.ActivitySvcFacade {
	return &activityService{activityRepo: repo}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

func (s *activityService) Record(ctx context.Context, customerID, subscriptionID string, action domain.SubscriptionAction, notice domain.Notice) error {
	outcome := domain.OutcomeSuccess
	if notice.Kind == domain.NoticeError {
		outcome = domain.OutcomeFailure
	}
	entry := domain.ActivityEntry{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		SubscriptionID: subscriptionID,
		Action:         action,
		Outcome:        outcome,
		Message:        notice.Message,
		CreatedAt:      s.Now(),
	}
	if err := s.activityRepo.SaveActivity(ctx, entry); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

func (s *activityService) ListActivity(ctx context.Context, customerID string, limit int, nextToken *string) (*domain.ActivityPage, error) {
	limit = pagination.ClampLimit(limit, defaultActivityPageSize, maxActivityPageSize)
	entries, next, err := s.activityRepo.ListActivity(ctx, customerID, limit, nextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	if entries == nil {
		entries = []domain.ActivityEntry{}
	}
	return &domain.ActivityPage{Entries: entries, NextToken: next}, nil
}

func (s *activityService) RecentForSubscription(ctx context.Context, customerID, subscriptionID string, limit int) ([]domain.ActivityEntry, error) {
	limit = pagination.ClampLimit(limit, defaultActivityPageSize, maxActivityPageSize)
	entries, err := s.activityRepo.ListActivityBySubscription(ctx, customerID, subscriptionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity for subscription %s: %w", subscriptionID, err)
	}
	if entries == nil {
		entries = []domain.ActivityEntry{}
	}
	return entries, nil
}
