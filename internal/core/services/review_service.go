package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront/internal/core/ports/services"
)

const maxReviewPageSize = 100

type reviewService struct {
	BaseService
	reviewRepo portsrepo.ReviewRepositoryFacade
}

// NewReviewService creates the reviews service. It forwards to the store API
// without retries or caching.
func NewReviewService(repo portsrepo.ReviewRepositoryFacade) portssvc.ReviewSvcFacade {
	return &reviewService{reviewRepo: repo}
}

var _ portssvc.ReviewSvcFacade = (*reviewService)(nil)

func (s *reviewService) GetProductReviews(ctx context.Context, productID string, query domain.ReviewQuery) (*domain.ReviewPage, error) {
	if productID == "" {
		return nil, validationError("product id is required")
	}
	if err := validateReviewQuery(query); err != nil {
		return nil, err
	}

	page, err := s.reviewRepo.FindReviewsByProduct(ctx, productID, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch product reviews", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to get reviews for product %s: %w", productID, err)
	}
	return page, nil
}

func validateReviewQuery(q domain.ReviewQuery) error {
	if q.Page < 0 {
		return validationError("page must not be negative")
	}
	if q.PageSize < 0 || q.PageSize > maxReviewPageSize {
		return validationError("page_size must not exceed %d", maxReviewPageSize)
	}
	if q.MinRating != nil && (*q.MinRating < 1 || *q.MinRating > 5) {
		return validationError("min_rating must be between 1 and 5")
	}
	if q.MaxRating != nil && (*q.MaxRating < 1 || *q.MaxRating > 5) {
		return validationError("max_rating must be between 1 and 5")
	}
	if q.MinRating != nil && q.MaxRating != nil && *q.MinRating > *q.MaxRating {
		return validationError("min_rating must not exceed max_rating")
	}
	if q.Sort != "" && q.Sort.Ordering() == "" {
		return validationError("unknown sort %q", q.Sort)
	}
	return nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	review, err := s.reviewRepo.FindReviewByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review %s: %w", reviewID, err)
	}
	return review, nil
}

func (s *reviewService) CreateReview(ctx context.Context, customerID string, input domain.CreateReviewInput) (*domain.Review, error) {
	if err := s.ValidateStruct(input); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.SaveReview(ctx, customerID, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to create review", slog.String("product_id", input.ProductID))
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	s.LogInfo(ctx, "Review created", slog.String("review_id", review.ID), slog.String("product_id", review.ProductID))
	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, customerID, reviewID string, input domain.UpdateReviewInput) (*domain.Review, error) {
	if input.IsEmpty() {
		return nil, validationError("at least one of rating, title or comment is required")
	}
	if err := s.ValidateStruct(input); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.UpdateReview(ctx, customerID, reviewID, input)
	if err != nil {
		s.LogError(ctx, err, "Failed to update review", slog.String("review_id", reviewID))
		return nil, fmt.Errorf("failed to update review %s: %w", reviewID, err)
	}
	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, customerID, reviewID string) error {
	if err := s.reviewRepo.DeleteReview(ctx, customerID, reviewID); err != nil {
		s.LogError(ctx, err, "Failed to delete review", slog.String("review_id", reviewID))
		return fmt.Errorf("failed to delete review %s: %w", reviewID, err)
	}
	s.LogInfo(ctx, "Review deleted", slog.String("review_id", reviewID))
	return nil
}
