package repositories

import (
	"context"

	"github.com/SscSPs/storefront/internal/core/domain"
)

// ReviewReader defines read operations for product reviews
type ReviewReader interface {
	// FindReviewsByProduct retrieves one page of a product's reviews.
	FindReviewsByProduct(ctx context.Context, productID string, query domain.ReviewQuery) (*domain.ReviewPage, error)

	// FindReviewByID retrieves a single review.
	FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error)
}

// ReviewWriter defines write operations for product reviews
type ReviewWriter interface {
	// SaveReview creates a review authored by customerID.
	SaveReview(ctx context.Context, customerID string, input domain.CreateReviewInput) (*domain.Review, error)

	// UpdateReview applies a partial update to a review.
	UpdateReview(ctx context.Context, customerID, reviewID string, input domain.UpdateReviewInput) (*domain.Review, error)

	// DeleteReview removes a review.
	DeleteReview(ctx context.Context, customerID, reviewID string) error
}

// ReviewRepositoryFacade combines all review-related repository interfaces
type ReviewRepositoryFacade interface {
	ReviewReader
	ReviewWriter
}
