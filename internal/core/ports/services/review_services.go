package services

import (
	"context"

	"github.com/SscSPs/storefront/internal/core/domain"
)

// ReviewReaderSvc defines read operations for product reviews
type ReviewReaderSvc interface {
	// GetProductReviews retrieves a page of a product's reviews.
	GetProductReviews(ctx context.Context, productID string, query domain.ReviewQuery) (*domain.ReviewPage, error)

	// GetReview retrieves a single review by ID.
	GetReview(ctx context.Context, reviewID string) (*domain.Review, error)
}

// ReviewWriterSvc defines write operations for product reviews
type ReviewWriterSvc interface {
	// CreateReview validates and submits a new review.
	CreateReview(ctx context.Context, customerID string, input domain.CreateReviewInput) (*domain.Review, error)

	// UpdateReview validates and submits a partial update.
	UpdateReview(ctx context.Context, customerID, reviewID string, input domain.UpdateReviewInput) (*domain.Review, error)

	// DeleteReview removes a review.
	DeleteReview(ctx context.Context, customerID, reviewID string) error
}

// ReviewSvcFacade combines all review-related service interfaces
type ReviewSvcFacade interface {
	ReviewReaderSvc
	ReviewWriterSvc
}
