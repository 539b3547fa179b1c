package storeapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront/internal/core/ports/repositories"
)

// ReviewsAPI wraps the /v1/reviews/ endpoints.
type ReviewsAPI struct {
	client *Client
}

// NewReviewsAPI creates the reviews wrapper.
func NewReviewsAPI(client *Client) *ReviewsAPI {
	return &ReviewsAPI{client: client}
}

var _ portsrepo.ReviewRepositoryFacade = (*ReviewsAPI)(nil)

type createReviewBody struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Title     string `json:"title,omitempty"`
	Comment   string `json:"comment"`
}

// SaveReview posts a new review.
func (a *ReviewsAPI) SaveReview(ctx context.Context, customerID string, input domain.CreateReviewInput) (*domain.Review, error) {
	var review domain.Review
	err := a.client.do(ctx, request{
		resource:   resourceReviews,
		method:     http.MethodPost,
		path:       reviewsPath(),
		customerID: customerID,
		body: createReviewBody{
			ProductID: input.ProductID,
			Rating:    input.Rating,
			Title:     input.Title,
			Comment:   input.Comment,
		},
	}, &review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// FindReviewsByProduct lists a product's reviews. Zero page and page size
// and nil rating bounds are left to the store API defaults.
func (a *ReviewsAPI) FindReviewsByProduct(ctx context.Context, productID string, query domain.ReviewQuery) (*domain.ReviewPage, error) {
	var page domain.ReviewPage
	err := a.client.do(ctx, request{
		resource: resourceReviews,
		method:   http.MethodGet,
		path:     reviewsPath(),
		query:    reviewQueryValues(productID, query),
	}, &page)
	if err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []domain.Review{}
	}
	return &page, nil
}

func reviewQueryValues(productID string, query domain.ReviewQuery) url.Values {
	v := url.Values{}
	v.Set("product_id", productID)
	if query.Page > 0 {
		v.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(query.PageSize))
	}
	if query.MinRating != nil {
		v.Set("min_rating", strconv.Itoa(*query.MinRating))
	}
	if query.MaxRating != nil {
		v.Set("max_rating", strconv.Itoa(*query.MaxRating))
	}
	if ordering := query.Sort.Ordering(); ordering != "" {
		v.Set("ordering", ordering)
	}
	return v
}

// FindReviewByID fetches one review.
func (a *ReviewsAPI) FindReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	var review domain.Review
	err := a.client.do(ctx, request{
		resource: resourceReviews,
		method:   http.MethodGet,
		path:     reviewPath(reviewID),
	}, &review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview patches a review with the non-nil fields of input.
func (a *ReviewsAPI) UpdateReview(ctx context.Context, customerID, reviewID string, input domain.UpdateReviewInput) (*domain.Review, error) {
	var review domain.Review
	err := a.client.do(ctx, request{
		resource:   resourceReviews,
		method:     http.MethodPatch,
		path:       reviewPath(reviewID),
		customerID: customerID,
		body:       input,
	}, &review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes a review.
func (a *ReviewsAPI) DeleteReview(ctx context.Context, customerID, reviewID string) error {
	return a.client.do(ctx, request{
		resource:   resourceReviews,
		method:     http.MethodDelete,
		path:       reviewPath(reviewID),
		customerID: customerID,
	}, nil)
}
