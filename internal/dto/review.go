package dto

import (
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
)

// ListReviewsParams defines the query parameters for a product's reviews.
type ListReviewsParams struct {
	Page      int    `form:"page,default=1" binding:"min=1"`
	PageSize  int    `form:"page_size,default=10" binding:"min=1,max=100"`
	MinRating *int   `form:"min_rating" binding:"omitempty,min=1,max=5"`
	MaxRating *int   `form:"max_rating" binding:"omitempty,min=1,max=5"`
	Sort      string `form:"sort" binding:"omitempty,oneof=newest oldest highest lowest helpful"`
}

func (p ListReviewsParams) ToQuery() domain.ReviewQuery {
	return domain.ReviewQuery{
		Page:      p.Page,
		PageSize:  p.PageSize,
		MinRating: p.MinRating,
		MaxRating: p.MaxRating,
		Sort:      domain.ReviewSort(p.Sort),
	}
}

// CreateReviewRequest defines the data needed to review a product. The
// product comes from the path.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title,omitempty" binding:"max=120"`
	Comment string `json:"comment" binding:"required,max=5000"`
}

func (r CreateReviewRequest) ToInput(productID string) domain.CreateReviewInput {
	return domain.CreateReviewInput{
		ProductID: productID,
		Rating:    r.Rating,
		Title:     r.Title,
		Comment:   r.Comment,
	}
}

// UpdateReviewRequest defines the review fields a customer may change.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Title   *string `json:"title,omitempty" binding:"omitempty,max=120"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,min=1,max=5000"`
}

func (r UpdateReviewRequest) ToInput() domain.UpdateReviewInput {
	return domain.UpdateReviewInput{Rating: r.Rating, Title: r.Title, Comment: r.Comment}
}

// ReviewResponse defines the data returned for a review.
type ReviewResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"productID"`
	UserName         string    `json:"userName,omitempty"`
	Rating           int       `json:"rating"`
	Title            string    `json:"title,omitempty"`
	Comment          string    `json:"comment"`
	VerifiedPurchase bool      `json:"verifiedPurchase"`
	HelpfulCount     int       `json:"helpfulCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:               r.ID,
		ProductID:        r.ProductID,
		UserName:         r.UserName,
		Rating:           r.Rating,
		Title:            r.Title,
		Comment:          r.Comment,
		VerifiedPurchase: r.VerifiedPurchase,
		HelpfulCount:     r.HelpfulCount,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// ListReviewsResponse is one page of reviews. HasNext and HasPrevious mirror
// the upstream page links.
type ListReviewsResponse struct {
	Count       int              `json:"count"`
	Page        int              `json:"page"`
	PageSize    int              `json:"pageSize"`
	HasNext     bool             `json:"hasNext"`
	HasPrevious bool             `json:"hasPrevious"`
	Reviews     []ReviewResponse `json:"reviews"`
}

func ToListReviewsResponse(page *domain.ReviewPage, params ListReviewsParams) ListReviewsResponse {
	reviews := make([]ReviewResponse, len(page.Results))
	for i := range page.Results {
		reviews[i] = ToReviewResponse(&page.Results[i])
	}
	return ListReviewsResponse{
		Count:       page.Count,
		Page:        params.Page,
		PageSize:    params.PageSize,
		HasNext:     page.Next != nil,
		HasPrevious: page.Previous != nil,
		Reviews:     reviews,
	}
}
