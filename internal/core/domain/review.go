package domain

import "time"

// Review is a customer's rating of a product.
type Review struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	UserID           string    `json:"user_id,omitempty"`
	UserName         string    `json:"user_name,omitempty"`
	Rating           int       `json:"rating"`
	Title            string    `json:"title,omitempty"`
	Comment          string    `json:"comment"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	HelpfulCount     int       `json:"helpful_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ReviewSort orders a product's reviews.
type ReviewSort string

const (
	ReviewSortNewest  ReviewSort = "newest"
	ReviewSortOldest  ReviewSort = "oldest"
	ReviewSortHighest ReviewSort = "highest"
	ReviewSortLowest  ReviewSort = "lowest"
	ReviewSortHelpful ReviewSort = "helpful"
)

// Ordering returns the store API ordering parameter for s, or "" for an
// unknown sort.
func (s ReviewSort) Ordering() string {
	switch s {
	case ReviewSortNewest:
		return "-created_at"
	case ReviewSortOldest:
		return "created_at"
	case ReviewSortHighest:
		return "-rating"
	case ReviewSortLowest:
		return "rating"
	case ReviewSortHelpful:
		return "-helpful_count"
	default:
		return ""
	}
}

// ReviewQuery pages and filters a product's reviews. Nil rating bounds are
// not sent.
type ReviewQuery struct {
	Page      int
	PageSize  int
	MinRating *int
	MaxRating *int
	Sort      ReviewSort
}

// ReviewPage is one page of reviews as returned by the store API.
type ReviewPage struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Review `json:"results"`
}

// CreateReviewInput is the body of a new review.
type CreateReviewInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title,omitempty" validate:"max=120"`
	Comment   string `json:"comment" validate:"required,max=5000"`
}

// UpdateReviewInput carries the fields a customer may change; nil fields are
// left untouched.
type UpdateReviewInput struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Title   *string `json:"title,omitempty" validate:"omitempty,max=120"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,min=1,max=5000"`
}

// IsEmpty reports whether the update changes nothing.
func (u UpdateReviewInput) IsEmpty() bool {
	return u.Rating == nil && u.Title == nil && u.Comment == nil
}
