package dto

import (
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
)

// ListActivityParams defines the query parameters for the activity feed.
type ListActivityParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=0,max=100"`
	NextToken *string `form:"next_token"`
}

// ActivityEntryResponse is one past notice.
type ActivityEntryResponse struct {
	ID             string    `json:"id"`
	SubscriptionID string    `json:"subscriptionID,omitempty"`
	Action         string    `json:"action"`
	Outcome        string    `json:"outcome"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToActivityEntryResponse(e domain.ActivityEntry) ActivityEntryResponse {
	return ActivityEntryResponse{
		ID:             e.ID,
		SubscriptionID: e.SubscriptionID,
		Action:         string(e.Action),
		Outcome:        string(e.Outcome),
		Message:        e.Message,
		CreatedAt:      e.CreatedAt,
	}
}

// ToActivityEntryResponses converts entries, returning an empty slice for nil.
func ToActivityEntryResponses(entries []domain.ActivityEntry) []ActivityEntryResponse {
	res := make([]ActivityEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToActivityEntryResponse(e)
	}
	return res
}

// ListActivityResponse is a page of the activity feed.
type ListActivityResponse struct {
	Entries   []ActivityEntryResponse `json:"entries"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

func ToListActivityResponse(p *domain.ActivityPage) ListActivityResponse {
	return ListActivityResponse{
		Entries:   ToActivityEntryResponses(p.Entries),
		NextToken: p.NextToken,
	}
}
