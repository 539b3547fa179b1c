package domain

import "time"

// ActivityOutcome records whether an action succeeded.
type ActivityOutcome string

const (
	OutcomeSuccess ActivityOutcome = "success"
	OutcomeFailure ActivityOutcome = "failure"
)

// ActivityEntry is one notice shown to a customer after a subscription action.
type ActivityEntry struct {
	ID             string             `json:"id"`
	CustomerID     string             `json:"customerID"`
	SubscriptionID string             `json:"subscriptionID,omitempty"`
	Action         SubscriptionAction `json:"action"`
	Outcome        ActivityOutcome    `json:"outcome"`
	Message        string             `json:"message"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// ActivityPage is a newest-first slice of a customer's activity.
type ActivityPage struct {
	Entries   []ActivityEntry
	NextToken *string
}
