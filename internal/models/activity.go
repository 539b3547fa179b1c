package models

import "time"

// ActivityEntry is a row of the activity_log table.
type ActivityEntry struct {
	ActivityID     string    `db:"activity_id"`
	CustomerID     string    `db:"customer_id"`
	SubscriptionID *string   `db:"subscription_id"`
	Action         string    `db:"action"`
	Outcome        string    `db:"outcome"`
	Message        string    `db:"message"`
	CreatedAt      time.Time `db:"created_at"`
}

// TableName returns the table backing ActivityEntry.
func (ActivityEntry) TableName() string {
	return "activity_log"
}
