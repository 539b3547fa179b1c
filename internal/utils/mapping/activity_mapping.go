package mapping

import (
	"github.com/SscSPs/storefront/internal/core/domain"
	"github.com/SscSPs/storefront/internal/models"
)

// ToModelActivityEntry converts a domain ActivityEntry to its row model.
// An empty subscription ID is stored as NULL.
func ToModelActivityEntry(d domain.ActivityEntry) models.ActivityEntry {
	var subscriptionID *string
	if d.SubscriptionID != "" {
		id := d.SubscriptionID
		subscriptionID = &id
	}
	return models.ActivityEntry{
		ActivityID:     d.ID,
		CustomerID:     d.CustomerID,
		SubscriptionID: subscriptionID,
		Action:         string(d.Action),
		Outcome:        string(d.Outcome),
		Message:        d.Message,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainActivityEntry converts a row model to a domain ActivityEntry.
func ToDomainActivityEntry(m models.ActivityEntry) domain.ActivityEntry {
	d := domain.ActivityEntry{
		ID:         m.ActivityID,
		CustomerID: m.CustomerID,
		Action:     domain.SubscriptionAction(m.Action),
		Outcome:    domain.ActivityOutcome(m.Outcome),
		Message:    m.Message,
		CreatedAt:  m.CreatedAt,
	}
	if m.SubscriptionID != nil {
		d.SubscriptionID = *m.SubscriptionID
	}
	return d
}

// ToDomainActivityEntrySlice converts row models to domain entries.
func ToDomainActivityEntrySlice(ms []models.ActivityEntry) []domain.ActivityEntry {
	ds := make([]domain.ActivityEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainActivityEntry(m)
	}
	return ds
}
