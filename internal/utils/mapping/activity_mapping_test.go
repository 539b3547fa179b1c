package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestActivityMapping_SubscriptionIDNullability(t *testing.T) {
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	withoutSub := domain.ActivityEntry{ID: "a1", CustomerID: "c1", Action: domain.ActionCreate, Outcome: domain.OutcomeFailure, Message: "Failed to create subscription", CreatedAt: now}
	m := ToModelActivityEntry(withoutSub)
	assert.Nil(t, m.SubscriptionID)
	assert.Equal(t, withoutSub, ToDomainActivityEntry(m))

	withSub := withoutSub
	withSub.SubscriptionID = "s1"
	m = ToModelActivityEntry(withSub)
	if assert.NotNil(t, m.SubscriptionID) {
		assert.Equal(t, "s1", *m.SubscriptionID)
	}
	assert.Equal(t, withSub, ToDomainActivityEntry(m))
}
