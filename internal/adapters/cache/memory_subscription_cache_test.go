package cache

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySubscriptionCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemorySubscriptionCache(time.Minute)

	_, found, err := c.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.False(t, found)

	subs := []domain.Subscription{{ID: "s1"}, {ID: "s2"}}
	require.NoError(t, c.Set(ctx, "cust-1", subs, time.Minute))

	got, found, err := c.Get(ctx, "cust-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, subs, got)

	// Mutating the returned slice does not leak into the cache.
	got[0].ID = "changed"
	again, _, _ := c.Get(ctx, "cust-1")
	assert.Equal(t, "s1", again[0].ID)

	// Set replaces the list wholesale.
	require.NoError(t, c.Set(ctx, "cust-1", []domain.Subscription{{ID: "s3"}}, 0))
	got, _, _ = c.Get(ctx, "cust-1")
	assert.Equal(t, []domain.Subscription{{ID: "s3"}}, got)

	_, found, _ = c.Get(ctx, "cust-2")
	assert.False(t, found)

	require.NoError(t, c.Invalidate(ctx, "cust-1"))
	_, found, _ = c.Get(ctx, "cust-1")
	assert.False(t, found)
}

func TestMemorySubscriptionCache_NestedSlicesAreCopied(t *testing.T) {
	ctx := context.Background()
	c := NewMemorySubscriptionCache(time.Minute)

	next := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	subs := []domain.Subscription{{
		ID:              "s1",
		NextBillingDate: &next,
		Products:        []domain.SubscriptionProduct{{ProductID: "p1", Quantity: 1}},
		Discounts:       []domain.Discount{{Code: "WELCOME"}},
	}}
	require.NoError(t, c.Set(ctx, "cust-1", subs, time.Minute))

	// The caller's slice is not aliased by the cache.
	subs[0].Products[0].Quantity = 9

	got, _, _ := c.Get(ctx, "cust-1")
	got[0].Products[0].ProductID = "changed"
	got[0].Discounts[0].Code = "changed"
	*got[0].NextBillingDate = next.AddDate(1, 0, 0)

	again, found, err := c.Get(ctx, "cust-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "p1", again[0].Products[0].ProductID)
	assert.Equal(t, 1, again[0].Products[0].Quantity)
	assert.Equal(t, "WELCOME", again[0].Discounts[0].Code)
	assert.True(t, next.Equal(*again[0].NextBillingDate))
}

func TestMemorySubscriptionCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemorySubscriptionCache(time.Minute)

	require.NoError(t, c.Set(ctx, "cust-1", []domain.Subscription{{ID: "s1"}}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, found, err := c.Get(ctx, "cust-1")
	require.NoError(t, err)
	assert.False(t, found)
}
