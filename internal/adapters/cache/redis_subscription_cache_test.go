package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a live Redis when TEST_REDIS_URL is set.
func TestRedisSubscriptionCache(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := Connect(ctx, redisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisSubscriptionCache(client)
	customerID := "test-" + uuid.NewString()
	t.Cleanup(func() { _ = c.Invalidate(ctx, customerID) })

	_, found, err := c.Get(ctx, customerID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, customerID, nil, time.Minute))
	got, found, err := c.Get(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)

	require.NoError(t, c.Set(ctx, customerID, []domain.Subscription{{ID: "s1", Status: domain.StatusPaused}}, time.Minute))
	got, found, err = c.Get(ctx, customerID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, domain.StatusPaused, got[0].Status)

	require.NoError(t, c.Invalidate(ctx, customerID))
	_, found, _ = c.Get(ctx, customerID)
	assert.False(t, found)
}

func TestSubscriptionKey(t *testing.T) {
	assert.Equal(t, "storefront:subscriptions:cust-1", subscriptionKey("cust-1"))
}
