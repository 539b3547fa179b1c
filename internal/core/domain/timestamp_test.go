package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"rfc3339 utc", "2024-02-01T10:30:00Z", time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 fractional", "2024-02-01T10:30:00.123456Z", time.Date(2024, 2, 1, 10, 30, 0, 123456000, time.UTC)},
		{"naive iso", "2024-02-01T00:00:00", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"naive iso fractional", "2024-02-01T08:15:30.5", time.Date(2024, 2, 1, 8, 15, 30, 500000000, time.UTC)},
		{"space separated", "2024-02-01 08:15:30", time.Date(2024, 2, 1, 8, 15, 30, 0, time.UTC)},
		{"date only", "2024-02-01", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseTimestamp(tt.value)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	t.Run("offset kept", func(t *testing.T) {
		got, err := domain.ParseTimestamp("2024-02-01T10:30:00+02:00")
		require.NoError(t, err)
		assert.True(t, time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC).Equal(got))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := domain.ParseTimestamp("next tuesday")
		assert.Error(t, err)
	})
}

func TestSubscription_UnmarshalTolerantDates(t *testing.T) {
	payload := `{
		"id": "s1",
		"name": "Coffee",
		"status": "active",
		"price": "12.50",
		"next_billing_date": "2024-02-01T00:00:00",
		"created_at": "2024-01-01",
		"updated_at": "2024-01-15T09:00:00Z"
	}`

	var s domain.Subscription
	require.NoError(t, json.Unmarshal([]byte(payload), &s))

	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, domain.StatusActive, s.Status)
	assert.Equal(t, "12.5", s.Price.String())
	require.NotNil(t, s.NextBillingDate)
	assert.True(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Equal(*s.NextBillingDate))
	assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(s.CreatedAt))
	assert.True(t, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC).Equal(s.UpdatedAt))
}

func TestSubscription_UnmarshalMissingAndNullDates(t *testing.T) {
	var s domain.Subscription
	require.NoError(t, json.Unmarshal([]byte(`{"id":"s1","next_billing_date":null,"created_at":""}`), &s))
	assert.Nil(t, s.NextBillingDate)
	assert.True(t, s.CreatedAt.IsZero())
	assert.True(t, s.UpdatedAt.IsZero())
}

func TestSubscription_UnmarshalBadDate(t *testing.T) {
	var s domain.Subscription
	err := json.Unmarshal([]byte(`{"id":"s1","created_at":"soon"}`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"soon"`)
}

func TestSubscription_JSONRoundTripKeepsDates(t *testing.T) {
	next := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	in := domain.Subscription{ID: "s1", NextBillingDate: &next, CreatedAt: next.AddDate(0, -1, 0)}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	var out domain.Subscription
	require.NoError(t, json.Unmarshal(raw, &out))

	require.NotNil(t, out.NextBillingDate)
	assert.True(t, next.Equal(*out.NextBillingDate))
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
}

func TestReview_UnmarshalTolerantDates(t *testing.T) {
	var r domain.Review
	require.NoError(t, json.Unmarshal([]byte(`{"id":"r1","rating":4,"comment":"ok","created_at":"2024-03-02T11:00:00"}`), &r))
	assert.Equal(t, 4, r.Rating)
	assert.True(t, time.Date(2024, 3, 2, 11, 0, 0, 0, time.UTC).Equal(r.CreatedAt))
}
