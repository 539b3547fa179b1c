package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// ParseTimestamp reads the timestamp formats the store API emits: RFC 3339,
// ISO 8601 without a zone, and bare dates.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}

// Timestamp decodes a JSON string with ParseTimestamp. null and "" decode as
// the zero time.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// optionalTime is nil for a missing or zero timestamp.
func optionalTime(t *Timestamp) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

type subscriptionJSON Subscription

// UnmarshalJSON decodes a subscription, accepting every format ParseTimestamp
// understands for its dates.
func (s *Subscription) UnmarshalJSON(data []byte) error {
	aux := struct {
		*subscriptionJSON
		NextBillingDate *Timestamp `json:"next_billing_date"`
		CreatedAt       Timestamp  `json:"created_at"`
		UpdatedAt       Timestamp  `json:"updated_at"`
	}{subscriptionJSON: (*subscriptionJSON)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.NextBillingDate = optionalTime(aux.NextBillingDate)
	s.CreatedAt = aux.CreatedAt.Time
	s.UpdatedAt = aux.UpdatedAt.Time
	return nil
}

type reviewJSON Review

// UnmarshalJSON decodes a review with tolerant dates.
func (r *Review) UnmarshalJSON(data []byte) error {
	aux := struct {
		*reviewJSON
		CreatedAt Timestamp `json:"created_at"`
		UpdatedAt Timestamp `json:"updated_at"`
	}{reviewJSON: (*reviewJSON)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.CreatedAt = aux.CreatedAt.Time
	r.UpdatedAt = aux.UpdatedAt.Time
	return nil
}
