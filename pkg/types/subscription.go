package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mateovidal/streamhaus-backend/pkg/enums"
)

// Subscription is the optional entitlement record embedded on a user row,
// persisted as JSONB. ExpiresAt keeps the upstream billing system's
// timestamp-as-string representation.
type Subscription struct {
	Status    enums.SubscriptionStatus `json:"status"`
	ExpiresAt string                   `json:"expires_at,omitempty"`
}

// ExpiryTime parses ExpiresAt. The zero time with ok=false means no expiry
// is recorded or the value is unparseable.
func (s Subscription) ExpiryTime() (time.Time, bool) {
	if s.ExpiresAt == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s.ExpiresAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Value marshals the record into JSON for Postgres.
func (s *Subscription) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	buf, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the record.
func (s *Subscription) Scan(value interface{}) error {
	if value == nil {
		*s = Subscription{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("subscription: unsupported scan type %T", value)
	}

	var result Subscription
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*s = result
	return nil
}
