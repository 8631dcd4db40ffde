package types_test

import (
	"testing"
	"time"

	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

func TestSubscriptionExpiryTime(t *testing.T) {
	cases := []struct {
		name      string
		expiresAt string
		wantOK    bool
		want      time.Time
	}{
		{"empty", "", false, time.Time{}},
		{"rfc3339", "2026-10-01T12:00:00Z", true, time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)},
		{"rfc3339 nano", "2026-10-01T12:00:00.5Z", true, time.Date(2026, 10, 1, 12, 0, 0, 500000000, time.UTC)},
		{"date only", "2026-10-01", true, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
		{"garbage", "next tuesday", false, time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := types.Subscription{Status: enums.SubscriptionStatusActive, ExpiresAt: tc.expiresAt}
			got, ok := sub.ExpiryTime()
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestSubscriptionScanRoundTrip(t *testing.T) {
	original := &types.Subscription{
		Status:    enums.SubscriptionStatusTrialing,
		ExpiresAt: "2026-12-31T00:00:00Z",
	}

	raw, err := original.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}

	var decoded types.Subscription
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if decoded.Status != original.Status || decoded.ExpiresAt != original.ExpiresAt {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestSubscriptionScanNil(t *testing.T) {
	decoded := types.Subscription{Status: enums.SubscriptionStatusActive}
	if err := decoded.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) returned error: %v", err)
	}
	if decoded.Status != "" {
		t.Fatalf("nil scan should reset the record: %+v", decoded)
	}
}

func TestScheduleValueAndScan(t *testing.T) {
	var empty types.Schedule
	raw, err := empty.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	if raw != "{}" {
		t.Fatalf("nil schedule should serialize as empty object, got %v", raw)
	}

	schedule := types.Schedule{"monday": "08:00-18:00", "friday": "10:00-22:00"}
	encoded, err := schedule.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}

	var decoded types.Schedule
	if err := decoded.Scan(encoded); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if decoded["monday"] != "08:00-18:00" || decoded["friday"] != "10:00-22:00" {
		t.Fatalf("round trip mismatch: %v", decoded)
	}

	if err := decoded.Scan(42); err == nil {
		t.Fatal("unsupported scan type should error")
	}
}
