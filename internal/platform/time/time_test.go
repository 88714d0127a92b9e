package time

import (
	"testing"
	"time"
)

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatalf("zero time should be nil")
	}
	now := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Fatalf("Ptr lost the value")
	}
}

func TestRFC3339(t *testing.T) {
	if RFC3339(time.Time{}) != "" {
		t.Fatalf("zero time should format empty")
	}
	est := time.FixedZone("EST", -5*3600)
	if got := RFC3339(time.Date(2018, 1, 1, 7, 0, 0, 0, est)); got != "2018-01-01T12:00:00Z" {
		t.Fatalf("RFC3339 = %q", got)
	}
}
