package domain

import (
	"testing"
	"time"
)

func TestPasswordResetTokenExpired(t *testing.T) {
	expiresAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	grant := &PasswordResetToken{ExpiresAt: expiresAt}

	cases := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"well before expiry", expiresAt.Add(-time.Hour), false},
		{"one nanosecond before", expiresAt.Add(-time.Nanosecond), false},
		{"exactly at expiry", expiresAt, true},
		{"after expiry", expiresAt.Add(time.Minute), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := grant.Expired(tc.now); got != tc.expired {
				t.Fatalf("Expired(%v) = %v, want %v", tc.now, got, tc.expired)
			}
		})
	}
}
