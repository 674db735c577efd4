package domain

import (
	"testing"
	"time"
)

func TestNextDonationDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	daysAgo := func(n int) *time.Time {
		d := now.AddDate(0, 0, -n)
		return &d
	}

	tests := []struct {
		name         string
		lastDonation *time.Time
		want         int
	}{
		{"never donated", nil, 0},
		{"zero timestamp", &time.Time{}, 0},
		{"donated today", daysAgo(0), 56},
		{"one day ago", daysAgo(1), 55},
		{"55 days ago", daysAgo(55), 1},
		{"exactly 56 days ago", daysAgo(56), 0},
		{"57 days ago", daysAgo(57), 0},
		{"a year ago", daysAgo(365), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextDonationDays(tt.lastDonation, now); got != tt.want {
				t.Fatalf("NextDonationDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

// The countdown must not shift with the time of day of either instant.
func TestNextDonationDaysIgnoresTimeOfDay(t *testing.T) {
	last := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)

	morning := time.Date(2025, 6, 10, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)

	if a, b := NextDonationDays(&last, morning), NextDonationDays(&last, evening); a != b {
		t.Fatalf("result depends on time of day: %d vs %d", a, b)
	}
	if got := NextDonationDays(&last, morning); got != 47 {
		t.Fatalf("NextDonationDays() = %d, want 47", got)
	}
}

func TestNextDonationDaysNeverNegative(t *testing.T) {
	last := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if got := NextDonationDays(&last, now); got != 0 {
		t.Fatalf("NextDonationDays() = %d, want 0", got)
	}
}
