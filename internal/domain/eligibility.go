package domain

import "time"

// DonationWaitDays is the minimum interval between two donations,
// the standard 8-week deferral period.
const DonationWaitDays = 56

// NextDonationDays returns how many whole days remain before the donor
// may give blood again. A nil or zero lastDonation means the donor has
// never donated and is immediately eligible.
//
// The arithmetic is calendar-day based: both instants are reduced to
// their civil date before differencing, so the result does not depend
// on the time of day of either the donation or the computation. On the
// day exactly DonationWaitDays after the last donation the result is 0.
func NextDonationDays(lastDonation *time.Time, now time.Time) int {
	if lastDonation == nil || lastDonation.IsZero() {
		return 0
	}
	eligible := civilDate(*lastDonation).AddDate(0, 0, DonationWaitDays)
	remaining := int(eligible.Sub(civilDate(now)).Hours() / 24)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// civilDate pins the calendar date of t to midnight UTC so that
// subtracting two of them always yields an exact multiple of 24h.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
