package domain

import "time"

// Donation is an append-only record of one completed donation.
// DonorID and RequestID are plain identifiers with no referential
// integrity; either may reference a record that no longer exists.
type Donation struct {
	ID           string    `json:"id"`
	DonorID      string    `json:"donorId"`
	RequestID    string    `json:"requestId"`
	DonationDate time.Time `json:"donationDate"`
}
