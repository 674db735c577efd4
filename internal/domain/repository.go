package domain

import "context"

// UserRepository defines persistence for donor accounts.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, id string, patch UserPatch) (*User, error)
}

// BloodRequestRepository defines persistence for blood requests.
type BloodRequestRepository interface {
	List(ctx context.Context) ([]BloodRequest, error)
	ListOpen(ctx context.Context) ([]BloodRequest, error)
	GetByID(ctx context.Context, id string) (*BloodRequest, error)
	Create(ctx context.Context, request *BloodRequest) error
	Update(ctx context.Context, id string, patch BloodRequestPatch) (*BloodRequest, error)
}

// DonationRepository defines persistence for the append-only donation log.
// Donations are never updated or deleted.
type DonationRepository interface {
	List(ctx context.Context) ([]Donation, error)
	ListByDonor(ctx context.Context, donorID string) ([]Donation, error)
	Create(ctx context.Context, donation *Donation) error
}
