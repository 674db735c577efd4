package handlers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"bloodconnect/internal/domain"
	"bloodconnect/internal/metrics"
	"bloodconnect/internal/service"
)

// In-memory repositories with store semantics: shallow-merge updates,
// ErrNotFound on unknown ids, insertion-ordered listing.

type fakeUserRepo struct {
	users   []domain.User
	creates int
}

func (f *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), f.users...), nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.creates++
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			patch.Apply(&f.users[i])
			copied := f.users[i]
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeRequestRepo struct {
	requests []domain.BloodRequest
}

func (f *fakeRequestRepo) List(context.Context) ([]domain.BloodRequest, error) {
	return append([]domain.BloodRequest(nil), f.requests...), nil
}

func (f *fakeRequestRepo) ListOpen(context.Context) ([]domain.BloodRequest, error) {
	var open []domain.BloodRequest
	for _, r := range f.requests {
		if r.Status == domain.RequestStatusOpen {
			open = append(open, r)
		}
	}
	return open, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (*domain.BloodRequest, error) {
	for _, r := range f.requests {
		if r.ID == id {
			copied := r
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRequestRepo) Create(_ context.Context, request *domain.BloodRequest) error {
	f.requests = append(f.requests, *request)
	return nil
}

func (f *fakeRequestRepo) Update(_ context.Context, id string, patch domain.BloodRequestPatch) (*domain.BloodRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			patch.Apply(&f.requests[i])
			copied := f.requests[i]
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeDonationRepo struct {
	donations []domain.Donation
}

func (f *fakeDonationRepo) List(context.Context) ([]domain.Donation, error) {
	return append([]domain.Donation(nil), f.donations...), nil
}

func (f *fakeDonationRepo) ListByDonor(_ context.Context, donorID string) ([]domain.Donation, error) {
	var items []domain.Donation
	for _, d := range f.donations {
		if d.DonorID == donorID {
			items = append(items, d)
		}
	}
	return items, nil
}

func (f *fakeDonationRepo) Create(_ context.Context, donation *domain.Donation) error {
	f.donations = append(f.donations, *donation)
	return nil
}

func newTestApp(users *fakeUserRepo, requests *fakeRequestRepo, donations *fakeDonationRepo) *App {
	logger := zerolog.Nop()
	return &App{
		Logger:        logger,
		Users:         users,
		Requests:      requests,
		Donations:     donations,
		DonationSvc:   service.NewDonations(users, requests, donations, nil, logger),
		Registrations: service.NewRegistrations(users, nil, logger),
		Metrics:       metrics.Nop{},
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}
}
