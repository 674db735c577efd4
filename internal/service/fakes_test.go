package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"bloodconnect/internal/domain"
)

// In-memory repositories mirroring the store contract: shallow-merge
// updates, ErrNotFound on missing ids, insertion-ordered listing.

type memUserRepo struct {
	mu      sync.Mutex
	users   []domain.User
	creates int
}

func (m *memUserRepo) List(context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.User(nil), m.users...), nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUserRepo) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserRepo) Update(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			patch.Apply(&m.users[i])
			copied := m.users[i]
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memRequestRepo struct {
	mu       sync.Mutex
	requests []domain.BloodRequest
}

func (m *memRequestRepo) List(context.Context) ([]domain.BloodRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.BloodRequest(nil), m.requests...), nil
}

func (m *memRequestRepo) ListOpen(context.Context) ([]domain.BloodRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var open []domain.BloodRequest
	for _, r := range m.requests {
		if r.Status == domain.RequestStatusOpen {
			open = append(open, r)
		}
	}
	return open, nil
}

func (m *memRequestRepo) GetByID(_ context.Context, id string) (*domain.BloodRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.requests {
		if r.ID == id {
			copied := r
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memRequestRepo) Create(_ context.Context, request *domain.BloodRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, *request)
	return nil
}

func (m *memRequestRepo) Update(_ context.Context, id string, patch domain.BloodRequestPatch) (*domain.BloodRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.requests {
		if m.requests[i].ID == id {
			patch.Apply(&m.requests[i])
			copied := m.requests[i]
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memDonationRepo struct {
	mu        sync.Mutex
	donations []domain.Donation
	createErr error
}

func (m *memDonationRepo) List(context.Context) ([]domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Donation(nil), m.donations...), nil
}

func (m *memDonationRepo) ListByDonor(_ context.Context, donorID string) ([]domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []domain.Donation
	for _, d := range m.donations {
		if d.DonorID == donorID {
			items = append(items, d)
		}
	}
	return items, nil
}

func (m *memDonationRepo) Create(_ context.Context, donation *domain.Donation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.donations = append(m.donations, *donation)
	return nil
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
