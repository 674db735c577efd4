package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bloodconnect/internal/domain"
	"bloodconnect/internal/metrics"
)

// Donations orchestrates the donation-recording workflow, the only
// multi-entity write in the system.
type Donations struct {
	users     domain.UserRepository
	requests  domain.BloodRequestRepository
	donations domain.DonationRepository
	metrics   metrics.Recorder
	logger    zerolog.Logger
	now       func() time.Time
}

// NewDonations wires the workflow.
func NewDonations(
	users domain.UserRepository,
	requests domain.BloodRequestRepository,
	donations domain.DonationRepository,
	rec metrics.Recorder,
	logger zerolog.Logger,
) *Donations {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Donations{
		users:     users,
		requests:  requests,
		donations: donations,
		metrics:   rec,
		logger:    logger,
		now:       time.Now,
	}
}

// Record creates a donation for the given donor against the given request.
//
// The three writes (donor stats, request status, donation row) are
// deliberately independent and best-effort: a missing donor or request is
// skipped without error, and nothing is rolled back if a later write
// fails. Only a failure to persist the donation itself aborts.
func (s *Donations) Record(ctx context.Context, donorID, requestID string) (*domain.Donation, error) {
	if donorID == "" || requestID == "" {
		return nil, fmt.Errorf("%w: donorId and requestId are required", domain.ErrValidation)
	}

	donation := &domain.Donation{
		ID:           uuid.NewString(),
		DonorID:      donorID,
		RequestID:    requestID,
		DonationDate: s.now(),
	}

	s.bumpDonorStats(ctx, donation)
	s.fulfillRequest(ctx, requestID)

	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("record donation: %w", err)
	}
	s.metrics.DonationRecorded()

	return donation, nil
}

// bumpDonorStats sets lastDonation and increments totalDonations. A donor
// that does not exist is skipped; the donation record may dangle.
func (s *Donations) bumpDonorStats(ctx context.Context, donation *domain.Donation) {
	user, err := s.users.GetByID(ctx, donation.DonorID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn().Err(err).Str("donor_id", donation.DonorID).Msg("donor lookup failed, skipping stats update")
		}
		return
	}

	total := user.TotalDonations + 1
	patch := domain.UserPatch{
		LastDonation:   &donation.DonationDate,
		TotalDonations: &total,
	}
	if _, err := s.users.Update(ctx, user.ID, patch); err != nil {
		s.logger.Warn().Err(err).Str("donor_id", user.ID).Msg("donor stats update failed, donation proceeds")
	}
}

// fulfillRequest flips the request to fulfilled. A request that does not
// exist is skipped.
func (s *Donations) fulfillRequest(ctx context.Context, requestID string) {
	status := domain.RequestStatusFulfilled
	if _, err := s.requests.Update(ctx, requestID, domain.BloodRequestPatch{Status: &status}); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn().Err(err).Str("request_id", requestID).Msg("request status update failed, donation proceeds")
		}
		return
	}
	s.metrics.RequestFulfilled()
}

// History returns the donor's donation log.
func (s *Donations) History(ctx context.Context, donorID string) ([]domain.Donation, error) {
	return s.donations.ListByDonor(ctx, donorID)
}
