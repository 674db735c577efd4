package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bloodconnect/internal/domain"
	"bloodconnect/internal/metrics"
)

// RegisterInput carries the field set collected by the two-step
// registration form.
type RegisterInput struct {
	Name          string            `json:"name"`
	BloodGroup    domain.BloodGroup `json:"bloodGroup"`
	Age           int               `json:"age"`
	Location      string            `json:"location"`
	DateOfBirth   string            `json:"dateOfBirth"`
	Gender        string            `json:"gender"`
	ContactNumber string            `json:"contactNumber"`
	Email         string            `json:"email"`
}

// ProfilePatch is the field set a profile edit may change. Identifier and
// totalDonations are deliberately absent. Division, when present, is folded
// into location.
type ProfilePatch struct {
	Name          *string            `json:"name"`
	BloodGroup    *domain.BloodGroup `json:"bloodGroup"`
	Age           *int               `json:"age"`
	Location      *string            `json:"location"`
	Division      *string            `json:"division"`
	DateOfBirth   *string            `json:"dateOfBirth"`
	Gender        *string            `json:"gender"`
	ContactNumber *string            `json:"contactNumber"`
	Email         *string            `json:"email"`
	IsActive      *bool              `json:"isActive"`
	LastDonation  *time.Time         `json:"lastDonation"`
}

// Registrations validates and persists donor accounts.
type Registrations struct {
	users   domain.UserRepository
	metrics metrics.Recorder
	logger  zerolog.Logger
}

// NewRegistrations wires the workflow.
func NewRegistrations(users domain.UserRepository, rec metrics.Recorder, logger zerolog.Logger) *Registrations {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Registrations{users: users, metrics: rec, logger: logger}
}

// Register applies both form-phase gates and creates the account. Nothing
// is written to the store when a gate fails. New accounts start active
// with zero donations.
func (s *Registrations) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	// Phase 1: identity facts.
	if strings.TrimSpace(in.Name) == "" || in.Age == 0 {
		return nil, fmt.Errorf("%w: name, bloodGroup and age are required", domain.ErrValidation)
	}
	if !in.BloodGroup.Valid() {
		return nil, fmt.Errorf("%w: unknown blood group %q", domain.ErrValidation, in.BloodGroup)
	}
	// Phase 2: location and contact facts.
	if strings.TrimSpace(in.Location) == "" || strings.TrimSpace(in.DateOfBirth) == "" {
		return nil, fmt.Errorf("%w: location and dateOfBirth are required", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.NewString(),
		Name:           in.Name,
		BloodGroup:     in.BloodGroup,
		Location:       in.Location,
		Age:            in.Age,
		DateOfBirth:    in.DateOfBirth,
		Gender:         in.Gender,
		ContactNumber:  in.ContactNumber,
		Email:          in.Email,
		IsActive:       true,
		TotalDonations: 0,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.metrics.UserRegistered()
	s.logger.Info().Str("user_id", user.ID).Str("blood_group", string(user.BloodGroup)).Msg("donor registered")

	return user, nil
}

// UpdateProfile shallow-merges the patch into the stored user. When a
// division is supplied, location is recomposed as "{street}, {division}";
// the street part comes from the patch or, failing that, from the first
// comma-separated segment of the stored location.
func (s *Registrations) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error) {
	location := patch.Location
	if patch.Division != nil {
		street := ""
		if patch.Location != nil {
			street = *patch.Location
		} else if current, err := s.users.GetByID(ctx, id); err == nil {
			street = strings.Split(current.Location, ", ")[0]
		}
		composed := street + ", " + *patch.Division
		location = &composed
	}

	return s.users.Update(ctx, id, domain.UserPatch{
		Name:          patch.Name,
		BloodGroup:    patch.BloodGroup,
		Location:      location,
		Age:           patch.Age,
		DateOfBirth:   patch.DateOfBirth,
		Gender:        patch.Gender,
		ContactNumber: patch.ContactNumber,
		Email:         patch.Email,
		IsActive:      patch.IsActive,
		LastDonation:  patch.LastDonation,
	})
}
