// Command seed loads the demo blood requests into an empty database.
// It is safe to run repeatedly: nothing is inserted once any request exists.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"bloodconnect/internal/adapter/repo"
	"bloodconnect/internal/domain"
	"bloodconnect/internal/infra"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if err := infra.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	requests := repo.NewBloodRequestRepository(dbpool)

	existing, err := requests.List(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to inspect blood requests")
	}
	if len(existing) > 0 {
		logger.Info().Int("count", len(existing)).Msg("blood requests already present, nothing to seed")
		return
	}

	now := time.Now()
	demo := []domain.BloodRequest{
		{
			ID:            uuid.NewString(),
			BloodGroup:    domain.BloodGroupBPos,
			PostedBy:      "Abdul Khalek",
			ContactNumber: "01734206885",
			Location:      "Gazipur, Dhaka",
			PostedAt:      now.Add(-24 * time.Hour),
			Status:        domain.RequestStatusOpen,
		},
		{
			ID:            uuid.NewString(),
			BloodGroup:    domain.BloodGroupAPos,
			PostedBy:      "Raju",
			ContactNumber: "01982872891",
			Location:      "Dhanmondi, Dhaka",
			PostedAt:      now.Add(-48 * time.Hour),
			Status:        domain.RequestStatusOpen,
		},
		{
			ID:            uuid.NewString(),
			BloodGroup:    domain.BloodGroupONeg,
			PostedBy:      "Anika",
			ContactNumber: "01712345678",
			Location:      "Uttara, Dhaka",
			PostedAt:      now.Add(-72 * time.Hour),
			Urgency:       domain.UrgencyHigh,
			Status:        domain.RequestStatusOpen,
			Message:       "Urgently needed for accident victim",
		},
	}

	for _, request := range demo {
		if err := requests.Create(ctx, &request); err != nil {
			logger.Fatal().Err(err).Str("posted_by", request.PostedBy).Msg("failed to seed blood request")
		}
	}
	logger.Info().Int("count", len(demo)).Msg("seeded demo blood requests")
}
