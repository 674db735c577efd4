package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"bloodconnect/internal/adapter/repo"
	"bloodconnect/internal/domain"
	"bloodconnect/internal/infra"
	"bloodconnect/internal/metrics"
	"bloodconnect/internal/service"
)

// App is the handler dependency container.
type App struct {
	Logger        zerolog.Logger
	Users         domain.UserRepository
	Requests      domain.BloodRequestRepository
	Donations     domain.DonationRepository
	DonationSvc   *service.Donations
	Registrations *service.Registrations
	Metrics       metrics.Recorder
	SessionSecret string
	SessionTTL    time.Duration
}

// NewApp wires repositories and services over the connection pool.
func NewApp(pool *pgxpool.Pool, cfg *infra.Config, logger zerolog.Logger, rec metrics.Recorder) *App {
	if rec == nil {
		rec = metrics.Nop{}
	}
	users := repo.NewUserRepository(pool)
	requests := repo.NewBloodRequestRepository(pool)
	donations := repo.NewDonationRepository(pool)

	return &App{
		Logger:        logger,
		Users:         users,
		Requests:      requests,
		Donations:     donations,
		DonationSvc:   service.NewDonations(users, requests, donations, rec, logger),
		Registrations: service.NewRegistrations(users, rec, logger),
		Metrics:       rec,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": message},
	})
}
