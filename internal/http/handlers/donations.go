package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bloodconnect/internal/domain"
	"bloodconnect/internal/middleware"
)

type donationPayload struct {
	DonorID   string `json:"donorId"`
	RequestID string `json:"requestId"`
}

// DonationsList handles GET /api/donations.
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Donations.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list donations failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
		return
	}
	if items == nil {
		items = []domain.Donation{}
	}
	a.json(w, http.StatusOK, items)
}

// DonationsByUser handles GET /api/donations/user/{userId}.
func (a *App) DonationsByUser(w http.ResponseWriter, r *http.Request) {
	donorID := chi.URLParam(r, "userId")
	items, err := a.DonationSvc.History(r.Context(), donorID)
	if err != nil {
		a.Logger.Error().Err(err).Str("donor_id", donorID).Msg("list donor donations failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
		return
	}
	if items == nil {
		items = []domain.Donation{}
	}
	a.json(w, http.StatusOK, items)
}

// DonationsCreate handles POST /api/donations. The donor is taken from the
// body, falling back to the session identity when the body omits it.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var payload donationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if payload.DonorID == "" {
		payload.DonorID = middleware.UserIDFromContext(r.Context())
	}

	donation, err := a.DonationSvc.Record(r.Context(), payload.DonorID, payload.RequestID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		a.Logger.Error().Err(err).Msg("record donation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to record donation")
		return
	}
	a.json(w, http.StatusCreated, donation)
}
