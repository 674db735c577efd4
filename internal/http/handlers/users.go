package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bloodconnect/internal/domain"
	"bloodconnect/internal/service"
)

// UsersList handles GET /api/users.
func (a *App) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := a.Users.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list users failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load users")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	a.json(w, http.StatusOK, users)
}

// UsersGet handles GET /api/users/{id}.
func (a *App) UsersGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := a.Users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.Logger.Error().Err(err).Str("user_id", id).Msg("get user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load user")
		return
	}
	a.json(w, http.StatusOK, user)
}

// UsersCreate handles POST /api/users: registration. The server assigns
// the identifier and defaults isActive=true, totalDonations=0.
func (a *App) UsersCreate(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	user, err := a.Registrations.Register(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		a.Logger.Error().Err(err).Msg("register failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create user")
		return
	}
	a.json(w, http.StatusCreated, user)
}

// UsersUpdate handles PUT /api/users/{id}: partial profile edit.
func (a *App) UsersUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch service.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	user, err := a.Registrations.UpdateProfile(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.Logger.Error().Err(err).Str("user_id", id).Msg("update profile failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update user")
		return
	}
	a.json(w, http.StatusOK, user)
}

// UsersAchievements handles GET /api/users/{id}/achievements: the donor's
// milestone badges plus the next-donation countdown.
func (a *App) UsersAchievements(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := a.Users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.Logger.Error().Err(err).Str("user_id", id).Msg("get user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load user")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"totalDonations":   user.TotalDonations,
		"lastDonation":     user.LastDonation,
		"nextDonationDays": domain.NextDonationDays(user.LastDonation, time.Now()),
		"achievements":     domain.AchievementsFor(user.TotalDonations),
	})
}
