package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bloodconnect/internal/domain"
	"bloodconnect/internal/middleware"
)

type sessionPayload struct {
	UserID string `json:"userId"`
}

// SessionsCreate handles POST /api/sessions: sign-in. The only check is
// that the user id names a stored account; there are no credentials.
func (a *App) SessionsCreate(w http.ResponseWriter, r *http.Request) {
	var payload sessionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if payload.UserID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "userId required")
		return
	}

	user, err := a.Users.GetByID(r.Context(), payload.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.Logger.Error().Err(err).Str("user_id", payload.UserID).Msg("sign-in lookup failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create session")
		return
	}

	token, err := middleware.SignSession(a.SessionSecret, middleware.SessionClaims{
		Sub:    user.ID,
		Exp:    time.Now().Add(a.SessionTTL).Unix(),
		Issuer: "bloodconnect",
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign session failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create session")
		return
	}

	a.json(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  user,
	})
}

// SessionsDelete handles DELETE /api/sessions: logout. Tokens are
// stateless, so the server only acknowledges; the client discards its copy.
func (a *App) SessionsDelete(w http.ResponseWriter, r *http.Request) {
	if userID := middleware.UserIDFromContext(r.Context()); userID != "" {
		a.Logger.Info().Str("user_id", userID).Msg("signed out")
	}
	w.WriteHeader(http.StatusNoContent)
}
