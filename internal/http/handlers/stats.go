package handlers

import (
	"net/http"

	"bloodconnect/internal/domain"
)

// StatsSummary handles GET /api/stats: coordination totals for dashboards.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	users, err := a.Users.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("stats: list users failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	requests, err := a.Requests.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("stats: list requests failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	donations, err := a.Donations.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("stats: list donations failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}

	var activeDonors int
	for _, u := range users {
		if u.IsActive {
			activeDonors++
		}
	}
	var openRequests, fulfilledRequests int
	for _, req := range requests {
		switch req.Status {
		case domain.RequestStatusOpen:
			openRequests++
		case domain.RequestStatusFulfilled:
			fulfilledRequests++
		}
	}

	a.json(w, http.StatusOK, map[string]any{
		"total_users":        len(users),
		"active_donors":      activeDonors,
		"open_requests":      openRequests,
		"fulfilled_requests": fulfilledRequests,
		"total_donations":    len(donations),
	})
}
