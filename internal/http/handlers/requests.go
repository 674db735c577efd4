package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bloodconnect/internal/domain"
)

type createRequestPayload struct {
	BloodGroup    domain.BloodGroup `json:"bloodGroup"`
	PostedBy      string            `json:"postedBy"`
	ContactNumber string            `json:"contactNumber"`
	Location      string            `json:"location"`
	Urgency       domain.Urgency    `json:"urgency"`
	Message       string            `json:"message"`
}

// RequestsList handles GET /api/bloodRequests. With ?status=open only the
// open feed is returned, in insertion order.
func (a *App) RequestsList(w http.ResponseWriter, r *http.Request) {
	var (
		items []domain.BloodRequest
		err   error
	)
	if r.URL.Query().Get("status") == string(domain.RequestStatusOpen) {
		items, err = a.Requests.ListOpen(r.Context())
	} else {
		items, err = a.Requests.List(r.Context())
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("list blood requests failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load blood requests")
		return
	}
	if items == nil {
		items = []domain.BloodRequest{}
	}
	a.json(w, http.StatusOK, items)
}

// RequestsCreate handles POST /api/bloodRequests. The server assigns the
// identifier and sets status=open and postedAt=now.
func (a *App) RequestsCreate(w http.ResponseWriter, r *http.Request) {
	var payload createRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if payload.BloodGroup == "" || payload.PostedBy == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "bloodGroup and postedBy are required")
		return
	}

	request := &domain.BloodRequest{
		ID:            uuid.NewString(),
		BloodGroup:    payload.BloodGroup,
		PostedBy:      payload.PostedBy,
		ContactNumber: payload.ContactNumber,
		Location:      payload.Location,
		PostedAt:      time.Now(),
		Urgency:       payload.Urgency,
		Status:        domain.RequestStatusOpen,
		Message:       payload.Message,
	}
	if err := a.Requests.Create(r.Context(), request); err != nil {
		a.Logger.Error().Err(err).Msg("create blood request failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create blood request")
		return
	}
	a.Metrics.RequestOpened()
	a.json(w, http.StatusCreated, request)
}

// RequestsUpdate handles PUT /api/bloodRequests/{id}: partial update.
func (a *App) RequestsUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch domain.BloodRequestPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	request, err := a.Requests.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "blood request not found")
			return
		}
		a.Logger.Error().Err(err).Str("request_id", id).Msg("update blood request failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to update blood request")
		return
	}
	a.json(w, http.StatusOK, request)
}
