package domain

import "time"

// RequestStatus enumerates the lifecycle states of a blood request.
type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "open"
	RequestStatusFulfilled RequestStatus = "fulfilled"
	RequestStatusClosed    RequestStatus = "closed"
)

// Urgency enumerates how pressing a blood request is.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// BloodRequest is a public call for a donor. PostedBy is a display name,
// not a User reference; requests may come from non-registered contacts.
type BloodRequest struct {
	ID            string        `json:"id"`
	BloodGroup    BloodGroup    `json:"bloodGroup"`
	PostedBy      string        `json:"postedBy"`
	ContactNumber string        `json:"contactNumber"`
	Location      string        `json:"location"`
	PostedAt      time.Time     `json:"postedAt"`
	Urgency       Urgency       `json:"urgency,omitempty"`
	Status        RequestStatus `json:"status"`
	Message       string        `json:"message,omitempty"`
}

// BloodRequestPatch carries a partial update; nil fields are untouched.
type BloodRequestPatch struct {
	BloodGroup    *BloodGroup    `json:"bloodGroup"`
	PostedBy      *string        `json:"postedBy"`
	ContactNumber *string        `json:"contactNumber"`
	Location      *string        `json:"location"`
	Urgency       *Urgency       `json:"urgency"`
	Status        *RequestStatus `json:"status"`
	Message       *string        `json:"message"`
}

// Apply merges the patch onto r. Identifier and postedAt are never patched.
func (p BloodRequestPatch) Apply(r *BloodRequest) {
	if p.BloodGroup != nil {
		r.BloodGroup = *p.BloodGroup
	}
	if p.PostedBy != nil {
		r.PostedBy = *p.PostedBy
	}
	if p.ContactNumber != nil {
		r.ContactNumber = *p.ContactNumber
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Urgency != nil {
		r.Urgency = *p.Urgency
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Message != nil {
		r.Message = *p.Message
	}
}
