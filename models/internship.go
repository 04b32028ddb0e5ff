package models

import "time"

// Internship is a record of the verification registry.
type Internship struct {
	// Identifier is the public ID printed on the internship certificate
	// (e.g. "VOC-123"). Lookups are case-insensitive.
	Identifier string `json:"identifier"`

	// Status is either [StatusVerified] or [StatusPending]. Identifiers that
	// have no record are reported as [StatusNotFound] by the service layer.
	Status Status `json:"status"`

	// CreatedAt is the moment the record was registered.
	CreatedAt time.Time `json:"created_at"`
}

// Outcome converts the record into the verification outcome sent to clients.
// displayID is echoed into the message as the user typed it.
func (i Internship) Outcome(displayID string) Outcome {
	switch i.Status {
	case StatusVerified:
		return VerifiedOutcome(displayID)
	case StatusPending:
		return PendingOutcome(displayID)
	default:
		return NotFoundOutcome(displayID)
	}
}
