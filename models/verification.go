// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Status is the discriminator of a verification [Outcome]. The string values
// are the wire representation used in the JSON body of the verify endpoint.
type Status string

const (
	// StatusVerified means the internship is confirmed by the registry.
	StatusVerified Status = "verified"
	// StatusPending means the internship exists but is still under review.
	StatusPending Status = "pending"
	// StatusNotFound means the registry has no record for the identifier.
	StatusNotFound Status = "not_found"
	// StatusNetworkError is produced on the client only, when the request
	// itself failed. The server never sends it.
	StatusNetworkError Status = "network_error"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusVerified, StatusPending, StatusNotFound, StatusNetworkError:
		return true
	}
	return false
}

// IsBackendResult reports whether s can legitimately come from a
// verification backend, i.e. anything but [StatusNetworkError].
func (s Status) IsBackendResult() bool {
	return s.Valid() && s != StatusNetworkError
}

// Outcome is the result of a single verification attempt.
type Outcome struct {
	// Status selects how the result panel is rendered.
	Status Status `json:"status"`
	// Title is the short headline of the result panel.
	Title string `json:"title"`
	// Message is the human-readable explanation of the result.
	Message string `json:"message"`
}

// VerifiedOutcome builds the outcome for a confirmed internship.
func VerifiedOutcome(identifier string) Outcome {
	return Outcome{
		Status:  StatusVerified,
		Title:   "Internship Verified!",
		Message: fmt.Sprintf("Congratulations! The internship for ID %s is confirmed.", identifier),
	}
}

// PendingOutcome builds the outcome for an internship that is under review.
func PendingOutcome(identifier string) Outcome {
	return Outcome{
		Status:  StatusPending,
		Title:   "Verification Pending",
		Message: fmt.Sprintf("The status for ID %s is still under review.", identifier),
	}
}

// NotFoundOutcome builds the outcome for an unknown identifier.
func NotFoundOutcome(identifier string) Outcome {
	return Outcome{
		Status:  StatusNotFound,
		Title:   "Not Found",
		Message: fmt.Sprintf("No internship record was found for ID %s.", identifier),
	}
}

// NetworkErrorOutcome builds the outcome shown when the verification request
// could not be completed.
func NetworkErrorOutcome() Outcome {
	return Outcome{
		Status:  StatusNetworkError,
		Title:   "Network Error",
		Message: "Could not connect to the server. Please try again later.",
	}
}

// NormalizeIdentifier trims surrounding whitespace from raw and reports
// whether anything is left.
func NormalizeIdentifier(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	return id, id != ""
}
