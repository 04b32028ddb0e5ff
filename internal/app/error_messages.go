// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// verify API handlers.
//
// The Msg* constants are the human-readable strings written into the
// "error" field of JSON error responses.
package app

const (
	// MsgInvalidDataProvided is returned when the identifier in the path is
	// blank or cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when the registry lookup fails for
	// a reason the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is returned when the registry did not answer
	// within the request timeout.
	MsgServiceUnavailable = "registry temporarily unavailable"
)
