// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the internship verify API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-intern-verify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the verify API.
// Implementations are responsible for serialisation, response integrity
// checks, and mapping transport-level errors to the sentinel values defined
// in this package.
type ServerAdapter interface {
	// Verify asks the registry about identifier. Verified, pending and
	// not-found answers are all returned as a [models.Outcome] with a nil
	// error; any error means the answer could not be obtained.
	Verify(ctx context.Context, identifier string) (models.Outcome, error)

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)
}
