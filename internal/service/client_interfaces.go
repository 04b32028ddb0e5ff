package service

import (
	"context"

	"github.com/MKhiriev/go-intern-verify/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// VerificationService is the client's verification backend. Exactly one
// outcome is produced per call.
//
// A non-nil error means the request itself failed (network, timeout,
// cancelled context, unexpected answer). Pending and not-found answers are
// regular outcomes and are never reported as errors.
type VerificationService interface {
	Verify(ctx context.Context, identifier string) (models.Outcome, error)
}
