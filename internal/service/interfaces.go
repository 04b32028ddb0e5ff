package service

import (
	"context"

	"github.com/MKhiriev/go-intern-verify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RegistryService answers verification requests on the server from the
// internship registry.
type RegistryService interface {
	// Verify looks the identifier up. Unknown identifiers produce a
	// not-found outcome, not an error. An error means the registry could
	// not be consulted or the identifier is blank.
	Verify(ctx context.Context, identifier string) (models.Outcome, error)
}

// AppInfoService exposes static information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
