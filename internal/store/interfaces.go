package store

import (
	"context"

	"github.com/MKhiriev/go-intern-verify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// InternshipRepository reads the internship registry.
type InternshipRepository interface {
	// FindByIdentifier returns the record whose identifier matches
	// case-insensitively, or [ErrInternshipNotFound].
	FindByIdentifier(ctx context.Context, identifier string) (models.Internship, error)
}

// ErrorClassificator decides whether a failed database call is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
