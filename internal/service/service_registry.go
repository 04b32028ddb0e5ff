package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/store"
	"github.com/MKhiriev/go-intern-verify/internal/validators"
	"github.com/MKhiriev/go-intern-verify/models"
)

type registryService struct {
	internshipRepository store.InternshipRepository
	validator            validators.Validator

	logger *logger.Logger
}

func NewRegistryService(internshipRepository store.InternshipRepository, logger *logger.Logger) RegistryService {
	return &registryService{
		internshipRepository: internshipRepository,
		validator:            validators.NewIdentifierValidator(),
		logger:               logger,
	}
}

// Verify trims the identifier, looks it up case-insensitively and converts
// the record into an outcome that echoes the identifier as it was sent.
// Only a blank identifier is rejected; any other identifier the registry
// cannot hold resolves to not_found.
func (s *registryService) Verify(ctx context.Context, identifier string) (models.Outcome, error) {
	id, ok := models.NormalizeIdentifier(identifier)
	if !ok {
		return models.Outcome{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, id, validators.FieldNotBlank); err != nil {
		return models.Outcome{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	// no record can match an over-long or non-printable identifier
	if err := s.validator.Validate(ctx, id, validators.FieldMaxLength, validators.FieldPrintable); err != nil {
		s.logger.Debug().Str("func", "*registryService.Verify").
			Err(err).
			Msg("identifier outside registry bounds")
		return models.NotFoundOutcome(id), nil
	}

	internship, err := s.internshipRepository.FindByIdentifier(ctx, id)
	if errors.Is(err, store.ErrInternshipNotFound) {
		s.logger.Debug().Str("func", "*registryService.Verify").
			Str("identifier", id).
			Msg("no internship record")
		return models.NotFoundOutcome(id), nil
	}
	if err != nil {
		return models.Outcome{}, fmt.Errorf("error looking up internship: %w", err)
	}

	return internship.Outcome(id), nil
}
