package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/models"
)

// VerificationServiceWrapper defines middleware composition for
// VerificationService. Implementations wrap an existing VerificationService to
// add behavior such as logging.
type VerificationServiceWrapper interface {
	Wrap(VerificationService) VerificationService // returns a decorated VerificationService applying additional behavior
}

// VerificationLoggingService logs every verification call with its duration
// and result.
type VerificationLoggingService struct {
	inner  VerificationService
	logger *logger.Logger
}

func NewVerificationLoggingService(logger *logger.Logger) VerificationServiceWrapper {
	return &VerificationLoggingService{logger: logger}
}

func (v *VerificationLoggingService) Verify(ctx context.Context, identifier string) (models.Outcome, error) {
	start := time.Now()
	outcome, err := v.inner.Verify(ctx, identifier)

	if err != nil {
		v.logger.Err(err).Str("func", "*VerificationLoggingService.Verify").
			Str("identifier", identifier).
			Dur("duration", time.Since(start)).
			Msg("verification failed")
		return outcome, err
	}

	v.logger.Info().Str("func", "*VerificationLoggingService.Verify").
		Str("identifier", identifier).
		Str("status", string(outcome.Status)).
		Dur("duration", time.Since(start)).
		Msg("verification finished")

	return outcome, nil
}

func (v *VerificationLoggingService) Wrap(inner VerificationService) VerificationService {
	v.inner = inner
	return v
}
