package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-intern-verify/internal/adapter"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/models"
)

type remoteVerifier struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewRemoteVerifier returns a [VerificationService] backed by the verify API.
func NewRemoteVerifier(serverAdapter adapter.ServerAdapter, logger *logger.Logger) VerificationService {
	return &remoteVerifier{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

// Verify delegates to the server adapter. Any answer whose status is not one
// of verified, pending or not_found is rejected with [ErrUnexpectedOutcome].
func (r *remoteVerifier) Verify(ctx context.Context, identifier string) (models.Outcome, error) {
	outcome, err := r.serverAdapter.Verify(ctx, identifier)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("remote verification failed: %w", err)
	}

	if !outcome.Status.IsBackendResult() {
		r.logger.Error().Str("func", "*remoteVerifier.Verify").
			Str("status", string(outcome.Status)).
			Msg("server answered with unexpected status")
		return models.Outcome{}, fmt.Errorf("%w: status %q", ErrUnexpectedOutcome, outcome.Status)
	}

	return outcome, nil
}
