package service

import (
	"fmt"

	"github.com/MKhiriev/go-intern-verify/internal/adapter"
	"github.com/MKhiriev/go-intern-verify/internal/config"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
)

// NewClientVerificationService selects the verification backend from
// cfg.Mode and decorates it with call logging. serverAdapter is only
// required in remote mode.
func NewClientVerificationService(cfg *config.ClientConfig, serverAdapter adapter.ServerAdapter, logger *logger.Logger) (VerificationService, error) {
	var verifier VerificationService

	switch cfg.Mode {
	case config.ModeSimulated:
		verifier = NewSimulatedVerifier(cfg.Simulation, logger)
	case config.ModeRemote:
		if serverAdapter == nil {
			return nil, ErrNoServerAdapter
		}
		verifier = NewRemoteVerifier(serverAdapter, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVerifierMode, cfg.Mode)
	}

	logger.Info().Str("mode", string(cfg.Mode)).Msg("verification service created")

	return NewVerificationLoggingService(logger).Wrap(verifier), nil
}
