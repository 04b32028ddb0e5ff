package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-intern-verify/internal/config"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/models"
)

// simulatedVerifier answers from a fixed catalogue after an artificial delay,
// standing in for the registry when no server is available.
type simulatedVerifier struct {
	latency       time.Duration
	confirmed     []string
	underReview   []string
	failTransport bool

	logger *logger.Logger
}

// NewSimulatedVerifier returns a [VerificationService] that waits cfg.Latency
// and then matches the identifier case-insensitively against cfg.Confirmed
// and cfg.UnderReview. Everything else is not found.
func NewSimulatedVerifier(cfg config.ClientSimulation, logger *logger.Logger) VerificationService {
	return &simulatedVerifier{
		latency:       cfg.Latency,
		confirmed:     slices.Clone(cfg.Confirmed),
		underReview:   slices.Clone(cfg.UnderReview),
		failTransport: cfg.FailTransport,
		logger:        logger,
	}
}

func (s *simulatedVerifier) Verify(ctx context.Context, identifier string) (models.Outcome, error) {
	if err := s.wait(ctx); err != nil {
		return models.Outcome{}, fmt.Errorf("simulated verification interrupted: %w", err)
	}

	if s.failTransport {
		return models.Outcome{}, ErrSimulatedTransportFailure
	}

	switch {
	case containsFold(s.confirmed, identifier):
		return models.VerifiedOutcome(identifier), nil
	case containsFold(s.underReview, identifier):
		return models.PendingOutcome(identifier), nil
	default:
		return models.NotFoundOutcome(identifier), nil
	}
}

func (s *simulatedVerifier) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func containsFold(list []string, identifier string) bool {
	return slices.ContainsFunc(list, func(candidate string) bool {
		return strings.EqualFold(strings.TrimSpace(candidate), identifier)
	})
}
