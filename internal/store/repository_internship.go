package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/models"
)

const (
	maxQueryAttempts = 3
	retryBackoff     = 100 * time.Millisecond
)

// internshipRepository is the SQL-backed implementation of
// [InternshipRepository]. It works against PostgreSQL and SQLite.
type internshipRepository struct {
	db     *DB
	logger *logger.Logger

	backoff time.Duration
}

// NewInternshipRepository constructs an [InternshipRepository] backed by the
// provided database connection.
func NewInternshipRepository(db *DB, logger *logger.Logger) InternshipRepository {
	logger.Debug().Msg("creating internship repository")
	return &internshipRepository{
		db:      db,
		logger:  logger,
		backoff: retryBackoff,
	}
}

// FindByIdentifier looks the identifier up case-insensitively. Errors that
// the driver classifies as transient are retried with a linear backoff.
func (r *internshipRepository) FindByIdentifier(ctx context.Context, identifier string) (models.Internship, error) {
	log := logger.FromContext(ctx)

	var (
		internship models.Internship
		err        error
	)
	for attempt := 1; attempt <= maxQueryAttempts; attempt++ {
		internship, err = r.findByIdentifier(ctx, identifier)
		if err == nil || r.db.classify(err) != Retryable || attempt == maxQueryAttempts {
			break
		}

		log.Warn().Err(err).Str("func", "*internshipRepository.FindByIdentifier").
			Int("attempt", attempt).
			Msg("retrying internship lookup")

		select {
		case <-ctx.Done():
			return models.Internship{}, fmt.Errorf("%w: %w", ErrExecutingQuery, ctx.Err())
		case <-time.After(time.Duration(attempt) * r.backoff):
		}
	}

	return internship, err
}

func (r *internshipRepository) findByIdentifier(ctx context.Context, identifier string) (models.Internship, error) {
	log := logger.FromContext(ctx)

	query, args, err := findInternshipByIdentifierQuery(r.db.placeholder, identifier)
	if err != nil {
		log.Err(err).Str("func", "*internshipRepository.findByIdentifier").Msg("error building query")
		return models.Internship{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		internship models.Internship
		status     string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&internship.Identifier, &status, &internship.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Internship{}, ErrInternshipNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*internshipRepository.findByIdentifier").Msg("error querying internship")
		return models.Internship{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	internship.Status = models.Status(status)
	if internship.Status != models.StatusVerified && internship.Status != models.StatusPending {
		log.Error().Str("func", "*internshipRepository.findByIdentifier").
			Str("identifier", internship.Identifier).
			Str("status", status).
			Msg("stored status is not supported")
		return models.Internship{}, fmt.Errorf("%w: %q", ErrInvalidInternshipStatus, status)
	}

	return internship, nil
}
