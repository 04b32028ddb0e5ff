package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/models"
)

const findQuery = "SELECT identifier, status, created_at FROM internships WHERE lower(identifier) = lower($1) LIMIT 1"

func newTestInternshipRepo(t *testing.T) (*internshipRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	l := logger.Nop()
	repo := &internshipRepository{
		db: &DB{
			DB:                 db,
			dialect:            "postgres",
			placeholder:        sq.Dollar,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger:  l,
		backoff: time.Millisecond,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestFindByIdentifier_Success(t *testing.T) {
	repo, mock, db := newTestInternshipRepo(t)
	defer db.Close()

	createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"identifier", "status", "created_at"}).
		AddRow("VOC-123", "verified", createdAt)
	mock.ExpectQuery(findQuery).WithArgs("voc-123").WillReturnRows(rows)

	got, err := repo.FindByIdentifier(context.Background(), "voc-123")

	require.NoError(t, err)
	assert.Equal(t, models.Internship{Identifier: "VOC-123", Status: models.StatusVerified, CreatedAt: createdAt}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIdentifier_NotFound(t *testing.T) {
	repo, mock, db := newTestInternshipRepo(t)
	defer db.Close()

	mock.ExpectQuery(findQuery).WithArgs("XYZ-999").
		WillReturnRows(sqlmock.NewRows([]string{"identifier", "status", "created_at"}))

	_, err := repo.FindByIdentifier(context.Background(), "XYZ-999")

	assert.ErrorIs(t, err, ErrInternshipNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIdentifier_InvalidStoredStatus(t *testing.T) {
	repo, mock, db := newTestInternshipRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"identifier", "status", "created_at"}).
		AddRow("VOC-123", "revoked", time.Now())
	mock.ExpectQuery(findQuery).WithArgs("VOC-123").WillReturnRows(rows)

	_, err := repo.FindByIdentifier(context.Background(), "VOC-123")

	assert.ErrorIs(t, err, ErrInvalidInternshipStatus)
}

func TestFindByIdentifier_NonRetryableError(t *testing.T) {
	repo, mock, db := newTestInternshipRepo(t)
	defer db.Close()

	mock.ExpectQuery(findQuery).WithArgs("VOC-123").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindByIdentifier(context.Background(), "VOC-123")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIdentifier_RetriesTransientError(t *testing.T) {
	repo, mock, db := newTestInternshipRepo(t)
	defer db.Close()

	mock.ExpectQuery(findQuery).WithArgs("VOC-456").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery(findQuery).WithArgs("VOC-456").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(findQuery).WithArgs("VOC-456").
		WillReturnRows(sqlmock.NewRows([]string{"identifier", "status", "created_at"}).
			AddRow("VOC-456", "pending", time.Now()))

	got, err := repo.FindByIdentifier(context.Background(), "VOC-456")

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIdentifier_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, mock, db := newTestInternshipRepo(t)
	defer db.Close()

	for range maxQueryAttempts {
		mock.ExpectQuery(findQuery).WithArgs("VOC-123").
			WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := repo.FindByIdentifier(context.Background(), "VOC-123")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIdentifier_StopsRetryingOnCancelledContext(t *testing.T) {
	repo, mock, db := newTestInternshipRepo(t)
	defer db.Close()
	repo.backoff = time.Hour

	mock.ExpectQuery(findQuery).WithArgs("VOC-123").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := repo.FindByIdentifier(ctx, "VOC-123")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
