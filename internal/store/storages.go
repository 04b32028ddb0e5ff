package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-intern-verify/internal/config"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
)

// Storages groups the repositories used by the server.
type Storages struct {
	InternshipRepository InternshipRepository

	db *DB
}

// NewStorages picks the registry backend from cfg.DB.DSN. An empty DSN
// selects the in-memory registry seeded from seed; otherwise the database is
// opened and migrated.
func NewStorages(ctx context.Context, cfg config.Storage, seed config.Seed, logger *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		logger.Info().Msg("no database configured, using in-memory registry")
		return &Storages{InternshipRepository: NewMemoryInternshipRepository(seed, logger)}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting registry database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating registry database: %w", err)
	}

	return &Storages{
		InternshipRepository: NewInternshipRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
