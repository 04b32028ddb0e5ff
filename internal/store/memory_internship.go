package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-intern-verify/internal/config"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/models"
)

// memoryInternshipRepository keeps the registry in a map keyed by the
// lower-cased identifier.
type memoryInternshipRepository struct {
	mu          sync.RWMutex
	internships map[string]models.Internship

	logger *logger.Logger
}

// NewMemoryInternshipRepository builds a registry from seed. An identifier
// listed in both sets is verified.
func NewMemoryInternshipRepository(seed config.Seed, logger *logger.Logger) InternshipRepository {
	repo := &memoryInternshipRepository{
		internships: make(map[string]models.Internship, len(seed.Confirmed)+len(seed.UnderReview)),
		logger:      logger,
	}

	now := time.Now().UTC()
	repo.add(seed.UnderReview, models.StatusPending, now)
	repo.add(seed.Confirmed, models.StatusVerified, now)

	logger.Debug().Int("records", len(repo.internships)).Msg("in-memory internship registry created")
	return repo
}

func (r *memoryInternshipRepository) add(identifiers []string, status models.Status, createdAt time.Time) {
	for _, raw := range identifiers {
		id, ok := models.NormalizeIdentifier(raw)
		if !ok {
			continue
		}
		r.internships[strings.ToLower(id)] = models.Internship{
			Identifier: id,
			Status:     status,
			CreatedAt:  createdAt,
		}
	}
}

func (r *memoryInternshipRepository) FindByIdentifier(ctx context.Context, identifier string) (models.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	internship, ok := r.internships[strings.ToLower(identifier)]
	if !ok {
		return models.Internship{}, ErrInternshipNotFound
	}

	return internship, nil
}
