package livestock

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/apperr"
	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/session"
	"github.com/mkamara9/herdsman/pkg/clients/upstream"
)

// Service reads the livestock roster from the upstream API. Breeding and
// health services use it to resolve dam/sire ids and to validate that a
// referenced animal belongs to the active farm.
type Service struct {
	api    *upstream.Client
	logger *zap.Logger
}

// NewService wires a new livestock service instance.
func NewService(api *upstream.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// List fetches the full roster for the session's active farm.
func (s *Service) List(ctx context.Context, sess session.Session) ([]models.Livestock, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}
	if !sess.HasFarm() {
		return nil, apperr.ErrNoActiveFarm
	}

	var roster []models.Livestock
	err := s.api.Get(ctx, sess, "/livestock", map[string]string{"farmId": sess.Farm.ID}, &roster)
	if err != nil {
		return nil, fmt.Errorf("list livestock: %w", err)
	}

	s.logger.Debug("roster fetched", zap.String("farm_id", sess.Farm.ID), zap.Int("count", len(roster)))
	return roster, nil
}

// Get fetches a single animal by id.
func (s *Service) Get(ctx context.Context, sess session.Session, id string) (*models.Livestock, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}

	animal := new(models.Livestock)
	if err := s.api.Get(ctx, sess, "/livestock/"+id, nil, animal); err != nil {
		return nil, fmt.Errorf("get livestock %s: %w", id, err)
	}

	return animal, nil
}

// ExtractBreeds returns the distinct breed names present in a roster, in
// first-seen order.
func ExtractBreeds(roster []models.Livestock) []string {
	seen := make(map[string]struct{}, len(roster))
	var breeds []string

	for _, animal := range roster {
		breed := animal.Breed()
		if breed == "" {
			continue
		}
		if _, ok := seen[breed]; ok {
			continue
		}
		seen[breed] = struct{}{}
		breeds = append(breeds, breed)
	}

	return breeds
}
