// Package health implements the six structurally-identical health record
// services: vaccinations, allergies, boosters, deworming, treatments, and
// genetic disorders. One generic CRUD core serves all kinds; each kind adds
// its payload shape and a pure validation function screens call before
// submission.
package health

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/apperr"
	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/session"
	"github.com/mkamara9/herdsman/pkg/clients/upstream"
)

// Service is the shared backend for all health record kinds.
type Service struct {
	api    *upstream.Client
	logger *zap.Logger
}

// NewService wires a new health service instance.
func NewService(api *upstream.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// validationError folds a failed ValidationResult into the uniform error
// convention.
func validationError(result models.ValidationResult) error {
	return &apperr.ValidationError{Message: strings.Join(result.Errors, " "), Fields: nil}
}

// createRecord stamps the farm and animal onto the kind-specific fields and
// posts the record.
func createRecord[T any](ctx context.Context, s *Service, sess session.Session, path, livestockID string, fields map[string]any) (*T, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}
	if !sess.HasFarm() {
		return nil, apperr.ErrNoActiveFarm
	}
	if livestockID == "" {
		return nil, apperr.MissingFields([]string{"livestockId"})
	}

	payload := map[string]any{
		"farmId":      sess.Farm.ID,
		"livestockId": livestockID,
	}
	for key, value := range fields {
		payload[key] = value
	}

	record := new(T)
	if err := s.api.Post(ctx, sess, path, payload, record); err != nil {
		return nil, fmt.Errorf("create %s record: %w", path, err)
	}

	s.logger.Info("health record created",
		zap.String("path", path),
		zap.String("livestock_id", livestockID),
		zap.String("farm_id", sess.Farm.ID))

	return record, nil
}

// listRecords fetches records matching the query (by livestock or by farm).
func listRecords[T any](ctx context.Context, s *Service, sess session.Session, path string, query map[string]string) ([]T, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}

	var records []T
	if err := s.api.Get(ctx, sess, path, query, &records); err != nil {
		return nil, fmt.Errorf("list %s records: %w", path, err)
	}

	return records, nil
}

// getRecord fetches one record by id.
func getRecord[T any](ctx context.Context, s *Service, sess session.Session, path, id string) (*T, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}

	record := new(T)
	if err := s.api.Get(ctx, sess, path+"/"+id, nil, record); err != nil {
		return nil, fmt.Errorf("get %s record %s: %w", path, id, err)
	}

	return record, nil
}

// updateRecord applies a partial update. The upstream requires the farm to
// be re-supplied on PATCH.
func updateRecord[T any](ctx context.Context, s *Service, sess session.Session, path, id string, patch map[string]any) (*T, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}
	if !sess.HasFarm() {
		return nil, apperr.ErrNoActiveFarm
	}

	payload := make(map[string]any, len(patch)+1)
	for key, value := range patch {
		payload[key] = value
	}
	payload["farmId"] = sess.Farm.ID

	record := new(T)
	if err := s.api.Patch(ctx, sess, path+"/"+id, payload, record); err != nil {
		return nil, fmt.Errorf("update %s record %s: %w", path, id, err)
	}

	return record, nil
}

// deleteRecord removes one record by id.
func deleteRecord(ctx context.Context, s *Service, sess session.Session, path, id string) error {
	if !sess.HasToken() {
		return apperr.ErrNoSession
	}

	if err := s.api.Delete(ctx, sess, path+"/"+id); err != nil {
		return fmt.Errorf("delete %s record %s: %w", path, id, err)
	}

	return nil
}

// livestockQuery and farmQuery build the two listing filters every kind
// supports.
func livestockQuery(livestockID string) map[string]string {
	return map[string]string{"livestockId": livestockID}
}

func farmQuery(sess session.Session) map[string]string {
	return map[string]string{"farmId": sess.Farm.ID}
}

// administeredByOrDefault falls back to the signed-in user when the screen
// left the administrator blank.
func administeredByOrDefault(value string, sess session.Session) string {
	if value != "" {
		return value
	}
	return sess.User.FullName()
}
