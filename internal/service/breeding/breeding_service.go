package breeding

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/apperr"
	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/service/livestock"
	"github.com/mkamara9/herdsman/internal/session"
	"github.com/mkamara9/herdsman/pkg/clients/upstream"
)

// createTimeout bounds breeding-record creation; other calls use the
// client's default.
const createTimeout = 10 * time.Second

// Service implements the breeding-record lifecycle: creation, pregnancy
// tracking, birth recording, and offspring registration, all backed by the
// upstream REST API.
type Service struct {
	api       *upstream.Client
	livestock *livestock.Service
	logger    *zap.Logger
}

// NewService wires a new breeding service instance.
func NewService(api *upstream.Client, livestockSvc *livestock.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, livestock: livestockSvc, logger: logger}
}

// CreateInput carries the fields a breeding-record creation screen submits.
// AICost is kept as the raw form string; it is coerced during payload
// construction.
type CreateInput struct {
	DamID             string
	SireID            string
	SireCode          string
	Purpose           string
	Strategy          string
	ServiceType       models.ServiceType
	ServiceDate       string
	NumServices       int
	FirstHeatDate     string
	GestationDays     int
	ExpectedBirthDate string
	AIType            string
	AISource          string
	AICost            string
}

// Create validates and submits a new breeding record. Validation failures
// are reported before any network call; server-side constraint failures are
// refined into the dam/sire and duplicate messages.
func (s *Service) Create(ctx context.Context, sess session.Session, in CreateInput) (*models.BreedingRecord, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}
	if !sess.HasFarm() {
		return nil, apperr.ErrNoActiveFarm
	}

	var missing []string
	if in.DamID == "" {
		missing = append(missing, "damId")
	}
	if in.SireID == "" {
		missing = append(missing, "sireId")
	}
	if in.Purpose == "" {
		missing = append(missing, "purpose")
	}
	if in.Strategy == "" {
		missing = append(missing, "strategy")
	}
	if in.ServiceType == "" {
		missing = append(missing, "serviceType")
	}
	if len(missing) > 0 {
		return nil, apperr.MissingFields(missing)
	}

	payload, err := buildCreatePayload(sess.Farm.ID, in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, createTimeout)
	defer cancel()

	record := new(models.BreedingRecord)
	if err := s.api.Post(ctx, sess, "/breeding", payload, record); err != nil {
		return nil, apperr.ForBreedingCreate(err)
	}

	s.logger.Info("breeding record created",
		zap.String("farm_id", sess.Farm.ID),
		zap.String("dam_id", in.DamID),
		zap.String("sire_id", in.SireID),
		zap.String("service_type", string(in.ServiceType)))

	return record, nil
}

// buildCreatePayload normalizes dates, applies defaults, and includes the
// AI-only fields iff the service type is artificial insemination. The
// upstream rejects AI fields on natural-mating records, so presence is
// gated, not just zeroed.
func buildCreatePayload(farmID string, in CreateInput) (map[string]any, error) {
	numServices := in.NumServices
	if numServices < 1 {
		numServices = 1
	}
	gestationDays := in.GestationDays
	if gestationDays <= 0 {
		gestationDays = models.DefaultGestationDays
	}

	payload := map[string]any{
		"farmId":        farmID,
		"damId":         in.DamID,
		"sireId":        in.SireID,
		"purpose":       in.Purpose,
		"strategy":      in.Strategy,
		"serviceType":   in.ServiceType,
		"numServices":   numServices,
		"gestationDays": gestationDays,
	}

	if in.SireCode != "" {
		payload["sireCode"] = in.SireCode
	}

	dateFields := []struct {
		key   string
		value string
	}{
		{"serviceDate", in.ServiceDate},
		{"firstHeatDate", in.FirstHeatDate},
		{"expectedBirthDate", in.ExpectedBirthDate},
	}
	for _, f := range dateFields {
		if f.value == "" {
			continue
		}
		normalized, err := normalizeDate(f.key, f.value)
		if err != nil {
			return nil, err
		}
		payload[f.key] = normalized
	}

	if in.ServiceType == models.ServiceArtificialInsemination {
		cost, err := strconv.ParseFloat(in.AICost, 64)
		if err != nil {
			cost = 0
		}
		payload["aiType"] = in.AIType
		payload["aiSource"] = in.AISource
		payload["aiCost"] = cost
	}

	return payload, nil
}

// List fetches all breeding records for the session's active farm.
func (s *Service) List(ctx context.Context, sess session.Session) ([]models.BreedingRecord, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}
	if !sess.HasFarm() {
		return nil, apperr.ErrNoActiveFarm
	}

	var records []models.BreedingRecord
	err := s.api.Get(ctx, sess, "/breeding", map[string]string{"farmId": sess.Farm.ID}, &records)
	if err != nil {
		return nil, fmt.Errorf("list breeding records: %w", err)
	}

	return records, nil
}

// Get fetches one breeding record by id.
func (s *Service) Get(ctx context.Context, sess session.Session, id string) (*models.BreedingRecord, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}

	record := new(models.BreedingRecord)
	if err := s.api.Get(ctx, sess, "/breeding/"+id, nil, record); err != nil {
		return nil, fmt.Errorf("get breeding record %s: %w", id, err)
	}

	return record, nil
}

// ForLivestock returns the farm's breeding records where the animal appears
// as dam or sire, in the upstream's order. The upstream offers no
// per-animal query, so the filter runs client-side over the full farm set.
func (s *Service) ForLivestock(ctx context.Context, sess session.Session, livestockID string) ([]models.BreedingRecord, error) {
	records, err := s.List(ctx, sess)
	if err != nil {
		return nil, err
	}

	var matches []models.BreedingRecord
	for _, rec := range records {
		if rec.DamID == livestockID || rec.SireID == livestockID {
			matches = append(matches, rec)
		}
	}

	return matches, nil
}

// Update applies a partial update. Date-valued keys in the patch are
// normalized the same way creation inputs are.
func (s *Service) Update(ctx context.Context, sess session.Session, id string, patch map[string]any) (*models.BreedingRecord, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}

	normalized := make(map[string]any, len(patch))
	for key, value := range patch {
		normalized[key] = value
	}
	for _, key := range []string{"serviceDate", "firstHeatDate", "expectedBirthDate", "birthDate"} {
		raw, ok := normalized[key].(string)
		if !ok || raw == "" {
			continue
		}
		value, err := normalizeDate(key, raw)
		if err != nil {
			return nil, err
		}
		normalized[key] = value
	}

	record := new(models.BreedingRecord)
	if err := s.api.Patch(ctx, sess, "/breeding/"+id, normalized, record); err != nil {
		return nil, fmt.Errorf("update breeding record %s: %w", id, err)
	}

	return record, nil
}

// Delete removes a breeding record.
func (s *Service) Delete(ctx context.Context, sess session.Session, id string) error {
	if !sess.HasToken() {
		return apperr.ErrNoSession
	}

	if err := s.api.Delete(ctx, sess, "/breeding/"+id); err != nil {
		return fmt.Errorf("delete breeding record %s: %w", id, err)
	}

	s.logger.Info("breeding record deleted", zap.String("id", id))
	return nil
}

// Statistics delegates aggregate computation to the upstream and passes the
// result through.
func (s *Service) Statistics(ctx context.Context, sess session.Session) (*models.BreedingStatistics, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}
	if !sess.HasFarm() {
		return nil, apperr.ErrNoActiveFarm
	}

	stats := new(models.BreedingStatistics)
	if err := s.api.Get(ctx, sess, "/breeding/statistics/"+sess.Farm.ID, nil, stats); err != nil {
		return nil, fmt.Errorf("breeding statistics: %w", err)
	}

	return stats, nil
}

// ValidateBreedingData cross-checks that the dam and sire exist in the
// active farm's roster before a record is created. A sire identified only
// by code (artificial insemination with external semen) is exempt.
func (s *Service) ValidateBreedingData(ctx context.Context, sess session.Session, in CreateInput) (models.ValidationResult, error) {
	roster, err := s.livestock.List(ctx, sess)
	if err != nil {
		return models.ValidationResult{}, err
	}

	byID := make(map[string]struct{}, len(roster))
	for _, animal := range roster {
		byID[animal.ID] = struct{}{}
	}

	var errs []string
	if _, ok := byID[in.DamID]; !ok {
		errs = append(errs, "Dam not found in the active farm's livestock.")
	}

	sireExternal := in.ServiceType == models.ServiceArtificialInsemination && in.SireCode != ""
	if !sireExternal {
		if _, ok := byID[in.SireID]; !ok {
			errs = append(errs, "Sire not found in the active farm's livestock.")
		}
	}

	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}, nil
}
