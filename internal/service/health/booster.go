package health

import (
	"context"

	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/session"
)

const boostersPath = "/health/boosters"

// BoosterInput is the creation payload for a booster record.
type BoosterInput struct {
	BoosterAgainst   string
	DrugAdministered string
	Dosage           float64
	DateAdministered string
	AdministeredBy   string
	Notes            string
}

// ValidateBoosterData checks a booster input before submission.
func ValidateBoosterData(in BoosterInput) models.ValidationResult {
	var errs []string
	if in.BoosterAgainst == "" {
		errs = append(errs, "Booster against is required.")
	}
	if in.DrugAdministered == "" {
		errs = append(errs, "Drug administered is required.")
	}
	if in.Dosage <= 0 {
		errs = append(errs, "Dosage must be greater than zero.")
	}
	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// CreateBooster validates and submits a booster record.
func (s *Service) CreateBooster(ctx context.Context, sess session.Session, livestockID string, in BoosterInput) (*models.Booster, error) {
	if result := ValidateBoosterData(in); !result.Valid {
		return nil, validationError(result)
	}

	fields := map[string]any{
		"boosterAgainst":   in.BoosterAgainst,
		"drugAdministered": in.DrugAdministered,
		"dosage":           in.Dosage,
		"administeredBy":   administeredByOrDefault(in.AdministeredBy, sess),
	}
	if in.DateAdministered != "" {
		fields["dateAdministered"] = in.DateAdministered
	}
	if in.Notes != "" {
		fields["notes"] = in.Notes
	}

	return createRecord[models.Booster](ctx, s, sess, boostersPath, livestockID, fields)
}

// BoostersForLivestock lists boosters for one animal.
func (s *Service) BoostersForLivestock(ctx context.Context, sess session.Session, livestockID string) ([]models.Booster, error) {
	return listRecords[models.Booster](ctx, s, sess, boostersPath, livestockQuery(livestockID))
}

// BoostersForFarm lists boosters across the active farm.
func (s *Service) BoostersForFarm(ctx context.Context, sess session.Session) ([]models.Booster, error) {
	return listRecords[models.Booster](ctx, s, sess, boostersPath, farmQuery(sess))
}

// Booster fetches one booster record by id.
func (s *Service) Booster(ctx context.Context, sess session.Session, id string) (*models.Booster, error) {
	return getRecord[models.Booster](ctx, s, sess, boostersPath, id)
}

// UpdateBooster applies a partial update.
func (s *Service) UpdateBooster(ctx context.Context, sess session.Session, id string, patch map[string]any) (*models.Booster, error) {
	return updateRecord[models.Booster](ctx, s, sess, boostersPath, id, patch)
}

// DeleteBooster removes a booster record.
func (s *Service) DeleteBooster(ctx context.Context, sess session.Session, id string) error {
	return deleteRecord(ctx, s, sess, boostersPath, id)
}
