package health

import (
	"context"

	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/session"
)

const dewormingPath = "/health/deworming"

// DewormingInput is the creation payload for a deworming record.
type DewormingInput struct {
	DrugAdministered string
	Dosage           float64
	DateAdministered string
	AdministeredBy   string
	Notes            string
}

// ValidateDewormingData checks a deworming input before submission.
func ValidateDewormingData(in DewormingInput) models.ValidationResult {
	var errs []string
	if in.DrugAdministered == "" {
		errs = append(errs, "Drug administered is required.")
	}
	if in.Dosage <= 0 {
		errs = append(errs, "Dosage must be greater than zero.")
	}
	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// CreateDeworming validates and submits a deworming record.
func (s *Service) CreateDeworming(ctx context.Context, sess session.Session, livestockID string, in DewormingInput) (*models.Deworming, error) {
	if result := ValidateDewormingData(in); !result.Valid {
		return nil, validationError(result)
	}

	fields := map[string]any{
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

	return createRecord[models.Deworming](ctx, s, sess, dewormingPath, livestockID, fields)
}

// DewormingsForLivestock lists deworming records for one animal.
func (s *Service) DewormingsForLivestock(ctx context.Context, sess session.Session, livestockID string) ([]models.Deworming, error) {
	return listRecords[models.Deworming](ctx, s, sess, dewormingPath, livestockQuery(livestockID))
}

// DewormingsForFarm lists deworming records across the active farm.
func (s *Service) DewormingsForFarm(ctx context.Context, sess session.Session) ([]models.Deworming, error) {
	return listRecords[models.Deworming](ctx, s, sess, dewormingPath, farmQuery(sess))
}

// Deworming fetches one deworming record by id.
func (s *Service) Deworming(ctx context.Context, sess session.Session, id string) (*models.Deworming, error) {
	return getRecord[models.Deworming](ctx, s, sess, dewormingPath, id)
}

// UpdateDeworming applies a partial update.
func (s *Service) UpdateDeworming(ctx context.Context, sess session.Session, id string, patch map[string]any) (*models.Deworming, error) {
	return updateRecord[models.Deworming](ctx, s, sess, dewormingPath, id, patch)
}

// DeleteDeworming removes a deworming record.
func (s *Service) DeleteDeworming(ctx context.Context, sess session.Session, id string) error {
	return deleteRecord(ctx, s, sess, dewormingPath, id)
}
