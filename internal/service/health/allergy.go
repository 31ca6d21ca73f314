package health

import (
	"context"

	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/session"
)

const allergiesPath = "/health/allergies"

// AllergyInput is the creation payload for an allergy record.
type AllergyInput struct {
	Allergen     string
	Reaction     string
	Severity     string
	DateRecorded string
	RecordedBy   string
	Notes        string
}

// ValidateAllergyData checks an allergy input before submission.
func ValidateAllergyData(in AllergyInput) models.ValidationResult {
	var errs []string
	if in.Allergen == "" {
		errs = append(errs, "Allergen is required.")
	}
	if in.Reaction == "" {
		errs = append(errs, "Reaction is required.")
	}
	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// CreateAllergy validates and submits an allergy record.
func (s *Service) CreateAllergy(ctx context.Context, sess session.Session, livestockID string, in AllergyInput) (*models.Allergy, error) {
	if result := ValidateAllergyData(in); !result.Valid {
		return nil, validationError(result)
	}

	fields := map[string]any{
		"allergen":   in.Allergen,
		"reaction":   in.Reaction,
		"recordedBy": administeredByOrDefault(in.RecordedBy, sess),
	}
	if in.Severity != "" {
		fields["severity"] = in.Severity
	}
	if in.DateRecorded != "" {
		fields["dateRecorded"] = in.DateRecorded
	}
	if in.Notes != "" {
		fields["notes"] = in.Notes
	}

	return createRecord[models.Allergy](ctx, s, sess, allergiesPath, livestockID, fields)
}

// AllergiesForLivestock lists allergies for one animal.
func (s *Service) AllergiesForLivestock(ctx context.Context, sess session.Session, livestockID string) ([]models.Allergy, error) {
	return listRecords[models.Allergy](ctx, s, sess, allergiesPath, livestockQuery(livestockID))
}

// AllergiesForFarm lists allergies across the active farm.
func (s *Service) AllergiesForFarm(ctx context.Context, sess session.Session) ([]models.Allergy, error) {
	return listRecords[models.Allergy](ctx, s, sess, allergiesPath, farmQuery(sess))
}

// Allergy fetches one allergy record by id.
func (s *Service) Allergy(ctx context.Context, sess session.Session, id string) (*models.Allergy, error) {
	return getRecord[models.Allergy](ctx, s, sess, allergiesPath, id)
}

// UpdateAllergy applies a partial update.
func (s *Service) UpdateAllergy(ctx context.Context, sess session.Session, id string, patch map[string]any) (*models.Allergy, error) {
	return updateRecord[models.Allergy](ctx, s, sess, allergiesPath, id, patch)
}

// DeleteAllergy removes an allergy record.
func (s *Service) DeleteAllergy(ctx context.Context, sess session.Session, id string) error {
	return deleteRecord(ctx, s, sess, allergiesPath, id)
}
