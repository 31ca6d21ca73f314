package health

import (
	"context"

	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/session"
)

const treatmentsPath = "/health/treatments"

// TreatmentInput is the creation payload for a treatment record.
type TreatmentInput struct {
	Condition      string
	Medication     string
	Dosage         float64
	TreatmentDate  string
	AdministeredBy string
	Notes          string
}

// ValidateTreatmentData checks a treatment input before submission.
func ValidateTreatmentData(in TreatmentInput) models.ValidationResult {
	var errs []string
	if in.Condition == "" {
		errs = append(errs, "Condition is required.")
	}
	if in.Medication == "" {
		errs = append(errs, "Medication is required.")
	}
	if in.Dosage <= 0 {
		errs = append(errs, "Dosage must be greater than zero.")
	}
	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// CreateTreatment validates and submits a treatment record.
func (s *Service) CreateTreatment(ctx context.Context, sess session.Session, livestockID string, in TreatmentInput) (*models.Treatment, error) {
	if result := ValidateTreatmentData(in); !result.Valid {
		return nil, validationError(result)
	}

	fields := map[string]any{
		"condition":      in.Condition,
		"medication":     in.Medication,
		"dosage":         in.Dosage,
		"administeredBy": administeredByOrDefault(in.AdministeredBy, sess),
	}
	if in.TreatmentDate != "" {
		fields["treatmentDate"] = in.TreatmentDate
	}
	if in.Notes != "" {
		fields["notes"] = in.Notes
	}

	return createRecord[models.Treatment](ctx, s, sess, treatmentsPath, livestockID, fields)
}

// TreatmentsForLivestock lists treatments for one animal.
func (s *Service) TreatmentsForLivestock(ctx context.Context, sess session.Session, livestockID string) ([]models.Treatment, error) {
	return listRecords[models.Treatment](ctx, s, sess, treatmentsPath, livestockQuery(livestockID))
}

// TreatmentsForFarm lists treatments across the active farm.
func (s *Service) TreatmentsForFarm(ctx context.Context, sess session.Session) ([]models.Treatment, error) {
	return listRecords[models.Treatment](ctx, s, sess, treatmentsPath, farmQuery(sess))
}

// Treatment fetches one treatment record by id.
func (s *Service) Treatment(ctx context.Context, sess session.Session, id string) (*models.Treatment, error) {
	return getRecord[models.Treatment](ctx, s, sess, treatmentsPath, id)
}

// UpdateTreatment applies a partial update.
func (s *Service) UpdateTreatment(ctx context.Context, sess session.Session, id string, patch map[string]any) (*models.Treatment, error) {
	return updateRecord[models.Treatment](ctx, s, sess, treatmentsPath, id, patch)
}

// DeleteTreatment removes a treatment record.
func (s *Service) DeleteTreatment(ctx context.Context, sess session.Session, id string) error {
	return deleteRecord(ctx, s, sess, treatmentsPath, id)
}
