package health

import (
	"context"

	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/session"
)

const geneticDisordersPath = "/health/genetic-disorders"

// GeneticDisorderInput is the creation payload for a genetic disorder
// record.
type GeneticDisorderInput struct {
	DisorderName  string
	DiagnosisDate string
	Severity      string
	RecordedBy    string
	Notes         string
}

// ValidateGeneticDisorderData checks a genetic disorder input before
// submission.
func ValidateGeneticDisorderData(in GeneticDisorderInput) models.ValidationResult {
	var errs []string
	if in.DisorderName == "" {
		errs = append(errs, "Disorder name is required.")
	}
	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// CreateGeneticDisorder validates and submits a genetic disorder record.
func (s *Service) CreateGeneticDisorder(ctx context.Context, sess session.Session, livestockID string, in GeneticDisorderInput) (*models.GeneticDisorder, error) {
	if result := ValidateGeneticDisorderData(in); !result.Valid {
		return nil, validationError(result)
	}

	fields := map[string]any{
		"disorderName": in.DisorderName,
		"recordedBy":   administeredByOrDefault(in.RecordedBy, sess),
	}
	if in.DiagnosisDate != "" {
		fields["diagnosisDate"] = in.DiagnosisDate
	}
	if in.Severity != "" {
		fields["severity"] = in.Severity
	}
	if in.Notes != "" {
		fields["notes"] = in.Notes
	}

	return createRecord[models.GeneticDisorder](ctx, s, sess, geneticDisordersPath, livestockID, fields)
}

// GeneticDisordersForLivestock lists genetic disorders for one animal.
func (s *Service) GeneticDisordersForLivestock(ctx context.Context, sess session.Session, livestockID string) ([]models.GeneticDisorder, error) {
	return listRecords[models.GeneticDisorder](ctx, s, sess, geneticDisordersPath, livestockQuery(livestockID))
}

// GeneticDisordersForFarm lists genetic disorders across the active farm.
func (s *Service) GeneticDisordersForFarm(ctx context.Context, sess session.Session) ([]models.GeneticDisorder, error) {
	return listRecords[models.GeneticDisorder](ctx, s, sess, geneticDisordersPath, farmQuery(sess))
}

// GeneticDisorder fetches one genetic disorder record by id.
func (s *Service) GeneticDisorder(ctx context.Context, sess session.Session, id string) (*models.GeneticDisorder, error) {
	return getRecord[models.GeneticDisorder](ctx, s, sess, geneticDisordersPath, id)
}

// UpdateGeneticDisorder applies a partial update.
func (s *Service) UpdateGeneticDisorder(ctx context.Context, sess session.Session, id string, patch map[string]any) (*models.GeneticDisorder, error) {
	return updateRecord[models.GeneticDisorder](ctx, s, sess, geneticDisordersPath, id, patch)
}

// DeleteGeneticDisorder removes a genetic disorder record.
func (s *Service) DeleteGeneticDisorder(ctx context.Context, sess session.Session, id string) error {
	return deleteRecord(ctx, s, sess, geneticDisordersPath, id)
}
