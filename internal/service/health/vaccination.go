package health

import (
	"context"

	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/session"
)

const vaccinationsPath = "/health/vaccinations"

// VaccinationInput is the creation payload for a vaccination record.
type VaccinationInput struct {
	VaccinationAgainst string
	DrugAdministered   string
	Dosage             float64
	DateAdministered   string
	NextDueDate        string
	AdministeredBy     string
	Notes              string
}

// ValidateVaccinationData checks a vaccination input before submission.
func ValidateVaccinationData(in VaccinationInput) models.ValidationResult {
	var errs []string
	if in.VaccinationAgainst == "" {
		errs = append(errs, "Vaccination against is required.")
	}
	if in.DrugAdministered == "" {
		errs = append(errs, "Drug administered is required.")
	}
	if in.Dosage <= 0 {
		errs = append(errs, "Dosage must be greater than zero.")
	}
	return models.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// CreateVaccination validates and submits a vaccination record for the
// given animal, defaulting the administrator to the signed-in user.
func (s *Service) CreateVaccination(ctx context.Context, sess session.Session, livestockID string, in VaccinationInput) (*models.Vaccination, error) {
	if result := ValidateVaccinationData(in); !result.Valid {
		return nil, validationError(result)
	}

	fields := map[string]any{
		"vaccinationAgainst": in.VaccinationAgainst,
		"drugAdministered":   in.DrugAdministered,
		"dosage":             in.Dosage,
		"administeredBy":     administeredByOrDefault(in.AdministeredBy, sess),
	}
	if in.DateAdministered != "" {
		fields["dateAdministered"] = in.DateAdministered
	}
	if in.NextDueDate != "" {
		fields["nextDueDate"] = in.NextDueDate
	}
	if in.Notes != "" {
		fields["notes"] = in.Notes
	}

	return createRecord[models.Vaccination](ctx, s, sess, vaccinationsPath, livestockID, fields)
}

// VaccinationsForLivestock lists vaccinations for one animal.
func (s *Service) VaccinationsForLivestock(ctx context.Context, sess session.Session, livestockID string) ([]models.Vaccination, error) {
	return listRecords[models.Vaccination](ctx, s, sess, vaccinationsPath, livestockQuery(livestockID))
}

// VaccinationsForFarm lists vaccinations across the active farm.
func (s *Service) VaccinationsForFarm(ctx context.Context, sess session.Session) ([]models.Vaccination, error) {
	return listRecords[models.Vaccination](ctx, s, sess, vaccinationsPath, farmQuery(sess))
}

// Vaccination fetches one vaccination record by id.
func (s *Service) Vaccination(ctx context.Context, sess session.Session, id string) (*models.Vaccination, error) {
	return getRecord[models.Vaccination](ctx, s, sess, vaccinationsPath, id)
}

// UpdateVaccination applies a partial update.
func (s *Service) UpdateVaccination(ctx context.Context, sess session.Session, id string, patch map[string]any) (*models.Vaccination, error) {
	return updateRecord[models.Vaccination](ctx, s, sess, vaccinationsPath, id, patch)
}

// DeleteVaccination removes a vaccination record.
func (s *Service) DeleteVaccination(ctx context.Context, sess session.Session, id string) error {
	return deleteRecord(ctx, s, sess, vaccinationsPath, id)
}

// VaccinationHistory lists past administrations for the active farm.
func (s *Service) VaccinationHistory(ctx context.Context, sess session.Session) ([]models.Vaccination, error) {
	return listRecords[models.Vaccination](ctx, s, sess, vaccinationsPath+"/history", farmQuery(sess))
}

// UpcomingVaccinations lists administrations with an approaching due date.
func (s *Service) UpcomingVaccinations(ctx context.Context, sess session.Session) ([]models.Vaccination, error) {
	return listRecords[models.Vaccination](ctx, s, sess, vaccinationsPath+"/upcoming", farmQuery(sess))
}
