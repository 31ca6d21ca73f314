package breeding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/apperr"
	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/session"
)

// errParentFetch is the fixed message surfaced when a lifecycle transition
// cannot load the breeding record it needs for enrichment.
var errParentFetch = errors.New("Failed to fetch breeding record information")

// OffspringInput is one child entry as reported by the birth-recording
// screen.
type OffspringInput struct {
	Sex         string
	BirthWeight *float64
	Notes       string
}

// BirthInput carries a birth event. YoungOnes is the reported litter size
// and must match the number of offspring entries.
type BirthInput struct {
	AnimalType     string
	BirthDate      string
	DeliveryMethod string
	LitterWeight   float64
	YoungOnes      int
	Offspring      []OffspringInput
}

// RecordBirth moves a breeding record from pregnancy to delivered. The
// parent record is fetched first so every offspring entry can be stamped
// with dam/sire identity and breeding metadata; the upstream and dependent
// screens rely on offspring being self-describing without a join.
func (s *Service) RecordBirth(ctx context.Context, sess session.Session, breedingID string, in BirthInput) (*models.BreedingRecord, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}

	if in.YoungOnes != len(in.Offspring) {
		return nil, &apperr.ValidationError{
			Message: fmt.Sprintf("Offspring entries (%d) must match the reported young ones (%d).", len(in.Offspring), in.YoungOnes),
		}
	}

	parent, err := s.Get(ctx, sess, breedingID)
	if err != nil {
		s.logger.Warn("parent record fetch failed before birth recording", zap.String("breeding_id", breedingID), zap.Error(err))
		return nil, errParentFetch
	}

	birthDate, err := normalizeDate("birthDate", in.BirthDate)
	if err != nil {
		return nil, err
	}

	offspring := make([]models.Offspring, 0, len(in.Offspring))
	for i, entry := range in.Offspring {
		offspring = append(offspring, models.Offspring{
			OffspringID: offspringID(in.AnimalType, birthDate, i+1),
			Sex:         entry.Sex,
			BirthWeight: entry.BirthWeight,
			Notes:       entry.Notes,

			DamID:        parent.DamID,
			DamInfo:      parent.DamInfo,
			SireID:       parent.SireID,
			SireInfo:     parent.SireInfo,
			SireCode:     parent.SireCode,
			ServiceType:  parent.ServiceType,
			BreedingDate: parent.ServiceDate,

			DeliveryMethod: in.DeliveryMethod,
			BirthDate:      birthDate,
			LitterWeight:   in.LitterWeight,
		})
	}

	payload := map[string]any{
		"birthDate":      birthDate,
		"deliveryMethod": in.DeliveryMethod,
		"litterWeight":   in.LitterWeight,
		"youngOnes":      in.YoungOnes,
		"offspring":      offspring,
	}

	updated := new(models.BreedingRecord)
	if err := s.api.Post(ctx, sess, "/breeding/"+breedingID+"/record-birth", payload, updated); err != nil {
		return nil, fmt.Errorf("record birth for %s: %w", breedingID, err)
	}

	s.logger.Info("birth recorded",
		zap.String("breeding_id", breedingID),
		zap.Int("young_ones", in.YoungOnes))

	return updated, nil
}

// offspringID builds the per-birth-event identifier
// "{animalType}-{YYYYMMDD}-{NNN}". The sequence restarts at 001 for each
// event; uniqueness is only required within one birth.
func offspringID(animalType, birthDate string, seq int) string {
	day := time.Now().UTC().Format("20060102")
	if parsed, ok := parseWireDate(birthDate); ok {
		day = parsed.UTC().Format("20060102")
	}
	return fmt.Sprintf("%s-%s-%03d", animalType, day, seq)
}

// RegisterOffspringInput carries the roster attributes for promoting an
// offspring entry to a first-class livestock record.
type RegisterOffspringInput struct {
	IDNumber string
	Category models.LivestockCategory
	Type     string
	Breed    string
	Gender   string
	Weight   float64
}

// RegisterOffspring converts one offspring entry into a livestock entity.
// The parent breeding record is re-fetched for enrichment context; birth
// info is sourced from the grouped BirthInfo sub-object when present, with
// the older top-level fields as fallback.
func (s *Service) RegisterOffspring(ctx context.Context, sess session.Session, breedingID, offspringID string, in RegisterOffspringInput) (*models.Livestock, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}
	if !sess.HasFarm() {
		return nil, apperr.ErrNoActiveFarm
	}

	parent, err := s.Get(ctx, sess, breedingID)
	if err != nil {
		s.logger.Warn("parent record fetch failed before offspring registration",
			zap.String("breeding_id", breedingID), zap.Error(err))
		return nil, errParentFetch
	}

	birthDate := parent.BirthDate
	deliveryMethod := parent.DeliveryMethod
	litterWeight := parent.LitterWeight
	if parent.BirthInfo != nil {
		birthDate = parent.BirthInfo.BirthDate
		deliveryMethod = parent.BirthInfo.DeliveryMethod
		litterWeight = parent.BirthInfo.LitterWeight
	}

	payload := map[string]any{
		"farmId":   sess.Farm.ID,
		"idNumber": in.IDNumber,
		"category": in.Category,
		"type":     in.Type,
		"breed":    in.Breed,
		"gender":   in.Gender,
		"weight":   in.Weight,

		"breedingId":   parent.ID,
		"damId":        parent.DamID,
		"damInfo":      parent.DamInfo,
		"sireId":       parent.SireID,
		"sireInfo":     parent.SireInfo,
		"sireCode":     parent.SireCode,
		"serviceType":  parent.ServiceType,
		"breedingDate": parent.ServiceDate,

		"birthDate":      birthDate,
		"deliveryMethod": deliveryMethod,
		"litterWeight":   litterWeight,
	}

	registered := new(models.Livestock)
	if err := s.api.Post(ctx, sess, "/breeding/offspring/"+offspringID+"/register-as-livestock", payload, registered); err != nil {
		return nil, fmt.Errorf("register offspring %s: %w", offspringID, err)
	}

	s.logger.Info("offspring registered as livestock",
		zap.String("breeding_id", breedingID),
		zap.String("offspring_id", offspringID),
		zap.String("livestock_id", registered.ID))

	return registered, nil
}
