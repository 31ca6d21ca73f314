package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/apperr"
	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/repository/mongodb"
	"github.com/mkamara9/herdsman/internal/repository/sheets"
	"github.com/mkamara9/herdsman/internal/service/breeding"
	"github.com/mkamara9/herdsman/internal/session"
)

const snapshotSheetRange = "Breeding!A:H"

// Service produces the analytics the dashboard screens read: a daily
// breeding snapshot persisted to MongoDB and optionally exported to the
// farm's spreadsheet, plus the due/overdue reminder list.
type Service struct {
	breeding *breeding.Service
	store    mongodb.Repository
	sheets   sheets.Repository
	logger   *zap.Logger
}

// NewService wires a new reporting service instance. The sheets repository
// may be nil, in which case spreadsheet export is skipped.
func NewService(breedingSvc *breeding.Service, store mongodb.Repository, sheetsRepo sheets.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{breeding: breedingSvc, store: store, sheets: sheetsRepo, logger: logger}
}

// Reminder pairs a breeding record with its derived pregnancy status; only
// due_soon and overdue records become reminders.
type Reminder struct {
	Record models.BreedingRecord  `json:"record"`
	Status models.PregnancyStatus `json:"status"`
}

// BuildSnapshot derives the day's breeding snapshot for the session's
// active farm.
func (s *Service) BuildSnapshot(ctx context.Context, sess session.Session, now time.Time) (models.BreedingSnapshot, error) {
	records, err := s.breeding.List(ctx, sess)
	if err != nil {
		return models.BreedingSnapshot{}, fmt.Errorf("load breeding records: %w", err)
	}

	breeds, err := s.breeding.Breeds(ctx, sess, breeding.BreedsFromRoster)
	if err != nil {
		return models.BreedingSnapshot{}, fmt.Errorf("load breeds: %w", err)
	}

	snapshot := models.BreedingSnapshot{
		ID:             uuid.NewString(),
		FarmID:         sess.Farm.ID,
		Date:           time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		TotalRecords:   len(records),
		DistinctBreeds: len(breeds),
		CreatedAt:      now.UTC(),
	}

	for _, rec := range records {
		snapshot.TotalOffspring += len(rec.Offspring)

		switch breeding.StatusOf(rec, now).State {
		case models.PregnancyDelivered:
			snapshot.Delivered++
		case models.PregnancyOverdue:
			snapshot.Overdue++
		case models.PregnancyDueSoon:
			snapshot.DueSoon++
		case models.PregnancyPregnant:
			snapshot.Pregnant++
		}
	}

	return snapshot, nil
}

// RunDaily builds, persists, and exports the day's snapshot. A failed
// spreadsheet export is logged but does not fail the run; the MongoDB copy
// is the source of truth.
func (s *Service) RunDaily(ctx context.Context, sess session.Session, now time.Time) (models.BreedingSnapshot, error) {
	snapshot, err := s.BuildSnapshot(ctx, sess, now)
	if err != nil {
		return models.BreedingSnapshot{}, err
	}

	if err := s.store.SaveSnapshot(ctx, snapshot); err != nil {
		return models.BreedingSnapshot{}, fmt.Errorf("persist snapshot: %w", err)
	}

	if s.sheets != nil {
		row := []interface{}{
			snapshot.Date.Format("2006-01-02"),
			snapshot.FarmID,
			snapshot.TotalRecords,
			snapshot.Pregnant,
			snapshot.DueSoon,
			snapshot.Overdue,
			snapshot.Delivered,
			snapshot.TotalOffspring,
		}
		if err := s.sheets.AppendRow(ctx, snapshotSheetRange, row); err != nil {
			s.logger.Error("snapshot sheet export failed", zap.Error(err))
		}
	}

	s.logger.Info("daily breeding snapshot stored",
		zap.String("farm_id", snapshot.FarmID),
		zap.Int("total_records", snapshot.TotalRecords),
		zap.Int("due_soon", snapshot.DueSoon),
		zap.Int("overdue", snapshot.Overdue))

	return snapshot, nil
}

// LatestSnapshot returns the most recent stored snapshot for the active
// farm, or nil when no daily run has happened yet.
func (s *Service) LatestSnapshot(ctx context.Context, sess session.Session) (*models.BreedingSnapshot, error) {
	if !sess.HasToken() {
		return nil, apperr.ErrNoSession
	}
	if !sess.HasFarm() {
		return nil, apperr.ErrNoActiveFarm
	}

	snapshot, err := s.store.LatestSnapshot(ctx, sess.Farm.ID)
	if err != nil {
		return nil, fmt.Errorf("load latest snapshot: %w", err)
	}

	return snapshot, nil
}

// DueReminders returns the farm's records that are due within the reminder
// window or past their expected birth date.
func (s *Service) DueReminders(ctx context.Context, sess session.Session, now time.Time) ([]Reminder, error) {
	records, err := s.breeding.List(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("load breeding records: %w", err)
	}

	var reminders []Reminder
	for _, rec := range records {
		status := breeding.StatusOf(rec, now)
		if status.State == models.PregnancyDueSoon || status.State == models.PregnancyOverdue {
			reminders = append(reminders, Reminder{Record: rec, Status: status})
		}
	}

	return reminders, nil
}
