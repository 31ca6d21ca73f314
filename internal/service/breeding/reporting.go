package breeding

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mkamara9/herdsman/internal/apperr"
	"github.com/mkamara9/herdsman/internal/domain/models"
	livestocksvc "github.com/mkamara9/herdsman/internal/service/livestock"
	"github.com/mkamara9/herdsman/internal/session"
)

// BreedSource selects where the distinct breed list is derived from.
type BreedSource string

const (
	// BreedsFromRecords derives breeds from the dam/sire info embedded in
	// breeding records.
	BreedsFromRecords BreedSource = "records"
	// BreedsFromRoster derives breeds from the livestock roster.
	BreedsFromRoster BreedSource = "roster"
)

// Breeds returns the distinct breed names known to the active farm from the
// chosen source, in first-seen order.
func (s *Service) Breeds(ctx context.Context, sess session.Session, source BreedSource) ([]string, error) {
	switch source {
	case BreedsFromRoster:
		roster, err := s.livestock.List(ctx, sess)
		if err != nil {
			return nil, err
		}
		return livestocksvc.ExtractBreeds(roster), nil

	case BreedsFromRecords:
		records, err := s.List(ctx, sess)
		if err != nil {
			return nil, err
		}

		seen := make(map[string]struct{})
		var breeds []string
		appendBreed := func(info *models.ParentInfo) {
			if info == nil || info.Breed == "" {
				return
			}
			if _, ok := seen[info.Breed]; ok {
				return
			}
			seen[info.Breed] = struct{}{}
			breeds = append(breeds, info.Breed)
		}
		for _, rec := range records {
			appendBreed(rec.DamInfo)
			appendBreed(rec.SireInfo)
		}
		return breeds, nil

	default:
		return nil, &apperr.ValidationError{
			Message: fmt.Sprintf("Unknown breed source %q.", source),
			Fields:  []string{"source"},
		}
	}
}

// DetailedRecords joins breeding records with the livestock roster so
// screens can show "{idNumber} ({breed})" instead of bare dam/sire ids. The
// two reads are independent and fetched concurrently; either failure fails
// the join.
func (s *Service) DetailedRecords(ctx context.Context, sess session.Session) ([]models.DetailedBreedingRecord, error) {
	var (
		records []models.BreedingRecord
		roster  []models.Livestock
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.List(gctx, sess)
		return err
	})
	g.Go(func() error {
		var err error
		roster, err = s.livestock.List(gctx, sess)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Livestock, len(roster))
	for _, animal := range roster {
		byID[animal.ID] = animal
	}

	display := func(id string) string {
		if animal, ok := byID[id]; ok {
			return animal.Display()
		}
		return id
	}

	detailed := make([]models.DetailedBreedingRecord, 0, len(records))
	for _, rec := range records {
		detailed = append(detailed, models.DetailedBreedingRecord{
			BreedingRecord: rec,
			DamDisplay:     display(rec.DamID),
			SireDisplay:    display(rec.SireID),
		})
	}

	return detailed, nil
}
