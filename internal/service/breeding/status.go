package breeding

import (
	"time"

	"github.com/mkamara9/herdsman/internal/domain/models"
)

// StatusOf classifies a breeding record's pregnancy state as of today.
// A record with a recorded birth (or any offspring) is always delivered,
// regardless of dates. Day counts are calendar-day differences, not
// calendar-month aware.
func StatusOf(rec models.BreedingRecord, today time.Time) models.PregnancyStatus {
	if rec.BirthRecorded || len(rec.Offspring) > 0 {
		return models.PregnancyStatus{State: models.PregnancyDelivered}
	}

	expected, ok := expectedBirth(rec)
	if !ok {
		// Nothing to count against; the record is still a pregnancy.
		return models.PregnancyStatus{State: models.PregnancyPregnant}
	}

	expectedStr := expected.UTC().Format(time.RFC3339)
	days := daysBetween(today, expected)

	switch {
	case days < 0:
		return models.PregnancyStatus{
			State:             models.PregnancyOverdue,
			DaysOverdue:       -days,
			ExpectedBirthDate: expectedStr,
		}
	case days <= models.DueSoonWindowDays:
		return models.PregnancyStatus{
			State:             models.PregnancyDueSoon,
			DaysRemaining:     days,
			ExpectedBirthDate: expectedStr,
		}
	default:
		return models.PregnancyStatus{
			State:             models.PregnancyPregnant,
			DaysRemaining:     days,
			ExpectedBirthDate: expectedStr,
		}
	}
}

// expectedBirth resolves the expected birth date, falling back to
// serviceDate + gestationDays when the record carries no explicit value.
func expectedBirth(rec models.BreedingRecord) (time.Time, bool) {
	if rec.ExpectedBirthDate != "" {
		if parsed, ok := parseWireDate(rec.ExpectedBirthDate); ok {
			return parsed, true
		}
	}

	if rec.ServiceDate != "" {
		if serviced, ok := parseWireDate(rec.ServiceDate); ok {
			gestation := rec.GestationDays
			if gestation <= 0 {
				gestation = models.DefaultGestationDays
			}
			return serviced.AddDate(0, 0, gestation), true
		}
	}

	return time.Time{}, false
}

// daysBetween counts whole calendar days from a to b, negative when b is in
// the past relative to a.
func daysBetween(a, b time.Time) int {
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}
