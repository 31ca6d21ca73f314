package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamara9/herdsman/internal/apperr"
	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/service/breeding"
	"github.com/mkamara9/herdsman/internal/service/livestock"
	"github.com/mkamara9/herdsman/internal/session"
	"github.com/mkamara9/herdsman/pkg/clients/upstream"
)

// memorySnapshotStore is an in-memory snapshot repository for tests.
type memorySnapshotStore struct {
	saved   []models.BreedingSnapshot
	saveErr error
}

func (m *memorySnapshotStore) SaveSnapshot(_ context.Context, snapshot models.BreedingSnapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, snapshot)
	return nil
}

func (m *memorySnapshotStore) LatestSnapshot(_ context.Context, farmID string) (*models.BreedingSnapshot, error) {
	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].FarmID == farmID {
			return &m.saved[i], nil
		}
	}
	return nil, nil
}

// recordingSheets captures appended rows.
type recordingSheets struct {
	rows      [][]interface{}
	appendErr error
}

func (r *recordingSheets) AppendRow(_ context.Context, _ string, values []interface{}) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.rows = append(r.rows, values)
	return nil
}

func testSession() session.Session {
	return session.Session{
		Token: "test-token",
		Farm:  session.Farm{ID: "farm-1", Name: "Kindia Main"},
	}
}

// fixtures keyed by pregnancy status relative to now.
func breedingFixtures(now time.Time) []models.BreedingRecord {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(time.RFC3339)
	}
	return []models.BreedingRecord{
		{ID: "br-1", ExpectedBirthDate: day(30)},
		{ID: "br-2", ExpectedBirthDate: day(5)},
		{ID: "br-3", ExpectedBirthDate: day(-2)},
		{ID: "br-4", BirthRecorded: true, Offspring: []models.Offspring{
			{OffspringID: "cow-20240101-001"},
			{OffspringID: "cow-20240101-002"},
		}},
	}
}

func newBreedingService(t *testing.T, records []models.BreedingRecord, roster []models.Livestock) *breeding.Service {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /breeding", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	})
	mux.HandleFunc("GET /livestock", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(roster)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := upstream.New(srv.URL)
	return breeding.NewService(api, livestock.NewService(api, nil), nil)
}

func TestBuildSnapshotCountsByStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC)
	roster := []models.Livestock{
		{ID: "lv-1", Mammal: &models.MammalInfo{Breed: "N'Dama"}},
		{ID: "lv-2", Mammal: &models.MammalInfo{Breed: "Zebu"}},
		{ID: "lv-3", Mammal: &models.MammalInfo{Breed: "N'Dama"}},
	}

	svc := NewService(newBreedingService(t, breedingFixtures(now), roster), &memorySnapshotStore{}, nil, nil)

	snapshot, err := svc.BuildSnapshot(context.Background(), testSession(), now)
	require.NoError(t, err)

	assert.NotEmpty(t, snapshot.ID)
	assert.Equal(t, "farm-1", snapshot.FarmID)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), snapshot.Date)
	assert.Equal(t, 4, snapshot.TotalRecords)
	assert.Equal(t, 1, snapshot.Pregnant)
	assert.Equal(t, 1, snapshot.DueSoon)
	assert.Equal(t, 1, snapshot.Overdue)
	assert.Equal(t, 1, snapshot.Delivered)
	assert.Equal(t, 2, snapshot.TotalOffspring)
	assert.Equal(t, 2, snapshot.DistinctBreeds)
}

func TestRunDailyPersistsAndExports(t *testing.T) {
	now := time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC)
	store := &memorySnapshotStore{}
	sheet := &recordingSheets{}

	svc := NewService(newBreedingService(t, breedingFixtures(now), nil), store, sheet, nil)

	snapshot, err := svc.RunDaily(context.Background(), testSession(), now)
	require.NoError(t, err)

	require.Len(t, store.saved, 1)
	assert.Equal(t, snapshot.ID, store.saved[0].ID)

	latest, err := store.LatestSnapshot(context.Background(), "farm-1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, snapshot.ID, latest.ID)

	require.Len(t, sheet.rows, 1)
	row := sheet.rows[0]
	require.Len(t, row, 8)
	assert.Equal(t, "2024-06-15", row[0])
	assert.Equal(t, "farm-1", row[1])
	assert.Equal(t, 4, row[2])
}

func TestRunDailyToleratesSheetFailure(t *testing.T) {
	now := time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC)
	store := &memorySnapshotStore{}
	sheet := &recordingSheets{appendErr: errors.New("quota exceeded")}

	svc := NewService(newBreedingService(t, nil, nil), store, sheet, nil)

	_, err := svc.RunDaily(context.Background(), testSession(), now)
	require.NoError(t, err)
	assert.Len(t, store.saved, 1)
}

func TestRunDailyFailsWhenStoreFails(t *testing.T) {
	now := time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC)
	store := &memorySnapshotStore{saveErr: errors.New("mongo down")}

	svc := NewService(newBreedingService(t, nil, nil), store, nil, nil)

	_, err := svc.RunDaily(context.Background(), testSession(), now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist snapshot")
}

func TestLatestSnapshotReadsStore(t *testing.T) {
	store := &memorySnapshotStore{saved: []models.BreedingSnapshot{
		{ID: "snap-1", FarmID: "farm-1", TotalRecords: 3},
		{ID: "snap-2", FarmID: "farm-1", TotalRecords: 5},
		{ID: "snap-3", FarmID: "farm-2", TotalRecords: 9},
	}}

	svc := NewService(newBreedingService(t, nil, nil), store, nil, nil)

	snapshot, err := svc.LatestSnapshot(context.Background(), testSession())
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "snap-2", snapshot.ID)

	// No run yet for the farm means no snapshot, not an error.
	empty := NewService(newBreedingService(t, nil, nil), &memorySnapshotStore{}, nil, nil)
	snapshot, err = empty.LatestSnapshot(context.Background(), testSession())
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	_, err = svc.LatestSnapshot(context.Background(), session.Session{})
	assert.ErrorIs(t, err, apperr.ErrNoSession)
}

func TestDueRemindersFiltersByStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 6, 0, 0, 0, time.UTC)

	svc := NewService(newBreedingService(t, breedingFixtures(now), nil), &memorySnapshotStore{}, nil, nil)

	reminders, err := svc.DueReminders(context.Background(), testSession(), now)
	require.NoError(t, err)
	require.Len(t, reminders, 2)

	assert.Equal(t, "br-2", reminders[0].Record.ID)
	assert.Equal(t, models.PregnancyDueSoon, reminders[0].Status.State)
	assert.Equal(t, "br-3", reminders[1].Record.ID)
	assert.Equal(t, models.PregnancyOverdue, reminders[1].Status.State)
	assert.Equal(t, 2, reminders[1].Status.DaysOverdue)
}
