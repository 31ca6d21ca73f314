package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamara9/herdsman/internal/domain/models"
)

func TestLatestReportReturnsStoredSnapshot(t *testing.T) {
	store := &snapshotStore{snapshots: []models.BreedingSnapshot{
		{ID: "snap-old", FarmID: "farm-1", TotalRecords: 3},
		{ID: "snap-new", FarmID: "farm-1", TotalRecords: 5, DueSoon: 1},
		{ID: "snap-other", FarmID: "farm-2", TotalRecords: 9},
	}}

	r := newTestRouterWithStore(t, nil, store)

	w := doRequest(r, http.MethodGet, "/api/v1/reports/latest", nil, authHeaders())
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot models.BreedingSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, "snap-new", snapshot.ID)
	assert.Equal(t, 5, snapshot.TotalRecords)
}

func TestLatestReportWithoutSnapshotIs404(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/reports/latest", nil, authHeaders())
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "No snapshot available yet.", body["error"])
}

func TestRemindersEndpoint(t *testing.T) {
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format(time.RFC3339)
	}
	records := []models.BreedingRecord{
		{ID: "br-1", ExpectedBirthDate: day(60)},
		{ID: "br-2", ExpectedBirthDate: day(-4)},
	}

	r := newTestRouter(t, map[string]http.HandlerFunc{
		"GET /breeding": func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(records)
		},
	})

	w := doRequest(r, http.MethodGet, "/api/v1/reports/reminders", nil, authHeaders())
	require.Equal(t, http.StatusOK, w.Code)

	var reminders []struct {
		Record models.BreedingRecord  `json:"record"`
		Status models.PregnancyStatus `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reminders))
	require.Len(t, reminders, 1)
	assert.Equal(t, "br-2", reminders[0].Record.ID)
	assert.Equal(t, models.PregnancyOverdue, reminders[0].Status.State)
}

func TestReportsRequireSession(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/reports/latest", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
