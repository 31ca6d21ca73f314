package breeding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamara9/herdsman/internal/domain/models"
)

func floatPtr(v float64) *float64 { return &v }

func parentRecord() models.BreedingRecord {
	return models.BreedingRecord{
		ID:          "br-10",
		FarmID:      "farm-1",
		DamID:       "lv-dam",
		DamInfo:     &models.ParentInfo{IDNumber: "C-001", Breed: "N'Dama"},
		SireID:      "lv-sire",
		SireInfo:    &models.ParentInfo{IDNumber: "C-002", Breed: "Zebu"},
		SireCode:    "",
		ServiceType: models.ServiceNaturalMating,
		ServiceDate: "2024-01-10T00:00:00Z",
	}
}

func TestRecordBirthDenormalizesParentOntoOffspring(t *testing.T) {
	var posted map[string]any
	srv := mockUpstream(t, map[string]http.HandlerFunc{
		"GET /breeding/br-10": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, parentRecord())
		},
		"POST /breeding/br-10/record-birth": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			writeJSON(w, http.StatusOK, models.BreedingRecord{ID: "br-10", BirthRecorded: true})
		},
	})

	svc := newTestService(srv.URL)

	in := BirthInput{
		AnimalType:     "cow",
		BirthDate:      "2024-10-17",
		DeliveryMethod: "natural",
		LitterWeight:   42.5,
		YoungOnes:      2,
		Offspring: []OffspringInput{
			{Sex: "female", BirthWeight: floatPtr(21.0)},
			{Sex: "male", BirthWeight: floatPtr(21.5), Notes: "weak hind leg"},
		},
	}

	updated, err := svc.RecordBirth(context.Background(), testSession(), "br-10", in)
	require.NoError(t, err)
	assert.True(t, updated.BirthRecorded)

	offspring, ok := posted["offspring"].([]any)
	require.True(t, ok)
	require.Len(t, offspring, 2)

	for i, raw := range offspring {
		entry, ok := raw.(map[string]any)
		require.True(t, ok)

		// Each entry carries the full parent identity without a join.
		assert.Equal(t, "lv-dam", entry["damId"], "entry %d", i)
		assert.Equal(t, "lv-sire", entry["sireId"], "entry %d", i)
		assert.Equal(t, string(models.ServiceNaturalMating), entry["serviceType"], "entry %d", i)
		assert.Equal(t, "2024-01-10T00:00:00Z", entry["breedingDate"], "entry %d", i)
		assert.Equal(t, "natural", entry["deliveryMethod"], "entry %d", i)
		assert.EqualValues(t, 42.5, entry["litterWeight"], "entry %d", i)

		wantID := fmt.Sprintf("cow-20241017-%03d", i+1)
		assert.Equal(t, wantID, entry["offspringId"], "entry %d", i)
	}

	assert.EqualValues(t, 2, posted["youngOnes"])
	assert.Equal(t, "2024-10-17T00:00:00Z", posted["birthDate"])
}

func TestRecordBirthRejectsCountMismatch(t *testing.T) {
	svc := newTestService("http://127.0.0.1:0")

	in := BirthInput{
		AnimalType: "cow",
		BirthDate:  "2024-10-17",
		YoungOnes:  3,
		Offspring:  []OffspringInput{{Sex: "female"}},
	}

	_, err := svc.RecordBirth(context.Background(), testSession(), "br-10", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must match")
}

func TestRecordBirthParentFetchFailure(t *testing.T) {
	srv := mockUpstream(t, map[string]http.HandlerFunc{
		"GET /breeding/br-10": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "boom"})
		},
	})

	svc := newTestService(srv.URL)

	in := BirthInput{AnimalType: "cow", BirthDate: "2024-10-17"}
	_, err := svc.RecordBirth(context.Background(), testSession(), "br-10", in)
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch breeding record information", err.Error())
}

func TestRegisterOffspringPrefersBirthInfo(t *testing.T) {
	parent := parentRecord()
	parent.BirthDate = "2024-10-01T00:00:00Z"
	parent.DeliveryMethod = "assisted"
	parent.LitterWeight = 10
	parent.BirthInfo = &models.BirthInfo{
		BirthDate:      "2024-10-17T00:00:00Z",
		DeliveryMethod: "natural",
		LitterWeight:   42.5,
	}

	var posted map[string]any
	srv := mockUpstream(t, map[string]http.HandlerFunc{
		"GET /breeding/br-10": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, parent)
		},
		"POST /breeding/offspring/cow-20241017-001/register-as-livestock": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			writeJSON(w, http.StatusCreated, models.Livestock{ID: "lv-new", FarmID: "farm-1", IDNumber: "C-050"})
		},
	})

	svc := newTestService(srv.URL)

	in := RegisterOffspringInput{
		IDNumber: "C-050",
		Category: models.CategoryMammal,
		Type:     "cow",
		Breed:    "N'Dama",
		Gender:   "female",
		Weight:   21,
	}

	registered, err := svc.RegisterOffspring(context.Background(), testSession(), "br-10", "cow-20241017-001", in)
	require.NoError(t, err)
	assert.Equal(t, "lv-new", registered.ID)

	// Grouped birth info wins over the older top-level fields.
	assert.Equal(t, "2024-10-17T00:00:00Z", posted["birthDate"])
	assert.Equal(t, "natural", posted["deliveryMethod"])
	assert.EqualValues(t, 42.5, posted["litterWeight"])

	assert.Equal(t, "farm-1", posted["farmId"])
	assert.Equal(t, "br-10", posted["breedingId"])
	assert.Equal(t, "lv-dam", posted["damId"])
	assert.Equal(t, "lv-sire", posted["sireId"])
}

func TestRegisterOffspringFallsBackToTopLevelBirthFields(t *testing.T) {
	parent := parentRecord()
	parent.BirthDate = "2024-10-01T00:00:00Z"
	parent.DeliveryMethod = "assisted"
	parent.LitterWeight = 10

	var posted map[string]any
	srv := mockUpstream(t, map[string]http.HandlerFunc{
		"GET /breeding/br-10": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, parent)
		},
		"POST /breeding/offspring/cow-20241001-001/register-as-livestock": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			writeJSON(w, http.StatusCreated, models.Livestock{ID: "lv-new"})
		},
	})

	svc := newTestService(srv.URL)

	_, err := svc.RegisterOffspring(context.Background(), testSession(), "br-10", "cow-20241001-001", RegisterOffspringInput{IDNumber: "C-051"})
	require.NoError(t, err)

	assert.Equal(t, "2024-10-01T00:00:00Z", posted["birthDate"])
	assert.Equal(t, "assisted", posted["deliveryMethod"])
	assert.EqualValues(t, 10, posted["litterWeight"])
}
