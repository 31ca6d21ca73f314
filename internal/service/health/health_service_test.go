package health

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/pkg/clients/upstream"
)

func TestValidateByKind(t *testing.T) {
	t.Run("treatment", func(t *testing.T) {
		result := ValidateTreatmentData(TreatmentInput{Condition: "Mastitis", Medication: "Penicillin", Dosage: 4})
		assert.True(t, result.Valid)

		result = ValidateTreatmentData(TreatmentInput{Dosage: -1})
		assert.False(t, result.Valid)
		assert.Equal(t, []string{
			"Condition is required.",
			"Medication is required.",
			"Dosage must be greater than zero.",
		}, result.Errors)
	})

	t.Run("allergy", func(t *testing.T) {
		result := ValidateAllergyData(AllergyInput{Allergen: "Penicillin", Reaction: "Hives"})
		assert.True(t, result.Valid)

		result = ValidateAllergyData(AllergyInput{Allergen: "Penicillin"})
		assert.False(t, result.Valid)
		assert.Equal(t, []string{"Reaction is required."}, result.Errors)
	})

	t.Run("booster", func(t *testing.T) {
		result := ValidateBoosterData(BoosterInput{BoosterAgainst: "Anthrax", DrugAdministered: "Sterne", Dosage: 1})
		assert.True(t, result.Valid)

		result = ValidateBoosterData(BoosterInput{BoosterAgainst: "Anthrax", DrugAdministered: "Sterne"})
		assert.False(t, result.Valid)
	})

	t.Run("deworming", func(t *testing.T) {
		result := ValidateDewormingData(DewormingInput{DrugAdministered: "Albendazole", Dosage: 2})
		assert.True(t, result.Valid)

		result = ValidateDewormingData(DewormingInput{Dosage: 2})
		assert.False(t, result.Valid)
	})

	t.Run("genetic disorder", func(t *testing.T) {
		result := ValidateGeneticDisorderData(GeneticDisorderInput{DisorderName: "BLAD"})
		assert.True(t, result.Valid)

		result = ValidateGeneticDisorderData(GeneticDisorderInput{})
		assert.False(t, result.Valid)
	})
}

func TestTreatmentCrudRoundTrip(t *testing.T) {
	var posted map[string]any
	srv := mockUpstream(t, map[string]http.HandlerFunc{
		"POST /health/treatments": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			writeJSON(w, http.StatusCreated, models.Treatment{ID: "tr-1", Condition: "Mastitis"})
		},
		"GET /health/treatments": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "farm-1", r.URL.Query().Get("farmId"))
			writeJSON(w, http.StatusOK, []models.Treatment{{ID: "tr-1"}})
		},
		"GET /health/treatments/tr-1": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, models.Treatment{ID: "tr-1"})
		},
		"DELETE /health/treatments/tr-1": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	svc := NewService(upstream.New(srv.URL), nil)
	sess := testSession()

	created, err := svc.CreateTreatment(context.Background(), sess, "lv-1", TreatmentInput{
		Condition:  "Mastitis",
		Medication: "Penicillin",
		Dosage:     4,
		Notes:      "three day course",
	})
	require.NoError(t, err)
	assert.Equal(t, "tr-1", created.ID)
	assert.Equal(t, "three day course", posted["notes"])
	assert.Equal(t, "Awa Diallo", posted["administeredBy"])

	listed, err := svc.TreatmentsForFarm(context.Background(), sess)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	got, err := svc.Treatment(context.Background(), sess, "tr-1")
	require.NoError(t, err)
	assert.Equal(t, "tr-1", got.ID)

	require.NoError(t, svc.DeleteTreatment(context.Background(), sess, "tr-1"))
}

func TestVaccinationScheduleListings(t *testing.T) {
	srv := mockUpstream(t, map[string]http.HandlerFunc{
		"GET /health/vaccinations/history": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "farm-1", r.URL.Query().Get("farmId"))
			writeJSON(w, http.StatusOK, []models.Vaccination{{ID: "vac-1"}, {ID: "vac-2"}})
		},
		"GET /health/vaccinations/upcoming": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []models.Vaccination{{ID: "vac-3", NextDueDate: "2025-03-01T00:00:00Z"}})
		},
	})

	svc := NewService(upstream.New(srv.URL), nil)
	sess := testSession()

	history, err := svc.VaccinationHistory(context.Background(), sess)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	upcoming, err := svc.UpcomingVaccinations(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "vac-3", upcoming[0].ID)
}
