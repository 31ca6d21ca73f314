package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/service/health"
	"github.com/mkamara9/herdsman/internal/session"
)

// HealthHandler exposes the six health-record services over HTTP. The kinds
// are structurally identical, so the list/get/update/delete endpoints are
// built from shared generic adapters; only creation differs per kind.
type HealthHandler struct {
	svc    *health.Service
	logger *zap.Logger
}

// NewHealthHandler constructs the HTTP handler adapter.
func NewHealthHandler(svc *health.Service, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{svc: svc, logger: logger}
}

func listEndpoint[T any](
	forLivestock func(context.Context, session.Session, string) ([]T, error),
	forFarm func(context.Context, session.Session) ([]T, error),
) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)

		var (
			records []T
			err     error
		)
		if livestockID := c.Query("livestockId"); livestockID != "" {
			records, err = forLivestock(c.Request.Context(), sess, livestockID)
		} else {
			records, err = forFarm(c.Request.Context(), sess)
		}
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, records)
	}
}

func farmListEndpoint[T any](forFarm func(context.Context, session.Session) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := forFarm(c.Request.Context(), sessionFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, records)
	}
}

func getEndpoint[T any](get func(context.Context, session.Session, string) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := get(c.Request.Context(), sessionFrom(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, record)
	}
}

func updateEndpoint[T any](update func(context.Context, session.Session, string, map[string]any) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch map[string]any
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		record, err := update(c.Request.Context(), sessionFrom(c), c.Param("id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, record)
	}
}

func deleteEndpoint(remove func(context.Context, session.Session, string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := remove(c.Request.Context(), sessionFrom(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func createEndpoint[R any](create func(*gin.Context, session.Session, R) (any, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		record, err := create(c, sessionFrom(c), req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, record)
	}
}

type createVaccinationRequest struct {
	LivestockID        string  `json:"livestockId"`
	VaccinationAgainst string  `json:"vaccinationAgainst"`
	DrugAdministered   string  `json:"drugAdministered"`
	Dosage             float64 `json:"dosage"`
	DateAdministered   string  `json:"dateAdministered"`
	NextDueDate        string  `json:"nextDueDate"`
	AdministeredBy     string  `json:"administeredBy"`
	Notes              string  `json:"notes"`
}

type createAllergyRequest struct {
	LivestockID  string `json:"livestockId"`
	Allergen     string `json:"allergen"`
	Reaction     string `json:"reaction"`
	Severity     string `json:"severity"`
	DateRecorded string `json:"dateRecorded"`
	RecordedBy   string `json:"recordedBy"`
	Notes        string `json:"notes"`
}

type createBoosterRequest struct {
	LivestockID      string  `json:"livestockId"`
	BoosterAgainst   string  `json:"boosterAgainst"`
	DrugAdministered string  `json:"drugAdministered"`
	Dosage           float64 `json:"dosage"`
	DateAdministered string  `json:"dateAdministered"`
	AdministeredBy   string  `json:"administeredBy"`
	Notes            string  `json:"notes"`
}

type createDewormingRequest struct {
	LivestockID      string  `json:"livestockId"`
	DrugAdministered string  `json:"drugAdministered"`
	Dosage           float64 `json:"dosage"`
	DateAdministered string  `json:"dateAdministered"`
	AdministeredBy   string  `json:"administeredBy"`
	Notes            string  `json:"notes"`
}

type createTreatmentRequest struct {
	LivestockID    string  `json:"livestockId"`
	Condition      string  `json:"condition"`
	Medication     string  `json:"medication"`
	Dosage         float64 `json:"dosage"`
	TreatmentDate  string  `json:"treatmentDate"`
	AdministeredBy string  `json:"administeredBy"`
	Notes          string  `json:"notes"`
}

type createGeneticDisorderRequest struct {
	LivestockID   string `json:"livestockId"`
	DisorderName  string `json:"disorderName"`
	DiagnosisDate string `json:"diagnosisDate"`
	Severity      string `json:"severity"`
	RecordedBy    string `json:"recordedBy"`
	Notes         string `json:"notes"`
}

// Register wires all health routes onto the given group.
func (h *HealthHandler) Register(rg *gin.RouterGroup) {
	svc := h.svc

	vaccinations := rg.Group("/vaccinations")
	vaccinations.POST("", createEndpoint(func(c *gin.Context, sess session.Session, req createVaccinationRequest) (any, error) {
		record, err := svc.CreateVaccination(c.Request.Context(), sess, req.LivestockID, health.VaccinationInput{
			VaccinationAgainst: req.VaccinationAgainst,
			DrugAdministered:   req.DrugAdministered,
			Dosage:             req.Dosage,
			DateAdministered:   req.DateAdministered,
			NextDueDate:        req.NextDueDate,
			AdministeredBy:     req.AdministeredBy,
			Notes:              req.Notes,
		})
		if err != nil {
			return nil, err
		}
		return record, nil
	}))
	vaccinations.GET("", listEndpoint(svc.VaccinationsForLivestock, svc.VaccinationsForFarm))
	vaccinations.GET("/history", farmListEndpoint(svc.VaccinationHistory))
	vaccinations.GET("/upcoming", farmListEndpoint(svc.UpcomingVaccinations))
	vaccinations.GET("/:id", getEndpoint(svc.Vaccination))
	vaccinations.PATCH("/:id", updateEndpoint(svc.UpdateVaccination))
	vaccinations.DELETE("/:id", deleteEndpoint(svc.DeleteVaccination))

	allergies := rg.Group("/allergies")
	allergies.POST("", createEndpoint(func(c *gin.Context, sess session.Session, req createAllergyRequest) (any, error) {
		record, err := svc.CreateAllergy(c.Request.Context(), sess, req.LivestockID, health.AllergyInput{
			Allergen:     req.Allergen,
			Reaction:     req.Reaction,
			Severity:     req.Severity,
			DateRecorded: req.DateRecorded,
			RecordedBy:   req.RecordedBy,
			Notes:        req.Notes,
		})
		if err != nil {
			return nil, err
		}
		return record, nil
	}))
	allergies.GET("", listEndpoint(svc.AllergiesForLivestock, svc.AllergiesForFarm))
	allergies.GET("/:id", getEndpoint(svc.Allergy))
	allergies.PATCH("/:id", updateEndpoint(svc.UpdateAllergy))
	allergies.DELETE("/:id", deleteEndpoint(svc.DeleteAllergy))

	boosters := rg.Group("/boosters")
	boosters.POST("", createEndpoint(func(c *gin.Context, sess session.Session, req createBoosterRequest) (any, error) {
		record, err := svc.CreateBooster(c.Request.Context(), sess, req.LivestockID, health.BoosterInput{
			BoosterAgainst:   req.BoosterAgainst,
			DrugAdministered: req.DrugAdministered,
			Dosage:           req.Dosage,
			DateAdministered: req.DateAdministered,
			AdministeredBy:   req.AdministeredBy,
			Notes:            req.Notes,
		})
		if err != nil {
			return nil, err
		}
		return record, nil
	}))
	boosters.GET("", listEndpoint(svc.BoostersForLivestock, svc.BoostersForFarm))
	boosters.GET("/:id", getEndpoint(svc.Booster))
	boosters.PATCH("/:id", updateEndpoint(svc.UpdateBooster))
	boosters.DELETE("/:id", deleteEndpoint(svc.DeleteBooster))

	deworming := rg.Group("/deworming")
	deworming.POST("", createEndpoint(func(c *gin.Context, sess session.Session, req createDewormingRequest) (any, error) {
		record, err := svc.CreateDeworming(c.Request.Context(), sess, req.LivestockID, health.DewormingInput{
			DrugAdministered: req.DrugAdministered,
			Dosage:           req.Dosage,
			DateAdministered: req.DateAdministered,
			AdministeredBy:   req.AdministeredBy,
			Notes:            req.Notes,
		})
		if err != nil {
			return nil, err
		}
		return record, nil
	}))
	deworming.GET("", listEndpoint(svc.DewormingsForLivestock, svc.DewormingsForFarm))
	deworming.GET("/:id", getEndpoint(svc.Deworming))
	deworming.PATCH("/:id", updateEndpoint(svc.UpdateDeworming))
	deworming.DELETE("/:id", deleteEndpoint(svc.DeleteDeworming))

	treatments := rg.Group("/treatments")
	treatments.POST("", createEndpoint(func(c *gin.Context, sess session.Session, req createTreatmentRequest) (any, error) {
		record, err := svc.CreateTreatment(c.Request.Context(), sess, req.LivestockID, health.TreatmentInput{
			Condition:      req.Condition,
			Medication:     req.Medication,
			Dosage:         req.Dosage,
			TreatmentDate:  req.TreatmentDate,
			AdministeredBy: req.AdministeredBy,
			Notes:          req.Notes,
		})
		if err != nil {
			return nil, err
		}
		return record, nil
	}))
	treatments.GET("", listEndpoint(svc.TreatmentsForLivestock, svc.TreatmentsForFarm))
	treatments.GET("/:id", getEndpoint(svc.Treatment))
	treatments.PATCH("/:id", updateEndpoint(svc.UpdateTreatment))
	treatments.DELETE("/:id", deleteEndpoint(svc.DeleteTreatment))

	disorders := rg.Group("/genetic-disorders")
	disorders.POST("", createEndpoint(func(c *gin.Context, sess session.Session, req createGeneticDisorderRequest) (any, error) {
		record, err := svc.CreateGeneticDisorder(c.Request.Context(), sess, req.LivestockID, health.GeneticDisorderInput{
			DisorderName:  req.DisorderName,
			DiagnosisDate: req.DiagnosisDate,
			Severity:      req.Severity,
			RecordedBy:    req.RecordedBy,
			Notes:         req.Notes,
		})
		if err != nil {
			return nil, err
		}
		return record, nil
	}))
	disorders.GET("", listEndpoint(svc.GeneticDisordersForLivestock, svc.GeneticDisordersForFarm))
	disorders.GET("/:id", getEndpoint(svc.GeneticDisorder))
	disorders.PATCH("/:id", updateEndpoint(svc.UpdateGeneticDisorder))
	disorders.DELETE("/:id", deleteEndpoint(svc.DeleteGeneticDisorder))
}
