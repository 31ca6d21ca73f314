package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/domain/models"
	"github.com/mkamara9/herdsman/internal/service/breeding"
)

// BreedingHandler exposes the breeding-record lifecycle over HTTP.
type BreedingHandler struct {
	svc    *breeding.Service
	logger *zap.Logger
}

// NewBreedingHandler constructs the HTTP handler adapter.
func NewBreedingHandler(svc *breeding.Service, logger *zap.Logger) *BreedingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BreedingHandler{svc: svc, logger: logger}
}

type createBreedingRequest struct {
	DamID             string             `json:"damId"`
	SireID            string             `json:"sireId"`
	SireCode          string             `json:"sireCode"`
	Purpose           string             `json:"purpose"`
	Strategy          string             `json:"strategy"`
	ServiceType       models.ServiceType `json:"serviceType"`
	ServiceDate       string             `json:"serviceDate"`
	NumServices       int                `json:"numServices"`
	FirstHeatDate     string             `json:"firstHeatDate"`
	GestationDays     int                `json:"gestationDays"`
	ExpectedBirthDate string             `json:"expectedBirthDate"`
	AIType            string             `json:"aiType"`
	AISource          string             `json:"aiSource"`
	AICost            string             `json:"aiCost"`
}

func (r createBreedingRequest) toInput() breeding.CreateInput {
	return breeding.CreateInput{
		DamID:             r.DamID,
		SireID:            r.SireID,
		SireCode:          r.SireCode,
		Purpose:           r.Purpose,
		Strategy:          r.Strategy,
		ServiceType:       r.ServiceType,
		ServiceDate:       r.ServiceDate,
		NumServices:       r.NumServices,
		FirstHeatDate:     r.FirstHeatDate,
		GestationDays:     r.GestationDays,
		ExpectedBirthDate: r.ExpectedBirthDate,
		AIType:            r.AIType,
		AISource:          r.AISource,
		AICost:            r.AICost,
	}
}

// Create handles POST /breeding.
func (h *BreedingHandler) Create(c *gin.Context) {
	var req createBreedingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.Create(c.Request.Context(), sessionFrom(c), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// List handles GET /breeding; with ?livestockId= it narrows to the records
// where that animal appears as dam or sire.
func (h *BreedingHandler) List(c *gin.Context) {
	sess := sessionFrom(c)

	var (
		records []models.BreedingRecord
		err     error
	)
	if livestockID := c.Query("livestockId"); livestockID != "" {
		records, err = h.svc.ForLivestock(c.Request.Context(), sess, livestockID)
	} else {
		records, err = h.svc.List(c.Request.Context(), sess)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// Get handles GET /breeding/:id.
func (h *BreedingHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Status handles GET /breeding/:id/status, returning the derived pregnancy
// state as of today.
func (h *BreedingHandler) Status(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, breeding.StatusOf(*record, time.Now()))
}

// Update handles PATCH /breeding/:id.
func (h *BreedingHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.Update(c.Request.Context(), sessionFrom(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /breeding/:id.
func (h *BreedingHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), sessionFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type recordBirthRequest struct {
	AnimalType     string  `json:"animalType"`
	BirthDate      string  `json:"birthDate"`
	DeliveryMethod string  `json:"deliveryMethod"`
	LitterWeight   float64 `json:"litterWeight"`
	YoungOnes      int     `json:"youngOnes"`
	Offspring      []struct {
		Sex         string   `json:"sex"`
		BirthWeight *float64 `json:"birthWeight"`
		Notes       string   `json:"notes"`
	} `json:"offspring"`
}

// RecordBirth handles POST /breeding/:id/record-birth.
func (h *BreedingHandler) RecordBirth(c *gin.Context) {
	var req recordBirthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in := breeding.BirthInput{
		AnimalType:     req.AnimalType,
		BirthDate:      req.BirthDate,
		DeliveryMethod: req.DeliveryMethod,
		LitterWeight:   req.LitterWeight,
		YoungOnes:      req.YoungOnes,
	}
	for _, entry := range req.Offspring {
		in.Offspring = append(in.Offspring, breeding.OffspringInput{
			Sex:         entry.Sex,
			BirthWeight: entry.BirthWeight,
			Notes:       entry.Notes,
		})
	}

	record, err := h.svc.RecordBirth(c.Request.Context(), sessionFrom(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

type registerOffspringRequest struct {
	IDNumber string                   `json:"idNumber"`
	Category models.LivestockCategory `json:"category"`
	Type     string                   `json:"type"`
	Breed    string                   `json:"breed"`
	Gender   string                   `json:"gender"`
	Weight   float64                  `json:"weight"`
}

// RegisterOffspring handles POST /breeding/:id/offspring/:offspringId/register.
func (h *BreedingHandler) RegisterOffspring(c *gin.Context) {
	var req registerOffspringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	animal, err := h.svc.RegisterOffspring(c.Request.Context(), sessionFrom(c), c.Param("id"), c.Param("offspringId"), breeding.RegisterOffspringInput{
		IDNumber: req.IDNumber,
		Category: req.Category,
		Type:     req.Type,
		Breed:    req.Breed,
		Gender:   req.Gender,
		Weight:   req.Weight,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, animal)
}

// Statistics handles GET /breeding/statistics.
func (h *BreedingHandler) Statistics(c *gin.Context) {
	stats, err := h.svc.Statistics(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Detailed handles GET /breeding/detailed.
func (h *BreedingHandler) Detailed(c *gin.Context) {
	records, err := h.svc.DetailedRecords(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// Breeds handles GET /breeding/breeds?source=records|roster.
func (h *BreedingHandler) Breeds(c *gin.Context) {
	source := breeding.BreedSource(c.DefaultQuery("source", string(breeding.BreedsFromRoster)))

	breeds, err := h.svc.Breeds(c.Request.Context(), sessionFrom(c), source)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breeds": breeds})
}

// Validate handles POST /breeding/validate: roster existence checks for the
// dam and sire before the app submits a creation.
func (h *BreedingHandler) Validate(c *gin.Context) {
	var req createBreedingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.svc.ValidateBreedingData(c.Request.Context(), sessionFrom(c), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
