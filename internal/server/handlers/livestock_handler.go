package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/service/livestock"
)

// LivestockHandler exposes roster reads over HTTP.
type LivestockHandler struct {
	svc    *livestock.Service
	logger *zap.Logger
}

// NewLivestockHandler constructs the HTTP handler adapter.
func NewLivestockHandler(svc *livestock.Service, logger *zap.Logger) *LivestockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LivestockHandler{svc: svc, logger: logger}
}

// List handles GET /livestock.
func (h *LivestockHandler) List(c *gin.Context) {
	roster, err := h.svc.List(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// Get handles GET /livestock/:id.
func (h *LivestockHandler) Get(c *gin.Context) {
	animal, err := h.svc.Get(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, animal)
}
