package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mkamara9/herdsman/internal/service/reporting"
)

// ReportsHandler exposes the stored breeding analytics over HTTP.
type ReportsHandler struct {
	svc    *reporting.Service
	logger *zap.Logger
}

// NewReportsHandler constructs the HTTP handler adapter.
func NewReportsHandler(svc *reporting.Service, logger *zap.Logger) *ReportsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportsHandler{svc: svc, logger: logger}
}

// Latest handles GET /reports/latest, returning the most recent daily
// snapshot stored for the active farm.
func (h *ReportsHandler) Latest(c *gin.Context) {
	snapshot, err := h.svc.LatestSnapshot(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No snapshot available yet."})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Reminders handles GET /reports/reminders, returning the records currently
// due soon or overdue.
func (h *ReportsHandler) Reminders(c *gin.Context) {
	reminders, err := h.svc.DueReminders(c.Request.Context(), sessionFrom(c), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reminders)
}
