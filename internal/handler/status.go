package handler

import (
	"net/http"
	"time"

	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the pages redirects fall back to and the health probe
type StatusHandler struct {
	maintenance service.MaintenanceServiceInterface
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(maintenance service.MaintenanceServiceInterface) *StatusHandler {
	return &StatusHandler{maintenance: maintenance}
}

// NotFound handles GET /404
func (h *StatusHandler) NotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, "Short link not found")
}

// Expired handles GET /expired
func (h *StatusHandler) Expired(c *gin.Context) {
	fail(c, http.StatusGone, "Short link has expired")
}

// Disabled handles GET /disabled
func (h *StatusHandler) Disabled(c *gin.Context) {
	fail(c, http.StatusForbidden, "Short link has been disabled")
}

// Health handles GET /health
// @Summary Health check
// @Description Pings storage and reports entity counts
// @Tags system
// @Produce json
// @Success 200 {object} model.HealthReport
// @Failure 503 {object} model.HealthReport
// @Router /health [get]
func (h *StatusHandler) Health(c *gin.Context) {
	if h.maintenance == nil {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
		return
	}

	report := h.maintenance.HealthCheck(c.Request.Context())
	status := http.StatusOK
	if !report.Healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
