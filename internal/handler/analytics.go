package handler

import (
	"errors"
	"net/http"
	"strconv"

	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AnalyticsHandler serves per-link analytics
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetAnalytics handles GET /api/v1/analytics/:shortCode
// @Summary Get analytics for a short link
// @Description Returns the daily click series, top countries, referrers and browsers, and recent clicks
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param shortCode path string true "Short code"
// @Param days query int false "Days of history, today included" default(30)
// @Success 200 {object} Response{data=model.LinkAnalytics}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/analytics/{shortCode} [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	shortCode := c.Param("shortCode")

	days := service.DefaultAnalyticsDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid days: "+raw)
			return
		}
		days = n
	}

	analytics, err := h.analyticsService.GetLinkAnalytics(c.Request.Context(), shortCode, days)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			fail(c, http.StatusNotFound, "Short link not found")
			return
		}
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to get analytics")
		fail(c, http.StatusInternalServerError, "Failed to get analytics")
		return
	}

	success(c, analytics)
}
