package handler

import (
	"net/http"
	"strconv"

	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CronHandler exposes the aggregation job to external schedulers
type CronHandler struct {
	runner service.AggregationRunner
}

// NewCronHandler creates a new CronHandler
func NewCronHandler(runner service.AggregationRunner) *CronHandler {
	return &CronHandler{runner: runner}
}

// DailyAnalytics handles POST /api/cron/daily-analytics
// @Summary Run the daily aggregation
// @Description Aggregates the given number of days before today, newest first
// @Tags cron
// @Produce json
// @Security BearerAuth
// @Param days query int false "Days back (1-365)" default(1)
// @Param force query bool false "Recalculate dates that already have aggregates"
// @Success 200 {object} Response{data=model.JobSummary}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/cron/daily-analytics [post]
func (h *CronHandler) DailyAnalytics(c *gin.Context) {
	days := 1
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid days: "+raw)
			return
		}
		days = n
	}
	force := c.Query("force") == "true"

	summary, err := h.runner.Run(c.Request.Context(), days, force)
	if err != nil {
		log.Error().Err(err).Int("days", days).Bool("force", force).Msg("Daily analytics aborted")
		fail(c, http.StatusInternalServerError, "Aggregation aborted: "+err.Error())
		return
	}

	success(c, summary)
}
