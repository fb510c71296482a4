package handler

import (
	"errors"
	"net/http"

	"linkpulse/internal/scheduler"

	"github.com/gin-gonic/gin"
)

// SchedulerAction is the body of POST /api/scheduler
type SchedulerAction struct {
	Action string `json:"action" binding:"required,oneof=start stop restart trigger"`
	Job    string `json:"job"`
}

// SchedulerHandler exposes the job scheduler over HTTP
type SchedulerHandler struct {
	scheduler SchedulerController
}

// NewSchedulerHandler creates a new SchedulerHandler
func NewSchedulerHandler(ctrl SchedulerController) *SchedulerHandler {
	return &SchedulerHandler{scheduler: ctrl}
}

// Status handles GET /api/scheduler
// @Summary Scheduler status
// @Tags scheduler
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.SchedulerStatus}
// @Router /api/scheduler [get]
func (h *SchedulerHandler) Status(c *gin.Context) {
	success(c, h.scheduler.Status())
}

// Control handles POST /api/scheduler
// @Summary Control the scheduler
// @Description Starts, stops or restarts the scheduler, or runs one job now
// @Tags scheduler
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SchedulerAction true "Action"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/scheduler [post]
func (h *SchedulerHandler) Control(c *gin.Context) {
	var req SchedulerAction
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	switch req.Action {
	case "start":
		success(c, h.scheduler.Start())
	case "stop":
		success(c, h.scheduler.Stop())
	case "restart":
		success(c, h.scheduler.Restart())
	case "trigger":
		h.trigger(c, req.Job)
	}
}

func (h *SchedulerHandler) trigger(c *gin.Context, job string) {
	if job == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":           http.StatusBadRequest,
			"message":        "Job name is required for trigger",
			"available_jobs": h.scheduler.JobKeys(),
		})
		return
	}

	result, err := h.scheduler.Trigger(c.Request.Context(), job)
	switch {
	case errors.Is(err, scheduler.ErrUnknownJob):
		c.JSON(http.StatusNotFound, gin.H{
			"code":           http.StatusNotFound,
			"message":        err.Error(),
			"available_jobs": h.scheduler.JobKeys(),
		})
	case errors.Is(err, scheduler.ErrJobRunning):
		fail(c, http.StatusConflict, err.Error())
	case err != nil:
		c.JSON(http.StatusInternalServerError, Response{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Data:    result,
		})
	default:
		success(c, result)
	}
}
