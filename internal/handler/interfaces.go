package handler

//go:generate mockgen -source=interfaces.go -destination=../mocks/handler.go -package=mocks

import (
	"context"

	"linkpulse/internal/model"
)

// SchedulerController is the scheduler surface exposed over HTTP
type SchedulerController interface {
	Start() model.SchedulerActionResult
	Stop() model.SchedulerActionResult
	Restart() model.SchedulerActionResult
	Status() *model.SchedulerStatus
	Trigger(ctx context.Context, key string) (*model.TriggerResult, error)
	JobKeys() []string
}
