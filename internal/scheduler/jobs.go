package scheduler

import (
	"context"

	"linkpulse/internal/config"
	"linkpulse/internal/service"

	"github.com/rs/zerolog/log"
)

// Job keys
const (
	JobDailyAnalytics    = "daily-analytics"
	JobWeeklyCleanup     = "weekly-cleanup"
	JobHealthCheck       = "health-check"
	JobAnalyticsBackfill = "analytics-backfill"
)

const defaultBackfillDays = 7

// DefaultJobs builds the standard job set. A job whose schedule is empty in
// the configuration is left out.
func DefaultJobs(cfg *config.SchedulerConfig, aggregation service.AggregationRunner, maintenance service.MaintenanceServiceInterface) []Job {
	backfillDays := cfg.BackfillDays
	if backfillDays < 1 {
		backfillDays = defaultBackfillDays
	}

	all := []Job{
		{
			Key:         JobDailyAnalytics,
			Name:        "Daily Analytics",
			Schedule:    cfg.DailyAnalytics,
			Description: "Aggregate yesterday's clicks",
			Run: func(ctx context.Context) (interface{}, error) {
				return aggregation.Run(ctx, 1, false)
			},
		},
		{
			Key:         JobWeeklyCleanup,
			Name:        "Weekly Cleanup",
			Schedule:    cfg.WeeklyCleanup,
			Description: "Delete click events and aggregates past retention",
			Run: func(ctx context.Context) (interface{}, error) {
				return maintenance.Cleanup(ctx)
			},
		},
		{
			Key:         JobHealthCheck,
			Name:        "Health Check",
			Schedule:    cfg.HealthCheck,
			Description: "Ping storage and count stored entities",
			Run: func(ctx context.Context) (interface{}, error) {
				report := maintenance.HealthCheck(ctx)
				if !report.Healthy {
					log.Warn().Str("job", JobHealthCheck).Str("error", report.Error).Msg("System health issue")
				}
				return report, nil
			},
		},
		{
			Key:         JobAnalyticsBackfill,
			Name:        "Analytics Backfill",
			Schedule:    cfg.Backfill,
			Description: "Aggregate any of the last days that were missed",
			Run: func(ctx context.Context) (interface{}, error) {
				return aggregation.Run(ctx, backfillDays, false)
			},
		},
	}

	jobs := make([]Job, 0, len(all))
	for _, j := range all {
		if j.Schedule == "" {
			log.Info().Str("job", j.Key).Msg("Job has no schedule, not registering")
			continue
		}
		jobs = append(jobs, j)
	}
	return jobs
}
