package service

import (
	"context"
	"fmt"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/metrics"
	"linkpulse/internal/model"

	"github.com/rs/zerolog/log"
)

const (
	DefaultMaxDaysBack            = config.MaxDaysBackCeiling
	DefaultAggregateRetentionDays = 365
)

// AggregationJob rolls raw click events up into one aggregate per link per
// UTC day. Runs are idempotent: re-aggregating a date overwrites its rows.
type AggregationJob struct {
	store                  AggregationStore
	now                    func() time.Time
	maxDaysBack            int
	aggregateRetentionDays int
}

// NewAggregationJob creates a new AggregationJob
func NewAggregationJob(store AggregationStore, cfg *config.AnalyticsConfig) *AggregationJob {
	j := &AggregationJob{
		store:                  store,
		now:                    time.Now,
		maxDaysBack:            DefaultMaxDaysBack,
		aggregateRetentionDays: DefaultAggregateRetentionDays,
	}
	if cfg != nil {
		if cfg.MaxDaysBack > 0 {
			j.maxDaysBack = min(cfg.MaxDaysBack, config.MaxDaysBackCeiling)
		}
		if cfg.AggregateRetentionDays > 0 {
			j.aggregateRetentionDays = cfg.AggregateRetentionDays
		}
	}
	return j
}

// Run aggregates the daysBack dates before today, newest first. Failures
// are recorded in the summary and processing moves on; the only error
// returned is the context's.
func (j *AggregationJob) Run(ctx context.Context, daysBack int, force bool) (*model.JobSummary, error) {
	started := j.now()
	daysBack = ClampDaysBack(daysBack, j.maxDaysBack)
	today := model.StartOfDay(started)

	summary := &model.JobSummary{
		Results: make([]model.DateResult, 0, daysBack),
		Settings: model.JobSettings{
			DaysBack:         daysBack,
			ForceRecalculate: force,
			MaxDaysBack:      j.maxDaysBack,
			Timezone:         "UTC",
		},
	}

	log.Info().
		Int("days_back", daysBack).
		Bool("force", force).
		Msg("Starting daily aggregation")

	for i := 1; i <= daysBack; i++ {
		if err := ctx.Err(); err != nil {
			j.finish(summary, started, daysBack)
			summary.Success = false
			summary.Message = "Aggregation cancelled"
			return summary, err
		}

		date := today.AddDate(0, 0, -i)
		result, errs := j.processDate(ctx, date, force)
		metrics.AggregatedDates.WithLabelValues(string(result.Status)).Inc()

		summary.Results = append(summary.Results, result)
		summary.Errors = append(summary.Errors, errs...)
		summary.TotalURLRecords += result.URLsProcessed
		if result.Status != model.DateSkipped {
			summary.ProcessedDays++
		}
	}

	cutoff := RetentionCutoff(today, j.aggregateRetentionDays)
	deleted, err := j.store.DeleteAggregatesBefore(ctx, cutoff)
	if err != nil {
		log.Warn().Err(err).Time("cutoff", cutoff).Msg("Failed to delete expired aggregates")
	} else if deleted > 0 {
		log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Deleted expired aggregates")
	}

	j.finish(summary, started, daysBack)
	summary.Success = len(summary.Errors) == 0
	summary.Message = fmt.Sprintf("Aggregated %d of %d day(s)", summary.ProcessedDays, daysBack)

	log.Info().
		Int("processed_days", summary.ProcessedDays).
		Int("url_records", summary.TotalURLRecords).
		Int("errors", len(summary.Errors)).
		Str("execution_time", summary.ExecutionTime).
		Msg("Daily aggregation finished")

	return summary, nil
}

func (j *AggregationJob) processDate(ctx context.Context, date time.Time, force bool) (model.DateResult, []model.JobError) {
	started := time.Now()
	day := date.Format(model.DateLayout)
	result := model.DateResult{Date: day}

	fail := func(err error) (model.DateResult, []model.JobError) {
		log.Error().Err(err).Str("date", day).Msg("Failed to aggregate date")
		result.Status = model.DateFailed
		result.Error = err.Error()
		result.ProcessingTime = time.Since(started).String()
		return result, []model.JobError{{Date: day, Error: err.Error()}}
	}

	if !force {
		exists, err := j.store.HasAggregatesForDate(ctx, date)
		if err != nil {
			return fail(fmt.Errorf("check existing aggregates: %w", err))
		}
		if exists {
			result.Status = model.DateSkipped
			result.Reason = "already_processed"
			return result, nil
		}
	}

	clicks, err := j.store.ListClicksBetween(ctx, date, date.AddDate(0, 0, 1))
	if err != nil {
		return fail(fmt.Errorf("scan clicks: %w", err))
	}

	result.Status = model.DateCompleted
	result.TotalClicks = len(clicks)
	if len(clicks) == 0 {
		result.Message = "No clicks found for this date"
		result.ProcessingTime = time.Since(started).String()
		return result, nil
	}

	ids, groups := groupByLink(clicks)
	result.URLsFound = len(ids)

	var errs []model.JobError
	for _, id := range ids {
		agg := BuildDailyAggregate(id, date, groups[id])
		if err := j.store.UpsertDailyAggregate(ctx, agg); err != nil {
			log.Error().Err(err).Str("date", day).Int64("link_id", id).Msg("Failed to upsert daily aggregate")
			errs = append(errs, model.JobError{Date: day, LinkID: id, Error: err.Error()})
			continue
		}
		result.URLsProcessed++
	}

	result.ProcessingTime = time.Since(started).String()
	return result, errs
}

func (j *AggregationJob) finish(summary *model.JobSummary, started time.Time, daysBack int) {
	elapsed := j.now().Sub(started)
	summary.ExecutionTime = elapsed.String()
	summary.CompletedAt = j.now().UTC()
	summary.Performance.AvgTimePerDay = (elapsed / time.Duration(daysBack)).String()
	if secs := elapsed.Seconds(); secs > 0 {
		summary.Performance.RecordsPerSecond = int(float64(summary.TotalURLRecords) / secs)
	}
}

// ClampDaysBack bounds a requested look-back to [1, max]
func ClampDaysBack(daysBack, max int) int {
	if daysBack < 1 {
		return 1
	}
	if daysBack > max {
		return max
	}
	return daysBack
}

// RetentionCutoff returns the instant before which data older than days is
// deleted. Rows strictly before the cutoff are removed.
func RetentionCutoff(now time.Time, days int) time.Time {
	return now.UTC().AddDate(0, 0, -days)
}
