package service

import (
	"context"
	"fmt"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/model"

	"github.com/rs/zerolog/log"
)

const DefaultClickRetentionDays = 180

// MaintenanceService enforces data retention and probes storage health
type MaintenanceService struct {
	store                  MaintenanceStore
	now                    func() time.Time
	clickRetentionDays     int
	aggregateRetentionDays int
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(store MaintenanceStore, cfg *config.AnalyticsConfig) *MaintenanceService {
	s := &MaintenanceService{
		store:                  store,
		now:                    time.Now,
		clickRetentionDays:     DefaultClickRetentionDays,
		aggregateRetentionDays: DefaultAggregateRetentionDays,
	}
	if cfg != nil {
		if cfg.ClickRetentionDays > 0 {
			s.clickRetentionDays = cfg.ClickRetentionDays
		}
		if cfg.AggregateRetentionDays > 0 {
			s.aggregateRetentionDays = cfg.AggregateRetentionDays
		}
	}
	return s
}

// Cleanup deletes click events and aggregates past their retention period
func (s *MaintenanceService) Cleanup(ctx context.Context) (*model.CleanupReport, error) {
	now := s.now()
	report := &model.CleanupReport{
		ClickCutoff:     RetentionCutoff(now, s.clickRetentionDays),
		AggregateCutoff: RetentionCutoff(model.StartOfDay(now), s.aggregateRetentionDays),
	}

	deleted, err := s.store.DeleteClicksBefore(ctx, report.ClickCutoff)
	if err != nil {
		return nil, fmt.Errorf("delete expired clicks: %w", err)
	}
	report.DeletedClicks = deleted

	deleted, err = s.store.DeleteAggregatesBefore(ctx, report.AggregateCutoff)
	if err != nil {
		return report, fmt.Errorf("delete expired aggregates: %w", err)
	}
	report.DeletedAggregates = deleted

	log.Info().
		Int64("deleted_clicks", report.DeletedClicks).
		Int64("deleted_aggregates", report.DeletedAggregates).
		Time("click_cutoff", report.ClickCutoff).
		Msg("Retention cleanup completed")

	return report, nil
}

// HealthCheck pings storage and counts stored entities. Failures are
// reported in the result, never returned.
func (s *MaintenanceService) HealthCheck(ctx context.Context) *model.HealthReport {
	report := &model.HealthReport{CheckedAt: s.now().UTC()}

	if err := s.store.Ping(ctx); err != nil {
		report.Error = err.Error()
		log.Error().Err(err).Msg("Storage health check failed")
		return report
	}

	var err error
	if report.Links, err = s.store.CountLinks(ctx); err == nil {
		if report.Clicks, err = s.store.CountClicks(ctx); err == nil {
			report.Aggregates, err = s.store.CountAggregates(ctx)
		}
	}
	if err != nil {
		report.Error = err.Error()
		log.Error().Err(err).Msg("Storage health check failed")
		return report
	}

	report.Healthy = true
	log.Debug().
		Int64("links", report.Links).
		Int64("clicks", report.Clicks).
		Int64("aggregates", report.Aggregates).
		Msg("System healthy")
	return report
}
