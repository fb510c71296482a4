package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service.go -package=mocks

import (
	"context"
	"time"

	"linkpulse/internal/model"
)

// ClickStore persists click events (for testing)
type ClickStore interface {
	SaveClick(ctx context.Context, event *model.ClickEvent) error
}

// AggregationStore is the storage used by the aggregation job (for testing)
type AggregationStore interface {
	ListClicksBetween(ctx context.Context, start, end time.Time) ([]model.ClickEvent, error)
	HasAggregatesForDate(ctx context.Context, date time.Time) (bool, error)
	UpsertDailyAggregate(ctx context.Context, agg *model.DailyAggregate) error
	DeleteAggregatesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// MaintenanceStore is the storage used by retention and health checks (for testing)
type MaintenanceStore interface {
	Ping(ctx context.Context) error
	DeleteClicksBefore(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAggregatesBefore(ctx context.Context, cutoff time.Time) (int64, error)
	CountLinks(ctx context.Context) (int64, error)
	CountClicks(ctx context.Context) (int64, error)
	CountAggregates(ctx context.Context) (int64, error)
}

// LinkStore looks up links in the system of record (for testing)
type LinkStore interface {
	GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error)
}

// LinkCache caches links by short code (for testing)
type LinkCache interface {
	GetLink(ctx context.Context, shortCode string) (*model.Link, error)
	SaveLink(ctx context.Context, link *model.Link, ttl time.Duration) error
}

// AnalyticsStore reads rollups and raw clicks for one link (for testing)
type AnalyticsStore interface {
	ListAggregates(ctx context.Context, linkID int64, from, to time.Time) ([]model.DailyAggregate, error)
	ListLinkClicksBetween(ctx context.Context, linkID int64, start, end time.Time) ([]model.ClickEvent, error)
}

// GeoResolver attributes a client address to a location. It never fails.
type GeoResolver interface {
	Resolve(ctx context.Context, address string) *model.GeoLookupResult
}

// ClickRecorderInterface records one click, swallowing every failure
type ClickRecorderInterface interface {
	Record(ctx context.Context, in model.ClickInput)
}

// ClickDispatcher hands a click off for recording without blocking the caller
type ClickDispatcher interface {
	Dispatch(in model.ClickInput)
}

// LinkServiceInterface defines the interface for link resolution
type LinkServiceInterface interface {
	FindActiveLink(ctx context.Context, shortCode string) (*model.Link, error)
}

// AggregationRunner runs the daily rollup
type AggregationRunner interface {
	Run(ctx context.Context, daysBack int, force bool) (*model.JobSummary, error)
}

// MaintenanceServiceInterface defines retention and health operations
type MaintenanceServiceInterface interface {
	Cleanup(ctx context.Context) (*model.CleanupReport, error)
	HealthCheck(ctx context.Context) *model.HealthReport
}

// AnalyticsServiceInterface defines the interface for analytics operations
type AnalyticsServiceInterface interface {
	GetLinkAnalytics(ctx context.Context, shortCode string, days int) (*model.LinkAnalytics, error)
}
