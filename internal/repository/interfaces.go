package repository

import (
	"context"
	"time"

	"linkpulse/internal/model"

	"github.com/redis/go-redis/v9"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	Ping(ctx context.Context) error
	GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error)
	CountLinks(ctx context.Context) (int64, error)
	SaveClick(ctx context.Context, event *model.ClickEvent) error
	ListClicksBetween(ctx context.Context, start, end time.Time) ([]model.ClickEvent, error)
	ListLinkClicksBetween(ctx context.Context, linkID int64, start, end time.Time) ([]model.ClickEvent, error)
	DeleteClicksBefore(ctx context.Context, cutoff time.Time) (int64, error)
	CountClicks(ctx context.Context) (int64, error)
	HasAggregatesForDate(ctx context.Context, date time.Time) (bool, error)
	UpsertDailyAggregate(ctx context.Context, agg *model.DailyAggregate) error
	ListAggregates(ctx context.Context, linkID int64, from, to time.Time) ([]model.DailyAggregate, error)
	DeleteAggregatesBefore(ctx context.Context, cutoff time.Time) (int64, error)
	CountAggregates(ctx context.Context) (int64, error)
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	GetClient() *redis.Client
	SaveLink(ctx context.Context, link *model.Link, ttl time.Duration) error
	GetLink(ctx context.Context, shortCode string) (*model.Link, error)
	Close() error
}

var (
	_ MySQLRepositoryInterface = (*MySQLRepository)(nil)
	_ RedisRepositoryInterface = (*RedisRepository)(nil)
)
