package repository

import (
	"context"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Columns rewritten when a daily aggregate is recomputed
var aggregateUpdateColumns = []string{
	"clicks", "unique_clicks", "countries", "referrers", "user_agents", "hourly_stats",
}

// MySQLRepository handles MySQL operations. Every query runs through the
// storage gateway.
type MySQLRepository struct {
	db           *gorm.DB
	gw           *Gateway
	maxIdleConns int
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig, storage *config.StorageConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get MySQL connection pool")
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Auto migrate tables
	if err := db.AutoMigrate(&model.Link{}, &model.ClickEvent{}, &model.DailyAggregate{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	r := newMySQLRepository(db, storage)
	r.maxIdleConns = cfg.MaxIdleConns
	return r
}

func newMySQLRepository(db *gorm.DB, storage *config.StorageConfig) *MySQLRepository {
	r := &MySQLRepository{db: db}
	r.gw = NewGateway(storage.MaxRetries, storage.BaseDelay, r)
	return r
}

// Reconnect discards idle pooled connections and verifies the server is
// reachable again.
func (r *MySQLRepository) Reconnect(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetMaxIdleConns(r.maxIdleConns)
	return sqlDB.PingContext(ctx)
}

// Ping checks that the database answers
func (r *MySQLRepository) Ping(ctx context.Context) error {
	return r.gw.Execute(ctx, Options{Name: "ping"}, func(ctx context.Context) error {
		sqlDB, err := r.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
}

// GetLinkByCode retrieves a link by short code regardless of its status
func (r *MySQLRepository) GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	return Query(ctx, r.gw, Options{Name: "get_link"}, func(ctx context.Context) (*model.Link, error) {
		var l model.Link
		if err := r.db.WithContext(ctx).Where("short_code = ?", shortCode).First(&l).Error; err != nil {
			return nil, err
		}
		return &l, nil
	})
}

// CountLinks returns the total count of links
func (r *MySQLRepository) CountLinks(ctx context.Context) (int64, error) {
	return r.count(ctx, "count_links", &model.Link{})
}

// SaveClick saves a click event to MySQL
func (r *MySQLRepository) SaveClick(ctx context.Context, event *model.ClickEvent) error {
	return r.gw.Execute(ctx, Options{Name: "save_click"}, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(event).Error
	})
}

// ListClicksBetween returns every click with start <= clicked_at < end
func (r *MySQLRepository) ListClicksBetween(ctx context.Context, start, end time.Time) ([]model.ClickEvent, error) {
	return Query(ctx, r.gw, Options{Name: "list_clicks"}, func(ctx context.Context) ([]model.ClickEvent, error) {
		var events []model.ClickEvent
		err := r.db.WithContext(ctx).
			Where("clicked_at >= ? AND clicked_at < ?", start, end).
			Find(&events).Error
		return events, err
	})
}

// ListLinkClicksBetween returns one link's clicks in [start, end), newest first
func (r *MySQLRepository) ListLinkClicksBetween(ctx context.Context, linkID int64, start, end time.Time) ([]model.ClickEvent, error) {
	return Query(ctx, r.gw, Options{Name: "list_link_clicks"}, func(ctx context.Context) ([]model.ClickEvent, error) {
		var events []model.ClickEvent
		err := r.db.WithContext(ctx).
			Where("link_id = ? AND clicked_at >= ? AND clicked_at < ?", linkID, start, end).
			Order("clicked_at DESC").
			Find(&events).Error
		return events, err
	})
}

// DeleteClicksBefore removes clicks strictly older than cutoff
func (r *MySQLRepository) DeleteClicksBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return Query(ctx, r.gw, Options{Name: "delete_clicks"}, func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).
			Where("clicked_at < ?", cutoff).
			Delete(&model.ClickEvent{})
		return result.RowsAffected, result.Error
	})
}

// CountClicks returns the total count of click events
func (r *MySQLRepository) CountClicks(ctx context.Context) (int64, error) {
	return r.count(ctx, "count_clicks", &model.ClickEvent{})
}

// HasAggregatesForDate reports whether any link already has a rollup for date
func (r *MySQLRepository) HasAggregatesForDate(ctx context.Context, date time.Time) (bool, error) {
	return Query(ctx, r.gw, Options{Name: "has_aggregates"}, func(ctx context.Context) (bool, error) {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&model.DailyAggregate{}).
			Where("date = ?", date).
			Count(&count).Error
		return count > 0, err
	})
}

// UpsertDailyAggregate inserts the rollup or overwrites the existing row
// for the same (link_id, date).
func (r *MySQLRepository) UpsertDailyAggregate(ctx context.Context, agg *model.DailyAggregate) error {
	return r.gw.Execute(ctx, Options{Name: "upsert_aggregate"}, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "link_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns(aggregateUpdateColumns),
			}).
			Create(agg).Error
	})
}

// ListAggregates returns one link's rollups with from <= date < to, oldest first
func (r *MySQLRepository) ListAggregates(ctx context.Context, linkID int64, from, to time.Time) ([]model.DailyAggregate, error) {
	return Query(ctx, r.gw, Options{Name: "list_aggregates"}, func(ctx context.Context) ([]model.DailyAggregate, error) {
		var aggs []model.DailyAggregate
		err := r.db.WithContext(ctx).
			Where("link_id = ? AND date >= ? AND date < ?", linkID, from, to).
			Order("date ASC").
			Find(&aggs).Error
		return aggs, err
	})
}

// DeleteAggregatesBefore removes rollups for dates strictly before cutoff
func (r *MySQLRepository) DeleteAggregatesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return Query(ctx, r.gw, Options{Name: "delete_aggregates"}, func(ctx context.Context) (int64, error) {
		result := r.db.WithContext(ctx).
			Where("date < ?", cutoff).
			Delete(&model.DailyAggregate{})
		return result.RowsAffected, result.Error
	})
}

// CountAggregates returns the total count of daily aggregates
func (r *MySQLRepository) CountAggregates(ctx context.Context) (int64, error) {
	return r.count(ctx, "count_aggregates", &model.DailyAggregate{})
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *MySQLRepository) count(ctx context.Context, op string, m interface{}) (int64, error) {
	return Query(ctx, r.gw, Options{Name: op}, func(ctx context.Context) (int64, error) {
		var count int64
		err := r.db.WithContext(ctx).Model(m).Count(&count).Error
		return count, err
	})
}
