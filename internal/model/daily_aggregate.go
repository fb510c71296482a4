package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used in job reports and APIs
const DateLayout = "2006-01-02"

// Referrer histogram key for clicks without a usable referrer
const DirectReferrer = "direct"

// DailyAggregate is the per-link rollup of one UTC day of clicks. There is
// at most one row per (link_id, date).
type DailyAggregate struct {
	ID           int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkID       int64            `json:"link_id" gorm:"uniqueIndex:idx_link_date,priority:1;not null"`
	Date         time.Time        `json:"date" gorm:"type:date;uniqueIndex:idx_link_date,priority:2;index;not null"`
	Clicks       int64            `json:"clicks" gorm:"not null;default:0"`
	UniqueClicks int64            `json:"unique_clicks" gorm:"not null;default:0"`
	Countries    map[string]int64 `json:"countries" gorm:"type:json;serializer:json"`
	Referrers    map[string]int64 `json:"referrers" gorm:"type:json;serializer:json"`
	UserAgents   map[string]int64 `json:"user_agents" gorm:"type:json;serializer:json"`
	HourlyStats  map[string]int64 `json:"hourly_stats" gorm:"type:json;serializer:json"`
	CreatedAt    time.Time        `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for DailyAggregate
func (DailyAggregate) TableName() string {
	return "daily_aggregates"
}

// HourKey formats an hour of day as a histogram key, "00" through "23"
func HourKey(hour int) string {
	return fmt.Sprintf("%02d", hour)
}

// EmptyHourlyStats returns a histogram with all 24 hour keys set to zero
func EmptyHourlyStats() map[string]int64 {
	stats := make(map[string]int64, 24)
	for h := 0; h < 24; h++ {
		stats[HourKey(h)] = 0
	}
	return stats
}

// StartOfDay truncates t to midnight UTC
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
