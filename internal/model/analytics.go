package model

import (
	"time"
)

// LinkAnalytics is the read model served by the analytics API. Past days
// come from daily aggregates and today is computed from raw clicks.
type LinkAnalytics struct {
	LinkID       int64         `json:"link_id"`
	ShortCode    string        `json:"short_code"`
	Days         int           `json:"days"`
	TotalClicks  int64         `json:"total_clicks"`
	TodayClicks  int64         `json:"today_clicks"`
	ClicksByDate []DailyPoint  `json:"clicks_by_date"`
	ClicksByHour []HourPoint   `json:"clicks_by_hour"`
	TopCountries []CountStat   `json:"top_countries"`
	TopReferrers []CountStat   `json:"top_referrers"`
	TopBrowsers  []CountStat   `json:"top_browsers"`
	RecentClicks []RecentClick `json:"recent_clicks"`
}

// DailyPoint is one day of the click series
type DailyPoint struct {
	Date         string `json:"date"`
	Clicks       int64  `json:"clicks"`
	UniqueClicks int64  `json:"unique_clicks"`
}

// HourPoint is one UTC hour of the click distribution over the window
type HourPoint struct {
	Hour   string `json:"hour"`
	Clicks int64  `json:"clicks"`
}

// CountStat represents a histogram bucket
type CountStat struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
	Count int64  `json:"count"`
}

// RecentClick is a click as shown to operators, with the address masked
type RecentClick struct {
	ID            string    `json:"id"`
	ClickedAt     time.Time `json:"clicked_at"`
	ClientAddress string    `json:"client_address,omitempty"`
	CountryCode   string    `json:"country_code,omitempty"`
	City          string    `json:"city,omitempty"`
	Referrer      string    `json:"referrer"`
	Browser       string    `json:"browser,omitempty"`
}
