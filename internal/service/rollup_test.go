package service

import (
	"testing"
	"time"

	"linkpulse/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBrowserName(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		expected  string
	}{
		{"chrome desktop", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", "Chrome"},
		{"chrome ios", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) CriOS/120.0 Mobile/15E148 Safari/604.1", "Chrome"},
		{"edge", "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0", "Edge"},
		{"opera", "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 OPR/106.0.0.0", "Opera"},
		{"samsung", "Mozilla/5.0 (Linux; Android 13) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/23.0 Chrome/115.0.0.0 Mobile Safari/537.36", "Samsung Browser"},
		{"firefox", "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", "Firefox"},
		{"safari", "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15", "Safari"},
		{"facebook in-app", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 [FBAN/FBIOS;FBAV/440.0]", "Facebook"},
		{"line in-app", "Mozilla/5.0 (iPhone) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 Safari Line/13.20.0", "LINE"},
		{"curl", "curl/8.4.0", "Other"},
		{"empty", "", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BrowserName(tt.userAgent))
		})
	}
}

func TestNormalizeReferrer(t *testing.T) {
	tests := []struct {
		name     string
		referrer *string
		expected string
	}{
		{"nil", nil, model.DirectReferrer},
		{"empty", strPtr(""), model.DirectReferrer},
		{"whitespace", strPtr("   "), model.DirectReferrer},
		{"www stripped", strPtr("https://www.google.com/search?q=x"), "google.com"},
		{"subdomain kept", strPtr("https://m.facebook.com/story"), "m.facebook.com"},
		{"upper case host", strPtr("https://WWW.Example.COM/"), "example.com"},
		{"port dropped", strPtr("http://localhost:3000/page"), "localhost"},
		{"no scheme has no host", strPtr("google.com/path"), model.DirectReferrer},
		{"unparsable", strPtr("://bad"), model.DirectReferrer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeReferrer(tt.referrer))
		})
	}
}

func TestBuildDailyAggregate(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	at := func(hour, min int) time.Time { return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute) }

	clicks := []model.ClickEvent{
		{LinkID: 5, ClickedAt: at(0, 5), ClientAddress: strPtr("203.0.113.1"), CountryCode: strPtr("TH"),
			Referrer: strPtr("https://www.google.com/"), UserAgent: strPtr("Mozilla/5.0 Chrome/120.0 Safari/537.36")},
		{LinkID: 5, ClickedAt: at(0, 45), ClientAddress: strPtr("203.0.113.1"), CountryCode: strPtr("TH"),
			UserAgent: strPtr("Mozilla/5.0 Firefox/121.0")},
		{LinkID: 5, ClickedAt: at(13, 0), ClientAddress: strPtr("198.51.100.2"), CountryCode: strPtr("US"),
			Referrer: strPtr("https://t.co/abc")},
		{LinkID: 5, ClickedAt: at(23, 59)},
	}

	agg := BuildDailyAggregate(5, at(12, 0), clicks)

	assert.Equal(t, int64(5), agg.LinkID)
	assert.True(t, day.Equal(agg.Date))
	assert.Equal(t, int64(4), agg.Clicks)
	assert.Equal(t, int64(2), agg.UniqueClicks, "events without an address are not visitors")
	assert.Equal(t, map[string]int64{"TH": 2, "US": 1}, agg.Countries)
	assert.Equal(t, map[string]int64{"google.com": 1, "direct": 2, "t.co": 1}, agg.Referrers)
	assert.Equal(t, map[string]int64{"Chrome": 1, "Firefox": 1}, agg.UserAgents)

	assert.Len(t, agg.HourlyStats, 24)
	assert.Equal(t, int64(2), agg.HourlyStats["00"])
	assert.Equal(t, int64(1), agg.HourlyStats["13"])
	assert.Equal(t, int64(1), agg.HourlyStats["23"])
	assert.Equal(t, int64(0), agg.HourlyStats["12"])
}

func TestBuildDailyAggregate_Empty(t *testing.T) {
	agg := BuildDailyAggregate(1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), nil)

	assert.Zero(t, agg.Clicks)
	assert.Zero(t, agg.UniqueClicks)
	assert.Empty(t, agg.Countries)
	assert.Empty(t, agg.Referrers)
	assert.Len(t, agg.HourlyStats, 24)
}

func TestGroupByLink(t *testing.T) {
	clicks := []model.ClickEvent{
		{ID: "a", LinkID: 9}, {ID: "b", LinkID: 2}, {ID: "c", LinkID: 9}, {ID: "d", LinkID: 4},
	}

	ids, groups := groupByLink(clicks)

	assert.Equal(t, []int64{2, 4, 9}, ids)
	assert.Len(t, groups[9], 2)
	assert.Equal(t, "b", groups[2][0].ID)
}
