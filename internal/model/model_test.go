package model

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "links", Link{}.TableName())
	assert.Equal(t, "click_events", ClickEvent{}.TableName())
	assert.Equal(t, "daily_aggregates", DailyAggregate{}.TableName())
}

func TestLink_IsActive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name      string
		status    int
		expiresAt *time.Time
		active    bool
		expired   bool
	}{
		{"active without expiration", LinkStatusActive, nil, true, false},
		{"active with future expiration", LinkStatusActive, &future, true, false},
		{"disabled", LinkStatusDisabled, nil, false, false},
		{"expired", LinkStatusActive, &past, false, true},
		{"disabled and expired", LinkStatusDisabled, &past, false, true},
		{"expires exactly now", LinkStatusActive, &now, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Link{Status: tt.status, ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.active, l.IsActive(now))
			assert.Equal(t, tt.expired, l.IsExpired(now))
		})
	}
}

func TestNewClickEvent(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*3600)
	ts := time.Date(2026, 3, 10, 8, 30, 0, 0, bangkok)

	t.Run("copies location and normalizes time", func(t *testing.T) {
		code, city := "TH", "Bangkok"
		lat := 13.75
		loc := &GeoLookupResult{CountryCode: &code, City: &city, Latitude: &lat}

		event := NewClickEvent("id-1", ClickInput{
			LinkID:        7,
			ClientAddress: "203.0.113.9",
			UserAgent:     "Mozilla/5.0",
			Timestamp:     ts,
		}, loc)

		assert.Equal(t, "id-1", event.ID)
		assert.Equal(t, int64(7), event.LinkID)
		assert.Equal(t, time.UTC, event.ClickedAt.Location())
		assert.True(t, ts.Equal(event.ClickedAt))
		assert.Equal(t, "203.0.113.9", StringValue(event.ClientAddress))
		assert.Equal(t, "Mozilla/5.0", StringValue(event.UserAgent))
		assert.Nil(t, event.Referrer)
		assert.Equal(t, "TH", StringValue(event.CountryCode))
		assert.Equal(t, "Bangkok", StringValue(event.City))
		require.NotNil(t, event.Latitude)
		assert.InDelta(t, 13.75, *event.Latitude, 1e-9)
		assert.Nil(t, event.Longitude)
	})

	t.Run("nil location leaves geo columns empty", func(t *testing.T) {
		event := NewClickEvent("id-2", ClickInput{LinkID: 1, Timestamp: ts}, nil)

		assert.Nil(t, event.CountryCode)
		assert.Nil(t, event.Organization)
		assert.Nil(t, event.ClientAddress)
	})

	t.Run("oversized headers fit their columns", func(t *testing.T) {
		event := NewClickEvent("id-3", ClickInput{
			LinkID:        1,
			ClientAddress: strings.Repeat("f", 100),
			UserAgent:     strings.Repeat("a", 600),
			Referrer:      "https://example.com/?utm=" + strings.Repeat("x", 3000),
			Timestamp:     ts,
		}, nil)

		assert.Len(t, StringValue(event.ClientAddress), ClientAddressWidth)
		assert.Len(t, StringValue(event.UserAgent), UserAgentWidth)
		assert.Len(t, StringValue(event.Referrer), ReferrerWidth)
		assert.True(t, strings.HasPrefix(StringValue(event.Referrer), "https://example.com/?utm="))
	})
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		width    int
		expected string
	}{
		{name: "shorter", in: "abc", width: 5, expected: "abc"},
		{name: "exact", in: "abcde", width: 5, expected: "abcde"},
		{name: "longer", in: "abcdefgh", width: 5, expected: "abcde"},
		{name: "empty", in: "", width: 5, expected: ""},
		{name: "counts characters not bytes", in: "กขคงจฉ", width: 4, expected: "กขคง"},
		{name: "multibyte kept whole", in: "ab€€€", width: 3, expected: "ab€"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clamp(tt.in, tt.width)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestClickMessage_Input(t *testing.T) {
	now := time.Now().UTC()
	msg := &ClickMessage{
		LinkID:        3,
		ShortCode:     "abc",
		ClientAddress: "198.51.100.1",
		UserAgent:     "curl/8.0",
		Referrer:      "https://news.example.com/",
		ClickedAt:     now,
	}

	in := msg.Input()
	assert.Equal(t, int64(3), in.LinkID)
	assert.Equal(t, "198.51.100.1", in.ClientAddress)
	assert.Equal(t, "curl/8.0", in.UserAgent)
	assert.Equal(t, "https://news.example.com/", in.Referrer)
	assert.Equal(t, now, in.Timestamp)
	assert.Equal(t, "abc", in.ShortCode)

	assert.Equal(t, msg, NewClickMessage(in))
}

func TestUnknownLocation(t *testing.T) {
	loc := UnknownLocation()

	require.NotNil(t, loc)
	assert.Equal(t, OrganizationUnknown, StringValue(loc.Organization))
	assert.True(t, loc.IsUnknown())
	assert.Nil(t, loc.CountryCode)

	code := "US"
	assert.False(t, (&GeoLookupResult{CountryCode: &code}).IsUnknown())
}

func TestEmptyHourlyStats(t *testing.T) {
	stats := EmptyHourlyStats()

	assert.Len(t, stats, 24)
	assert.Contains(t, stats, "00")
	assert.Contains(t, stats, "09")
	assert.Contains(t, stats, "23")
	for _, v := range stats {
		assert.Zero(t, v)
	}
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 1, 1, 3, 0, 0, 0, time.FixedZone("ICT", 7*3600))

	// 03:00 ICT is 20:00 UTC on the previous day
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}
