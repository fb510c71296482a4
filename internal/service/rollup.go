package service

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"linkpulse/internal/model"
)

// browserRules are checked in order against the lower-cased user agent.
// Chromium-based browsers and in-app webviews also carry "chrome/" or
// "safari/", so they are matched before the generic engines.
var browserRules = []struct {
	name  string
	match func(ua string) bool
}{
	{"Edge", contains("edg/")},
	{"Opera", func(ua string) bool { return strings.Contains(ua, "opr/") || strings.Contains(ua, "opera") }},
	{"Samsung Browser", contains("samsungbrowser")},
	{"UC Browser", contains("ucbrowser")},
	{"Instagram", contains("instagram")},
	{"Facebook", func(ua string) bool {
		return strings.Contains(ua, "facebook") || strings.Contains(ua, "fban/") || strings.Contains(ua, "fbav/")
	}},
	{"LINE", contains("line/")},
	{"TikTok", func(ua string) bool { return strings.Contains(ua, "tiktok") || strings.Contains(ua, "musical_ly") }},
	{"Twitter", contains("twitter")},
	{"Chrome", func(ua string) bool { return strings.Contains(ua, "chrome/") || strings.Contains(ua, "crios/") }},
	{"Firefox", func(ua string) bool { return strings.Contains(ua, "firefox/") || strings.Contains(ua, "fxios/") }},
	{"Safari", contains("safari/")},
}

func contains(sub string) func(string) bool {
	return func(ua string) bool { return strings.Contains(ua, sub) }
}

// BrowserName classifies a user agent into a browser family
func BrowserName(userAgent string) string {
	ua := strings.ToLower(userAgent)
	for _, rule := range browserRules {
		if rule.match(ua) {
			return rule.name
		}
	}
	return "Other"
}

// NormalizeReferrer reduces a referrer URL to its host without a leading
// "www.". Missing or unparsable referrers count as direct traffic.
func NormalizeReferrer(referrer *string) string {
	if referrer == nil || strings.TrimSpace(*referrer) == "" {
		return model.DirectReferrer
	}
	u, err := url.Parse(strings.TrimSpace(*referrer))
	if err != nil {
		return model.DirectReferrer
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return model.DirectReferrer
	}
	return strings.TrimPrefix(host, "www.")
}

// BuildDailyAggregate computes one link's rollup for the UTC day starting
// at date from that day's clicks.
func BuildDailyAggregate(linkID int64, date time.Time, clicks []model.ClickEvent) *model.DailyAggregate {
	agg := &model.DailyAggregate{
		LinkID:      linkID,
		Date:        model.StartOfDay(date),
		Clicks:      int64(len(clicks)),
		Countries:   map[string]int64{},
		Referrers:   map[string]int64{},
		UserAgents:  map[string]int64{},
		HourlyStats: model.EmptyHourlyStats(),
	}

	addresses := make(map[string]struct{}, len(clicks))
	for _, c := range clicks {
		if addr := model.StringValue(c.ClientAddress); addr != "" {
			addresses[addr] = struct{}{}
		}
		if code := model.StringValue(c.CountryCode); code != "" {
			agg.Countries[code]++
		}
		agg.Referrers[NormalizeReferrer(c.Referrer)]++
		if ua := model.StringValue(c.UserAgent); ua != "" {
			agg.UserAgents[BrowserName(ua)]++
		}
		agg.HourlyStats[model.HourKey(c.ClickedAt.UTC().Hour())]++
	}
	agg.UniqueClicks = int64(len(addresses))

	return agg
}

// groupByLink partitions clicks by link and returns the link IDs in
// ascending order so runs are deterministic.
func groupByLink(clicks []model.ClickEvent) ([]int64, map[int64][]model.ClickEvent) {
	groups := make(map[int64][]model.ClickEvent)
	for _, c := range clicks {
		groups[c.LinkID] = append(groups[c.LinkID], c)
	}
	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, groups
}
