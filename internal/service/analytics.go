package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"linkpulse/internal/geo"
	"linkpulse/internal/model"
	"linkpulse/internal/repository"
	"linkpulse/pkg/util"
)

const (
	DefaultAnalyticsDays = 30
	topStatsLimit        = 10
	recentClicksLimit    = 10
)

// AnalyticsService serves per-link analytics. Past days are read from the
// daily aggregates; today is rolled up from raw clicks on each request.
type AnalyticsService struct {
	links       LinkStore
	store       AnalyticsStore
	maxDaysBack int
	now         func() time.Time
}

// NewAnalyticsService creates a new Analytics Service
func NewAnalyticsService(links LinkStore, store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{
		links:       links,
		store:       store,
		maxDaysBack: DefaultMaxDaysBack,
		now:         time.Now,
	}
}

// GetLinkAnalytics returns the click history of a link over the last days
// days, today included
func (as *AnalyticsService) GetLinkAnalytics(ctx context.Context, shortCode string, days int) (*model.LinkAnalytics, error) {
	days = ClampDaysBack(days, as.maxDaysBack)

	link, err := as.links.GetLinkByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	today := model.StartOfDay(as.now())
	from := today.AddDate(0, 0, -(days - 1))

	aggs, err := as.store.ListAggregates(ctx, link.ID, from, today)
	if err != nil {
		return nil, fmt.Errorf("list aggregates: %w", err)
	}
	clicks, err := as.store.ListLinkClicksBetween(ctx, link.ID, today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("list today's clicks: %w", err)
	}
	current := BuildDailyAggregate(link.ID, today, clicks)

	byDate := make(map[string]*model.DailyAggregate, len(aggs)+1)
	for i := range aggs {
		byDate[aggs[i].Date.Format(model.DateLayout)] = &aggs[i]
	}
	byDate[today.Format(model.DateLayout)] = current

	result := &model.LinkAnalytics{
		LinkID:       link.ID,
		ShortCode:    link.ShortCode,
		Days:         days,
		TodayClicks:  current.Clicks,
		ClicksByDate: make([]model.DailyPoint, 0, days),
		RecentClicks: recentClicks(clicks, recentClicksLimit),
	}

	countries := map[string]int64{}
	referrers := map[string]int64{}
	browsers := map[string]int64{}
	hours := model.EmptyHourlyStats()

	for d := from; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format(model.DateLayout)
		point := model.DailyPoint{Date: key}
		if agg, ok := byDate[key]; ok {
			point.Clicks = agg.Clicks
			point.UniqueClicks = agg.UniqueClicks
			merge(countries, agg.Countries)
			merge(referrers, agg.Referrers)
			merge(browsers, agg.UserAgents)
			merge(hours, agg.HourlyStats)
		}
		result.TotalClicks += point.Clicks
		result.ClicksByDate = append(result.ClicksByDate, point)
	}

	result.ClicksByHour = make([]model.HourPoint, 0, 24)
	for h := 0; h < 24; h++ {
		key := model.HourKey(h)
		result.ClicksByHour = append(result.ClicksByHour, model.HourPoint{Hour: key, Clicks: hours[key]})
	}

	result.TopCountries = topStats(countries, topStatsLimit, geo.CountryName)
	result.TopReferrers = topStats(referrers, topStatsLimit, nil)
	result.TopBrowsers = topStats(browsers, topStatsLimit, nil)

	return result, nil
}

func merge(dst, src map[string]int64) {
	for k, v := range src {
		dst[k] += v
	}
}

// topStats returns the limit largest buckets, ties broken by key
func topStats(counts map[string]int64, limit int, label func(string) string) []model.CountStat {
	if len(counts) == 0 {
		return []model.CountStat{}
	}

	stats := make([]model.CountStat, 0, len(counts))
	for key, count := range counts {
		stat := model.CountStat{Key: key, Count: count}
		if label != nil {
			stat.Label = label(key)
		}
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Key < stats[j].Key
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// recentClicks converts the newest clicks for display. Client addresses are
// masked here; stored events keep the full address.
func recentClicks(clicks []model.ClickEvent, limit int) []model.RecentClick {
	sorted := make([]model.ClickEvent, len(clicks))
	copy(sorted, clicks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ClickedAt.After(sorted[j].ClickedAt) })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]model.RecentClick, 0, len(sorted))
	for _, c := range sorted {
		rc := model.RecentClick{
			ID:          c.ID,
			ClickedAt:   c.ClickedAt,
			CountryCode: model.StringValue(c.CountryCode),
			City:        model.StringValue(c.City),
			Referrer:    NormalizeReferrer(c.Referrer),
		}
		if addr := model.StringValue(c.ClientAddress); addr != "" {
			rc.ClientAddress = util.MaskIP(addr)
		}
		if ua := model.StringValue(c.UserAgent); ua != "" {
			rc.Browser = BrowserName(ua)
		}
		recent = append(recent, rc)
	}
	return recent
}
