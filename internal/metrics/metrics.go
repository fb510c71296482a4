package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Redirects = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkpulse_redirects_total",
		Help: "Redirect requests by outcome.",
	}, []string{"outcome"})
	ClicksRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "linkpulse_clicks_recorded_total",
		Help: "Click events persisted.",
	})
	ClicksDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkpulse_clicks_dropped_total",
		Help: "Click events dropped before they were persisted.",
	}, []string{"reason"})
	GeoLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkpulse_geo_lookups_total",
		Help: "Geolocation lookups by provider and outcome.",
	}, []string{"provider", "outcome"})
	StorageRetries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkpulse_storage_retries_total",
		Help: "Storage attempts retried after a transient failure.",
	}, []string{"op"})
	StorageFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkpulse_storage_failures_total",
		Help: "Storage operations that failed terminally.",
	}, []string{"op", "kind"})
	JobRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkpulse_job_runs_total",
		Help: "Scheduled job runs by outcome.",
	}, []string{"job", "outcome"})
	AggregatedDates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkpulse_aggregated_dates_total",
		Help: "Dates handled by the aggregation job by status.",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(Redirects, ClicksRecorded, ClicksDropped, GeoLookups,
		StorageRetries, StorageFailures, JobRuns, AggregatedDates)
}

// Handler exposes the default registry for gin
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
