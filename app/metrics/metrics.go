package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Feed metrics
	FeedBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_builds_total",
			Help: "Total number of RSS feed builds",
		},
		[]string{"feed", "status"},
	)

	FeedItemsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_items_served_total",
			Help: "Total number of RSS items served",
		},
		[]string{"feed"},
	)

	RenderFaultsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "render_faults_total",
			Help: "Total number of recovered faults while rendering item descriptions",
		},
	)

	// Upstream metrics
	UpstreamFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_fetches_total",
			Help: "Total number of Launch Library fetches",
		},
		[]string{"status"},
	)

	UpstreamFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "upstream_fetch_duration_seconds",
			Help:    "Launch Library fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_cache_lookups_total",
			Help: "Total number of mission cache lookups",
		},
		[]string{"result"},
	)

	// Application health metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version"},
	)
)

func Init(serviceName, version string) {
	ApplicationInfo.WithLabelValues(serviceName, version).Set(1)
}
