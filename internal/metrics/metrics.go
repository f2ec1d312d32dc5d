package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gauges
var (
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scope_site_active_showcase_sessions",
		Help: "Number of active showcase sessions",
	})
	ActiveCarousels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scope_site_active_carousels",
		Help: "Number of running carousel controllers",
	})
	AnalyticsQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scope_site_analytics_queue_depth",
		Help: "Number of analytics events buffered for delivery",
	})
)

// Counters
var (
	SessionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scope_site_showcase_sessions_created_total",
		Help: "Total showcase sessions created",
	})
	SessionsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scope_site_showcase_sessions_rejected_total",
		Help: "Sessions rejected due to capacity limit",
	})
	SessionsReapedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scope_site_showcase_sessions_reaped_total",
		Help: "Sessions torn down by the idle reaper",
	})
	CarouselAdvancesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scope_site_carousel_advances_total",
		Help: "Total carousel index changes by cause",
	}, []string{"cause"})
	WaitlistSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scope_site_waitlist_submissions_total",
		Help: "Total waitlist submissions by outcome",
	}, []string{"outcome"})
	AnalyticsEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scope_site_analytics_events_total",
		Help: "Total analytics events by disposition",
	}, []string{"disposition"})
	AnalyticsBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scope_site_analytics_batches_total",
		Help: "Total analytics batch deliveries by result",
	}, []string{"result"})
	MediaLoadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scope_site_media_loads_total",
		Help: "Total lazy media source loads",
	})
	MediaPlayFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scope_site_media_play_failures_total",
		Help: "Total best-effort playback starts that were rejected",
	})
)

// Histograms
var (
	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scope_site_provider_request_duration_ms",
		Help:    "Upstream provider request duration in milliseconds",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	}, []string{"provider"})
)
