package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Page-view lifecycle
	ViewsMounted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landing_views_mounted_total",
		Help: "Total number of landing page views mounted",
	})

	ViewsUnmounted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_views_unmounted_total",
		Help: "Total number of landing page views unmounted",
	}, []string{"reason"})

	ActiveViews = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "landing_views_active",
		Help: "Page views currently held in the view store",
	})

	// UI state islands
	Interactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_interactions_total",
		Help: "Total number of UI state transitions by island and action",
	}, []string{"island", "action"})

	SectionsRevealed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_sections_revealed_total",
		Help: "Total number of first-time section reveals",
	}, []string{"section"})

	// Chat widget
	ChatBootstraps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landing_chat_bootstraps_total",
		Help: "Total number of chat widget bootstrap payloads rendered",
	})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landing_requests_rate_limited_total",
		Help: "Total number of view interactions rejected by the rate limiter",
	})
)
