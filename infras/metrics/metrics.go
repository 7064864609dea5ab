package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const namespace = "hotel_tracker"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"event"}, // event: hit|miss|set|del
	)
	PromotionMatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "promotion_matches_total", Help: "Booking promotion associations touched by the matcher."},
		[]string{"outcome"}, // outcome: applied|refreshed|kept|removed
	)
	Reevaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_reevaluations_total", Help: "Bookings re-matched by the reevaluation orchestrator."},
		[]string{"result"}, // result: ok|failed
	)
	LoyaltyRecalculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "loyalty_recalculations_total", Help: "Bookings visited by loyalty recalculation."},
		[]string{"result"}, // result: updated|skipped_manual|unchanged
	)
)

// Registry wraps the prometheus registry so it can be injected.
type Registry struct {
	*prometheus.Registry
	Enabled bool
	Path    string
}

func New(cfg *config.Config) *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, CacheEvents, PromotionMatches, Reevaluations, LoyaltyRecalculations)

	path := cfg.Metrics.Path
	if path == "" {
		path = "/metrics"
	}

	log.Info().Bool("enabled", cfg.Metrics.Enable).Str("path", path).Msg("Metrics registry initialized")

	return &Registry{Registry: reg, Enabled: cfg.Metrics.Enable, Path: path}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(event string) {
	CacheEvents.WithLabelValues(event).Inc()
}

func ObserveMatch(outcome string, count int) {
	if count > 0 {
		PromotionMatches.WithLabelValues(outcome).Add(float64(count))
	}
}

func ObserveReevaluation(ok, failed int) {
	Reevaluations.WithLabelValues("ok").Add(float64(ok))
	Reevaluations.WithLabelValues("failed").Add(float64(failed))
}

func ObserveLoyalty(result string) {
	LoyaltyRecalculations.WithLabelValues(result).Inc()
}
