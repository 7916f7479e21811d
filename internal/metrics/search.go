package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "infosearch",
			Name:      "searches_total",
			Help:      "Total number of executed searches",
		},
		[]string{"mode", "personalized"},
	)

	EngineRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "infosearch",
			Name:      "engine_request_duration_seconds",
			Help:      "Search engine request duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	EngineErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "infosearch",
			Name:      "engine_errors_total",
			Help:      "Total search engine call failures",
		},
		[]string{"operation"},
	)

	PersonalizationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "infosearch",
			Name:      "personalization_failures_total",
			Help:      "Hits kept with their base score after a scoring failure",
		},
	)

	SuggestCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "infosearch",
			Name:      "suggest_cache_total",
			Help:      "Suggestion cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search pipeline metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(EngineRequestDuration)
	prometheus.MustRegister(EngineErrorsTotal)
	prometheus.MustRegister(PersonalizationFailures)
	prometheus.MustRegister(SuggestCacheTotal)
	searchMetricsRegistered = true
}
