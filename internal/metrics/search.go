package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search and corpus Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"locale", "fallback"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchd",
			Name:      "search_duration_seconds",
			Help:      "Search latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"locale"},
	)

	CorpusBuildDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchd",
			Name:      "corpus_build_duration_seconds",
			Help:      "Per-locale document set build duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"locale", "status"},
	)

	CorpusCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "corpus_cache_total",
			Help:      "Document cache lookups by result",
		},
		[]string{"result"},
	)

	CorpusDocuments = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "searchd",
			Name:      "corpus_documents",
			Help:      "Documents in the cached set per locale",
		},
		[]string{"locale"},
	)
)

// RegisterSearchMetrics registers the search metrics with the default
// registry. Called once from the composition root (no init() side effects).
func RegisterSearchMetrics() {
	prometheus.MustRegister(
		SearchRequestsTotal,
		SearchDuration,
		CorpusBuildDuration,
		CorpusCacheTotal,
		CorpusDocuments,
	)
}
