package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recommendation Prometheus metrics.
var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tutormatch",
			Name:      "recommend_requests_total",
			Help:      "Total number of recommendation requests",
		},
		[]string{"operation", "status"},
	)

	RecommendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tutormatch",
			Name:      "recommend_duration_seconds",
			Help:      "Recommendation pipeline duration in seconds",
			Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	RecommendResultsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tutormatch",
			Name:      "recommend_results_returned",
			Help:      "Number of results returned per recommendation request",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		},
		[]string{"operation"},
	)

	CorpusTutors = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "tutormatch",
			Name:      "corpus_tutors",
			Help:      "Tutors currently in the catalog",
		},
	)

	QuotaRemaining = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "tutormatch",
			Name:      "quota_requests_remaining",
			Help:      "Remaining daily request quota",
		},
		[]string{"scope"},
	)

	QuotaRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tutormatch",
			Name:      "quota_rejections_total",
			Help:      "Requests rejected by the daily quota",
		},
		[]string{"scope"},
	)
)

var recMetricsRegistered bool

// RegisterRecommendMetrics registers recommendation metrics. Must be called once from main.
func RegisterRecommendMetrics() {
	if recMetricsRegistered {
		return
	}
	prometheus.MustRegister(RecommendRequestsTotal)
	prometheus.MustRegister(RecommendDuration)
	prometheus.MustRegister(RecommendResultsReturned)
	prometheus.MustRegister(CorpusTutors)
	prometheus.MustRegister(QuotaRemaining)
	prometheus.MustRegister(QuotaRejectionsTotal)
	recMetricsRegistered = true
}
