package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pricing and sentiment Prometheus metrics.
var (
	PricePredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tutormatch",
			Name:      "price_predictions_total",
			Help:      "Total number of price predictions",
		},
		[]string{"method", "confidence"},
	)

	SentimentAnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tutormatch",
			Name:      "sentiment_analyses_total",
			Help:      "Total number of sentiment analyses",
		},
		[]string{"sentiment"},
	)

	ModerationOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tutormatch",
			Name:      "moderation_outcomes_total",
			Help:      "Moderation recommendations by outcome",
		},
		[]string{"action"},
	)
)

var mlMetricsRegistered bool

// RegisterMLMetrics registers pricing and sentiment metrics. Must be called once from main.
func RegisterMLMetrics() {
	if mlMetricsRegistered {
		return
	}
	prometheus.MustRegister(PricePredictionsTotal)
	prometheus.MustRegister(SentimentAnalysesTotal)
	prometheus.MustRegister(ModerationOutcomesTotal)
	mlMetricsRegistered = true
}
