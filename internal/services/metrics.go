package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	InteractionsRecorded  prometheus.Counter
	RecommendationsServed *prometheus.CounterVec
	SearchDuration        prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		InteractionsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "stylerec_interactions_recorded_total",
			Help: "Accepted interaction events.",
		}),
		RecommendationsServed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stylerec_recommendations_served_total",
			Help: "Recommendations returned, by path.",
		}, []string{"path"}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "stylerec_similarity_search_duration_seconds",
			Help:    "Exhaustive similarity search latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
