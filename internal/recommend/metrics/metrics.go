package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the recommendation engine.
type Metrics struct {
	Recommendations *prometheus.CounterVec
}

// New creates and registers recommendation metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Recommendations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "cardwise_recommendations_total",
			Help: "Total recommendations by rule and whether a candidate card matched",
		}, []string{"rule", "matched"}),
	}
}

// IncrementRecommendation records a recommendation outcome.
func (m *Metrics) IncrementRecommendation(rule, matched string) {
	if m != nil {
		m.Recommendations.WithLabelValues(rule, matched).Inc()
	}
}
