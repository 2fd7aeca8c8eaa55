package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for suggestion dispatch.
type Metrics struct {
	// Suggestion outcomes: delivered, suppressed, failed
	Suggestions *prometheus.CounterVec

	// Permission prompts by result
	PermissionRequests *prometheus.CounterVec

	// Time spent inside the notifier handoff
	DeliverLatency prometheus.Histogram
}

// New creates and registers advisory metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Suggestions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cardwise_suggestions_total",
			Help: "Total suggestion dispatch attempts by outcome",
		}, []string{"outcome"}),

		PermissionRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cardwise_notification_permission_requests_total",
			Help: "Total notification permission requests by result",
		}, []string{"result"}),

		DeliverLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cardwise_notifier_deliver_duration_seconds",
			Help:    "Duration of notifier handoff for suggestion delivery",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementOutcome records a suggestion outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Suggestions.WithLabelValues(outcome).Inc()
	}
}

// IncrementPermission records a permission request result.
func (m *Metrics) IncrementPermission(result string) {
	if m != nil {
		m.PermissionRequests.WithLabelValues(result).Inc()
	}
}

// ObserveDeliverLatency records the notifier handoff duration.
func (m *Metrics) ObserveDeliverLatency(d time.Duration) {
	if m != nil {
		m.DeliverLatency.Observe(d.Seconds())
	}
}
