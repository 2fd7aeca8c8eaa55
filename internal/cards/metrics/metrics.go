package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for card art validation.
type Metrics struct {
	ArtChecks       *prometheus.CounterVec
	ArtCheckLatency prometheus.Histogram
}

// New creates and registers card metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ArtChecks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cardwise_card_art_checks_total",
			Help: "Total card art HEAD checks by reachability",
		}, []string{"reachable"}),
		ArtCheckLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cardwise_card_art_check_duration_seconds",
			Help:    "Duration of card art HEAD checks",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

func (m *Metrics) ObserveArtCheck(reachable bool, latency time.Duration) {
	if m == nil {
		return
	}
	m.ArtChecks.WithLabelValues(strconv.FormatBool(reachable)).Inc()
	m.ArtCheckLatency.Observe(latency.Seconds())
}
