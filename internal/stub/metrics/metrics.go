package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the stub portal.
type Metrics struct {
	// Request outcomes by route and status class
	Requests *prometheus.CounterVec

	// Eligibility determinations by scheme and status
	Determinations *prometheus.CounterVec

	// Full eligibility evaluation latency
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance registered on the given registry so tests
// can use isolated registries.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "janseva_portal_requests_total",
			Help: "Total requests by route and status class",
		}, []string{"route", "class"}),

		Determinations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "janseva_portal_determinations_total",
			Help: "Eligibility determinations by scheme and status",
		}, []string{"scheme", "status"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "janseva_portal_evaluate_duration_seconds",
			Help:    "Duration of a full eligibility evaluation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementRequest records one handled request.
func (m *Metrics) IncrementRequest(route, class string) {
	if m != nil {
		m.Requests.WithLabelValues(route, class).Inc()
	}
}

// IncrementDetermination records one scheme determination.
func (m *Metrics) IncrementDetermination(scheme, status string) {
	if m != nil {
		m.Determinations.WithLabelValues(scheme, status).Inc()
	}
}

// ObserveEvaluateLatency records the duration of one evaluation.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
