package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the compliance module. All methods are
// nil-safe so wiring metrics stays optional in tests.
type Metrics struct {
	// Submission outcomes by intent and result
	SubmissionOutcome *prometheus.CounterVec

	// Pending request transitions by field
	RequestsProvided *prometheus.CounterVec

	// Gateway call latencies by operation
	GatewayLatency *prometheus.HistogramVec

	// Overall document submission latency
	SubmitLatency prometheus.Histogram
}

// New creates a Metrics instance with all compliance module metrics registered.
func New() *Metrics {
	return &Metrics{
		SubmissionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "veripay_compliance_submissions_total",
			Help: "Total compliance submissions by intent and result",
		}, []string{"intent", "result"}),

		RequestsProvided: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "veripay_compliance_requests_provided_total",
			Help: "Pending information requests transitioned to provided, by field",
		}, []string{"field"}),

		GatewayLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "veripay_compliance_gateway_duration_seconds",
			Help:    "Duration of verification gateway calls by operation",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}), // operation: "upload", "update", "person_lookup", "session", "requirements"

		SubmitLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "veripay_compliance_submit_duration_seconds",
			Help:    "Duration of full document submission including gateway calls",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// IncrementSubmission records a submission outcome.
func (m *Metrics) IncrementSubmission(intent, result string) {
	if m != nil {
		m.SubmissionOutcome.WithLabelValues(intent, result).Inc()
	}
}

// IncrementProvided records pending requests resolved for a field.
func (m *Metrics) IncrementProvided(field string) {
	if m != nil {
		m.RequestsProvided.WithLabelValues(field).Inc()
	}
}

// ObserveGatewayLatency records one gateway call duration.
func (m *Metrics) ObserveGatewayLatency(operation string, d time.Duration) {
	if m != nil {
		m.GatewayLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// ObserveSubmitLatency records the total submission duration.
func (m *Metrics) ObserveSubmitLatency(d time.Duration) {
	if m != nil {
		m.SubmitLatency.Observe(d.Seconds())
	}
}
