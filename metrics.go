package authgate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "authgate"

// Metrics holds the Prometheus collectors for request decisions and session
// lifecycle. A nil or disabled Metrics is a no-op on every method.
type Metrics struct {
	decisions        *prometheus.CounterVec
	sessionsCreated  prometheus.Counter
	evaluateDuration prometheus.Histogram
}

// NewMetrics registers the authgate collectors with cfg.Registry (the
// default registerer when nil) and returns the recording handle. It returns
// nil when metrics are disabled.
func NewMetrics(cfg MetricsConfig) *Metrics {
	if !cfg.Enabled {
		return nil
	}

	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "decisions_total",
			Help:      "Authentication decisions by terminal state.",
		}, []string{"decision"}),
		sessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sessions_created_total",
			Help:      "Sessions opened by login.",
		}),
		evaluateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "evaluate_duration_seconds",
			Help:      "Time spent evaluating one request.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveDecision records one evaluated request.
func (m *Metrics) ObserveDecision(kind DecisionKind, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(kind.String()).Inc()
	m.evaluateDuration.Observe(elapsed.Seconds())
}

// SessionCreated records one opened session.
func (m *Metrics) SessionCreated() {
	if m == nil {
		return
	}
	m.sessionsCreated.Inc()
}
