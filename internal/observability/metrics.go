// Package observability holds the Prometheus instrumentation for the
// post-processing service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the
// post-processing operations.
type Metrics struct {
	Operations *prometheus.CounterVec   // labels: op={nbhood,blend}, outcome={success,error}
	Duration   *prometheus.HistogramVec // labels: op={nbhood,blend}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Operations, m.Duration)
	return m
}

// NewUnregisteredMetrics creates the metrics without registering them,
// for tests that construct more than one instance.
func NewUnregisteredMetrics() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nbhood",
			Name:      "operations_total",
			Help:      "Total post-processing operations by outcome.",
		}, []string{"op", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nbhood",
			Name:      "operation_duration_seconds",
			Help:      "Duration of a post-processing operation.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}, []string{"op"}),
	}
}

// Observe records one operation's duration and outcome.
func (m *Metrics) Observe(op string, d time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
	m.Duration.WithLabelValues(op).Observe(d.Seconds())
}
