package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics holds the Prometheus collectors for geohash operations.
type Metrics struct {
	Requests  *prometheus.CounterVec   // labels: operation, outcome={ok,invalid,error}
	Duration  *prometheus.HistogramVec // labels: operation
	Precision prometheus.Histogram

	registry *prometheus.Registry
}

// New creates the collectors on a dedicated registry. Go runtime and
// process collectors are registered alongside them.
func New() *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geohash",
			Name:      "requests_total",
			Help:      "Geohash operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "geohash",
			Name:      "request_duration_seconds",
			Help:      "Geohash operation latency in seconds.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"operation"}),
		Precision: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "geohash",
			Name:      "encode_precision_chars",
			Help:      "Requested hash length of encode operations.",
			Buckets:   prometheus.LinearBuckets(1, 1, 12),
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.Requests,
		m.Duration,
		m.Precision,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records one operation.
func (m *Metrics) Observe(operation, outcome string, start time.Time) {
	m.Requests.WithLabelValues(operation, outcome).Inc()
	m.Duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
