// Package metrics holds the Prometheus collectors of a single CLI run.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hoopstats"

// Recorder groups the run's collectors on a private registry. A nil
// Recorder records nothing.
type Recorder struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	retries         *prometheus.CounterVec
	charts          *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Stats provider requests by endpoint and HTTP status.",
		}, []string{"endpoint", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "request_duration_seconds",
			Help:      "Stats provider request latency.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"endpoint"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "retries_total",
			Help:      "Stats provider request retries.",
		}, []string{"endpoint"}),
		charts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chart",
			Name:      "rendered_total",
			Help:      "Charts written by kind.",
		}, []string{"kind"}),
	}
	r.registry.MustRegister(r.requests, r.requestDuration, r.retries, r.charts)
	return r
}

// ObserveRequest records one provider round trip. Status 0 means the
// request never got a response.
func (r *Recorder) ObserveRequest(endpoint string, status int, took time.Duration) {
	if r == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	r.requests.WithLabelValues(endpoint, label).Inc()
	r.requestDuration.WithLabelValues(endpoint).Observe(took.Seconds())
}

func (r *Recorder) ObserveRetry(endpoint string) {
	if r == nil {
		return
	}
	r.retries.WithLabelValues(endpoint).Inc()
}

func (r *Recorder) ObserveChart(kind string) {
	if r == nil {
		return
	}
	r.charts.WithLabelValues(kind).Inc()
}

// Gatherer exposes the private registry; a nil recorder gathers nothing.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// WriteTextfile dumps the registry in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.Gatherer())
}
