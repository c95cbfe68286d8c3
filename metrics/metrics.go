// Package metrics counts how classifications were resolved.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	Classifications *prometheus.CounterVec
	Failures        *prometheus.CounterVec
	SniffDuration   prometheus.Histogram

	registry *prometheus.Registry
}

func New() *Metrics {
	m := &Metrics{
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contenttype_classifications_total",
			Help: "Total number of resolved classifications by origin (override, sniff, cache).",
		}, []string{"origin"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contenttype_failures_total",
			Help: "Total number of failed classifications by sniffer stage.",
		}, []string{"stage"}),
		SniffDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "contenttype_sniff_duration_seconds",
			Help:    "Time spent in the signature engine, open to close.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.Classifications,
		m.Failures,
		m.SniffDuration,
	)
	return m
}

func (m *Metrics) Resolved(origin string) {
	if m == nil {
		return
	}
	m.Classifications.WithLabelValues(origin).Inc()
}

func (m *Metrics) Failed(stage string) {
	if m == nil {
		return
	}
	m.Failures.WithLabelValues(stage).Inc()
}

func (m *Metrics) Sniffed(d time.Duration) {
	if m == nil {
		return
	}
	m.SniffDuration.Observe(d.Seconds())
}

// WriteTextfile writes the current values in the node exporter textfile
// format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
