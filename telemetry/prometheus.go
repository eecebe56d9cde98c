package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

type promMetrics struct {
	counts *prometheus.CounterVec
	gauges *prometheus.GaugeVec
}

// NewPrometheusMetrics registers an event counter and a gauge family on reg,
// both labelled by metric key.
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) Metrics {
	m := promMetrics{
		counts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_total",
				Help:      "Number of resolver events by key",
			},
			[]string{"key"},
		),
		gauges: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "value",
				Help:      "Last observed resolver value by key",
			},
			[]string{"key"},
		),
	}
	reg.MustRegister(m.counts, m.gauges)
	return m
}

func (m promMetrics) IncCount(key string) {
	m.counts.WithLabelValues(key).Inc()
}

func (m promMetrics) SetGauge(key string, value float64) {
	m.gauges.WithLabelValues(key).Set(value)
}
