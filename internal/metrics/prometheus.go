package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the Prometheus collectors for command decoding.
type Metrics struct {
	Decodes      *prometheus.CounterVec
	PulsesPerCmd *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// uses the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Decodes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "irpulse_decodes_total",
			Help: "Total number of decoded commands by format and outcome",
		}, []string{"format", "outcome"}),
		PulsesPerCmd: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "irpulse_pulses_per_command",
			Help:    "Number of pulses produced per successfully decoded command",
			Buckets: prometheus.ExponentialBuckets(4, 2, 8),
		}, []string{"format"}),
	}
}

// RecordDecode counts one decode. outcome is "ok" or an error kind.
func (m *Metrics) RecordDecode(format, outcome string, pulses int) {
	m.Decodes.WithLabelValues(format, outcome).Inc()
	if outcome == OutcomeOK {
		m.PulsesPerCmd.WithLabelValues(format).Observe(float64(pulses))
	}
}

// OutcomeOK labels successful decodes.
const OutcomeOK = "ok"
