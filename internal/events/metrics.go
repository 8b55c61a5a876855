package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks event delivery.
type Metrics struct {
	Emitted       *prometheus.CounterVec
	Dropped       prometheus.Counter
	SinkFailures  prometheus.Counter
	WriteDuration prometheus.Histogram
}

func NewMetrics() *Metrics {
	return &Metrics{
		Emitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_events_emitted_total",
			Help: "Storefront events handed to the sink, by type",
		}, []string{"type"}),
		Dropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storefront_events_dropped_total",
			Help: "Events dropped because the async buffer was full",
		}),
		SinkFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storefront_events_sink_failures_total",
			Help: "Sink writes that returned an error",
		}),
		WriteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefront_events_write_duration_seconds",
			Help:    "Latency of sink writes",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}

func (m *Metrics) incEmitted(t Type) {
	if m == nil {
		return
	}
	m.Emitted.WithLabelValues(string(t)).Inc()
}

func (m *Metrics) incDropped() {
	if m == nil {
		return
	}
	m.Dropped.Inc()
}

func (m *Metrics) incSinkFailure() {
	if m == nil {
		return
	}
	m.SinkFailures.Inc()
}

func (m *Metrics) observeWrite(seconds float64) {
	if m == nil {
		return
	}
	m.WriteDuration.Observe(seconds)
}
