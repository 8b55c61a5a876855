package coupon

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks reconciliation outcomes.
type Metrics struct {
	Removals     *prometheus.CounterVec
	Failures     *prometheus.CounterVec
	RunDuration  prometheus.Histogram
	RulesSkipped prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		Removals: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_coupon_reconcile_removals_total",
			Help: "Coupon codes and lines removed by reconciliation, by kind and reason",
		}, []string{"kind", "reason"}),
		Failures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_coupon_reconcile_failures_total",
			Help: "Reconciliation steps that failed, by step",
		}, []string{"step"}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefront_coupon_reconcile_duration_seconds",
			Help:    "Duration of a reconciliation pass",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		RulesSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storefront_coupon_rule_parse_errors_total",
			Help: "Promotion conditions dropped because their arguments could not be parsed",
		}),
	}
}

func (m *Metrics) removal(kind string, reason Reason) {
	if m == nil {
		return
	}
	m.Removals.WithLabelValues(kind, string(reason)).Inc()
}

func (m *Metrics) failure(step string) {
	if m == nil {
		return
	}
	m.Failures.WithLabelValues(step).Inc()
}

func (m *Metrics) observeRun(start time.Time) {
	if m == nil {
		return
	}
	m.RunDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) rulesSkipped(n int) {
	if m == nil || n == 0 {
		return
	}
	m.RulesSkipped.Add(float64(n))
}
