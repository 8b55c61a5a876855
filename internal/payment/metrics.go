package payment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks gateway payment outcomes.
type Metrics struct {
	Prepared      prometheus.Counter
	Confirmations *prometheus.CounterVec
	Compensations *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		Prepared: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storefront_payment_attempts_prepared_total",
			Help: "Orders handed to the payment gateway",
		}),
		Confirmations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_payment_confirmations_total",
			Help: "Gateway payment confirmations, by result",
		}, []string{"result"}),
		Compensations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_payment_compensations_total",
			Help: "Gateway cancellations issued after the engine rejected a confirmed payment, by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) prepared() {
	if m == nil {
		return
	}
	m.Prepared.Inc()
}

func (m *Metrics) confirmation(result string) {
	if m == nil {
		return
	}
	m.Confirmations.WithLabelValues(result).Inc()
}

func (m *Metrics) compensation(result string) {
	if m == nil {
		return
	}
	m.Compensations.WithLabelValues(result).Inc()
}
