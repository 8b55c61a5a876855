package commerce

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	dErrors "storefront/pkg/domain-errors"
)

// Metrics tracks commerce engine round trips.
type Metrics struct {
	OperationDuration *prometheus.HistogramVec
	OperationErrors   *prometheus.CounterVec
	BreakerOpened     prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		OperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_commerce_operation_duration_seconds",
			Help:    "Latency of commerce engine GraphQL operations",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),
		OperationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_commerce_operation_errors_total",
			Help: "Commerce engine operations that returned an error, by error code",
		}, []string{"operation", "code"}),
		BreakerOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storefront_commerce_breaker_opened_total",
			Help: "Times the commerce circuit breaker tripped open",
		}),
	}
}

func (m *Metrics) observe(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		m.OperationErrors.WithLabelValues(operation, string(dErrors.CodeOf(err))).Inc()
	}
}

func (m *Metrics) incrementBreakerOpened() {
	if m == nil {
		return
	}
	m.BreakerOpened.Inc()
}
