package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts collection cache lookups.
type Metrics struct {
	CacheLookups *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_catalog_cache_lookups_total",
			Help: "Collection cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
	}
}

func (m *Metrics) lookup(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
