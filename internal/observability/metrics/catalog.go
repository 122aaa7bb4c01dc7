package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics contains all Prometheus metrics related to catalog API calls.
// A nil *CatalogMetrics is valid and records nothing.
type CatalogMetrics struct {
	Requests    *prometheus.CounterVec
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
	Duration    *prometheus.HistogramVec
}

// NewCatalogMetrics creates CatalogMetrics and registers them with registry.
func NewCatalogMetrics(registry prometheus.Registerer) (*CatalogMetrics, error) {
	m := &CatalogMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of catalog API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Total number of catalog records served from memory.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Total number of catalog records not found in memory.",
		}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog API requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
		}, []string{"endpoint"}),
	}

	for _, c := range []prometheus.Collector{m.Requests, m.CacheHits, m.CacheMisses, m.Duration} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register catalog metrics: %w", err)
		}
	}
	return m, nil
}

// ObserveRequest records one catalog request.
func (m *CatalogMetrics) ObserveRequest(endpoint, outcome string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(endpoint, outcome).Inc()
	m.Duration.WithLabelValues(endpoint).Observe(durationSeconds)
}

func (m *CatalogMetrics) IncrementCacheHits() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

func (m *CatalogMetrics) IncrementCacheMisses() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}
