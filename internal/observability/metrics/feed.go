// Package metrics provides Prometheus metrics for the feed pipeline and the catalog client.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// FeedMetrics contains all Prometheus metrics related to drawing cards onto the stage.
// A nil *FeedMetrics is valid and records nothing.
type FeedMetrics struct {
	Attempts     prometheus.Counter
	Failures     *prometheus.CounterVec
	CardsAdded   prometheus.Counter
	Placeholders prometheus.Counter
	StaleDropped prometheus.Counter
	StageSize    prometheus.Gauge
}

// NewFeedMetrics creates FeedMetrics and registers them with registry.
func NewFeedMetrics(registry prometheus.Registerer) (*FeedMetrics, error) {
	m := &FeedMetrics{
		Attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feed_fetch_attempts_total",
			Help: "Total number of random draw attempts.",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feed_fetch_failures_total",
			Help: "Total number of failed draw attempts by kind.",
		}, []string{"kind"}),
		CardsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feed_cards_added_total",
			Help: "Total number of cards appended to the stage.",
		}),
		Placeholders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feed_placeholders_total",
			Help: "Total number of error placeholders appended after exhausting attempts.",
		}),
		StaleDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feed_stale_cards_dropped_total",
			Help: "Total number of cards dropped because the stage was cleared while they loaded.",
		}),
		StageSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "feed_stage_cards",
			Help: "Current number of cards on the stage.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Attempts, m.Failures, m.CardsAdded, m.Placeholders, m.StaleDropped, m.StageSize} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register feed metrics: %w", err)
		}
	}
	return m, nil
}

// IncrementAttempts increases the draw attempt counter by one.
func (m *FeedMetrics) IncrementAttempts() {
	if m == nil {
		return
	}
	m.Attempts.Inc()
}

// IncrementFailures counts one failed attempt of the given kind.
func (m *FeedMetrics) IncrementFailures(kind string) {
	if m == nil {
		return
	}
	m.Failures.WithLabelValues(kind).Inc()
}

func (m *FeedMetrics) IncrementCardsAdded() {
	if m == nil {
		return
	}
	m.CardsAdded.Inc()
}

func (m *FeedMetrics) IncrementPlaceholders() {
	if m == nil {
		return
	}
	m.Placeholders.Inc()
}

func (m *FeedMetrics) IncrementStaleDropped() {
	if m == nil {
		return
	}
	m.StaleDropped.Inc()
}

// SetStageSize updates the current number of cards on the stage.
func (m *FeedMetrics) SetStageSize(n int) {
	if m == nil {
		return
	}
	m.StageSize.Set(float64(n))
}
