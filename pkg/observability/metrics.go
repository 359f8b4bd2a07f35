// Package observability exposes Prometheus metrics for check runs.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the collectors recorded by the engine facade.
type Metrics struct {
	ChecksTotal       *prometheus.CounterVec
	InconclusiveTotal prometheus.Counter
	StatesExplored    prometheus.Histogram
	CheckDuration     prometheus.Histogram
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "parley",
			Name:      "checks_total",
			Help:      "Equivalence checks run, by kind, model and verdict.",
		}, []string{"kind", "model", "verdict"}),
		InconclusiveTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "parley",
			Name:      "checks_inconclusive_total",
			Help:      "Checks stopped by an exploration limit.",
		}),
		StatesExplored: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "parley",
			Name:      "lts_states",
			Help:      "States discovered per built transition system.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		CheckDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "parley",
			Name:      "check_duration_seconds",
			Help:      "Wall time per equivalence check.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ChecksTotal, m.InconclusiveTotal, m.StatesExplored, m.CheckDuration)
	}
	return m
}

// ObserveCheck records one finished check.
func (m *Metrics) ObserveCheck(kind, model string, equivalent, inconclusive bool, seconds float64) {
	if m == nil {
		return
	}
	verdict := "not_equivalent"
	switch {
	case inconclusive:
		verdict = "inconclusive"
		m.InconclusiveTotal.Inc()
	case equivalent:
		verdict = "equivalent"
	}
	m.ChecksTotal.WithLabelValues(kind, model, verdict).Inc()
	m.CheckDuration.Observe(seconds)
}

// ObserveLTS records the size of a built transition system.
func (m *Metrics) ObserveLTS(states int) {
	if m == nil {
		return
	}
	m.StatesExplored.Observe(float64(states))
}
