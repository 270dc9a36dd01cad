package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MutationMetrics records order lifecycle mutations by action.
type MutationMetrics struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
}

// NewMutationMetrics registers the mutation metrics on the provided registerer.
func NewMutationMetrics(reg prometheus.Registerer) *MutationMetrics {
	if reg == nil {
		return &MutationMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "order_mutation_duration_seconds",
		Help:    "Duration of order mutations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_mutations_total",
		Help: "Order mutations by action.",
	}, []string{"action"})
	reg.MustRegister(duration, total)
	return &MutationMetrics{
		duration: duration,
		total:    total,
	}
}

// Observe records one completed mutation.
func (m *MutationMetrics) Observe(action string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	label := normalizeLabel(action)
	m.duration.WithLabelValues(label).Observe(duration.Seconds())
	m.total.WithLabelValues(label).Inc()
}

func normalizeLabel(action string) string {
	if action == "" {
		return "unknown"
	}
	return action
}
