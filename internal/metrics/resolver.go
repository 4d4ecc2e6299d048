package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ctimdex",
		Subsystem: "resolver",
		Name:      "requests_total",
		Help:      "Count of CTIM resolve requests.",
	}, []string{"operation", "outcome"})
	resolverRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ctimdex",
		Subsystem: "resolver",
		Name:      "request_duration_seconds",
		Help:      "Duration of CTIM resolve requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "outcome"})
)

// Resolver tracks metrics for the CTIM resolver service.
type Resolver struct{}

// NewResolver creates a Resolver metrics collector.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Observe records a resolve attempt. Outcome distinguishes decode
// failures and unindexed CTIMs from hard errors.
func (m Resolver) Observe(operation, outcome string, started time.Time) {
	resolverRequestsTotal.WithLabelValues(operation, outcome).Inc()
	resolverRequestDuration.WithLabelValues(operation, outcome).Observe(time.Since(started).Seconds())
}
