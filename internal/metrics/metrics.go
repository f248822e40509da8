package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StatusOperationsTotal counts status service calls by operation and outcome
	StatusOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "r6status_operations_total",
		Help: "The total number of roster status operations",
	}, []string{"operation", "outcome"})

	// StatusOperationLatency tracks how long each operation takes, storage included
	StatusOperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "r6status_operation_latency_seconds",
		Help:    "Latency of roster status operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// RosterSize is the number of players seen by the most recent list
	RosterSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "r6status_roster_size",
		Help: "Number of players in the roster at the last list operation",
	})
)

// ObserveOperation records the outcome and latency of one operation
func ObserveOperation(operation, outcome string, started time.Time) {
	StatusOperationsTotal.WithLabelValues(operation, outcome).Inc()
	StatusOperationLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
