// Package metrics exports sr25519 engine activity as Prometheus metrics.
//
// A Collector implements interfaces.OperationObserver and is plugged into
// the engine through Options.Observer:
//
//	reg := prometheus.NewRegistry()
//	opts := sr25519.NewOptions()
//	opts.Observer = metrics.NewCollector(reg)
//	engine := sr25519.New(opts)
//
// Only operation names, outcomes and latencies are recorded. Keys,
// messages and signatures never reach a label.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/opd-ai/sr25519/interfaces"
)

const namespace = "sr25519"

// Collector records per-operation counters and latency histograms.
type Collector struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them with reg. A nil reg
// creates unregistered metrics. Registering twice on the same registry
// panics, like prometheus.MustRegister.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of sr25519 operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "sr25519 operation latency in seconds",
				// 10µs .. ~20ms
				Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12),
			},
			[]string{"operation"},
		),
	}
}

// ObserveOperation implements interfaces.OperationObserver.
func (c *Collector) ObserveOperation(op interfaces.Operation, outcome interfaces.Outcome, elapsed time.Duration) {
	c.operations.WithLabelValues(string(op), string(outcome)).Inc()
	c.duration.WithLabelValues(string(op)).Observe(elapsed.Seconds())
}

var _ interfaces.OperationObserver = (*Collector)(nil)
