// Package prom exports device transfer metrics to Prometheus.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/periphery"
)

var _ periphery.MetricsCollector = (*Collector)(nil)

// Collector implements periphery.MetricsCollector with Prometheus metrics.
type Collector struct {
	latency  *prometheus.HistogramVec
	bytes    *prometheus.CounterVec
	ops      *prometheus.CounterVec
	timeouts prometheus.Counter
	short    prometheus.Counter
}

// NewCollector creates a Collector whose metric names start with namespace
// and registers it with reg. A nil reg skips registration.
func NewCollector(namespace string, reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transfer_duration_seconds",
			Help:      "Duration of device reads and writes, including readiness waits",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"op", "status"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfer_bytes_total",
			Help:      "Bytes moved to and from devices",
		}, []string{"op"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Device reads and writes",
		}, []string{"op", "status"}),
		timeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "read_timeouts_total",
			Help:      "Reads whose deadline expired before the buffer was filled",
		}),
		short: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "read_timeout_missing_bytes_total",
			Help:      "Bytes still missing when a read deadline expired",
		}),
	}

	if reg != nil {
		for _, m := range []prometheus.Collector{c.latency, c.bytes, c.ops, c.timeouts, c.short} {
			if err := reg.Register(m); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (c *Collector) record(op string, n int, d time.Duration, err error) {
	st := status(err)
	c.latency.WithLabelValues(op, st).Observe(d.Seconds())
	c.ops.WithLabelValues(op, st).Inc()
	if n > 0 {
		c.bytes.WithLabelValues(op).Add(float64(n))
	}
}

// RecordRead implements periphery.MetricsCollector.
func (c *Collector) RecordRead(n int, d time.Duration, err error) {
	c.record("read", n, d, err)
}

// RecordWrite implements periphery.MetricsCollector.
func (c *Collector) RecordWrite(n int, d time.Duration, err error) {
	c.record("write", n, d, err)
}

// RecordTimeout implements periphery.MetricsCollector.
func (c *Collector) RecordTimeout(requested, received int) {
	c.timeouts.Inc()
	if missing := requested - received; missing > 0 {
		c.short.Add(float64(missing))
	}
}
