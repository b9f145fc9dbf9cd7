//go:build linux

package chardev

import (
	"github.com/hupe1980/periphery"
	"github.com/hupe1980/periphery/deadline"
	"github.com/hupe1980/periphery/internal/resource"
)

type options struct {
	logger     *periphery.Logger
	metrics    periphery.MetricsCollector
	onTeardown func(error)
	clock      deadline.Clock
	writeRate  int64
}

// Option configures a Device.
type Option func(*options)

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *periphery.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = periphery.NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a collector for transfer metrics.
// If nil is passed, metrics are disabled.
func WithMetricsCollector(mc periphery.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = periphery.NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithTeardownHook installs a callback that receives close failures, which
// would otherwise only be logged.
func WithTeardownHook(fn func(error)) Option {
	return func(o *options) {
		o.onTeardown = fn
	}
}

// WithClock sets the clock used to compute read deadlines.
func WithClock(c deadline.Clock) Option {
	return func(o *options) {
		if c == nil {
			c = deadline.SystemClock
		}
		o.clock = c
	}
}

// WithWriteRate limits writes to bytesPerSec. Zero or negative disables
// pacing.
func WithWriteRate(bytesPerSec int64) Option {
	return func(o *options) {
		o.writeRate = bytesPerSec
	}
}

// WithBaudPacing limits writes to what a serial line at baud can transmit,
// with frameBits bits per byte on the wire (10 for 8N1).
func WithBaudPacing(baud, frameBits int) Option {
	return func(o *options) {
		o.writeRate = resource.BytesPerSecForBaud(baud, frameBits)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:  periphery.NoopLogger(),
		metrics: periphery.NoopMetricsCollector{},
		clock:   deadline.SystemClock,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
