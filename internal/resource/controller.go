package resource

import (
	"context"

	"golang.org/x/time/rate"
)

// Config holds write pacing limits.
type Config struct {
	// IOLimitBytesPerSec is the sustained write throughput.
	// If 0, writes are not paced.
	IOLimitBytesPerSec int64

	// BurstBytes is the largest chunk released at once. If 0, it defaults to
	// one second worth of IOLimitBytesPerSec.
	BurstBytes int
}

// BytesPerSecForBaud returns the payload throughput of a serial line running
// at baud with frameBits bits on the wire per byte (start, data, parity and
// stop bits; 10 for 8N1).
func BytesPerSecForBaud(baud, frameBits int) int64 {
	if baud <= 0 || frameBits <= 0 {
		return 0
	}
	return int64(max(baud/frameBits, 1))
}

// Controller meters device writes through a token bucket.
type Controller struct {
	cfg       Config
	ioLimiter *rate.Limiter
}

// NewController creates a new pacing controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	if cfg.IOLimitBytesPerSec > 0 {
		burst := cfg.BurstBytes
		if burst <= 0 {
			burst = int(min(cfg.IOLimitBytesPerSec, int64(1<<30)))
		}
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), burst)
	}
	return c
}

// Burst returns the largest number of bytes a single AcquireIO may request,
// or 0 if writes are unpaced.
func (c *Controller) Burst() int {
	if c == nil || c.ioLimiter == nil {
		return 0
	}
	return c.ioLimiter.Burst()
}

// AcquireIO waits until the limit allows bytes more bytes to go out.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil || bytes <= 0 {
		return nil
	}
	return c.ioLimiter.WaitN(ctx, bytes)
}
