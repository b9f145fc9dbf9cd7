// Package resource implements write pacing for slow device links.
//
// A UART at 9600 baud drains roughly one kilobyte per second. Handing it a
// large buffer in one write(2) fills the kernel's transmit queue and leaves
// the caller blocked inside a syscall it cannot time out. The Controller
// meters writes through a token bucket instead:
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 960,
//	})
//
//	w := resource.NewRateLimitedWriter(ctx, dev, rc)
//	// every Write forwards at most one burst worth of bytes
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional pacing without nil checks everywhere.
package resource
