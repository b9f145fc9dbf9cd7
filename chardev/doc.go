// Package chardev provides timeout-aware access to Linux character devices
// such as serial ports, ttys and pipes.
//
// A Device wraps a raw file descriptor and supplies the readiness wait and
// single-read primitives that the deadline package builds its read loops on:
//
//	dev, err := chardev.Open("/dev/ttyUSB0", chardev.ReadWrite)
//	if err != nil { ... }
//	defer dev.Close()
//
//	buf := make([]byte, 16)
//	n, err := dev.ReadFullTimeout(buffer.NewMutable(buf), 500*time.Millisecond)
//	if err == nil && n < len(buf) {
//		// deadline expired, buf[:n] holds what arrived
//	}
//
// The descriptor is opened without a controlling terminal and in blocking
// mode. Line settings (baud rate, parity, raw mode) are left to the caller;
// use New to wrap a file that was configured elsewhere.
//
// A Device is meant to be owned by one goroutine. Calls block the calling
// goroutine; the only cancellation is a timeout.
package chardev
