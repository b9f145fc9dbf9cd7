// Package periphery is a hardware-access substrate for Linux peripheral
// device files.
//
// The root package holds what every subpackage shares: the error taxonomy,
// the structured logger and the metrics interface. The actual mechanisms
// live in subpackages:
//
//   - [github.com/hupe1980/periphery/buffer]: non-owning byte views used for
//     zero-copy transfers
//   - [github.com/hupe1980/periphery/mmio]: bounds-checked access to
//     physically mapped register windows
//   - [github.com/hupe1980/periphery/deadline]: the timeout-aware read and
//     accumulate protocol and the write loop
//   - [github.com/hupe1980/periphery/chardev]: a Linux character device handle
//     that plugs into the deadline protocol
//
// # Quick Start
//
// Register access:
//
//	regs, err := mmio.Open(0x3f200000, 0xb4)
//	if err != nil { ... }
//	defer regs.Close()
//
//	v, err := regs.Read32(0x34)
//	err = regs.Set32(0x1c, 1<<17) // non-atomic read-modify-write
//
// Timed reads from a character device:
//
//	dev, err := chardev.Open("/dev/ttyS0", chardev.ReadWrite)
//	if err != nil { ... }
//	defer dev.Close()
//
//	var frame [16]byte
//	n, err := dev.ReadFullTimeout(buffer.Of(frame[:]), 100*time.Millisecond)
//	// n < 16 with err == nil means the deadline expired first.
//
// # Errors
//
// Failures are classified by the sentinels [ErrInvalidArgument],
// [ErrOutOfBounds], [ErrResource], [ErrIO] and [ErrClosed]; use errors.Is.
// A timeout is never an error: it shows up as a zero or partial byte count.
//
// # Concurrency
//
// All calls are synchronous and may block the calling goroutine for up to the
// given timeout. A handle or register window has a single owner; concurrent
// use without external synchronization is the caller's responsibility.
package periphery
