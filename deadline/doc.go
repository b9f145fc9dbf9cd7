// Package deadline implements the timeout-aware read protocol shared by
// stream-oriented device handles, and the matching write loop.
//
// A [Handle] supplies two primitives: "wait until readable, at most this
// long" and "read up to N bytes". [Reader] builds two entry points on top:
//
//   - [Reader.ReadOnce]: wait once, then perform exactly one read. A short
//     read is returned as is.
//   - [Reader.ReadFull]: keep reading into the unfilled suffix of the target
//     until it is full or the deadline passes.
//
// The deadline of ReadFull is a fixed point in time computed once on entry.
// Every iteration waits only for the time left until that point, so a slow
// trickle of data cannot stretch the call beyond the requested timeout.
//
// # Timeouts
//
//   - negative (see [NoTimeout]): block without a readiness wait
//   - zero: poll once and never block
//   - positive: wait at most that long in total
//
// A timeout is not an error. It is reported as a byte count smaller than the
// target length, with a nil error.
//
// # Errors
//
// Failures of the wait or the read are returned as *periphery.IOError
// immediately. The bytes accumulated before the failure are returned as the
// count and are also available as IOError.N.
package deadline
