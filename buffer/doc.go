// Package buffer provides non-owning views over contiguous byte ranges.
//
// A view is an address and a length into storage owned by someone else. It
// never allocates, frees or copies, which makes it suitable for passing
// caller-owned buffers down an I/O call chain:
//
//	var frame [64]byte
//	v := buffer.Of(frame[:])      // Mutable view over 64 bytes
//	v = v.Advance(8)              // skip the header
//	ro := v.Const()               // narrow to a read-only view
//
// There are two view types. [Mutable] may be written through; [Const] may
// not. A Mutable narrows to a Const with [Mutable.Const]; there is no way
// back.
//
// # Saturating Arithmetic
//
// Advance and Clamp never panic and never underflow. Advancing past the end
// yields a zero-length view, negative counts are treated as zero. Views are
// used in hot read/write loops where a bounds panic would be worse than a
// short transfer.
//
// # Lifetime
//
// A view is only valid while its storage is. Views created from strings must
// never be written through; the Const type enforces that by not exposing a
// mutating API.
package buffer
