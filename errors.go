package periphery

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed call parameters that are
	// detectable without touching hardware (negative sizes, zero-length windows).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds is returned when a register or buffer access would leave
	// the validated window. The check always happens before the access.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrResource is returned when opening or mapping an OS resource fails.
	ErrResource = errors.New("resource error")

	// ErrIO is returned when a read, write or readiness wait fails on an
	// already acquired resource.
	ErrIO = errors.New("i/o error")

	// ErrClosed is returned by every accessor once the owning handle is closed.
	ErrClosed = errors.New("handle closed")
)

// BoundsError describes an access of Length bytes at Offset that does not
// fit into a window of Limit bytes. Offset is expressed in the aligned frame.
type BoundsError struct {
	Offset uint64
	Length uint64
	Limit  uint64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("out of bounds: access of %d bytes at offset %#x exceeds window of %#x bytes", e.Length, e.Offset, e.Limit)
}

// Is reports ErrOutOfBounds as a match.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// ResourceError reports a failure to acquire or release an OS resource.
//
// The original underlying error can be accessed via errors.Unwrap.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("resource error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("resource error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Is reports ErrResource as a match.
func (e *ResourceError) Is(target error) bool { return target == ErrResource }

// IOError reports a failed read, write or readiness wait.
//
// N is the number of bytes that had already been transferred by the call
// when the failure happened, so callers of accumulating reads can recover
// the partial count.
type IOError struct {
	Op  string
	N   int
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error: %s after %d bytes: %v", e.Op, e.N, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports ErrIO as a match.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// InvalidArgument wraps ErrInvalidArgument with a formatted detail message.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// PartialCount returns the number of bytes transferred before err occurred,
// or 0 if err carries no such information.
func PartialCount(err error) int {
	var ioe *IOError
	if errors.As(err, &ioe) {
		return ioe.N
	}
	return 0
}
