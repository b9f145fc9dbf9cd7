package deadline

import (
	"errors"
	"io"
	"time"

	"github.com/hupe1980/periphery"
	"github.com/hupe1980/periphery/buffer"
)

// NoTimeout blocks until data arrives. Any negative duration has the same
// meaning.
const NoTimeout time.Duration = -1

// maxConsecutiveEmptyReads bounds the number of (0, nil) reads tolerated
// before an accumulating read gives up with io.ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// Waiter waits for a handle to become readable.
type Waiter interface {
	// WaitReadable blocks until data can be read or timeout elapses. It
	// reports false on timeout. A negative timeout waits indefinitely and a
	// zero timeout polls without blocking.
	WaitReadable(timeout time.Duration) (bool, error)
}

// Handle is the primitive pair a device handle supplies to the protocol.
type Handle interface {
	io.Reader
	Waiter
}

// Option configures a Reader.
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock sets the clock used to compute deadlines.
// If nil is passed, SystemClock is used.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c == nil {
			c = SystemClock
		}
		o.clock = c
	}
}

// Reader runs the deadline protocol over a Handle.
// A Reader is not safe for concurrent use.
type Reader struct {
	h     Handle
	clock Clock
}

// NewReader creates a Reader over h.
func NewReader(h Handle, optFns ...Option) *Reader {
	o := options{clock: SystemClock}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return &Reader{h: h, clock: o.clock}
}

// ReadOnce waits up to timeout for buf to become readable and then performs
// exactly one read into it.
//
// It returns 0, nil if the wait timed out. The count of a successful read may
// be smaller than buf.Len(); short reads are not retried. An empty buf
// returns 0, nil without waiting.
func (r *Reader) ReadOnce(buf buffer.Mutable, timeout time.Duration) (int, error) {
	if buf.Len() == 0 {
		return 0, nil
	}
	if timeout >= 0 {
		ok, err := r.h.WaitReadable(timeout)
		if err != nil {
			return 0, &periphery.IOError{Op: "wait", Err: err}
		}
		if !ok {
			return 0, nil
		}
	}
	n, err := r.h.Read(buf.Bytes())
	if err != nil {
		return n, &periphery.IOError{Op: "read", N: n, Err: err}
	}
	return n, nil
}

// ReadFull reads into buf until it is full or the deadline computed from
// timeout passes.
//
// It returns buf.Len(), nil when the buffer was filled and the number of bytes
// received so far with a nil error when the deadline expired first. A
// negative timeout reads without waiting and blocks until the buffer is full.
// A handle that keeps reporting readiness without yielding data fails with
// io.ErrNoProgress after a bounded number of empty reads.
func (r *Reader) ReadFull(buf buffer.Mutable, timeout time.Duration) (int, error) {
	if timeout < 0 {
		return r.ReadAll(buf)
	}

	want := buf.Len()
	deadline := r.clock.Now().Add(timeout)
	empty := 0

	for buf.Len() > 0 {
		ok, err := r.h.WaitReadable(r.left(deadline))
		if err != nil {
			got := want - buf.Len()
			return got, &periphery.IOError{Op: "wait", N: got, Err: err}
		}
		if !ok {
			break
		}

		n, err := r.h.Read(buf.Bytes())
		buf = buf.Advance(n)
		if err == nil && n == 0 {
			// Readiness without data; bounded like ReadAll.
			empty++
			if empty >= maxConsecutiveEmptyReads {
				err = io.ErrNoProgress
			}
		} else {
			empty = 0
		}
		if err != nil {
			got := want - buf.Len()
			return got, &periphery.IOError{Op: "read", N: got, Err: err}
		}
	}

	return want - buf.Len(), nil
}

// ReadAll reads into buf until it is full, blocking as long as it takes.
func (r *Reader) ReadAll(buf buffer.Mutable) (int, error) {
	want := buf.Len()
	empty := 0

	for buf.Len() > 0 {
		n, err := r.h.Read(buf.Bytes())
		buf = buf.Advance(n)
		if err == nil && n == 0 {
			empty++
			if empty >= maxConsecutiveEmptyReads {
				err = io.ErrNoProgress
			}
		} else {
			empty = 0
		}
		if err != nil {
			got := want - buf.Len()
			return got, &periphery.IOError{Op: "read", N: got, Err: err}
		}
	}

	return want, nil
}

// left returns the time remaining until deadline, never less than zero.
func (r *Reader) left(deadline time.Time) time.Duration {
	return max(deadline.Sub(r.clock.Now()), 0)
}

// WriteAll writes buf to w, advancing by the number of bytes each call
// accepted, until nothing is left.
//
// w may accept fewer bytes than offered without an error, as write(2) does.
// Any failure aborts the whole call; the number of bytes already written is
// available through IOError.N.
func WriteAll(w io.Writer, buf buffer.Const) error {
	want := buf.Len()

	for buf.Len() > 0 {
		n, err := w.Write(buf.Bytes())
		if n < 0 || n > buf.Len() {
			n, err = 0, errors.New("invalid write result")
		}
		buf = buf.Advance(n)
		if err == nil && n == 0 {
			err = io.ErrNoProgress
		}
		if err != nil {
			return &periphery.IOError{Op: "write", N: want - buf.Len(), Err: err}
		}
	}

	return nil
}
