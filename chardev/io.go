//go:build linux

package chardev

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/hupe1980/periphery"
	"github.com/hupe1980/periphery/buffer"
	"github.com/hupe1980/periphery/deadline"
	"github.com/hupe1980/periphery/internal/conv"
)

// Path returns the path the device was opened with.
func (d *Device) Path() string { return d.path }

// WaitReadable waits up to timeout for the device to have data (POLLIN or
// POLLPRI). It reports false on timeout. A negative timeout waits
// indefinitely; zero polls without blocking. Interrupted waits resume
// against the original deadline.
func (d *Device) WaitReadable(timeout time.Duration) (bool, error) {
	if d.closed.Load() {
		return false, periphery.ErrClosed
	}

	var until time.Time
	if timeout >= 0 {
		until = d.clock.Now().Add(timeout)
	}

	fds := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN | unix.POLLPRI}}
	for {
		ms := -1
		if timeout >= 0 {
			ms = conv.DurationToMillis(max(until.Sub(d.clock.Now()), 0))
		}
		n, err := unix.Poll(fds, ms)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false, os.NewSyscallError("poll", err)
		}
		return n > 0, nil
	}
}

// Poll is an alias for WaitReadable.
func (d *Device) Poll(timeout time.Duration) (bool, error) {
	return d.WaitReadable(timeout)
}

// Read performs a single read(2) into p. End of stream is reported as
// io.EOF.
func (d *Device) Read(p []byte) (int, error) {
	if d.closed.Load() {
		return 0, periphery.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Read(d.fd, p)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, os.NewSyscallError("read", err)
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

// Write performs a single write(2) of p and may accept fewer bytes than
// offered.
func (d *Device) Write(p []byte) (int, error) {
	if d.closed.Load() {
		return 0, periphery.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := unix.Write(d.fd, p)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, os.NewSyscallError("write", err)
		}
		return n, nil
	}
}

// ReadTimeout waits up to timeout for data and performs one read into buf.
// It returns 0, nil on timeout; a NoTimeout read blocks until some data
// arrives. Short reads are not retried.
func (d *Device) ReadTimeout(buf buffer.Mutable, timeout time.Duration) (int, error) {
	start := time.Now()
	n, err := d.reader.ReadOnce(buf, timeout)
	d.metrics.RecordRead(n, time.Since(start), err)
	return n, err
}

// ReadFullTimeout reads until buf is full or timeout has passed since the
// call started, and returns the number of bytes read. An expired deadline is
// not an error; compare the count to buf.Len().
func (d *Device) ReadFullTimeout(buf buffer.Mutable, timeout time.Duration) (int, error) {
	start := time.Now()
	n, err := d.reader.ReadFull(buf, timeout)
	d.metrics.RecordRead(n, time.Since(start), err)
	if err == nil && n < buf.Len() {
		d.metrics.RecordTimeout(buf.Len(), n)
		d.logger.LogTimeout(buf.Len(), n)
	}
	return n, err
}

// ReadFull blocks until buf is full.
func (d *Device) ReadFull(buf buffer.Mutable) (int, error) {
	start := time.Now()
	n, err := d.reader.ReadAll(buf)
	d.metrics.RecordRead(n, time.Since(start), err)
	return n, err
}

// WriteAll writes all of buf, looping over short writes.
func (d *Device) WriteAll(buf buffer.Const) error {
	start := time.Now()
	err := deadline.WriteAll(d.writer, buf)
	n := buf.Len()
	if err != nil {
		n = periphery.PartialCount(err)
	}
	d.metrics.RecordWrite(n, time.Since(start), err)
	return err
}

// WriteString writes all of s.
func (d *Device) WriteString(s string) error {
	return d.WriteAll(buffer.String(s))
}

// InputWaiting returns the number of bytes queued for reading.
func (d *Device) InputWaiting() (int, error) {
	return d.ioctlCount("TIOCINQ", unix.TIOCINQ)
}

// OutputWaiting returns the number of bytes queued for transmission.
func (d *Device) OutputWaiting() (int, error) {
	return d.ioctlCount("TIOCOUTQ", unix.TIOCOUTQ)
}

func (d *Device) ioctlCount(name string, req uint) (int, error) {
	if d.closed.Load() {
		return 0, periphery.ErrClosed
	}
	n, err := unix.IoctlGetInt(d.fd, req)
	if err != nil {
		return 0, &periphery.IOError{Op: "ioctl " + name, Err: err}
	}
	return n, nil
}

// Flush blocks until all queued output has been transmitted.
func (d *Device) Flush() error {
	if d.closed.Load() {
		return periphery.ErrClosed
	}
	// TCSBRK with a non-zero argument is tcdrain(3).
	if err := unix.IoctlSetInt(d.fd, unix.TCSBRK, 1); err != nil {
		return &periphery.IOError{Op: "ioctl TCSBRK", Err: err}
	}
	return nil
}

// Close releases the descriptor. It is idempotent and always returns nil.
//
// A close failure is logged at warn level and passed to the teardown hook.
func (d *Device) Close() error {
	if d.closed.Swap(true) {
		return nil
	}
	if err := d.closer.Close(); err != nil {
		err = &periphery.ResourceError{Op: "close", Path: d.path, Err: err}
		d.logger.LogTeardownFailure("device", err)
		if d.onTeardown != nil {
			d.onTeardown(err)
		}
		return nil
	}
	d.logger.LogClose("device")
	return nil
}
