//go:build linux

package chardev

import (
	"context"
	"errors"
	"io"
	"os"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/hupe1980/periphery"
	"github.com/hupe1980/periphery/deadline"
	"github.com/hupe1980/periphery/internal/conv"
	"github.com/hupe1980/periphery/internal/resource"
)

// Access selects the open mode of a device.
type Access int

const (
	ReadOnly Access = iota
	WriteOnly
	ReadWrite
)

func (a Access) flags() (int, error) {
	switch a {
	case ReadOnly:
		return unix.O_RDONLY, nil
	case WriteOnly:
		return unix.O_WRONLY, nil
	case ReadWrite:
		return unix.O_RDWR, nil
	default:
		return 0, periphery.InvalidArgument("invalid access mode %d", int(a))
	}
}

// Device is an open character device.
type Device struct {
	fd     int
	path   string
	closer io.Closer
	closed atomic.Bool

	reader *deadline.Reader
	writer io.Writer
	clock  deadline.Clock

	logger     *periphery.Logger
	metrics    periphery.MetricsCollector
	onTeardown func(error)
}

// Open opens the character device at path.
//
// The device is opened with O_NOCTTY and O_NONBLOCK so that opening a tty
// without carrier does not hang, then switched back to blocking mode.
func Open(path string, access Access, optFns ...Option) (*Device, error) {
	flags, err := access.flags()
	if err != nil {
		return nil, err
	}

	opts := applyOptions(optFns)
	logger := opts.logger.WithDevice(path)

	fd, err := openFd(path, flags|unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NONBLOCK)
	if err != nil {
		err = &periphery.ResourceError{Op: "open", Path: path, Err: err}
		logger.LogOpen("device", err)
		return nil, err
	}

	if err := unix.SetNonblock(fd, false); err != nil {
		_ = unix.Close(fd)
		err = &periphery.ResourceError{Op: "fcntl", Path: path, Err: err}
		logger.LogOpen("device", err)
		return nil, err
	}

	logger.LogOpen("device", nil)

	return newDevice(fd, path, os.NewFile(uintptr(fd), path), opts, logger), nil
}

func openFd(path string, flags int) (int, error) {
	for {
		fd, err := unix.Open(path, flags, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return -1, os.NewSyscallError("open", err)
		}
		return fd, nil
	}
}

// New wraps an already opened file. The Device takes ownership of f; the
// descriptor is put into blocking mode.
func New(f *os.File, optFns ...Option) (*Device, error) {
	if f == nil {
		return nil, periphery.InvalidArgument("nil file")
	}
	fd, err := conv.UintptrToInt(f.Fd())
	if err != nil {
		return nil, periphery.InvalidArgument("file descriptor: %v", err)
	}
	if err := unix.SetNonblock(fd, false); err != nil {
		return nil, &periphery.ResourceError{Op: "fcntl", Path: f.Name(), Err: err}
	}

	opts := applyOptions(optFns)
	return newDevice(fd, f.Name(), f, opts, opts.logger.WithDevice(f.Name())), nil
}

func newDevice(fd int, path string, closer io.Closer, opts options, logger *periphery.Logger) *Device {
	d := &Device{
		fd:         fd,
		path:       path,
		closer:     closer,
		logger:     logger,
		metrics:    opts.metrics,
		onTeardown: opts.onTeardown,
		clock:      opts.clock,
	}
	d.reader = deadline.NewReader(d, deadline.WithClock(opts.clock))
	d.writer = d
	if opts.writeRate > 0 {
		rc := resource.NewController(resource.Config{IOLimitBytesPerSec: opts.writeRate})
		d.writer = resource.NewRateLimitedWriter(context.Background(), d, rc)
	}
	return d
}
