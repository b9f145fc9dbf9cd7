package mmio

import (
	"github.com/hupe1980/periphery"
	"github.com/hupe1980/periphery/internal/fs"
)

// DefaultDevice is the memory device mapped by Open.
const DefaultDevice = "/dev/mem"

type options struct {
	device     string
	pageSize   int
	logger     *periphery.Logger
	onTeardown func(error)
	fs         fs.FileSystem
	mapper     mapper
}

// Option configures Open.
type Option func(*options)

// WithDevice maps path instead of /dev/mem, e.g. /dev/gpiomem or a UIO node.
func WithDevice(path string) Option {
	return func(o *options) {
		o.device = path
	}
}

// WithPageSize overrides the page size used to align the window.
// It must be a power of two. Defaults to the system page size.
func WithPageSize(n int) Option {
	return func(o *options) {
		o.pageSize = n
	}
}

// WithLogger configures structured logging for open and close.
// Pass nil to disable logging.
func WithLogger(logger *periphery.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = periphery.NoopLogger()
		}
		o.logger = logger
	}
}

// WithTeardownHook installs a callback that receives unmap failures from
// Close, which would otherwise only be logged.
func WithTeardownHook(fn func(error)) Option {
	return func(o *options) {
		o.onTeardown = fn
	}
}

func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

func withMapper(m mapper) Option {
	return func(o *options) {
		o.mapper = m
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		device:   DefaultDevice,
		pageSize: defaultPageSize(),
		logger:   periphery.NoopLogger(),
		fs:       fs.Default,
		mapper:   sysMapper{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
