package mmio

import (
	"math/bits"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/periphery"
	"github.com/hupe1980/periphery/internal/conv"
)

// noCopy may be embedded into structs which must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Space is an owned, page-aligned mapping of a physical register window.
//
// Accessors are safe to call from multiple goroutines as long as Close is not
// called concurrently. Read-modify-write helpers are not atomic.
type Space struct {
	_ noCopy

	base        uintptr
	size        uintptr
	alignedBase uintptr
	alignedSize uintptr
	delta       uintptr // base - alignedBase

	mem    []byte
	closed atomic.Bool

	device     string
	mapper     mapper
	logger     *periphery.Logger
	onTeardown func(error)
}

// Open maps the register window [base, base+size) from the memory device.
//
// The device is opened read-write with O_SYNC, mapped shared at the aligned
// offset and closed again before Open returns; the mapping stays valid until
// Close. Errors wrap periphery.ErrInvalidArgument for a bad window and
// periphery.ErrResource when the device cannot be opened, mapped or closed.
func Open(base, size uintptr, optFns ...Option) (*Space, error) {
	opts := applyOptions(optFns)

	if size == 0 {
		return nil, periphery.InvalidArgument("register window size must be positive")
	}
	if _, ok := conv.AddUintptr(base, size); !ok {
		return nil, periphery.InvalidArgument("register window %#x+%#x overflows the address space", base, size)
	}
	if opts.pageSize <= 0 || bits.OnesCount(uint(opts.pageSize)) != 1 {
		return nil, periphery.InvalidArgument("page size %d is not a power of two", opts.pageSize)
	}

	alignedBase, alignedSize := alignWindow(base, size, uintptr(opts.pageSize))
	if _, ok := conv.AddUintptr(alignedBase, alignedSize); !ok {
		return nil, periphery.InvalidArgument("aligned window %#x+%#x overflows the address space", alignedBase, alignedSize)
	}

	offset, err := conv.UintptrToInt64(alignedBase)
	if err != nil {
		return nil, periphery.InvalidArgument("aligned base %#x: %v", alignedBase, err)
	}
	length, err := conv.UintptrToInt(alignedSize)
	if err != nil {
		return nil, periphery.InvalidArgument("aligned size %#x: %v", alignedSize, err)
	}

	logger := opts.logger.WithDevice(opts.device).WithRegion(base, size)

	f, err := opts.fs.OpenFile(opts.device, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		err = &periphery.ResourceError{Op: "open", Path: opts.device, Err: err}
		logger.LogOpen("register window", err)
		return nil, err
	}

	fd, err := conv.UintptrToInt(f.Fd())
	if err != nil {
		_ = f.Close()
		err = &periphery.ResourceError{Op: "open", Path: opts.device, Err: err}
		logger.LogOpen("register window", err)
		return nil, err
	}

	mem, err := opts.mapper.Mmap(fd, offset, length)
	if err != nil {
		_ = f.Close()
		err = &periphery.ResourceError{Op: "mmap", Path: opts.device, Err: err}
		logger.LogOpen("register window", err)
		return nil, err
	}

	// The mapping holds its own reference to the device.
	if err := f.Close(); err != nil {
		if uerr := opts.mapper.Munmap(mem); uerr != nil {
			logger.LogTeardownFailure("register window", uerr)
		}
		err = &periphery.ResourceError{Op: "close", Path: opts.device, Err: err}
		logger.LogOpen("register window", err)
		return nil, err
	}

	logger.LogOpen("register window", nil)

	return &Space{
		base:        base,
		size:        size,
		alignedBase: alignedBase,
		alignedSize: alignedSize,
		delta:       base - alignedBase,
		mem:         mem,
		device:      opts.device,
		mapper:      opts.mapper,
		logger:      logger,
		onTeardown:  opts.onTeardown,
	}, nil
}

// alignWindow rounds base down to a page boundary and grows size by the
// same amount. pageSize must be a power of two.
func alignWindow(base, size, pageSize uintptr) (alignedBase, alignedSize uintptr) {
	alignedBase = base &^ (pageSize - 1)
	return alignedBase, size + (base - alignedBase)
}

// Base returns the requested physical base address.
func (s *Space) Base() uintptr { return s.base }

// Size returns the requested window size in bytes.
func (s *Space) Size() uintptr { return s.size }

// AlignedBase returns the page-aligned physical address actually mapped.
func (s *Space) AlignedBase() uintptr { return s.alignedBase }

// AlignedSize returns the length of the mapping in bytes.
func (s *Space) AlignedSize() uintptr { return s.alignedSize }

// Close unmaps the window. It is idempotent and always returns nil.
//
// An unmap failure is logged at warn level and passed to the teardown hook.
func (s *Space) Close() error {
	if s.closed.Swap(true) {
		return nil
	}

	mem := s.mem
	s.mem = nil

	if err := s.mapper.Munmap(mem); err != nil {
		err = &periphery.ResourceError{Op: "munmap", Path: s.device, Err: err}
		s.logger.LogTeardownFailure("register window", err)
		if s.onTeardown != nil {
			s.onTeardown(err)
		}
		return nil
	}

	s.logger.LogClose("register window")
	return nil
}

// translate maps a caller offset into the aligned frame and checks that
// length bytes starting there fit the mapping.
func (s *Space) translate(off, length uintptr) (uintptr, error) {
	start, ok := conv.AddUintptr(off, s.delta)
	if !ok {
		return 0, &periphery.BoundsError{Offset: uint64(off), Length: uint64(length), Limit: uint64(s.alignedSize)}
	}
	end, ok := conv.AddUintptr(start, length)
	if !ok || end > s.alignedSize {
		return 0, &periphery.BoundsError{Offset: uint64(start), Length: uint64(length), Limit: uint64(s.alignedSize)}
	}
	return start, nil
}

// at returns the address of width bytes at caller offset off.
func (s *Space) at(off, width uintptr) (unsafe.Pointer, error) {
	if s.closed.Load() {
		return nil, periphery.ErrClosed
	}
	start, err := s.translate(off, width)
	if err != nil {
		return nil, err
	}
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(s.mem)), start), nil
}

// span returns the mapped bytes [off, off+n) relative to Base.
func (s *Space) span(off uintptr, n int) ([]byte, error) {
	if s.closed.Load() {
		return nil, periphery.ErrClosed
	}
	start, err := s.translate(off, uintptr(n))
	if err != nil {
		return nil, err
	}
	return s.mem[start : start+uintptr(n) : start+uintptr(n)], nil
}
