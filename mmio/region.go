package mmio

import (
	"unsafe"

	"github.com/hupe1980/periphery"
)

// Region is a borrowed view of part of a Space.
// It does not own the memory; the parent Space does.
type Region struct {
	parent *Space
	offset uintptr // in the aligned frame
	size   uintptr
}

// Region returns a view of size bytes starting at off from the window base.
func (s *Space) Region(off, size uintptr) (*Region, error) {
	if s.closed.Load() {
		return nil, periphery.ErrClosed
	}
	start, err := s.translate(off, size)
	if err != nil {
		return nil, err
	}
	return &Region{
		parent: s,
		offset: start,
		size:   size,
	}, nil
}

// Len returns the region size in bytes.
func (r *Region) Len() int { return int(r.size) }

// Bytes returns the mapped bytes of the region, or nil once the parent
// Space is closed.
// Warning: the slice is valid only until the parent Space is closed.
func (r *Region) Bytes() []byte {
	if r.parent.closed.Load() {
		return nil
	}
	end := r.offset + r.size
	return r.parent.mem[r.offset:end:end]
}

// Pointer returns the address of the first byte of the region, or nil once
// the parent Space is closed or when the region is empty.
func (r *Region) Pointer() unsafe.Pointer {
	if r.size == 0 || r.parent.closed.Load() {
		return nil
	}
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.parent.mem)), r.offset)
}
