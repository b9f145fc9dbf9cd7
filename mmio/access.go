package mmio

import (
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/periphery"
)

// Word is the set of register widths a Space can access.
type Word interface {
	~uint8 | ~uint16 | ~uint32
}

// Load reads one register of type T at offset off from the window base.
func Load[T Word](s *Space, off uintptr) (T, error) {
	var v T
	p, err := s.at(off, unsafe.Sizeof(v))
	if err != nil {
		return v, err
	}
	switch unsafe.Sizeof(v) {
	case 1:
		return T(load8(p)), nil
	case 2:
		return T(load16(p)), nil
	default:
		return T(load32(p)), nil
	}
}

// Store writes one register of type T at offset off from the window base.
func Store[T Word](s *Space, off uintptr, v T) error {
	p, err := s.at(off, unsafe.Sizeof(v))
	if err != nil {
		return err
	}
	switch unsafe.Sizeof(v) {
	case 1:
		store8(p, uint8(v))
	case 2:
		store16(p, uint16(v))
	default:
		store32(p, uint32(v))
	}
	return nil
}

// Read8 reads the 8-bit register at off as a raw bit pattern.
func (s *Space) Read8(off uintptr) (uint8, error) { return Load[uint8](s, off) }

// Read16 reads the 16-bit register at off as a raw bit pattern in host byte
// order.
func (s *Space) Read16(off uintptr) (uint16, error) { return Load[uint16](s, off) }

// Read32 reads the 32-bit register at off as a raw bit pattern in host byte
// order.
func (s *Space) Read32(off uintptr) (uint32, error) { return Load[uint32](s, off) }

// Write8 writes the raw bit pattern v to the 8-bit register at off.
func (s *Space) Write8(off uintptr, v uint8) error { return Store(s, off, v) }

// Write16 writes the raw bit pattern v to the 16-bit register at off.
func (s *Space) Write16(off uintptr, v uint16) error { return Store(s, off, v) }

// Write32 writes the raw bit pattern v to the 32-bit register at off.
func (s *Space) Write32(off uintptr, v uint32) error { return Store(s, off, v) }

// Set8 ORs mask into the register at off. Not atomic.
func (s *Space) Set8(off uintptr, mask uint8) error { return setBits(s, off, mask) }

// Set16 ORs mask into the register at off. Not atomic.
func (s *Space) Set16(off uintptr, mask uint16) error { return setBits(s, off, mask) }

// Set32 ORs mask into the register at off. Not atomic; see AtomicSet32.
func (s *Space) Set32(off uintptr, mask uint32) error { return setBits(s, off, mask) }

// Clear8 clears the bits of mask in the register at off. Not atomic.
func (s *Space) Clear8(off uintptr, mask uint8) error { return clearBits(s, off, mask) }

// Clear16 clears the bits of mask in the register at off. Not atomic.
func (s *Space) Clear16(off uintptr, mask uint16) error { return clearBits(s, off, mask) }

// Clear32 clears the bits of mask in the register at off. Not atomic; see
// AtomicClear32.
func (s *Space) Clear32(off uintptr, mask uint32) error { return clearBits(s, off, mask) }

func setBits[T Word](s *Space, off uintptr, mask T) error {
	v, err := Load[T](s, off)
	if err != nil {
		return err
	}
	return Store(s, off, v|mask)
}

func clearBits[T Word](s *Space, off uintptr, mask T) error {
	v, err := Load[T](s, off)
	if err != nil {
		return err
	}
	return Store(s, off, v&^mask)
}

// AtomicSet32 atomically ORs mask into the 32-bit register at off and returns
// the previous value. off must translate to a 4-byte aligned address.
func (s *Space) AtomicSet32(off uintptr, mask uint32) (uint32, error) {
	p, err := s.aligned32(off)
	if err != nil {
		return 0, err
	}
	return atomic.OrUint32((*uint32)(p), mask), nil
}

// AtomicClear32 atomically clears the bits of mask in the 32-bit register at
// off and returns the previous value. off must translate to a 4-byte aligned
// address.
func (s *Space) AtomicClear32(off uintptr, mask uint32) (uint32, error) {
	p, err := s.aligned32(off)
	if err != nil {
		return 0, err
	}
	return atomic.AndUint32((*uint32)(p), ^mask), nil
}

func (s *Space) aligned32(off uintptr) (unsafe.Pointer, error) {
	p, err := s.at(off, 4)
	if err != nil {
		return nil, err
	}
	if uintptr(p)&3 != 0 {
		return nil, periphery.InvalidArgument("offset %#x is not 4-byte aligned", off)
	}
	return p, nil
}

// ReadBytes copies len(dst) bytes starting at off into dst.
func (s *Space) ReadBytes(off uintptr, dst []byte) error {
	src, err := s.span(off, len(dst))
	if err != nil {
		return err
	}
	copy(dst, src)
	return nil
}

// WriteBytes copies src into the window starting at off.
func (s *Space) WriteBytes(off uintptr, src []byte) error {
	dst, err := s.span(off, len(src))
	if err != nil {
		return err
	}
	copy(dst, src)
	return nil
}

// The accessors below must stay out of line so every call performs exactly
// one access of the given width.

//go:noinline
func load8(p unsafe.Pointer) uint8 { return *(*uint8)(p) }

//go:noinline
func store8(p unsafe.Pointer, v uint8) { *(*uint8)(p) = v }

//go:noinline
func load16(p unsafe.Pointer) uint16 { return *(*uint16)(p) }

//go:noinline
func store16(p unsafe.Pointer, v uint16) { *(*uint16)(p) = v }

func load32(p unsafe.Pointer) uint32 {
	if uintptr(p)&3 == 0 {
		return atomic.LoadUint32((*uint32)(p))
	}
	return loadUnaligned32(p)
}

func store32(p unsafe.Pointer, v uint32) {
	if uintptr(p)&3 == 0 {
		atomic.StoreUint32((*uint32)(p), v)
		return
	}
	storeUnaligned32(p, v)
}

//go:noinline
func loadUnaligned32(p unsafe.Pointer) uint32 { return *(*uint32)(p) }

//go:noinline
func storeUnaligned32(p unsafe.Pointer, v uint32) { *(*uint32)(p) = v }
