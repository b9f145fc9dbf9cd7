// Package mmio provides bounds-checked access to physically mapped register
// windows.
//
// # Overview
//
// A [Space] maps a window of physical address space through /dev/mem (or any
// other memory device) and exposes typed 8, 16 and 32-bit register reads and
// writes, bulk byte copies and read-modify-write bit helpers.
//
//	regs, err := mmio.Open(0x3f200000, 0xb4)
//	if err != nil { ... }
//	defer regs.Close()
//
//	level, err := regs.Read32(0x34)
//	err = regs.Write32(0x1c, 1<<17)
//
// # Aligned Frame
//
// mmap(2) only maps whole pages, so the requested base is rounded down to a
// page boundary and the window grows by the same amount:
//
//	AlignedBase = Base - Base%PageSize
//	AlignedSize = Size + (Base - AlignedBase)
//
// Offsets passed to accessors are relative to Base. They are translated into
// the aligned frame and checked against AlignedSize before any memory is
// touched; a failed check returns *periphery.BoundsError.
//
// # Access Semantics
//
// Register accesses must not be merged, reordered or elided, since reading or
// writing a device register can have side effects. Go has no volatile
// qualifier; 32-bit accesses at aligned offsets use sync/atomic, everything
// else goes through accessors that the compiler is not allowed to inline.
// Values are raw bit patterns in host byte order.
//
// ReadBytes and WriteBytes are bulk copies and are not access-atomic.
//
// # Read-Modify-Write
//
// Set and Clear helpers are NOT atomic: they read, modify and write back.
// Two goroutines touching overlapping bits race. AtomicSet32 and
// AtomicClear32 exist for callers that need atomicity at an aligned 32-bit
// offset.
//
// # Lifetime
//
// A Space owns its mapping; it must not be copied. [Space.Region] hands out
// borrowed views whose Bytes and Pointer return nil once the Space is closed.
// A slice obtained from a Region before Close still dangles afterwards;
// retaining it is the caller's hazard.
//
// Close never reports unmap failures to the caller. They are logged and
// passed to the hook installed with [WithTeardownHook]; the mapping may leak.
package mmio
