package buffer

import "unsafe"

// Mutable is a writable view over a contiguous byte range.
// The zero value is an empty view.
type Mutable struct {
	b []byte
}

// NewMutable returns a view over p. The view aliases p; nothing is copied.
func NewMutable(p []byte) Mutable {
	if len(p) == 0 {
		return Mutable{}
	}
	return Mutable{b: p[:len(p):len(p)]}
}

// Data returns the base address of the view, or nil for a zero-length view.
func (m Mutable) Data() unsafe.Pointer {
	if len(m.b) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(m.b))
}

// Len returns the number of bytes in the view.
func (m Mutable) Len() int { return len(m.b) }

// Bytes returns the viewed bytes. The slice aliases the underlying storage.
func (m Mutable) Bytes() []byte { return m.b }

// Advance returns the view with its start moved forward by n bytes.
// n is clamped to [0, Len()].
func (m Mutable) Advance(n int) Mutable {
	return Mutable{b: m.b[clamp(n, len(m.b)):]}
}

// Clamp returns the view truncated to at most max bytes.
func (m Mutable) Clamp(max int) Mutable {
	return Mutable{b: m.b[:clamp(max, len(m.b))]}
}

// Const narrows the view to a read-only view over the same range.
func (m Mutable) Const() Const {
	return Const{b: m.b}
}

// Const is a read-only view over a contiguous byte range.
// The zero value is an empty view.
type Const struct {
	b []byte
}

// NewConst returns a read-only view over p.
func NewConst(p []byte) Const {
	if len(p) == 0 {
		return Const{}
	}
	return Const{b: p[:len(p):len(p)]}
}

// Data returns the base address of the view, or nil for a zero-length view.
func (c Const) Data() unsafe.Pointer {
	if len(c.b) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(c.b))
}

// Len returns the number of bytes in the view.
func (c Const) Len() int { return len(c.b) }

// Bytes returns the viewed bytes.
// Warning: the slice may alias string data; it must not be modified.
func (c Const) Bytes() []byte { return c.b }

// String returns a copy of the viewed bytes as a string.
func (c Const) String() string { return string(c.b) }

// Advance returns the view with its start moved forward by n bytes.
// n is clamped to [0, Len()].
func (c Const) Advance(n int) Const {
	return Const{b: c.b[clamp(n, len(c.b)):]}
}

// Clamp returns the view truncated to at most max bytes.
func (c Const) Clamp(max int) Const {
	return Const{b: c.b[:clamp(max, len(c.b))]}
}

// View is implemented by Mutable and Const.
type View[V any] interface {
	Len() int
	Advance(n int) V
}

// Skip returns v advanced by n bytes. It is the free-function form of
// v.Advance(n) for code that is generic over the view type.
func Skip[V View[V]](v V, n int) V {
	return v.Advance(n)
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	return min(n, limit)
}
