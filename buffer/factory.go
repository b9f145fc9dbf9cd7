package buffer

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/periphery"
)

// POD is the set of element types whose slices can be viewed as raw bytes.
type POD interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Of returns a Mutable view over the memory backing s.
// The view spans len(s)*sizeof(T) bytes. Arrays are passed as a[:].
func Of[T POD](s []T) Mutable {
	return Mutable{b: asBytes(s)}
}

// OfN is like Of, but the view is at most max bytes long.
func OfN[T POD](s []T, max int) (Mutable, error) {
	if max < 0 {
		return Mutable{}, periphery.InvalidArgument("negative view size %d", max)
	}
	return Of(s).Clamp(max), nil
}

// ConstOf returns a read-only view over the memory backing s.
func ConstOf[T POD](s []T) Const {
	return Const{b: asBytes(s)}
}

// ConstOfN is like ConstOf, but the view is at most max bytes long.
func ConstOfN[T POD](s []T, max int) (Const, error) {
	if max < 0 {
		return Const{}, periphery.InvalidArgument("negative view size %d", max)
	}
	return ConstOf(s).Clamp(max), nil
}

// String returns a read-only view over the bytes of s without copying.
func String(s string) Const {
	if len(s) == 0 {
		return Const{}
	}
	return Const{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// StringN is like String, but the view is at most max bytes long.
func StringN(s string, max int) (Const, error) {
	if max < 0 {
		return Const{}, periphery.InvalidArgument("negative view size %d", max)
	}
	return String(s).Clamp(max), nil
}

// asBytes reinterprets s as bytes. Empty input never touches s[0].
func asBytes[T POD](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	size := len(s) * int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), size)
}
