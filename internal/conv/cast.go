package conv

import (
	"fmt"
	"math"
	"time"
)

// UintptrToInt converts uintptr to int safely.
func UintptrToInt(v uintptr) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %#x cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// UintptrToInt64 converts uintptr to int64 safely.
func UintptrToInt64(v uintptr) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %#x cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}

// AddUintptr returns a+b and whether the sum did not wrap around.
func AddUintptr(a, b uintptr) (uintptr, bool) {
	sum := a + b
	return sum, sum >= a
}

// DurationToMillis converts d to whole milliseconds for poll(2), rounding
// up so that a positive timeout never degrades into a non-blocking poll.
// Negative durations map to -1 (wait indefinitely). The result saturates
// at math.MaxInt32.
func DurationToMillis(d time.Duration) int {
	if d < 0 {
		return -1
	}
	ms := d / time.Millisecond
	if d%time.Millisecond != 0 {
		ms++
	}
	if ms > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(ms)
}
