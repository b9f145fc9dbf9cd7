package conv

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUintptrToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := UintptrToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid page", func(t *testing.T) {
		got, err := UintptrToInt(0x1010)
		assert.NoError(t, err)
		assert.Equal(t, 0x1010, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		if math.MaxInt == math.MaxInt64 {
			_, err := UintptrToInt(^uintptr(0))
			assert.Error(t, err)
		}
	})
}

func TestUintptrToInt64(t *testing.T) {
	got, err := UintptrToInt64(0x3f20_0000)
	assert.NoError(t, err)
	assert.Equal(t, int64(0x3f20_0000), got)

	if ^uintptr(0) > math.MaxInt64 {
		_, err = UintptrToInt64(^uintptr(0))
		assert.Error(t, err)
	}
}

func TestAddUintptr(t *testing.T) {
	sum, ok := AddUintptr(0x1000, 0x10)
	assert.True(t, ok)
	assert.Equal(t, uintptr(0x1010), sum)

	_, ok = AddUintptr(^uintptr(0), 1)
	assert.False(t, ok)
}

func TestDurationToMillis(t *testing.T) {
	assert.Equal(t, -1, DurationToMillis(-1))
	assert.Equal(t, 0, DurationToMillis(0))
	assert.Equal(t, 1, DurationToMillis(time.Microsecond))
	assert.Equal(t, 1, DurationToMillis(time.Millisecond))
	assert.Equal(t, 2, DurationToMillis(1500*time.Microsecond))
	assert.Equal(t, math.MaxInt32, DurationToMillis(time.Duration(math.MaxInt64)))
}
