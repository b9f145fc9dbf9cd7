package periphery

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsError(t *testing.T) {
	err := fmt.Errorf("read32: %w", &BoundsError{Offset: 0x100d, Length: 4, Limit: 0x1010})

	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.NotErrorIs(t, err, ErrIO)

	var be *BoundsError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, uint64(0x1010), be.Limit)
	assert.Contains(t, err.Error(), "0x100d")
}

func TestResourceError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &ResourceError{Op: "open", Path: "/dev/mem", Err: cause}

	assert.ErrorIs(t, err, ErrResource)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "resource error: open /dev/mem: permission denied", err.Error())

	noPath := &ResourceError{Op: "munmap", Err: cause}
	assert.Equal(t, "resource error: munmap: permission denied", noPath.Error())
}

func TestIOError(t *testing.T) {
	err := &IOError{Op: "read", N: 8, Err: io.EOF}

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, io.EOF)
	assert.NotErrorIs(t, err, ErrResource)
	assert.Equal(t, 8, PartialCount(fmt.Errorf("wrapped: %w", err)))
	assert.Zero(t, PartialCount(io.EOF))
	assert.Zero(t, PartialCount(nil))
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("size %d is negative", -1)

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "invalid argument: size -1 is negative", err.Error())
}
